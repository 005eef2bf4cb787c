package whoislookup

import (
	"context"
	"strings"
	"time"

	whois "github.com/likexian/whois-go"
	whoisparser "github.com/likexian/whois-parser-go"

	"github.com/skamsie/Domain-Status-Checker/internal/domain"
	"github.com/skamsie/Domain-Status-Checker/internal/infra/logger"
	"github.com/skamsie/Domain-Status-Checker/internal/ports"
)

// Client answers registrar lookups over WHOIS. Failures degrade to
// NotAvailable fields; the pipeline never sees an error from here.
type Client struct {
	query   func(host string) (string, error)
	timeout time.Duration
}

type Option func(*Client)

// WithQuery replaces the WHOIS transport, for tests.
func WithQuery(q func(host string) (string, error)) Option {
	return func(c *Client) { c.query = q }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func New(opts ...Option) *Client {
	c := &Client{
		query: func(host string) (string, error) {
			return whois.Whois(host)
		},
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.RegistrarLookup = (*Client)(nil)

func (c *Client) Lookup(ctx context.Context, host string) domain.RegistrarInfo {
	info := domain.RegistrarInfo{
		Name:        domain.NotAvailable,
		ReferralURL: domain.NotAvailable,
	}

	raw, err := c.queryCtx(ctx, host)
	if err != nil {
		logger.L().Debug("whoislookup.query_failed", "host", host, "err", err.Error())
		return info
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		logger.L().Debug("whoislookup.parse_failed", "host", host, "err", err.Error())
		return info
	}

	if parsed.Registrar == nil {
		return info
	}
	if name := strings.TrimSpace(parsed.Registrar.Name); name != "" {
		info.Name = name
	}
	if ref := strings.TrimSpace(parsed.Registrar.ReferralURL); ref != "" {
		info.ReferralURL = ref
	}
	return info
}

// queryCtx runs the blocking WHOIS query in a goroutine so a canceled or
// timed-out run does not hang on port 43.
func (c *Client) queryCtx(ctx context.Context, host string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	type result struct {
		raw string
		err error
	}
	ch := make(chan result, 1)
	go func() {
		raw, err := c.query(host)
		ch <- result{raw: raw, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return res.raw, res.err
	}
}
