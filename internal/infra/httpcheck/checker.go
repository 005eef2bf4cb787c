package httpcheck

import (
	"context"
	"net"
	"net/http"
	"net/http/httptrace"

	"github.com/skamsie/Domain-Status-Checker/internal/domain"
	"github.com/skamsie/Domain-Status-Checker/internal/infra/logger"
	"github.com/skamsie/Domain-Status-Checker/internal/ports"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 6.3; rv:36.0) Gecko/20100101 Firefox/36.0"

// Checker issues a single non-redirecting HTTP probe per hostname.
type Checker struct {
	client    *http.Client
	userAgent string
}

type Option func(*Checker)

func WithClient(c *http.Client) Option {
	return func(ch *Checker) { ch.client = c }
}

func WithUserAgent(ua string) Option {
	return func(ch *Checker) { ch.userAgent = ua }
}

func New(opts ...Option) *Checker {
	ch := &Checker{
		client:    NewClient(DefaultClientConfig()),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

var _ ports.StatusResolver = (*Checker)(nil)

// Resolve probes http://<host>/ with HEAD and reports the literal status code
// plus the peer IP of the connection that served it. Some origins reject HEAD
// probes they would answer fine over GET; those get a single GET retry.
func (ch *Checker) Resolve(ctx context.Context, host string) domain.ProbeResult {
	res, err := ch.probe(ctx, http.MethodHead, host)
	if err == nil && headRejected(res.StatusCode) {
		if retry, rerr := ch.probe(ctx, http.MethodGet, host); rerr == nil {
			res = retry
		}
	}
	if err != nil {
		logger.L().Debug("httpcheck.probe_failed", "host", host, "err", err.Error())
		return domain.ProbeResult{
			IP:         domain.NotAvailable,
			StatusText: domain.FailureText(err),
		}
	}

	logger.L().Debug("httpcheck.probe", "host", host, "ip", res.IP, "status", res.StatusCode)
	return res
}

func (ch *Checker) probe(ctx context.Context, method, host string) (domain.ProbeResult, error) {
	// The peer address of the actual connection is the resolved IP we report;
	// a separate DNS query could disagree with what was dialed.
	var peer string
	trace := &httptrace.ClientTrace{
		GotConn: func(info httptrace.GotConnInfo) {
			if addr := info.Conn.RemoteAddr(); addr != nil {
				peer = addr.String()
			}
		},
	}
	ctx = httptrace.WithClientTrace(ctx, trace)

	req, err := http.NewRequestWithContext(ctx, method, "http://"+host+"/", nil)
	if err != nil {
		return domain.ProbeResult{}, err
	}
	req.Header.Set("User-Agent", ch.userAgent)

	resp, err := ch.client.Do(req)
	if err != nil {
		return domain.ProbeResult{}, err
	}
	resp.Body.Close()

	ip := domain.NotAvailable
	if h, _, splitErr := net.SplitHostPort(peer); splitErr == nil && h != "" {
		ip = h
	}

	return domain.ProbeResult{
		IP:         ip,
		StatusCode: resp.StatusCode,
		StatusText: StatusText(resp.StatusCode),
	}, nil
}

// headRejected reports status codes some origins answer to bare HEAD probes
// regardless of what GET would return.
func headRejected(code int) bool {
	switch code {
	case http.StatusMethodNotAllowed, http.StatusBadRequest, http.StatusForbidden:
		return true
	}
	return false
}

// StatusText returns the human label for a status code, "Unknown" when the
// code has no standard reason phrase.
func StatusText(code int) string {
	if t := http.StatusText(code); t != "" {
		return t
	}
	return "Unknown"
}
