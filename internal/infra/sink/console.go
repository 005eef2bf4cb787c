package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/skamsie/Domain-Status-Checker/internal/domain"
	"github.com/skamsie/Domain-Status-Checker/internal/ports"
)

// Console prints one line per record as soon as it is available.
type Console struct {
	w        io.Writer
	colorize bool
	enriched bool
}

type ConsoleOption func(*Console)

// WithWriter redirects the output; coloring is disabled because the writer
// is no longer known to be a terminal.
func WithWriter(w io.Writer) ConsoleOption {
	return func(c *Console) {
		c.w = w
		c.colorize = false
	}
}

// NewConsole writes to stdout; status is colored when stdout is a terminal.
func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{
		w:        os.Stdout,
		colorize: isatty.IsTerminal(os.Stdout.Fd()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.ResultSink = (*Console)(nil)

func (c *Console) Begin(meta domain.RunMeta) error {
	c.enriched = meta.Enriched
	return nil
}

func (c *Console) Write(rec domain.Record) error {
	status := rec.StatusString()
	if c.colorize {
		if rec.Resolved() && rec.StatusCode < 400 {
			status = color.GreenString(status)
		} else {
			status = color.RedString(status)
		}
	}

	if c.enriched {
		_, err := fmt.Fprintf(c.w, "** %s ** %s ** %s ** [%s, %s]\n",
			rec.Hostname, rec.IP, status, rec.Registrar, rec.ReferralURL)
		return err
	}

	_, err := fmt.Fprintf(c.w, "** %s ** %s ** %s\n", rec.Hostname, rec.IP, status)
	return err
}

func (c *Console) Close() error { return nil }
