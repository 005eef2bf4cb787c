package domain

import (
	"fmt"
	"strconv"
	"time"
)

// NotAvailable is the sentinel recorded for fields that could not be
// determined.
const NotAvailable = "N/A"

// Entry is one raw input token together with its 1-indexed source line.
type Entry struct {
	Line int
	Raw  string
}

// ProbeResult is what the status resolver observed for one hostname.
type ProbeResult struct {
	IP         string
	StatusCode int // 0 when no HTTP status was obtained
	StatusText string
}

// RegistrarInfo is the optional WHOIS enrichment for one hostname.
// Each field is independently NotAvailable when absent.
type RegistrarInfo struct {
	Name        string
	ReferralURL string
}

// Record is the terminal result for one input entry. Every processed entry
// produces exactly one record, failures included; it is never mutated after
// the driver assembles it.
type Record struct {
	Seq      int
	Line     int
	Hostname string

	IP         string
	StatusCode int // 0 when no HTTP status was obtained
	StatusText string

	Registrar   string
	ReferralURL string
}

// Resolved reports whether an HTTP status was obtained at all.
func (r Record) Resolved() bool { return r.StatusCode != 0 }

// StatusString renders the status cell, e.g. "200 -- OK" or "N/A -- Timeout".
func (r Record) StatusString() string {
	code := NotAvailable
	if r.StatusCode != 0 {
		code = strconv.Itoa(r.StatusCode)
	}
	return fmt.Sprintf("%s -- %s", code, r.StatusText)
}

// InputRange selects 1-indexed, inclusive line bounds of an input source.
// End == 0 means unbounded.
type InputRange struct {
	Start int
	End   int
}

// FullRange selects every line of a source.
func FullRange() InputRange { return InputRange{Start: 1} }

func (ir InputRange) Bounded() bool { return ir.End > 0 }

func (ir InputRange) Contains(line int) bool {
	if line < ir.Start {
		return false
	}
	return !ir.Bounded() || line <= ir.End
}

func (ir InputRange) Validate() error {
	if ir.Start < 1 {
		return fmt.Errorf("%w: start=%d (must be >= 1)", ErrInvalidRange, ir.Start)
	}
	if ir.Bounded() && ir.End < ir.Start {
		return fmt.Errorf("%w: start=%d end=%d", ErrInvalidRange, ir.Start, ir.End)
	}
	return nil
}

// RunMeta describes a run before any record is produced; sinks receive it
// once, before the first Write.
type RunMeta struct {
	Source   string
	Range    InputRange
	Enriched bool
}

// Report is the driver's owned output for one run.
type Report struct {
	Source    string
	Range     InputRange
	Enriched  bool
	StartedAt time.Time
	EndedAt   time.Time
	Records   []Record
}
