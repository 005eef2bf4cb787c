package domain

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidDomain = errors.New("invalid domain format")
	ErrInvalidRange  = errors.New("invalid input range")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindInvalidInput ErrorKind = "invalid_input"
	KindExecution    ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// FailureKind classifies why a status probe produced no HTTP status.
type FailureKind string

const (
	FailureUnknown FailureKind = "unknown"
	FailureDNS     FailureKind = "dns"
	FailureTimeout FailureKind = "timeout"
	FailureConn    FailureKind = "connection"
)

// ClassifyFailure maps a transport error onto a FailureKind.
func ClassifyFailure(err error) FailureKind {
	if err == nil {
		return FailureUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return FailureTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return FailureDNS
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return FailureConn
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return FailureConn
	}

	return FailureUnknown
}

// FailureText is the short human label recorded for a failed probe.
func FailureText(err error) string {
	switch ClassifyFailure(err) {
	case FailureDNS:
		return "Name resolution failed"
	case FailureTimeout:
		return "Timeout"
	case FailureConn:
		if errors.Is(err, syscall.ECONNREFUSED) {
			return "Connection refused"
		}
		return "Connection failed"
	default:
		if err == nil {
			return "Unknown error"
		}
		// Unwrap the client's url.Error prefix; the URL is already in the record.
		var uerr *url.Error
		if errors.As(err, &uerr) && uerr.Err != nil {
			return uerr.Err.Error()
		}
		return err.Error()
	}
}
