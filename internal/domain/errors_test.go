package domain

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"
	"testing"
)

func TestClassifyFailure_Timeout_ContextDeadline(t *testing.T) {
	if got := ClassifyFailure(context.DeadlineExceeded); got != FailureTimeout {
		t.Fatalf("expected timeout, got=%s", got)
	}
}

func TestClassifyFailure_DNS(t *testing.T) {
	err := &net.DNSError{Err: "no such host", Name: "example.invalid"}
	if got := ClassifyFailure(err); got != FailureDNS {
		t.Fatalf("expected dns, got=%s", got)
	}
	if got := FailureText(err); got != "Name resolution failed" {
		t.Fatalf("expected 'Name resolution failed', got=%q", got)
	}
}

func TestClassifyFailure_ConnRefused(t *testing.T) {
	err := &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}
	if got := ClassifyFailure(err); got != FailureConn {
		t.Fatalf("expected connection, got=%s", got)
	}
	if got := FailureText(err); got != "Connection refused" {
		t.Fatalf("expected 'Connection refused', got=%q", got)
	}
}

func TestClassifyFailure_ConnReset(t *testing.T) {
	err := &net.OpError{Op: "read", Net: "tcp", Err: syscall.ECONNRESET}
	if got := ClassifyFailure(err); got != FailureConn {
		t.Fatalf("expected connection, got=%s", got)
	}
	if got := FailureText(err); got != "Connection failed" {
		t.Fatalf("expected 'Connection failed', got=%q", got)
	}
}

func TestClassifyFailure_URLWraps(t *testing.T) {
	inner := &net.DNSError{Err: "no such host", Name: "x.invalid"}
	err := &url.Error{Op: "Head", URL: "http://x.invalid/", Err: inner}

	if got := ClassifyFailure(err); got != FailureDNS {
		t.Fatalf("expected dns, got=%s", got)
	}
}

func TestFailureText_UnknownUnwrapsURLError(t *testing.T) {
	err := &url.Error{Op: "Head", URL: "http://example.com/", Err: errors.New("boom")}
	if got := FailureText(err); got != "boom" {
		t.Fatalf("expected 'boom', got=%q", got)
	}
}

func TestOpError_MessageAndKind(t *testing.T) {
	inner := errors.New("no such file")
	err := &OpError{Op: "domainlist.open", Kind: KindNotFound, Path: "domains.txt", Err: inner}

	if !IsKind(err, KindNotFound) {
		t.Fatal("expected IsKind not_found")
	}
	if IsKind(err, KindExecution) {
		t.Fatal("unexpected IsKind execution")
	}
	if !errors.Is(err, inner) {
		t.Fatal("expected wrapped error to match")
	}
	msg := err.Error()
	if !strings.Contains(msg, "domains.txt") || !strings.Contains(msg, "not_found") {
		t.Fatalf("unexpected message: %q", msg)
	}
}
