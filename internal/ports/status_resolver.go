package ports

import (
	"context"

	"github.com/skamsie/Domain-Status-Checker/internal/domain"
)

// StatusResolver probes one hostname over HTTP and reports what it observed.
// Probe failures are recorded in the result, never returned.
type StatusResolver interface {
	Resolve(ctx context.Context, host string) domain.ProbeResult
}
