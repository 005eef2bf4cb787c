package ports

import (
	"context"

	"github.com/skamsie/Domain-Status-Checker/internal/domain"
)

// RegistrarLookup enriches a hostname with registrar data via WHOIS.
// Lookup failures degrade to NotAvailable fields, never to an error.
type RegistrarLookup interface {
	Lookup(ctx context.Context, host string) domain.RegistrarInfo
}
