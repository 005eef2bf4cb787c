package ports

import "github.com/skamsie/Domain-Status-Checker/internal/domain"

// DomainSource yields the raw input entries selected for a run.
type DomainSource interface {
	// Entries returns the selected tokens and the effective input range they
	// were taken from (unbounded ranges come back resolved).
	Entries() ([]domain.Entry, domain.InputRange, error)

	// Name labels artifacts produced from this source (file base name, etc).
	Name() string
}
