package ports

import "github.com/skamsie/Domain-Status-Checker/internal/domain"

// ResultSink consumes records in sequence order. Begin is called once before
// the first Write; Close finishes the output — for buffered sinks this is
// where the artifact is written.
type ResultSink interface {
	Begin(meta domain.RunMeta) error
	Write(rec domain.Record) error
	Close() error
}
