package usecase

import (
	"context"
	"time"

	"github.com/skamsie/Domain-Status-Checker/internal/domain"
	"github.com/skamsie/Domain-Status-Checker/internal/infra/logger"
	"github.com/skamsie/Domain-Status-Checker/internal/ports"
)

// CheckDomains drives each input entry through normalize → status probe →
// optional registrar lookup → sink, strictly in input order.
type CheckDomains struct {
	resolver  ports.StatusResolver
	registrar ports.RegistrarLookup // nil disables enrichment regardless of the flag
	sink      ports.ResultSink
}

func NewCheckDomains(resolver ports.StatusResolver, registrar ports.RegistrarLookup, sink ports.ResultSink) *CheckDomains {
	return &CheckDomains{
		resolver:  resolver,
		registrar: registrar,
		sink:      sink,
	}
}

// Execute processes every selected entry independently: one entry's failure
// becomes record fields, never an aborted run. The returned error only
// reflects source or sink trouble.
func (uc *CheckDomains) Execute(ctx context.Context, source ports.DomainSource, enrich bool) (domain.Report, error) {
	entries, rng, err := source.Entries()
	if err != nil {
		return domain.Report{}, err
	}

	meta := domain.RunMeta{
		Source:   source.Name(),
		Range:    rng,
		Enriched: enrich && uc.registrar != nil,
	}

	report := domain.Report{
		Source:    meta.Source,
		Range:     meta.Range,
		Enriched:  meta.Enriched,
		StartedAt: time.Now(),
		Records:   make([]domain.Record, 0, len(entries)),
	}

	if err := uc.sink.Begin(meta); err != nil {
		return report, err
	}

	for i, entry := range entries {
		rec := uc.checkOne(ctx, i+1, entry, meta.Enriched)
		report.Records = append(report.Records, rec)
		if err := uc.sink.Write(rec); err != nil {
			return report, err
		}
	}

	report.EndedAt = time.Now()
	if err := uc.sink.Close(); err != nil {
		return report, err
	}

	logger.L().Info("check.completed",
		"source", report.Source,
		"records", len(report.Records),
		"enriched", report.Enriched,
	)
	return report, nil
}

func (uc *CheckDomains) checkOne(ctx context.Context, seq int, entry domain.Entry, enrich bool) domain.Record {
	rec := domain.Record{
		Seq:         seq,
		Line:        entry.Line,
		Hostname:    entry.Raw,
		IP:          domain.NotAvailable,
		Registrar:   domain.NotAvailable,
		ReferralURL: domain.NotAvailable,
	}

	host, err := domain.NormalizeHost(entry.Raw)
	if err != nil {
		// The raw token stays in the record so the report shows what was rejected.
		rec.StatusText = "Invalid domain format"
		return rec
	}
	rec.Hostname = host

	probe := uc.resolver.Resolve(ctx, host)
	rec.IP = probe.IP
	rec.StatusCode = probe.StatusCode
	rec.StatusText = probe.StatusText

	if enrich {
		info := uc.registrar.Lookup(ctx, host)
		rec.Registrar = info.Name
		rec.ReferralURL = info.ReferralURL
	}

	return rec
}
