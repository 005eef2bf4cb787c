package domainlist

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/skamsie/Domain-Status-Checker/internal/domain"
	"github.com/skamsie/Domain-Status-Checker/internal/ports"
)

// FileSource reads one domain-like token per line, keeping only non-empty
// lines whose 1-indexed file line falls inside the configured range.
type FileSource struct {
	path string
	rng  domain.InputRange
}

func NewFileSource(path string, rng domain.InputRange) *FileSource {
	return &FileSource{path: path, rng: rng}
}

var _ ports.DomainSource = (*FileSource)(nil)

func (s *FileSource) Name() string {
	base := filepath.Base(s.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (s *FileSource) Entries() ([]domain.Entry, domain.InputRange, error) {
	if err := s.rng.Validate(); err != nil {
		return nil, domain.InputRange{}, &domain.OpError{
			Op:   "domainlist.range",
			Kind: domain.KindInvalidInput,
			Err:  err,
		}
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, domain.InputRange{}, &domain.OpError{
			Op:   "domainlist.open",
			Kind: domain.KindNotFound,
			Path: s.path,
			Err:  err,
		}
	}
	defer f.Close()

	var entries []domain.Entry
	line := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line++
		if s.rng.Bounded() && line > s.rng.End {
			break
		}
		if !s.rng.Contains(line) {
			continue
		}
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		entries = append(entries, domain.Entry{Line: line, Raw: raw})
	}
	if err := sc.Err(); err != nil {
		return nil, domain.InputRange{}, &domain.OpError{
			Op:   "domainlist.read",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	eff := s.rng
	if !eff.Bounded() {
		eff.End = line
	}
	if eff.End < eff.Start {
		// Range starts past the end of the file: zero entries, not an error.
		eff.End = eff.Start
	}
	return entries, eff, nil
}

// LiteralSource serves domains given directly on the command line.
type LiteralSource struct {
	domains []string
}

func NewLiteralSource(domains []string) *LiteralSource {
	return &LiteralSource{domains: domains}
}

var _ ports.DomainSource = (*LiteralSource)(nil)

func (s *LiteralSource) Name() string { return "domains" }

func (s *LiteralSource) Entries() ([]domain.Entry, domain.InputRange, error) {
	entries := make([]domain.Entry, 0, len(s.domains))
	n := 0
	for _, d := range s.domains {
		raw := strings.TrimSpace(d)
		if raw == "" {
			continue
		}
		n++
		entries = append(entries, domain.Entry{Line: n, Raw: raw})
	}

	eff := domain.InputRange{Start: 1, End: n}
	if eff.End < 1 {
		eff.End = 1
	}
	return entries, eff, nil
}
