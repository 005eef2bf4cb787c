package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/skamsie/Domain-Status-Checker/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2015, time.March, 21, 12, 0, 0, 0, time.UTC)
}

func writeTestRecords(t *testing.T, h *HTML, meta domain.RunMeta) {
	t.Helper()

	if err := h.Begin(meta); err != nil {
		t.Fatal(err)
	}

	records := []domain.Record{
		{
			Seq: 1, Line: 2, Hostname: "example.com",
			IP: "93.184.216.34", StatusCode: 200, StatusText: "OK",
			Registrar: "MarkMonitor Inc.", ReferralURL: "http://www.markmonitor.com",
		},
		{
			Seq: 2, Line: 4, Hostname: "http://example.com/bad/path",
			IP: domain.NotAvailable, StatusText: "Invalid domain format",
			Registrar: domain.NotAvailable, ReferralURL: domain.NotAvailable,
		},
	}
	for _, rec := range records {
		if err := h.Write(rec); err != nil {
			t.Fatal(err)
		}
	}
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestHTML_WritesTableWithRegistrarColumn(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "generated_results")
	h := NewHTML(dir, WithNow(fixedNow))

	writeTestRecords(t, h, domain.RunMeta{
		Source:   "domains",
		Range:    domain.InputRange{Start: 2, End: 10},
		Enriched: true,
	})

	want := filepath.Join(dir, "domains_STATUS_2-10.html")
	if h.Path() != want {
		t.Fatalf("Path() = %q, want %q", h.Path(), want)
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}

	headers := doc.Find("table#myTable thead th")
	if headers.Length() != 5 {
		t.Fatalf("expected 5 header cells, got=%d", headers.Length())
	}
	if got := headers.Last().Text(); got != "Registrar" {
		t.Fatalf("expected Registrar header, got=%q", got)
	}

	rows := doc.Find("table#myTable tbody tr")
	if rows.Length() != 2 {
		t.Fatalf("expected 2 rows, got=%d", rows.Length())
	}

	first := rows.First().Find("td")
	if got := first.Eq(0).Text(); got != "1" {
		t.Fatalf("expected Nr. 1, got=%q", got)
	}
	link := first.Eq(1).Find("a")
	if href, _ := link.Attr("href"); href != "http://example.com" {
		t.Fatalf("expected link to http://example.com, got=%q", href)
	}
	if got := first.Eq(2).Text(); got != "93.184.216.34" {
		t.Fatalf("expected ip cell, got=%q", got)
	}
	if got := first.Eq(3).Text(); got != "200 -- OK" {
		t.Fatalf("expected status cell, got=%q", got)
	}
	if got := first.Eq(4).Text(); !strings.Contains(got, "MarkMonitor Inc.") {
		t.Fatalf("expected registrar cell, got=%q", got)
	}

	second := rows.Eq(1).Find("td")
	if got := second.Eq(3).Text(); got != "N/A -- Invalid domain format" {
		t.Fatalf("expected failure status cell, got=%q", got)
	}
}

func TestHTML_OmitsRegistrarColumnWhenDisabled(t *testing.T) {
	dir := t.TempDir()
	h := NewHTML(dir, WithNow(fixedNow))

	writeTestRecords(t, h, domain.RunMeta{
		Source: "domains",
		Range:  domain.InputRange{Start: 1, End: 4},
	})

	b, err := os.ReadFile(h.Path())
	if err != nil {
		t.Fatal(err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}

	if n := doc.Find("table#myTable thead th").Length(); n != 4 {
		t.Fatalf("expected 4 header cells, got=%d", n)
	}
	if strings.Contains(string(b), ">Registrar<") {
		t.Fatal("Registrar column must be absent when enrichment is disabled")
	}
}

func TestHTML_ProgressLines(t *testing.T) {
	var progress bytes.Buffer
	h := NewHTML(t.TempDir(), WithNow(fixedNow), WithProgress(&progress))

	writeTestRecords(t, h, domain.RunMeta{
		Source: "domains",
		Range:  domain.InputRange{Start: 1, End: 4},
	})

	lines := strings.Split(strings.TrimSpace(progress.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 progress lines, got=%d", len(lines))
	}
	if lines[0] != "** example.com ** 200 -- OK ** line 2" {
		t.Fatalf("unexpected progress line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "line 4") {
		t.Fatalf("expected source line in progress output: %q", lines[1])
	}
}

func TestHTML_CreatesResultsDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	h := NewHTML(dir, WithNow(fixedNow))

	if err := h.Begin(domain.RunMeta{Source: "x", Range: domain.FullRange()}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("results dir not created: %v", err)
	}
}
