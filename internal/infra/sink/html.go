package sink

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/skamsie/Domain-Status-Checker/internal/domain"
	"github.com/skamsie/Domain-Status-Checker/internal/ports"
)

// HTML accumulates records and renders a sortable table on Close to
// <dir>/<source>_STATUS_<start>-<end>.html.
type HTML struct {
	dir      string
	progress io.Writer
	now      func() time.Time

	meta    domain.RunMeta
	records []domain.Record
	path    string
}

type HTMLOption func(*HTML)

// WithProgress echoes one line per record while the table is being built.
func WithProgress(w io.Writer) HTMLOption {
	return func(h *HTML) { h.progress = w }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) HTMLOption {
	return func(h *HTML) { h.now = now }
}

func NewHTML(dir string, opts ...HTMLOption) *HTML {
	h := &HTML{
		dir: dir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var _ ports.ResultSink = (*HTML)(nil)

// Begin records the run metadata and makes sure the results directory exists.
func (h *HTML) Begin(meta domain.RunMeta) error {
	h.meta = meta
	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "sink.mkdir",
			Kind: domain.KindExecution,
			Path: h.dir,
			Err:  err,
		}
	}
	return nil
}

func (h *HTML) Write(rec domain.Record) error {
	h.records = append(h.records, rec)
	if h.progress != nil {
		fmt.Fprintf(h.progress, "** %s ** %s ** line %d\n", rec.Hostname, rec.StatusString(), rec.Line)
	}
	return nil
}

func (h *HTML) Close() error {
	name := fmt.Sprintf("%s_STATUS_%d-%d.html", h.meta.Source, h.startLine(), h.endLine())
	path := filepath.Join(h.dir, name)

	data := pageData{
		GeneratedAt:   h.now().Format(time.ANSIC),
		Tool:          "domainstatus",
		ShowRegistrar: h.meta.Enriched,
		Records:       h.records,
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return &domain.OpError{
			Op:   "sink.render",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return &domain.OpError{
			Op:   "sink.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "sink.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	h.path = path
	return nil
}

// Path reports where the table was written; empty before Close.
func (h *HTML) Path() string { return h.path }

func (h *HTML) startLine() int {
	if h.meta.Range.Start > 0 {
		return h.meta.Range.Start
	}
	return 1
}

func (h *HTML) endLine() int {
	if h.meta.Range.Bounded() {
		return h.meta.Range.End
	}
	// Sources resolve unbounded ranges; this covers sinks fed directly.
	if n := len(h.records); n > 0 {
		return h.records[n-1].Line
	}
	return h.startLine()
}

type pageData struct {
	GeneratedAt   string
	Tool          string
	ShowRegistrar bool
	Records       []domain.Record
}

var pageTmpl = template.Must(template.New("status").Parse(pageHTML))

const pageHTML = `<!doctype html>
<html>
<head>
  <title>Domain Status</title>
  <meta charset="utf-8" />
  <meta http-equiv="Content-type" content="text/html; charset=utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <script type="text/javascript" src="https://ajax.googleapis.com/ajax/libs/jquery/1.11.2/jquery.min.js"></script>
  <script type="text/javascript" src="../scripts/jquery.tablesorter.js"></script>
  <script type="text/javascript" src="../scripts/sortit.js"></script>
  <style>
    body {
      font-family: Verdana, Geneva, sans-serif;
    }
    th, td {
      padding: 6px;
      background-color: #F2F2F2;
      max-width: 500px;
      overflow: hidden;
      border-radius: 3%;
    }
    th:hover {
      background-color: #40E0D0;
    }
    th {
      background-color: #7FFFD4;
    }
  </style>
</head>
<body>
<h3>Get Domain Status</h3>
<p>This document was generated automatically on <i>{{.GeneratedAt}}</i> by <i>{{.Tool}}</i></p>
<p>Click on headers to sort</p>

<table id="myTable">
<thead>
  <tr>
    <th>Nr.</th>
    <th>Domain Name</th>
    <th>IP Address</th>
    <th>Status</th>
{{- if .ShowRegistrar}}
    <th>Registrar</th>
{{- end}}
  </tr>
</thead>
<tbody>
{{- range .Records}}
  <tr>
    <td>{{.Seq}}</td>
    <td><a href="http://{{.Hostname}}">{{.Hostname}}</a></td>
    <td>{{.IP}}</td>
    <td>{{.StatusString}}</td>
{{- if $.ShowRegistrar}}
    <td>{{.Registrar}} &bull; {{.ReferralURL}}</td>
{{- end}}
  </tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`
