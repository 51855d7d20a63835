package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
)

// Output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Renderer writes command results in the configured output format.
type Renderer struct {
	w      io.Writer
	format string
}

// NewRenderer creates a renderer. The "auto" (or empty) format resolves to
// text on a terminal and markdown otherwise.
func NewRenderer(w io.Writer, format string) *Renderer {
	if format == "" || format == "auto" {
		format = FormatMarkdown
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
			format = FormatText
		}
	}
	return &Renderer{w: w, format: format}
}

// Format returns the resolved output format.
func (r *Renderer) Format() string {
	return r.format
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Statement prints generated SQL. JSON output wraps it as {"sql": ...}.
func (r *Renderer) Statement(sql string) error {
	switch r.format {
	case FormatJSON:
		return r.JSON(map[string]string{"sql": sql})
	case FormatMarkdown:
		_, err := fmt.Fprintf(r.w, "```sql\n%s\n```\n", sql)
		return err
	default:
		_, err := fmt.Fprintln(r.w, sql)
		return err
	}
}

// Table renders rows under header. JSON output is a list of objects keyed by
// header.
func (r *Renderer) Table(header []string, rows [][]any) error {
	if r.format == FormatJSON {
		out := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			m := make(map[string]any, len(header))
			for i, h := range header {
				if i < len(row) {
					m[h] = row[i]
				}
			}
			out = append(out, m)
		}
		return r.JSON(out)
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.w, "(0 rows)")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.w)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)
	for _, row := range rows {
		t.AppendRow(table.Row(row))
	}

	if r.format == FormatMarkdown {
		t.RenderMarkdown()
		return nil
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

// KeyValue renders ordered key/value pairs as a two-column table. JSON output
// marshals v instead, so callers can keep a typed payload.
func (r *Renderer) KeyValue(pairs [][2]string, v any) error {
	if r.format == FormatJSON {
		return r.JSON(v)
	}
	rows := make([][]any, len(pairs))
	for i, p := range pairs {
		rows[i] = []any{p[0], p[1]}
	}
	return r.Table([]string{"Property", "Value"}, rows)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
