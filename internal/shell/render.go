package shell

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bft-labs/petdb/internal/codec"
	"github.com/bft-labs/petdb/internal/domain"
)

// Output formats accepted by Render.
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// Render writes entries in the given format. Unknown formats fall back to table.
func Render(w io.Writer, entries []domain.Entry, format string) {
	switch format {
	case FormatPlain:
		RenderPlain(w, entries)
	default:
		RenderTable(w, entries)
	}
}

// RenderTable writes entries as an ID/NAME/AGE table followed by a row count.
func RenderTable(w io.Writer, entries []domain.Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleDefault)
	t.AppendHeader(table.Row{"ID", "NAME", "AGE"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Position, e.Name, e.Age})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "%d rows in set.\n", len(entries))
}

// RenderPlain writes entries in the data file format, one per line.
func RenderPlain(w io.Writer, entries []domain.Entry) {
	for _, e := range entries {
		_, _ = fmt.Fprintln(w, codec.EncodeLine(e.Name, e.Age))
	}
}
