// Package format renders console tables for CLI output.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // box-drawn terminal table
	Markdown             // GitHub-flavoured Markdown
)

// Table is a thin builder over go-pretty.
type Table struct {
	w    table.Writer
	mode Mode
}

// NewTable returns an empty table with an optional title.
func NewTable(m Mode, title string) *Table {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	if title != "" {
		w.SetTitle(title)
	}
	return &Table{w: w, mode: m}
}

func (t *Table) Header(cols ...any) { t.w.AppendHeader(table.Row(cols)) }
func (t *Table) Row(vals ...any)    { t.w.AppendRow(table.Row(vals)) }
func (t *Table) Footer(vals ...any) { t.w.AppendFooter(table.Row(vals)) }

// AlignRight right-aligns the given 1-based columns.
func (t *Table) AlignRight(cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, n := range cols {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight, AlignFooter: text.AlignRight}
	}
	t.w.SetColumnConfigs(cfgs)
}

func (t *Table) String() string {
	if t.mode == Markdown {
		return t.w.RenderMarkdown()
	}
	return t.w.Render()
}
