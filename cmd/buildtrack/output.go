// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// printer writes status lines, tables and JSON to one writer.
type printer struct {
	w       io.Writer
	noColor bool
}

func (p *printer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.noColor {
		c.DisableColor()
	}

	return c
}

func (p *printer) Success(format string, args ...any) {
	p.paint(color.FgGreen, color.Bold).Fprintf(p.w, "✅ "+format+"\n", args...)
}

func (p *printer) Error(format string, args ...any) {
	p.paint(color.FgRed, color.Bold).Fprintf(p.w, "❌ "+format+"\n", args...)
}

func (p *printer) Warning(format string, args ...any) {
	p.paint(color.FgYellow).Fprintf(p.w, "⚠️  "+format+"\n", args...)
}

func (p *printer) Header(format string, args ...any) {
	p.paint(color.FgCyan, color.Bold).Fprintf(p.w, format+"\n", args...)
}

func (p *printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// table renders left-aligned columns sized to their widest cell.
type table struct {
	headers []string
	rows    [][]string
	widths  []int
}

func newTable(headers ...string) *table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}

	return &table{headers: headers, widths: widths}
}

func (t *table) AddRow(row ...string) {
	for i, cell := range row {
		if n := utf8.RuneCountInString(cell); i < len(t.widths) && n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

func (t *table) Render(p *printer) {
	head := p.paint(color.FgCyan, color.Bold)
	for i, h := range t.headers {
		head.Fprint(p.w, pad(h, t.widths[i]))
	}
	fmt.Fprintln(p.w)

	for i := range t.headers {
		fmt.Fprint(p.w, strings.Repeat("-", t.widths[i])+"  ")
	}
	fmt.Fprintln(p.w)

	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(t.widths) {
				fmt.Fprint(p.w, pad(cell, t.widths[i]))
			}
		}
		fmt.Fprintln(p.w)
	}
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-utf8.RuneCountInString(s)) + "  "
}
