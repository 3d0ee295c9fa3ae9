// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format renders query-facade results to a sink: plain ASCII
// tables, CSV, Markdown tables, or AsciiDoc tables, with optional
// row/column transpose.
package format

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	micalc "github.com/ROCm/amd-matrix-instruction-calculator"
	"github.com/ROCm/amd-matrix-instruction-calculator/query"
)

// Sink is the closed set of output renderers spec section 6 names.
type Sink byte

const (
	SinkASCII Sink = iota
	SinkCSV
	SinkMarkdown
	SinkAsciiDoc
)

// ParseSink maps a sink name, as given to the interactive shell's
// format command, to a Sink.
func ParseSink(name string) (Sink, error) {
	switch strings.ToLower(name) {
	case "", "ascii", "table":
		return SinkASCII, nil
	case "csv":
		return SinkCSV, nil
	case "markdown", "md":
		return SinkMarkdown, nil
	case "asciidoc", "adoc":
		return SinkAsciiDoc, nil
	default:
		return 0, micalc.NewBadUsage("format", "unrecognized output format %q", name)
	}
}

// Table is a generic row/column grid every sink can render. Header has
// len(Header) columns; each Rows entry must match that width.
type Table struct {
	Header []string
	Rows   [][]string
}

// DetailTable renders a Detail result as a two-column (field, value)
// table.
func DetailTable(d *micalc.Descriptor) Table {
	row := func(k, v string) []string { return []string{k, v} }
	t := Table{Header: []string{"Field", "Value"}}
	t.Rows = append(t.Rows,
		row("Mnemonic", d.Mnemonic),
		row("Encoding", d.Encoding.String()),
		row("VOP3P opcode", hexOrNA(d.OpcodeVOP3P)),
		row("VOP3P-MAI opcode", hexOrNA(d.OpcodeVOP3PMAI)),
		row("M,N,K,Blocks", fmt.Sprintf("%d,%d,%d,%d", d.Dimensions.M, d.Dimensions.N, d.Dimensions.K, d.Dimensions.Blocks)),
		row("FLOPs", fmt.Sprintf("%d", d.Execution.FLOPs)),
		row("Cycles", fmt.Sprintf("%d", d.Execution.Cycles)),
		row("GPRs (A,B,C,D)", fmt.Sprintf("%d,%d,%d,%d", d.GPRs.A, d.GPRs.B, d.GPRs.C, d.GPRs.D)),
		row("Alignment (bytes)", fmt.Sprintf("%d", d.AlignBytes)),
	)
	if d.IsSparse {
		t.Rows = append(t.Rows, row("K GPRs", fmt.Sprintf("%d", d.GPRs.K)))
	}
	return t
}

func hexOrNA(v int) string {
	if v < 0 {
		return "n/a"
	}
	return fmt.Sprintf("0x%x", v)
}

// LayoutTable renders a RegisterLayoutResult as a GPR x Lane grid, one
// row per GPR, one column per lane, each cell listing the coordinates
// stored there.
func LayoutTable(r *query.RegisterLayoutResult, waveSize int, transpose bool) Table {
	maxGPR := -1
	for _, c := range r.Cells {
		if c.GPR > maxGPR {
			maxGPR = c.GPR
		}
	}
	grid := make([][]string, maxGPR+1)
	for i := range grid {
		grid[i] = make([]string, waveSize)
	}
	for _, c := range r.Cells {
		var parts []string
		for _, e := range c.Entries {
			parts = append(parts, e.Coord.String())
		}
		grid[c.GPR][c.Lane] = strings.Join(parts, "\n")
	}

	t := Table{Header: append([]string{"GPR\\Lane"}, laneHeaders(waveSize)...)}
	for gpr, row := range grid {
		t.Rows = append(t.Rows, append([]string{fmt.Sprintf("%d", gpr)}, row...))
	}
	if transpose {
		t = t.Transposed()
	}
	return t
}

func laneHeaders(n int) []string {
	h := make([]string, n)
	for i := range h {
		h[i] = fmt.Sprintf("%d", i)
	}
	return h
}

// Transposed swaps rows and columns, keeping the header as the first
// column of the result.
func (t Table) Transposed() Table {
	out := Table{Header: append([]string{t.Header[0]}, rowLabels(t.Rows)...)}
	for col := 1; col < len(t.Header); col++ {
		row := []string{t.Header[col]}
		for _, r := range t.Rows {
			row = append(row, r[col])
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func rowLabels(rows [][]string) []string {
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r[0]
	}
	return labels
}

// Write renders t to w using the chosen sink.
func Write(w io.Writer, sink Sink, t Table) error {
	switch sink {
	case SinkCSV:
		return writeCSV(w, t)
	case SinkMarkdown:
		return writeTable(w, t, true)
	case SinkAsciiDoc:
		return writeAsciiDoc(w, t)
	default:
		return writeTable(w, t, false)
	}
}

func writeCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if err := cw.Write(r); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeTable renders ASCII or Markdown via tablewriter; markdown drops
// the top/bottom rules and uses a pipe center separator, giving the
// GitHub-flavored Markdown table look tablewriter has no dedicated
// format constant for.
func writeTable(w io.Writer, t Table, markdown bool) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.Header)
	tw.SetAutoWrapText(false)
	if markdown {
		tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		tw.SetCenterSeparator("|")
	}
	tw.AppendBulk(t.Rows)
	tw.Render()
	return nil
}

// writeAsciiDoc renders an AsciiDoc [cols="..."] table. tablewriter has
// no AsciiDoc backend, and the AsciiDoc table grammar (leading `|===`
// fence, one `|cell` token per field) has no ecosystem encoder in the
// retrieval pack, so this is hand-rolled directly against the format's
// published syntax.
func writeAsciiDoc(w io.Writer, t Table) error {
	fmt.Fprintf(w, "[cols=\"%s\"]\n|===\n", strings.TrimSuffix(strings.Repeat("1,", len(t.Header)), ","))
	for _, h := range t.Header {
		fmt.Fprintf(w, "|%s ", h)
	}
	fmt.Fprintln(w)
	for _, r := range t.Rows {
		fmt.Fprintln(w)
		for _, cell := range r {
			fmt.Fprintf(w, "|%s\n", strings.ReplaceAll(cell, "\n", " +\n"))
		}
	}
	fmt.Fprintln(w, "|===")
	return nil
}
