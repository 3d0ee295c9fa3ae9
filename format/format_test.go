// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"bytes"
	"strings"
	"testing"

	micalc "github.com/ROCm/amd-matrix-instruction-calculator"
	"github.com/ROCm/amd-matrix-instruction-calculator/query"
)

func TestParseSink(t *testing.T) {
	cases := map[string]Sink{"": SinkASCII, "ascii": SinkASCII, "CSV": SinkCSV, "markdown": SinkMarkdown, "adoc": SinkAsciiDoc}
	for name, want := range cases {
		got, err := ParseSink(name)
		if err != nil {
			t.Fatalf("ParseSink(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseSink(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := ParseSink("pdf"); err == nil {
		t.Error("expected an error for an unrecognized sink")
	}
}

func TestDetailTableIncludesKeyFields(t *testing.T) {
	d, err := micalc.LookupInstruction(micalc.CDNA2, "V_MFMA_F32_4X4X1F32")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	tbl := DetailTable(d)
	var buf bytes.Buffer
	if err := Write(&buf, SinkCSV, tbl); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "512") {
		t.Errorf("csv output missing FLOPs value: %s", out)
	}
}

func TestLayoutTableTransposeSwapsAxes(t *testing.T) {
	a := query.Args{Arch: micalc.CDNA2, Instruction: "V_MFMA_F32_4X4X1F32", Matrix: micalc.MatrixA, HasMatrix: true}
	res, err := query.RegisterLayout(a)
	if err != nil {
		t.Fatalf("RegisterLayout: %v", err)
	}
	t1 := LayoutTable(res, 64, false)
	t2 := LayoutTable(res, 64, true)
	if len(t1.Header) != len(t2.Rows)+1 {
		t.Errorf("transposed row count + 1 = %d, want original header length %d", len(t2.Rows)+1, len(t1.Header))
	}
}

func TestWriteEveryoneSink(t *testing.T) {
	tbl := Table{Header: []string{"A", "B"}, Rows: [][]string{{"1", "2"}}}
	for _, sink := range []Sink{SinkASCII, SinkCSV, SinkMarkdown, SinkAsciiDoc} {
		var buf bytes.Buffer
		if err := Write(&buf, sink, tbl); err != nil {
			t.Fatalf("Write(sink=%d): %v", sink, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Write(sink=%d) produced no output", sink)
		}
	}
}
