// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mficalc is the matrix-instruction calculator's executable:
// a batch flag surface for scripted queries plus, with no architecture,
// instruction or query flag given, an interactive shell.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	micalc "github.com/ROCm/amd-matrix-instruction-calculator"
	"github.com/ROCm/amd-matrix-instruction-calculator/format"
	"github.com/ROCm/amd-matrix-instruction-calculator/query"
	"github.com/ROCm/amd-matrix-instruction-calculator/repl"
)

const version = "1.0.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	arch             string
	instruction      string
	listInstructions bool

	detail         bool
	getRegister    bool
	matrixEntry    bool
	registerLayout bool
	matrixLayout   bool

	aMatrix      bool
	bMatrix      bool
	cMatrix      bool
	dMatrix      bool
	compression  bool

	i, j, k, block int
	register, lane int

	cbsz, abid, blgp, opsel, neg, negHi int

	outputCalc bool

	csv       bool
	markdown  bool
	asciidoc  bool
	transpose bool

	showVersion bool
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("mficalc", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var f flags
	fs.StringVarP(&f.arch, "architecture", "a", "", "target architecture")
	fs.StringVarP(&f.instruction, "instruction", "i", "", "instruction mnemonic")
	fs.BoolVarP(&f.listInstructions, "list-instructions", "L", false, "list every instruction for the architecture")

	fs.BoolVarP(&f.detail, "detail-instruction", "d", false, "report an instruction's static metadata")
	fs.BoolVarP(&f.getRegister, "get-register", "g", false, "map a matrix coordinate to a register location")
	fs.BoolVarP(&f.matrixEntry, "matrix-entry", "m", false, "map a register/lane back to matrix coordinates")
	fs.BoolVarP(&f.registerLayout, "register-layout", "R", false, "print the full register layout of a matrix")
	fs.BoolVarP(&f.matrixLayout, "matrix-layout", "M", false, "print the full matrix layout of a matrix")

	fs.BoolVarP(&f.aMatrix, "A-matrix", "A", false, "select the A matrix")
	fs.BoolVarP(&f.bMatrix, "B-matrix", "B", false, "select the B matrix")
	fs.BoolVarP(&f.cMatrix, "C-matrix", "C", false, "select the C matrix")
	fs.BoolVarP(&f.dMatrix, "D-matrix", "D", false, "select the D matrix")
	fs.BoolVarP(&f.compression, "compression", "k", false, "select the sparse compression-index matrix")

	fs.IntVarP(&f.i, "I-coordinate", "I", 0, "I coordinate")
	fs.IntVarP(&f.j, "J-coordinate", "J", 0, "J coordinate")
	fs.IntVarP(&f.k, "K-coordinate", "K", 0, "K coordinate")
	fs.IntVarP(&f.block, "block", "b", 0, "block index")

	fs.IntVarP(&f.register, "register", "r", 0, "GPR offset")
	fs.IntVarP(&f.lane, "lane", "l", 0, "lane index")

	fs.IntVar(&f.cbsz, "cbsz", 0, "CBSZ modifier")
	fs.IntVar(&f.abid, "abid", 0, "ABID modifier")
	fs.IntVar(&f.blgp, "blgp", 0, "BLGP modifier")
	fs.IntVar(&f.opsel, "opsel", 0, "OPSEL modifier")
	fs.IntVar(&f.neg, "neg", 0, "NEG modifier")
	fs.IntVar(&f.negHi, "neg_hi", 0, "NEG_HI modifier")

	fs.BoolVarP(&f.outputCalc, "output-calculation", "o", false, "expand D's accumulation formula")

	fs.BoolVarP(&f.csv, "csv", "c", false, "render layout tables as CSV")
	fs.BoolVar(&f.markdown, "markdown", false, "render layout tables as Markdown")
	fs.BoolVar(&f.asciidoc, "asciidoc", false, "render layout tables as AsciiDoc")
	fs.BoolVar(&f.transpose, "transpose", false, "transpose layout tables")

	fs.BoolVarP(&f.showVersion, "version", "v", false, "print the version and exit")
	var showHelp bool
	fs.BoolVarP(&showHelp, "help", "h", false, "print usage and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		fmt.Fprintln(stdout, "Usage: mficalc -a <architecture> [-i <instruction>] <query> [options]")
		fs.PrintDefaults()
		return nil
	}
	if f.showVersion {
		fmt.Fprintf(stdout, "mficalc version %s\n", version)
		return nil
	}

	if f.arch == "" {
		if noQuerySelected(f) && f.instruction == "" {
			repl.New(os.Stdin, stdout, true).Run()
			return nil
		}
		return micalc.NewBadUsage("architecture", "--architecture/-a is required")
	}
	arch, err := micalc.Resolve(f.arch)
	if err != nil {
		return err
	}

	if f.listInstructions {
		for _, name := range query.ListInstructions(arch) {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if f.instruction == "" {
		return micalc.NewBadUsage("instruction", "--instruction/-i is required")
	}

	a, err := buildArgs(arch, f)
	if err != nil {
		return err
	}

	sink, err := resolveSink(f)
	if err != nil {
		return err
	}

	selected := 0
	for _, on := range []bool{f.detail, f.getRegister, f.matrixEntry, f.registerLayout, f.matrixLayout} {
		if on {
			selected++
		}
	}
	if selected > 1 {
		return micalc.NewBadUsage("query", "exactly one of -d/-g/-m/-R/-M is required")
	}

	switch {
	case f.detail:
		return runDetail(stdout, a)
	case f.getRegister:
		return runGetRegister(stdout, a)
	case f.matrixEntry:
		return runMatrixEntry(stdout, a)
	case f.registerLayout, f.matrixLayout:
		return runLayout(stdout, arch, a, sink, f.transpose)
	default:
		return micalc.NewBadUsage("query", "exactly one of -d/-g/-m/-R/-M is required")
	}
}

func noQuerySelected(f flags) bool {
	return !f.detail && !f.getRegister && !f.matrixEntry && !f.registerLayout && !f.matrixLayout && !f.listInstructions
}

func buildArgs(arch micalc.ArchitectureID, f flags) (query.Args, error) {
	a := query.Args{
		Arch:        arch,
		Instruction: f.instruction,
		I:           f.i, HasI: true,
		J: f.j, HasJ: true,
		K: f.k, HasK: true,
		Block: f.block, HasBlock: true,
		Register: f.register, HasReg: true,
		Lane:     f.lane, HasLane: true,
		Formula:  f.outputCalc,
		Mods: micalc.Modifiers{CBSZ: f.cbsz, ABID: f.abid, BLGP: f.blgp, OPSEL: f.opsel, NEG: f.neg, NEGHI: f.negHi},
	}

	count := 0
	if f.aMatrix {
		a.Matrix, a.HasMatrix = micalc.MatrixA, true
		count++
	}
	if f.bMatrix {
		a.Matrix, a.HasMatrix = micalc.MatrixB, true
		count++
	}
	if f.cMatrix {
		a.Matrix, a.HasMatrix = micalc.MatrixC, true
		count++
	}
	if f.dMatrix {
		a.Matrix, a.HasMatrix = micalc.MatrixD, true
		count++
	}
	if f.compression {
		a.Compression = true
		count++
	}
	if count > 1 {
		return query.Args{}, micalc.NewBadUsage("matrix", "only one of -A/-B/-C/-D/-k is allowed")
	}
	if f.outputCalc && a.Matrix != micalc.MatrixD {
		return query.Args{}, micalc.NewBadUsage("output-calculation", "only valid with --D-matrix/-D")
	}
	return a, nil
}

func resolveSink(f flags) (format.Sink, error) {
	count := 0
	sink := format.SinkASCII
	if f.csv {
		sink, count = format.SinkCSV, count+1
	}
	if f.markdown {
		sink, count = format.SinkMarkdown, count+1
	}
	if f.asciidoc {
		sink, count = format.SinkAsciiDoc, count+1
	}
	if count > 1 {
		return 0, micalc.NewBadUsage("format", "only one of --csv/--markdown/--asciidoc is allowed")
	}
	return sink, nil
}

func runDetail(w io.Writer, a query.Args) error {
	res, err := query.Detail(a)
	if err != nil {
		return err
	}
	return format.Write(w, format.SinkASCII, format.DetailTable(res.Descriptor))
}

func runGetRegister(w io.Writer, a query.Args) error {
	res, err := query.GetRegister(a)
	if err != nil {
		return err
	}
	if res.Formula != "" {
		fmt.Fprintf(w, "%s = %s\n", res.Coord.String(), res.Formula)
	} else {
		fmt.Fprintf(w, "%s = %s\n", res.Coord.String(), res.Location.String())
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn.Msg)
	}
	return nil
}

func runMatrixEntry(w io.Writer, a query.Args) error {
	res, err := query.MatrixEntry(a)
	if err != nil {
		return err
	}
	for _, e := range res.Entries {
		fmt.Fprintln(w, e.Coord.String())
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn.Msg)
	}
	return nil
}

func runLayout(w io.Writer, arch micalc.ArchitectureID, a query.Args, sink format.Sink, transpose bool) error {
	res, err := query.RegisterLayout(a)
	if err != nil {
		return err
	}
	d, err := micalc.LookupInstruction(arch, a.Instruction)
	if err != nil {
		return err
	}
	return format.Write(w, sink, format.LayoutTable(res, d.WaveSize, transpose))
}
