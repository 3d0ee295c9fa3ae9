// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package query implements the five query-facade operations over the
// instruction catalog: listing instructions, reporting an instruction's
// static metadata, mapping a coordinate to a register, mapping a
// register back to its coordinates, and rendering a matrix's full
// register layout.
package query

import (
	"sort"

	micalc "github.com/ROCm/amd-matrix-instruction-calculator"
)

// Args is the parsed, already-type-checked set of inputs a caller (the
// batch CLI or the interactive shell) gathers before running one
// operation. Only the fields relevant to the chosen operation need be set.
type Args struct {
	Arch        micalc.ArchitectureID
	Instruction string
	Matrix      micalc.Matrix
	HasMatrix   bool

	I, J, K, Block int
	HasI, HasJ, HasK, HasBlock bool

	Register int
	Lane     int
	HasReg   bool
	HasLane  bool

	Mods        micalc.Modifiers
	Formula     bool // -o: also render the accumulation formula
	Compression bool // --compression: force MatrixK
}

// ListInstructions implements the "list_instructions" operation: every
// mnemonic the architecture defines, in catalog order.
func ListInstructions(arch micalc.ArchitectureID) []string {
	return micalc.InstructionsOf(arch)
}

// DetailResult is "detail"'s structured report of an instruction's
// static metadata, per spec section 3.
type DetailResult struct {
	Descriptor *micalc.Descriptor
	Warnings   []micalc.Warning
}

// Detail implements the "detail" operation (E1).
func Detail(a Args) (*DetailResult, error) {
	d, err := micalc.LookupInstruction(a.Arch, a.Instruction)
	if err != nil {
		return nil, err
	}
	return &DetailResult{Descriptor: d}, nil
}

// resolveMatrix applies the --compression flag (forces MatrixK) and
// requires the caller to have picked exactly one matrix otherwise.
func resolveMatrix(a Args) (micalc.Matrix, error) {
	if a.Compression {
		return micalc.MatrixK, nil
	}
	if !a.HasMatrix {
		return 0, micalc.NewBadUsage("matrix", "exactly one of --A-matrix/--B-matrix/--C-matrix/--D-matrix/--compression is required")
	}
	return a.Matrix, nil
}

// GetRegisterResult is "get_register"'s output: the coordinate's
// physical location, plus (when requested) the accumulation formula
// that produced a D/C cell.
type GetRegisterResult struct {
	Coord    micalc.Coordinate
	Location micalc.RegisterLocation
	Warnings []micalc.Warning
	Formula  string
}

// GetRegister implements the "get_register" operation (E2, E4, E7):
// forward coordinate-to-register mapping.
func GetRegister(a Args) (*GetRegisterResult, error) {
	d, err := micalc.LookupInstruction(a.Arch, a.Instruction)
	if err != nil {
		return nil, err
	}
	m, err := resolveMatrix(a)
	if err != nil {
		return nil, err
	}
	if !a.HasI {
		return nil, micalc.NewBadUsage("I", "required for get_register")
	}
	c := micalc.Coordinate{Matrix: m, I: a.I, J: a.J, K: a.K, Block: a.Block}
	warnings, err := micalc.ValidateModifiers(d, m, a.Mods)
	if err != nil {
		return nil, err
	}
	loc, err := micalc.Locate(d, m, c, a.Mods)
	if err != nil {
		return nil, err
	}
	res := &GetRegisterResult{Coord: c, Location: loc, Warnings: warnings}
	if a.Formula && (m == micalc.MatrixC || m == micalc.MatrixD) {
		res.Formula, err = ExplainFormula(d, c, a.Mods)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// MatrixEntryResult is "matrix_entry"'s output: every coordinate stored
// at the requested (register, lane), ordered least-significant bits
// first.
type MatrixEntryResult struct {
	Entries  []micalc.Entry
	Warnings []micalc.Warning
}

// MatrixEntry implements the "matrix_entry" operation (E3): reverse
// register-to-coordinate mapping.
func MatrixEntry(a Args) (*MatrixEntryResult, error) {
	d, err := micalc.LookupInstruction(a.Arch, a.Instruction)
	if err != nil {
		return nil, err
	}
	m, err := resolveMatrix(a)
	if err != nil {
		return nil, err
	}
	if !a.HasReg || !a.HasLane {
		return nil, micalc.NewBadUsage("register/lane", "both -r and -l are required for matrix_entry")
	}
	warnings, err := micalc.ValidateModifiers(d, m, a.Mods)
	if err != nil {
		return nil, err
	}
	entries, err := micalc.Lookup(d, m, a.Register, a.Lane, a.Mods)
	if err != nil {
		return nil, err
	}
	return &MatrixEntryResult{Entries: entries, Warnings: warnings}, nil
}

// LayoutCell is one occupied (gpr, lane) slot of a full matrix layout.
type LayoutCell struct {
	GPR     int
	Lane    int
	Entries []micalc.Entry
}

// RegisterLayoutResult is "register_layout"/"matrix_layout"'s output:
// every occupied cell of the requested matrix, in (gpr, lane) order.
type RegisterLayoutResult struct {
	Matrix micalc.Matrix
	Cells  []LayoutCell
}

// RegisterLayout implements the "register_layout"/"matrix_layout"
// operation (E5, E6): the complete occupied-cell map for one matrix
// under the given modifiers.
func RegisterLayout(a Args) (*RegisterLayoutResult, error) {
	d, err := micalc.LookupInstruction(a.Arch, a.Instruction)
	if err != nil {
		return nil, err
	}
	m, err := resolveMatrix(a)
	if err != nil {
		return nil, err
	}
	if _, err := micalc.ValidateModifiers(d, m, a.Mods); err != nil {
		return nil, err
	}

	seen := map[[2]int]bool{}
	var cells []LayoutCell
	maxGPR := d.GPRCount(m) - 1
	for gpr := 0; gpr <= maxGPR; gpr++ {
		for lane := 0; lane < d.WaveSize; lane++ {
			key := [2]int{gpr, lane}
			if seen[key] {
				continue
			}
			entries, err := micalc.Lookup(d, m, gpr, lane, a.Mods)
			if err != nil || len(entries) == 0 {
				continue
			}
			seen[key] = true
			cells = append(cells, LayoutCell{GPR: gpr, Lane: lane, Entries: entries})
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].GPR != cells[j].GPR {
			return cells[i].GPR < cells[j].GPR
		}
		return cells[i].Lane < cells[j].Lane
	})
	return &RegisterLayoutResult{Matrix: m, Cells: cells}, nil
}
