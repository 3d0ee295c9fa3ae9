// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

import "fmt"

// Matrix identifies one of the five logical operands a mapping query can
// be asked about. It is a byte enum in the same style as the addressing
// Mode enum of a disassembler's instruction table.
type Matrix byte

// All legal matrix selectors. K is legal only on sparse descriptors.
const (
	MatrixA Matrix = iota
	MatrixB
	MatrixC
	MatrixD
	MatrixK
)

func (m Matrix) String() string {
	switch m {
	case MatrixA:
		return "A"
	case MatrixB:
		return "B"
	case MatrixC:
		return "C"
	case MatrixD:
		return "D"
	case MatrixK:
		return "K"
	default:
		return "?"
	}
}

// Sign annotates a RegisterLocation with the effect a modifier had on the
// value read from or written to it.
type Sign byte

const (
	SignPositive Sign = iota
	SignNegated
	SignAbs
	SignNegAbs // absolute value taken first, then negated
)

func (s Sign) String() string {
	switch s {
	case SignNegated:
		return "-"
	case SignAbs:
		return "abs"
	case SignNegAbs:
		return "-abs"
	default:
		return ""
	}
}

// Coordinate names one element of one of the logical matrices. A matrix
// ignores J, B ignores I, C and D ignore K, K follows A's (I, K, Block)
// schema.
type Coordinate struct {
	Matrix Matrix
	I      int
	J      int
	K      int
	Block  int
}

// String renders a coordinate the way the CLI's stable output format
// requires: Matrix[row][col].Bblock, or K[row][col] for the compression
// index matrix.
func (c Coordinate) String() string {
	switch c.Matrix {
	case MatrixA:
		return fmt.Sprintf("A[%d][%d].B%d", c.I, c.K, c.Block)
	case MatrixB:
		return fmt.Sprintf("B[%d][%d].B%d", c.K, c.J, c.Block)
	case MatrixK:
		return fmt.Sprintf("K[%d][%d]", c.I, c.K)
	case MatrixC:
		return fmt.Sprintf("C[%d][%d].B%d", c.I, c.J, c.Block)
	default:
		return fmt.Sprintf("D[%d][%d].B%d", c.I, c.J, c.Block)
	}
}

// RegisterLocation is the physical address a Coordinate maps to: a GPR
// offset relative to the operand's field base, a lane, an inclusive bit
// range within the (possibly 64-bit-paired) register, and a sign
// annotation applied by the modifier engine.
type RegisterLocation struct {
	GPROffset int // relative to the Src0/Src1/Src2/Vdst field base
	Lane      int
	BitLo     int
	BitHi     int
	Pair      bool // true if this is a 64-bit [GPROffset+1:GPROffset] pair
	Sign      Sign
}

// String renders a location the way the CLI's stable output format
// requires: v{GPR}{LANE} for 32-bit, v[GPR+1:GPR]{LANE} for pairs,
// optionally suffixed .[hi:lo], with a leading sign.
func (r RegisterLocation) String() string {
	var reg string
	if r.Pair {
		reg = fmt.Sprintf("v[%d:%d]{%d}", r.GPROffset+1, r.GPROffset, r.Lane)
	} else {
		reg = fmt.Sprintf("v%d{%d}", r.GPROffset, r.Lane)
	}
	if !r.Pair && (r.BitLo != 0 || r.BitHi != 31) {
		reg = fmt.Sprintf("%s.[%d:%d]", reg, r.BitHi, r.BitLo)
	}
	switch r.Sign {
	case SignNegated:
		return "-" + reg
	case SignAbs:
		return "|" + reg + "|"
	case SignNegAbs:
		return "-|" + reg + "|"
	default:
		return reg
	}
}
