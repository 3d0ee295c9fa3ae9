// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

// Encoding is the instruction encoding family.
type Encoding byte

const (
	EncodingVOP3PMAI Encoding = iota
	EncodingVOP3P
)

func (e Encoding) String() string {
	if e == EncodingVOP3PMAI {
		return "VOP3P-MAI"
	}
	return "VOP3P"
}

// DataType is the closed set of operand element types a source or
// destination slot may carry.
type DataType byte

const (
	TypeFP32 DataType = iota
	TypeFP64
	TypeFP16
	TypeBF16
	TypeINT8
	TypeINT32
	TypeINT4
	TypeFP8E4M3
	TypeFP8E5M2
	TypeSparseIndex // sparse compression-index byte field (K matrix)
)

// Bits returns the element width in bits.
func (t DataType) Bits() int {
	switch t {
	case TypeFP64:
		return 64
	case TypeFP32:
		return 32
	case TypeFP16, TypeBF16, TypeFP8E4M3x2, TypeFP8E5M2x2:
		return 16
	case TypeINT32:
		return 32
	case TypeFP8E4M3, TypeFP8E5M2, TypeINT8, TypeSparseIndex:
		return 8
	case TypeINT4:
		return 4
	default:
		return 32
	}
}

func (t DataType) String() string {
	switch t {
	case TypeFP32:
		return "FP32"
	case TypeFP64:
		return "FP64"
	case TypeFP16:
		return "FP16"
	case TypeBF16:
		return "BF16"
	case TypeINT8:
		return "INT8"
	case TypeINT32:
		return "INT32"
	case TypeINT4:
		return "INT4"
	case TypeFP8E4M3:
		return "FP8-E4M3"
	case TypeFP8E5M2:
		return "FP8-E5M2"
	case TypeSparseIndex:
		return "SPARSE-IDX"
	default:
		return "?"
	}
}

// TypeFP8E4M3x2 and TypeFP8E5M2x2 are placeholders reserved for packed
// two-element FP8 source slots; no seeded descriptor currently uses them,
// kept so Bits() has a single authoritative switch.
const (
	TypeFP8E4M3x2 DataType = 100 + iota
	TypeFP8E5M2x2
)

// Dimensions describes the logical shape of an instruction's matrices.
type Dimensions struct {
	M, N, K int
	Blocks  int // power of two: 1, 2, 4, or 16
}

// Execution carries the instruction's published performance constants.
type Execution struct {
	FLOPs            int
	Cycles           int
	FLOPsPerCUCycle  int
	CoExecutesVALU   bool
	CoExecuteCycles  int
}

// GPRCounts is the number of GPRs each operand field occupies. C always
// equals D. K is non-zero only for sparse descriptors.
type GPRCounts struct {
	A, B, C, D int
	K          int
}

// RegFiles records, for a physical register-file slot, whether the
// architected (Arch) and/or accumulator (Acc) register file may hold it.
type RegFiles struct {
	Arch bool
	Acc  bool
}

// BLGPMode selects which of BLGP's two unrelated meanings a descriptor
// uses, per spec section 4.4 rules 3 and 4.
type BLGPMode byte

const (
	BLGPNone BLGPMode = iota
	BLGPLaneSwizzle
	BLGPFP64Negate
)

// CBSZMode selects which of CBSZ/ABID's two unrelated meanings a
// descriptor uses, per spec section 4.4 rules 1 and 2.
type CBSZMode byte

const (
	CBSZNone CBSZMode = iota
	CBSZDenseBroadcast
	CBSZSparseFieldSelect
)

// ModifierSupport is the bitmap of modifiers an instruction accepts,
// plus the sub-mode selectors for CBSZ/ABID and BLGP.
type ModifierSupport struct {
	CBSZ    bool
	ABID    bool
	BLGP    bool
	OPSEL   bool
	NEG     bool
	NEGHI   bool
	CBSZMod CBSZMode
	BLGPMod BLGPMode
}

// Pattern is the closed set of coordinate<->register closed-form
// families from spec section 4.3. Mapping arithmetic is dispatched on
// this value; it is never encoded as a per-instruction function.
type Pattern byte

const (
	// PatternDenseA: A row addressing. lane is derived
	// from (block, row); gpr is derived from the inner (K) coordinate.
	PatternDenseA Pattern = iota
	// PatternDenseB: B column addressing. lane is derived from
	// (block, col); gpr is derived from the inner (K) coordinate.
	PatternDenseB
	// PatternDenseCD: basic one-row-per-lane C/D addressing (family 1).
	PatternDenseCD
	// PatternMultiRowCD: multi-row-per-lane C/D addressing (family 2),
	// for 16x16/32x32 shapes where more than one row shares a lane.
	PatternMultiRowCD
	// PatternWave32CD: wave32 WMMA C/D addressing (family 4): low/high
	// 16-bit half selected by OPSEL, broadcast across lane halves.
	PatternWave32CD
	// PatternSparseKDense: CDNA SMFMAC compression-index addressing,
	// sharing A's row/block lane formula (family 5, dense-wave case).
	PatternSparseKDense
	// PatternSparseKWave32: RDNA4 SWMMAC compression-index addressing,
	// shared register across both lane-halves, OPSEL-selected half
	// (family 5, wave32 case).
	PatternSparseKWave32
)

// MappingRule carries the small set of integer coefficients the mapper
// needs to evaluate Pattern's closed form for one matrix of one
// instruction. Only the fields relevant to Pattern are meaningful.
type MappingRule struct {
	Pattern Pattern

	// Shared dense coefficients.
	LanesPerBlock int // W/blocks for row patterns, N for column patterns
	ElemBits      int // element width for this matrix's data type

	// PatternMultiRowCD coefficients (family 2).
	RowsPerGPR   int
	RowStride    int
	LaneStride   int
	LanesPerBlk2 int

	// PatternSparseKDense / PatternSparseKWave32 coefficients.
	FieldBits    int // bits per compression-index field (2 dense, 4 wave32)
	FieldsPerGPR int
	KOffset      int // wave32 only: per-GPR K offset OPSEL=1 applies
}

// Descriptor is the invariant per-instruction record: every static fact
// spec section 3 requires, plus the mapping rule for each matrix the
// instruction defines.
type Descriptor struct {
	Mnemonic  string
	Encoding  Encoding
	OpcodeVOP3P    int // -1 if not applicable to this encoding
	OpcodeVOP3PMAI int // -1 if not applicable to this encoding

	Dimensions Dimensions
	Execution  Execution
	GPRs       GPRCounts
	AlignBytes int

	// SrcTypes holds the data type of Src0 (A), Src1 (B), Src2 (C or K),
	// and Vdst (D), in that order.
	SrcTypes [4]DataType

	RegFileA  RegFiles
	RegFileB  RegFiles
	RegFileCD RegFiles

	Modifiers ModifierSupport
	IsSparse  bool
	WaveSize  int

	// Rules holds the mapping rule for each matrix the instruction
	// defines. K is populated only when IsSparse is true.
	Rules map[Matrix]MappingRule
}

// ElementBits returns the bit width of the data type stored in matrix m.
func (d *Descriptor) ElementBits(m Matrix) int {
	switch m {
	case MatrixA:
		return d.SrcTypes[0].Bits()
	case MatrixB:
		return d.SrcTypes[1].Bits()
	case MatrixK:
		return d.SrcTypes[2].Bits()
	case MatrixC:
		return d.SrcTypes[2].Bits()
	default: // MatrixD
		return d.SrcTypes[3].Bits()
	}
}

// GPRCount returns the number of GPRs matrix m occupies.
func (d *Descriptor) GPRCount(m Matrix) int {
	switch m {
	case MatrixA:
		return d.GPRs.A
	case MatrixB:
		return d.GPRs.B
	case MatrixC:
		return d.GPRs.C
	case MatrixD:
		return d.GPRs.D
	default:
		return d.GPRs.K
	}
}

// Bounds returns the legal exclusive upper bound for each coordinate
// axis of matrix m, per spec section 3's ignored-axis rules.
func (d *Descriptor) Bounds(m Matrix) (iMax, jMax, kMax, blockMax int) {
	dim := d.Dimensions
	blockMax = dim.Blocks
	switch m {
	case MatrixA, MatrixK:
		return dim.M, 1, dim.K, blockMax
	case MatrixB:
		return 1, dim.N, dim.K, blockMax
	default: // C, D
		return dim.M, dim.N, 1, blockMax
	}
}
