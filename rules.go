// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

// ruleDenseA builds a PatternDenseA mapping rule: A's row (I) selects
// the lane within a block, its inner (K) coordinate selects the GPR.
func ruleDenseA(waveSize, blocks, elemBits int) MappingRule {
	return MappingRule{Pattern: PatternDenseA, LanesPerBlock: waveSize / blocks, ElemBits: elemBits}
}

// ruleDenseB builds a PatternDenseB mapping rule: B's column (J)
// selects the lane within a block (mirroring C/D's column addressing),
// its inner (K) coordinate selects the GPR.
func ruleDenseB(n, elemBits int) MappingRule {
	return MappingRule{Pattern: PatternDenseB, LanesPerBlock: n, ElemBits: elemBits}
}

// ruleDenseCD builds a PatternDenseCD mapping rule: one row per lane.
func ruleDenseCD(n, elemBits int) MappingRule {
	return MappingRule{Pattern: PatternDenseCD, LanesPerBlock: n, ElemBits: elemBits}
}

// ruleMultiRowCD builds a PatternMultiRowCD mapping rule (spec section
// 4.3 family 2). laneStride must equal the instruction's N so that
// Lookup's inversion of (row_minor, J) from a single lane offset is
// unambiguous.
func ruleMultiRowCD(rowsPerGPR, rowStride, lanesPerBlock, laneStride int) MappingRule {
	return MappingRule{
		Pattern:       PatternMultiRowCD,
		RowsPerGPR:    rowsPerGPR,
		RowStride:     rowStride,
		LanesPerBlk2:  lanesPerBlock,
		LaneStride:    laneStride,
	}
}

// ruleWave32CD builds a PatternWave32CD mapping rule (spec section 4.3
// family 4): wave32 WMMA C/D, one row per GPR, column selects lane. A
// 16-bit element width lets OPSEL pick the low/high half of the GPR; a
// 32-bit width uses the whole register and ignores OPSEL.
func ruleWave32CD(n, elemBits int) MappingRule {
	return MappingRule{Pattern: PatternWave32CD, LanesPerBlock: n, ElemBits: elemBits}
}

// ruleSparseKDense builds a PatternSparseKDense mapping rule (spec
// section 4.3 family 5, dense-wave/CDNA SMFMAC case).
func ruleSparseKDense(waveSize, blocks, fieldBits int) MappingRule {
	return MappingRule{
		Pattern:       PatternSparseKDense,
		LanesPerBlock: waveSize / blocks,
		FieldBits:     fieldBits,
		FieldsPerGPR:  32 / fieldBits,
	}
}

// ruleSparseKWave32 builds a PatternSparseKWave32 mapping rule (spec
// section 4.3 family 5, wave32/RDNA4 SWMMAC case). See DESIGN.md's
// sparse K register-packing interpretation for kOffset's meaning.
func ruleSparseKWave32(waveSize, fieldBits, kOffset int) MappingRule {
	return MappingRule{
		Pattern:       PatternSparseKWave32,
		LanesPerBlock: waveSize / 2,
		FieldBits:     fieldBits,
		FieldsPerGPR:  32 / fieldBits,
		KOffset:       kOffset,
	}
}

// gprsForRow returns how many GPRs a row-addressed matrix (C, D, or a
// dense A/B keyed by its inner coordinate) needs to hold innerCount
// elements of elemBits width each.
func gprsForRow(innerCount, elemBits int) int {
	switch {
	case elemBits == 64:
		return innerCount * 2
	case elemBits >= 32:
		return innerCount
	default:
		elemsPerGPR := 32 / elemBits
		return (innerCount + elemsPerGPR - 1) / elemsPerGPR
	}
}
