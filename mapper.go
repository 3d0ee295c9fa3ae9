// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

// Entry is one (coordinate, bit-range) pair returned by Lookup. A single
// (gpr, lane) can carry more than one matrix entry when elements are
// packed into sub-registers; entries are always ordered from the
// least-significant bit range to the most-significant, per spec section
// 4.3's ordering rule.
type Entry struct {
	Coord Coordinate
	BitLo int
	BitHi int
	Pair  bool
	Sign  Sign
}

// Locate computes the physical register location of one matrix
// coordinate, applying every modifier CBSZ/ABID/BLGP/OPSEL/NEG/NEG_HI
// that the descriptor says is active. It is a pure function: same
// inputs always produce the same RegisterLocation.
func Locate(d *Descriptor, m Matrix, c Coordinate, mods Modifiers) (RegisterLocation, error) {
	if err := checkCoordinateBounds(d, m, c); err != nil {
		return RegisterLocation{}, err
	}
	rule, ok := d.Rules[m]
	if !ok {
		return RegisterLocation{}, newErr(ErrBadUsage, "matrix", "%s not defined for %s", m, d.Mnemonic)
	}

	var loc RegisterLocation
	switch rule.Pattern {
	case PatternDenseA:
		loc = locateDenseRow(d, rule, effectiveBlock(d, c.Block, mods), c.I, c.K)
	case PatternDenseB:
		loc = locateDenseRow(d, rule, c.Block, c.J, c.K)
		if d.Modifiers.BLGPMod == BLGPLaneSwizzle && mods.BLGP != 0 {
			loc.Lane = blgpSourceLane(d.WaveSize, mods.BLGP, loc.Lane)
		}
	case PatternDenseCD:
		loc = locateDenseRow(d, rule, c.Block, c.J, c.I)
	case PatternMultiRowCD:
		loc = locateMultiRow(rule, c.Block, c.I, c.J)
	case PatternWave32CD:
		loc = RegisterLocation{GPROffset: c.I, Lane: c.J % rule.LanesPerBlock, BitLo: 0, BitHi: 31}
		if rule.ElemBits == 16 {
			loc.BitHi = 15
			loc = applyOpselBitRange(loc, mods.OPSEL)
		}
	case PatternSparseKDense:
		loc = locateSparseKDense(d, rule, effectiveBlock(d, c.Block, mods), c.I, c.K, mods)
	case PatternSparseKWave32:
		loc = locateSparseKWave32(rule, c.I, c.K, mods)
	}

	if d.Modifiers.BLGPMod == BLGPFP64Negate && mods.BLGP != 0 {
		loc.Sign = blgpFP64Sign(m, mods.BLGP)
	}
	if m == MatrixA || m == MatrixB {
		loc = applyNegSign(m, loc, mods.NEG, mods.NEGHI)
	}
	if (m == MatrixC || m == MatrixD) && d.Modifiers.NEG {
		loc = applyNegSign(m, loc, mods.NEG, mods.NEGHI)
	}
	return loc, nil
}

// Lookup computes every matrix coordinate stored at a given (gpr, lane),
// under the supplied modifiers. Results are ordered from the
// least-significant bit range to the most-significant.
func Lookup(d *Descriptor, m Matrix, gpr, lane int, mods Modifiers) ([]Entry, error) {
	rule, ok := d.Rules[m]
	if !ok {
		return nil, newErr(ErrBadUsage, "matrix", "%s not defined for %s", m, d.Mnemonic)
	}
	if lane < 0 || lane >= d.WaveSize {
		return nil, newErr(ErrOutOfRangeCoordinate, "lane", "must be in [0, %d)", d.WaveSize)
	}
	maxGPR := d.GPRCount(m) - 1
	if d.ElementBits(m) == 64 {
		maxGPR--
	}
	if gpr < 0 || gpr > maxGPR {
		return nil, newErr(ErrOutOfRangeCoordinate, "register", "must be in [0, %d]", maxGPR)
	}

	var entries []Entry
	switch rule.Pattern {
	case PatternDenseA:
		entries = lookupDenseRow(d, rule, MatrixA, gpr, lane, d.Dimensions.M, d.Dimensions.K)
	case PatternDenseB:
		srcLane := lane
		entries = lookupDenseRow(d, rule, MatrixB, gpr, srcLane, d.Dimensions.N, d.Dimensions.K)
		if d.Modifiers.BLGPMod == BLGPLaneSwizzle && mods.BLGP != 0 {
			entries = nil
			for _, target := range blgpTargetLanes(d.WaveSize, mods.BLGP, lane) {
				entries = append(entries, lookupDenseRow(d, rule, MatrixB, gpr, target, d.Dimensions.N, d.Dimensions.K)...)
			}
		}
	case PatternDenseCD:
		entries = lookupDenseCD(d, rule, m, gpr, lane)
	case PatternMultiRowCD:
		entries = lookupMultiRow(d, rule, m, gpr, lane)
	case PatternWave32CD:
		i := gpr
		j := lane % rule.LanesPerBlock
		lo, hi := 0, 31
		if rule.ElemBits == 16 {
			lo, hi = 0, 15
			if mods.OPSEL == 4 {
				lo, hi = 16, 31
			}
		}
		entries = []Entry{{Coord: Coordinate{Matrix: m, I: i, J: j}, BitLo: lo, BitHi: hi}}
	case PatternSparseKDense:
		entries = lookupSparseKDense(d, rule, gpr, lane)
	case PatternSparseKWave32:
		entries = lookupSparseKWave32(rule, gpr, lane, mods)
	}

	if d.Modifiers.BLGPMod == BLGPFP64Negate && mods.BLGP != 0 {
		sign := blgpFP64Sign(m, mods.BLGP)
		for i := range entries {
			entries[i].Sign = sign
		}
	}
	for i := range entries {
		if m == MatrixA || m == MatrixB {
			loc := applyNegSign(m, RegisterLocation{BitLo: entries[i].BitLo, BitHi: entries[i].BitHi, Sign: entries[i].Sign}, mods.NEG, mods.NEGHI)
			entries[i].Sign = loc.Sign
		} else if (m == MatrixC || m == MatrixD) && d.Modifiers.NEG {
			loc := applyNegSign(m, RegisterLocation{Sign: entries[i].Sign}, mods.NEG, mods.NEGHI)
			entries[i].Sign = loc.Sign
		}
	}
	return entries, nil
}

func checkCoordinateBounds(d *Descriptor, m Matrix, c Coordinate) error {
	iMax, jMax, kMax, blockMax := d.Bounds(m)
	if c.I < 0 || c.I >= iMax {
		return newErr(ErrOutOfRangeCoordinate, "I", "must be in [0, %d)", iMax)
	}
	if c.J < 0 || c.J >= jMax {
		return newErr(ErrOutOfRangeCoordinate, "J", "must be in [0, %d)", jMax)
	}
	if c.K < 0 || c.K >= kMax {
		return newErr(ErrOutOfRangeCoordinate, "K", "must be in [0, %d)", kMax)
	}
	if c.Block < 0 || c.Block >= blockMax {
		return newErr(ErrOutOfRangeCoordinate, "block", "must be in [0, %d)", blockMax)
	}
	return nil
}

// locateDenseRow implements the shared closed form behind PatternDenseA,
// PatternDenseB, and PatternDenseCD: a "row" coordinate selects the lane
// within a block, and an "inner" coordinate selects the (possibly
// packed) GPR.
func locateDenseRow(d *Descriptor, rule MappingRule, block, row, inner int) RegisterLocation {
	lane := block*rule.LanesPerBlock + row
	return packInner(rule.ElemBits, inner, lane)
}

func packInner(elemBits, inner, lane int) RegisterLocation {
	switch {
	case elemBits == 64:
		return RegisterLocation{GPROffset: inner * 2, Lane: lane, Pair: true, BitLo: 0, BitHi: 63}
	case elemBits >= 32:
		return RegisterLocation{GPROffset: inner, Lane: lane, BitLo: 0, BitHi: 31}
	default:
		elemsPerGPR := 32 / elemBits
		gpr := inner / elemsPerGPR
		field := inner % elemsPerGPR
		lo := field * elemBits
		return RegisterLocation{GPROffset: gpr, Lane: lane, BitLo: lo, BitHi: lo + elemBits - 1}
	}
}

func lookupDenseRow(d *Descriptor, rule MappingRule, m Matrix, gpr, lane, rowMax, innerMax int) []Entry {
	block := lane / rule.LanesPerBlock
	row := lane % rule.LanesPerBlock
	if row >= rowMax {
		return nil
	}
	var entries []Entry
	elemBits := rule.ElemBits
	if elemBits == 64 {
		if gpr%2 != 0 {
			return nil
		}
		inner := gpr / 2
		if inner >= innerMax {
			return nil
		}
		entries = append(entries, makeRowEntry(m, block, row, inner, 0, 63, true))
		return entries
	}
	if elemBits >= 32 {
		if gpr >= innerMax {
			return nil
		}
		entries = append(entries, makeRowEntry(m, block, row, gpr, 0, 31, false))
		return entries
	}
	elemsPerGPR := 32 / elemBits
	for field := 0; field < elemsPerGPR; field++ {
		inner := gpr*elemsPerGPR + field
		if inner >= innerMax {
			continue
		}
		lo := field * elemBits
		entries = append(entries, makeRowEntry(m, block, row, inner, lo, lo+elemBits-1, false))
	}
	return entries
}

func makeRowEntry(m Matrix, block, row, inner, lo, hi int, pair bool) Entry {
	var c Coordinate
	switch m {
	case MatrixA:
		c = Coordinate{Matrix: MatrixA, I: row, K: inner, Block: block}
	case MatrixB:
		c = Coordinate{Matrix: MatrixB, J: row, K: inner, Block: block}
	}
	return Entry{Coord: c, BitLo: lo, BitHi: hi, Pair: pair}
}

func lookupDenseCD(d *Descriptor, rule MappingRule, m Matrix, gpr, lane int) []Entry {
	block := lane / rule.LanesPerBlock
	j := lane % rule.LanesPerBlock
	if j >= d.Dimensions.N {
		return nil
	}
	elemBits := rule.ElemBits
	var entries []Entry
	mk := func(i, lo, hi int, pair bool) Entry {
		return Entry{Coord: Coordinate{Matrix: m, I: i, J: j, Block: block}, BitLo: lo, BitHi: hi, Pair: pair}
	}
	switch {
	case elemBits == 64:
		if gpr%2 != 0 {
			return nil
		}
		i := gpr / 2
		if i >= d.Dimensions.M {
			return nil
		}
		entries = append(entries, mk(i, 0, 63, true))
	case elemBits >= 32:
		if gpr >= d.Dimensions.M {
			return nil
		}
		entries = append(entries, mk(gpr, 0, 31, false))
	default:
		elemsPerGPR := 32 / elemBits
		for field := 0; field < elemsPerGPR; field++ {
			i := gpr*elemsPerGPR + field
			if i >= d.Dimensions.M {
				continue
			}
			lo := field * elemBits
			entries = append(entries, mk(i, lo, lo+elemBits-1, false))
		}
	}
	return entries
}

// locateMultiRow implements PatternMultiRowCD (spec section 4.3 family
// 2): an I coordinate decomposes into (row_major, row_minor) that
// selects GPR and lane respectively.
func locateMultiRow(rule MappingRule, block, i, j int) RegisterLocation {
	rowMajor := i / rule.RowsPerGPR
	rowMinor := i % rule.RowsPerGPR
	gpr := rowMajor * rule.RowStride
	lane := block*rule.LanesPerBlk2 + rowMinor*rule.LaneStride + j
	return RegisterLocation{GPROffset: gpr, Lane: lane, BitLo: 0, BitHi: 31}
}

func lookupMultiRow(d *Descriptor, rule MappingRule, m Matrix, gpr, lane int) []Entry {
	block := lane / rule.LanesPerBlk2
	laneInBlock := lane % rule.LanesPerBlk2
	rowMinor := laneInBlock / rule.LaneStride
	j := laneInBlock % rule.LaneStride
	if j >= d.Dimensions.N || rowMinor >= rule.RowsPerGPR {
		return nil
	}
	rowMajor := gpr / rule.RowStride
	i := rowMajor*rule.RowsPerGPR + rowMinor
	if i >= d.Dimensions.M {
		return nil
	}
	return []Entry{{Coord: Coordinate{Matrix: m, I: i, J: j, Block: block}, BitLo: 0, BitHi: 31}}
}

// locateSparseKDense implements the CDNA SMFMAC compression-index
// addressing of spec section 4.3 family 5 (dense-wave case): K shares
// A's row/block lane formula, packing FieldBits-wide fields per GPR.
func locateSparseKDense(d *Descriptor, rule MappingRule, block, i, k int, mods Modifiers) RegisterLocation {
	lane := block*rule.LanesPerBlock + i
	field := k % rule.FieldsPerGPR
	if d.Modifiers.CBSZMod == CBSZSparseFieldSelect && mods.CBSZ != 0 {
		field = mods.ABID
	}
	gpr := k / rule.FieldsPerGPR
	lo := field * rule.FieldBits
	return RegisterLocation{GPROffset: gpr, Lane: lane, BitLo: lo, BitHi: lo + rule.FieldBits - 1}
}

func lookupSparseKDense(d *Descriptor, rule MappingRule, gpr, lane int) []Entry {
	block := lane / rule.LanesPerBlock
	i := lane % rule.LanesPerBlock
	if i >= d.Dimensions.M {
		return nil
	}
	var entries []Entry
	for field := 0; field < rule.FieldsPerGPR; field++ {
		k := gpr*rule.FieldsPerGPR + field
		if k >= d.Dimensions.K {
			continue
		}
		lo := field * rule.FieldBits
		entries = append(entries, Entry{
			Coord: Coordinate{Matrix: MatrixK, I: i, K: k, Block: block},
			BitLo: lo, BitHi: lo + rule.FieldBits - 1,
		})
	}
	return entries
}

// locateSparseKWave32 implements the RDNA4 SWMMAC compression-index
// addressing of spec section 4.3 family 5 (wave32 case): lane is fixed
// by I alone (the upper half of the wave is reserved for compression
// data); OPSEL reindexes K by a fixed offset onto the same GPR range
// (see DESIGN.md's sparse K interpretation for why the offset is not
// simply half of K).
func locateSparseKWave32(rule MappingRule, i, k int, mods Modifiers) RegisterLocation {
	lane := rule.LanesPerBlock + i
	kLocal := k - mods.OPSEL*rule.KOffset
	gpr := kLocal / rule.FieldsPerGPR
	field := kLocal % rule.FieldsPerGPR
	lo := field * rule.FieldBits
	return RegisterLocation{GPROffset: gpr, Lane: lane, BitLo: lo, BitHi: lo + rule.FieldBits - 1}
}

func lookupSparseKWave32(rule MappingRule, gpr, lane int, mods Modifiers) []Entry {
	i := lane - rule.LanesPerBlock
	if i < 0 {
		return nil
	}
	var entries []Entry
	for field := 0; field < rule.FieldsPerGPR; field++ {
		kLocal := gpr*rule.FieldsPerGPR + field
		k := kLocal + mods.OPSEL*rule.KOffset
		lo := field * rule.FieldBits
		entries = append(entries, Entry{
			Coord: Coordinate{Matrix: MatrixK, I: i, K: k, Block: 0},
			BitLo: lo, BitHi: lo + rule.FieldBits - 1,
		})
	}
	return entries
}
