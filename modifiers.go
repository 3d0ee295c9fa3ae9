// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

// Modifiers is the user-supplied runtime configuration for a query.
// A nil pointer field would complicate zero-value defaulting, so every
// field is a plain int defaulting to 0 (the identity value for all six
// modifiers per spec section 4.4's numbered laws).
type Modifiers struct {
	CBSZ   int
	ABID   int
	BLGP   int
	OPSEL  int
	NEG    int
	NEGHI  int
}

// Warning describes a non-fatal condition: a modifier was accepted but
// has no effect on the matrix being queried.
type Warning struct {
	Param string
	Msg   string
}

// ValidateModifiers checks structural legality before range legality,
// per spec section 4.4's validation precedence, and collects warnings
// for modifiers that are legal on the instruction but inert on the
// chosen matrix.
func ValidateModifiers(d *Descriptor, m Matrix, mods Modifiers) ([]Warning, error) {
	var warnings []Warning
	ms := d.Modifiers

	checkSupported := func(name string, supported bool, value int) error {
		if value != 0 && !supported {
			return newErr(ErrUnsupportedModifier, name, "not supported by %s", d.Mnemonic)
		}
		return nil
	}

	if err := checkSupported("cbsz", ms.CBSZ, mods.CBSZ); err != nil {
		return nil, err
	}
	if err := checkSupported("abid", ms.ABID, mods.ABID); err != nil {
		return nil, err
	}
	if err := checkSupported("blgp", ms.BLGP, mods.BLGP); err != nil {
		return nil, err
	}
	if err := checkSupported("opsel", ms.OPSEL, mods.OPSEL); err != nil {
		return nil, err
	}
	if err := checkSupported("neg", ms.NEG, mods.NEG); err != nil {
		return nil, err
	}
	if err := checkSupported("neg_hi", ms.NEGHI, mods.NEGHI); err != nil {
		return nil, err
	}

	if ms.CBSZ {
		maxCBSZ := log2(d.Dimensions.Blocks)
		if mods.CBSZ < 0 || mods.CBSZ > maxCBSZ {
			return nil, newErr(ErrModifierOutOfRange, "cbsz", "must be in [0, %d]", maxCBSZ)
		}
	}
	if ms.ABID {
		var maxABID int
		switch {
		case d.Modifiers.CBSZMod == CBSZSparseFieldSelect && mods.CBSZ == 0:
			if d.ElementBits(MatrixK) <= 8 {
				maxABID = 1
			} else {
				maxABID = 3
			}
		case d.Modifiers.CBSZMod == CBSZSparseFieldSelect:
			maxABID = 0
		default:
			if mods.CBSZ > 0 {
				maxABID = (1 << uint(mods.CBSZ)) - 1
			} else {
				maxABID = 0
			}
		}
		if mods.ABID < 0 || mods.ABID > maxABID {
			return nil, newErr(ErrModifierOutOfRange, "abid", "must be in [0, %d]", maxABID)
		}
	}
	if ms.BLGP {
		if mods.BLGP < 0 || mods.BLGP > 7 {
			return nil, newErr(ErrModifierOutOfRange, "blgp", "must be in [0, 7]")
		}
	}
	if ms.OPSEL {
		if d.Modifiers.CBSZMod == CBSZSparseFieldSelect || d.IsSparse {
			if mods.OPSEL < 0 || mods.OPSEL > 1 {
				return nil, newErr(ErrModifierOutOfRange, "opsel", "must be in [0, 1]")
			}
		} else {
			if mods.OPSEL != 0 && mods.OPSEL != 4 {
				return nil, newErr(ErrModifierOutOfRange, "opsel", "must be 0 or 4")
			}
		}
	}
	if ms.NEG {
		if mods.NEG < 0 || mods.NEG > 7 {
			return nil, newErr(ErrModifierOutOfRange, "neg", "must be in [0, 7]")
		}
	}
	if ms.NEGHI {
		if mods.NEGHI < 0 || mods.NEGHI > 7 {
			return nil, newErr(ErrModifierOutOfRange, "neg_hi", "must be in [0, 7]")
		}
	}

	// Modifiers legal on the instruction but inert on this matrix.
	if mods.CBSZ != 0 || mods.ABID != 0 {
		if m != MatrixA && m != MatrixK {
			warnings = append(warnings, Warning{"cbsz/abid", "has no effect on matrix " + m.String()})
		}
	}
	if mods.BLGP != 0 && d.Modifiers.BLGPMod == BLGPLaneSwizzle && m != MatrixB {
		warnings = append(warnings, Warning{"blgp", "has no effect on matrix " + m.String()})
	}
	if mods.BLGP != 0 && d.Modifiers.BLGPMod == BLGPFP64Negate && m != MatrixA && m != MatrixB && m != MatrixC && m != MatrixD {
		warnings = append(warnings, Warning{"blgp", "has no effect on matrix " + m.String()})
	}

	return warnings, nil
}

// effectiveBlock applies the CBSZ/ABID dense-broadcast remap of spec
// section 4.4 rule 1 to a requested block, for the A and (dense) K
// matrices.
func effectiveBlock(d *Descriptor, block int, mods Modifiers) int {
	if d.Modifiers.CBSZMod != CBSZDenseBroadcast || mods.CBSZ == 0 {
		return block
	}
	mask := (1 << uint(mods.CBSZ)) - 1
	return (block &^ mask) | (mods.ABID & mask)
}

// blgpSourceLane inverts the BLGP lane-swizzle permutation of spec
// section 4.4 rule 3: given the output lane a caller asked to locate,
// return the physical source lane the hardware actually reads from.
func blgpSourceLane(waveSize, blgp, outputLane int) int {
	w := waveSize
	half := w / 2
	quarter := w / 4
	switch blgp {
	case 0:
		return outputLane
	case 1: // broadcast [0,half) to [half,w)
		if outputLane >= half {
			return outputLane - half
		}
		return outputLane
	case 2: // broadcast [half,w) to [0,half)
		if outputLane < half {
			return outputLane + half
		}
		return outputLane
	case 3: // rotate down by w/4: output_lane = (input_lane + w/4) mod w
		return ((outputLane-quarter)%w + w) % w
	default: // 4-7: broadcast one quarter-group to all others
		srcQuarter := blgp & 0x3
		return srcQuarter*quarter + outputLane%quarter
	}
}

// blgpTargetLanes enumerates the output lanes that read from sourceLane
// under BLGP's lane-swizzle permutation, the inverse direction of
// blgpSourceLane, used by Lookup.
func blgpTargetLanes(waveSize, blgp, sourceLane int) []int {
	w := waveSize
	half := w / 2
	quarter := w / 4
	switch blgp {
	case 0:
		return []int{sourceLane}
	case 1:
		if sourceLane < half {
			return []int{sourceLane, sourceLane + half}
		}
		return nil
	case 2:
		if sourceLane >= half {
			return []int{sourceLane, sourceLane - half}
		}
		return nil
	case 3:
		return []int{((sourceLane+quarter)%w + w) % w}
	default:
		srcQuarter := blgp & 0x3
		if sourceLane/quarter != srcQuarter {
			return nil
		}
		var lanes []int
		for q := 0; q < 4; q++ {
			lanes = append(lanes, q*quarter+sourceLane%quarter)
		}
		return lanes
	}
}

// blgpFP64Sign applies spec section 4.4 rule 4: BLGP as a 3-bit negate
// mask over (A, B, C) for CDNA3 FP64 MFMA.
func blgpFP64Sign(m Matrix, blgp int) Sign {
	var bit int
	switch m {
	case MatrixA:
		bit = blgp & 1
	case MatrixB:
		bit = (blgp >> 1) & 1
	case MatrixC, MatrixD:
		bit = (blgp >> 2) & 1
	default:
		return SignPositive
	}
	if bit != 0 {
		return SignNegated
	}
	return SignPositive
}

// applyOpselBitRange applies spec section 4.4 rule 5: OPSEL selects the
// low or high 16-bit half of a 16-bit-output WMMA C/D location.
func applyOpselBitRange(loc RegisterLocation, opsel int) RegisterLocation {
	if opsel == 4 {
		loc.BitLo, loc.BitHi = 16, 31
	} else {
		loc.BitLo, loc.BitHi = 0, 15
	}
	return loc
}

// applyNegSign applies spec section 4.4 rule 7's NEG/NEG_HI floating
// point semantics for the A, B, and C/D operands. For A and B the mask
// bit toggles the sign of the half the location's bit range already
// selects (low half under NEG, high half under NEG_HI); for C, NEG
// negates and NEG_HI takes the absolute value, with both bits set
// meaning negate-of-absolute-value (absolute value applied first), per
// spec's documented (if ambiguous) ordering -- see DESIGN.md open
// question (i).
func applyNegSign(m Matrix, loc RegisterLocation, neg, negHi int) RegisterLocation {
	switch m {
	case MatrixA, MatrixB:
		var bit int
		if loc.BitLo == 0 {
			bit = neg & 1
		} else {
			bit = negHi & 1
		}
		if bit != 0 {
			loc.Sign = SignNegated
		}
	case MatrixC, MatrixD:
		negate := neg&4 != 0 || (m == MatrixC && neg&1 != 0)
		abs := negHi&4 != 0 || (m == MatrixC && negHi&1 != 0)
		switch {
		case abs && negate:
			loc.Sign = SignNegAbs
		case abs:
			loc.Sign = SignAbs
		case negate:
			loc.Sign = SignNegated
		}
	}
	return loc
}

func log2(n int) int {
	r := 0
	for n > 1 {
		n >>= 1
		r++
	}
	return r
}
