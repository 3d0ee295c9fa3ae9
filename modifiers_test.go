// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

import "testing"

func TestValidateModifiersRejectsUnsupported(t *testing.T) {
	d, err := LookupInstruction(RDNA3, "V_WMMA_I32_16X16X16_IU8")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	_, err = ValidateModifiers(d, MatrixA, Modifiers{OPSEL: 4})
	if err == nil {
		t.Fatal("expected UnsupportedModifier for opsel on an instruction with no modifier support")
	}
	merr, ok := err.(*Error)
	if !ok || merr.Kind != ErrUnsupportedModifier {
		t.Fatalf("err = %v, want ErrUnsupportedModifier", err)
	}
}

func TestValidateModifiersRejectsOutOfRangeCBSZ(t *testing.T) {
	d, err := LookupInstruction(CDNA2, "V_MFMA_F32_16X16X2BF16")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if _, err := ValidateModifiers(d, MatrixA, Modifiers{CBSZ: 99}); err == nil {
		t.Fatal("expected ModifierOutOfRange for cbsz above log2(blocks)")
	}
}

func TestValidateModifiersWarnsWhenInert(t *testing.T) {
	d, err := LookupInstruction(CDNA2, "V_MFMA_F32_16X16X2BF16")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	warnings, err := ValidateModifiers(d, MatrixB, Modifiers{CBSZ: 1, ABID: 0})
	if err != nil {
		t.Fatalf("ValidateModifiers: %v", err)
	}
	if len(warnings) == 0 {
		t.Fatal("expected a warning: cbsz has no effect on the B matrix")
	}
}

func TestBlgpSourceAndTargetLanesAreInverses(t *testing.T) {
	const wave = 64
	for blgp := 0; blgp < 8; blgp++ {
		for lane := 0; lane < wave; lane++ {
			src := blgpSourceLane(wave, blgp, lane)
			targets := blgpTargetLanes(wave, blgp, src)
			hit := false
			for _, tl := range targets {
				if tl == lane {
					hit = true
				}
			}
			if !hit {
				t.Errorf("blgp=%d lane=%d: src=%d has no target lane matching the original lane (targets=%v)", blgp, lane, src, targets)
			}
		}
	}
}

func TestBlgpFP64SignBits(t *testing.T) {
	cases := []struct {
		m    Matrix
		blgp int
		want Sign
	}{
		{MatrixA, 1, SignNegated},
		{MatrixA, 6, SignPositive},
		{MatrixB, 2, SignNegated},
		{MatrixC, 4, SignNegated},
		{MatrixD, 4, SignNegated},
		{MatrixA, 0, SignPositive},
	}
	for _, c := range cases {
		if got := blgpFP64Sign(c.m, c.blgp); got != c.want {
			t.Errorf("blgpFP64Sign(%v, %d) = %v, want %v", c.m, c.blgp, got, c.want)
		}
	}
}

func TestApplyNegSignCAbsoluteThenNegate(t *testing.T) {
	loc := RegisterLocation{}
	got := applyNegSign(MatrixC, loc, 1, 1)
	if got.Sign != SignNegAbs {
		t.Errorf("Sign = %v, want SignNegAbs when both NEG and NEG_HI bits are set on C", got.Sign)
	}
}

func TestApplyNegSignABHalfSelect(t *testing.T) {
	lo := RegisterLocation{BitLo: 0, BitHi: 15}
	if got := applyNegSign(MatrixA, lo, 1, 0); got.Sign != SignNegated {
		t.Errorf("low half: Sign = %v, want SignNegated", got.Sign)
	}
	hi := RegisterLocation{BitLo: 16, BitHi: 31}
	if got := applyNegSign(MatrixA, hi, 1, 0); got.Sign != SignPositive {
		t.Errorf("high half under NEG (not NEG_HI): Sign = %v, want SignPositive", got.Sign)
	}
	if got := applyNegSign(MatrixA, hi, 0, 1); got.Sign != SignNegated {
		t.Errorf("high half under NEG_HI: Sign = %v, want SignNegated", got.Sign)
	}
}
