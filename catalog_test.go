// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

import "testing"

// TestDetailInstruction exercises E1: reporting an instruction's static
// metadata fields.
func TestDetailInstruction(t *testing.T) {
	d, err := LookupInstruction(CDNA2, "V_MFMA_F32_4X4X1F32")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if d.OpcodeVOP3P != 0x42 || d.OpcodeVOP3PMAI != 0x2 {
		t.Errorf("opcodes = %#x/%#x, want 0x42/0x2", d.OpcodeVOP3P, d.OpcodeVOP3PMAI)
	}
	if d.Dimensions != (Dimensions{M: 4, N: 4, K: 1, Blocks: 16}) {
		t.Errorf("dimensions = %+v", d.Dimensions)
	}
	if d.Execution.FLOPs != 512 || d.Execution.Cycles != 8 {
		t.Errorf("execution = %+v", d.Execution)
	}
	if d.GPRs != (GPRCounts{A: 1, B: 1, C: 4, D: 4}) {
		t.Errorf("gprs = %+v", d.GPRs)
	}
	if d.AlignBytes != 8 {
		t.Errorf("align = %d, want 8", d.AlignBytes)
	}
}

// TestGetRegisterA exercises E2: forward coordinate-to-register lookup.
func TestGetRegisterA(t *testing.T) {
	d, err := LookupInstruction(CDNA2, "V_MFMA_F32_4X4X4F16")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	loc, err := Locate(d, MatrixA, Coordinate{Matrix: MatrixA, I: 1, K: 2, Block: 4}, Modifiers{})
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if loc.GPROffset != 1 || loc.Lane != 17 || loc.BitLo != 0 || loc.BitHi != 15 {
		t.Fatalf("loc = %+v, want gpr1 lane17 [15:0]", loc)
	}
}

// TestMatrixEntry exercises E3: reverse register-to-coordinate lookup,
// which must report both packed sub-fields.
func TestMatrixEntry(t *testing.T) {
	d, err := LookupInstruction(CDNA2, "V_MFMA_F32_4X4X4F16")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	entries, err := Lookup(d, MatrixA, 1, 17, Modifiers{})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Coord != (Coordinate{Matrix: MatrixA, I: 1, K: 2, Block: 4}) || entries[0].BitHi != 15 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Coord != (Coordinate{Matrix: MatrixA, I: 1, K: 3, Block: 4}) || entries[1].BitLo != 16 || entries[1].BitHi != 31 {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

// TestGetRegisterD exercises E4: D's coordinate addressing matches the
// same block and J/I roles used to locate its A/B/C operands.
func TestGetRegisterD(t *testing.T) {
	d, err := LookupInstruction(CDNA2, "V_MFMA_F32_4X4X4F16")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	loc, err := Locate(d, MatrixD, Coordinate{Matrix: MatrixD, I: 3, J: 2, Block: 1}, Modifiers{})
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if loc.GPROffset != 3 || loc.Lane != 6 {
		t.Fatalf("loc = %+v, want gpr3 lane6", loc)
	}
	aLoc, _ := Locate(d, MatrixA, Coordinate{Matrix: MatrixA, I: 3, K: 0, Block: 1}, Modifiers{})
	if aLoc.Lane != 7 {
		t.Fatalf("A lane = %d, want 7", aLoc.Lane)
	}
	bLoc, _ := Locate(d, MatrixB, Coordinate{Matrix: MatrixB, J: 2, K: 0, Block: 1}, Modifiers{})
	if bLoc.Lane != 6 {
		t.Fatalf("B lane = %d, want 6", bLoc.Lane)
	}
}

// TestRegisterLayoutCBSZBroadcast exercises E5: CBSZ/ABID collapse all
// blocks onto the ABID-selected block's lane range.
func TestRegisterLayoutCBSZBroadcast(t *testing.T) {
	d, err := LookupInstruction(CDNA2, "V_MFMA_F32_16X16X2BF16")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	mods := Modifiers{CBSZ: 2, ABID: 2}
	for block := 0; block < d.Dimensions.Blocks; block++ {
		loc, err := Locate(d, MatrixA, Coordinate{Matrix: MatrixA, I: 0, K: 0, Block: block}, mods)
		if err != nil {
			t.Fatalf("locate block %d: %v", block, err)
		}
		if loc.Lane < 32 || loc.Lane > 47 {
			t.Errorf("block %d lane = %d, want [32,47]", block, loc.Lane)
		}
		if loc.GPROffset != 0 {
			t.Errorf("block %d gpr = %d, want 0", block, loc.GPROffset)
		}
	}
}

// TestMatrixLayoutBLGPNegate exercises E6: BLGP as a negate mask leaves
// lane arithmetic untouched while flipping every cell's sign.
func TestMatrixLayoutBLGPNegate(t *testing.T) {
	d, err := LookupInstruction(CDNA3, "V_MFMA_F64_16X16X4_F64")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	c := Coordinate{Matrix: MatrixB, J: 5, K: 1, Block: 0}
	base, _ := Locate(d, MatrixB, c, Modifiers{})
	negated, err := Locate(d, MatrixB, c, Modifiers{BLGP: 6})
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if negated.Lane != base.Lane || negated.GPROffset != base.GPROffset {
		t.Fatalf("lane arithmetic changed under BLGP=6: base=%+v negated=%+v", base, negated)
	}
	if negated.Sign != SignNegated {
		t.Fatalf("sign = %v, want SignNegated", negated.Sign)
	}
}

// TestGetRegisterSparseK exercises E7: the wave32 compression-index
// addressing, including OPSEL's K-range reindexing.
func TestGetRegisterSparseK(t *testing.T) {
	d, err := LookupInstruction(RDNA4, "V_SWMMAC_F32_16X16X32_F16")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	loc, err := Locate(d, MatrixK, Coordinate{Matrix: MatrixK, I: 2, K: 31, Block: 0}, Modifiers{OPSEL: 1})
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if loc.GPROffset != 0 || loc.Lane != 18 || loc.BitLo != 28 || loc.BitHi != 31 {
		t.Fatalf("loc = %+v, want gpr0 lane18 [31:28]", loc)
	}
}

func TestResolveArchitectureAliases(t *testing.T) {
	cases := map[string]ArchitectureID{
		"cdna2": CDNA2, "MI250X": CDNA2, "gfx942": CDNA3, "rdna4": RDNA4, "gfx1201": RDNA4,
	}
	for alias, want := range cases {
		got, err := Resolve(alias)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", alias, err)
		}
		if got != want {
			t.Errorf("Resolve(%q) = %v, want %v", alias, got, want)
		}
	}
	if _, err := Resolve("nonsense"); err == nil {
		t.Error("Resolve(\"nonsense\") succeeded, want error")
	}
}
