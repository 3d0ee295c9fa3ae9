// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

import "testing"

func TestLocateRejectsOutOfRangeCoordinate(t *testing.T) {
	d, err := LookupInstruction(CDNA2, "V_MFMA_F32_4X4X1F32")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	_, err = Locate(d, MatrixA, Coordinate{Matrix: MatrixA, I: 99, K: 0, Block: 0}, Modifiers{})
	if err == nil {
		t.Fatal("expected OutOfRangeCoordinate for I beyond M")
	}
	merr, ok := err.(*Error)
	if !ok || merr.Kind != ErrOutOfRangeCoordinate {
		t.Fatalf("err = %v, want ErrOutOfRangeCoordinate", err)
	}
}

func TestLookupRejectsOutOfRangeLane(t *testing.T) {
	d, err := LookupInstruction(CDNA2, "V_MFMA_F32_4X4X1F32")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if _, err := Lookup(d, MatrixA, 0, d.WaveSize, Modifiers{}); err == nil {
		t.Fatal("expected OutOfRangeCoordinate for a lane beyond the wave")
	}
}

func TestLookupUnknownMatrixIsBadUsage(t *testing.T) {
	d, err := LookupInstruction(CDNA3, "V_MFMA_F64_16X16X4_F64")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if _, err := Lookup(d, MatrixK, 0, 0, Modifiers{}); err == nil {
		t.Fatal("expected BadUsage: K is not defined on a dense (non-sparse) descriptor")
	}
}

// TestDenseBRoundTripsUnderBLGPSwizzle checks that every output lane
// BLGP=1 broadcasts to still resolves, via Lookup, back to a coordinate
// Locate agrees with at the matching source lane.
func TestDenseBRoundTripsUnderBLGPSwizzle(t *testing.T) {
	d, err := LookupInstruction(CDNA1, "V_MFMA_F32_4X4X1F32")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	mods := Modifiers{BLGP: 1}
	for lane := 0; lane < d.WaveSize; lane++ {
		entries, err := Lookup(d, MatrixB, 0, lane, mods)
		if err != nil {
			t.Fatalf("lookup lane %d: %v", lane, err)
		}
		for _, e := range entries {
			loc, err := Locate(d, MatrixB, e.Coord, mods)
			if err != nil {
				t.Fatalf("locate %v: %v", e.Coord, err)
			}
			if loc.Lane != lane {
				t.Errorf("coord %v locates to lane %d, lookup found it at lane %d", e.Coord, loc.Lane, lane)
			}
		}
	}
}

// TestMultiRowCDRoundTrips exercises PatternMultiRowCD end to end: every
// occupied (gpr, lane) must Lookup to a coordinate that Locates back to
// the same (gpr, lane).
func TestMultiRowCDRoundTrips(t *testing.T) {
	d, err := LookupInstruction(CDNA1, "V_MFMA_I32_32X32X4I8")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	maxGPR := d.GPRCount(MatrixD) - 1
	for gpr := 0; gpr <= maxGPR; gpr++ {
		for lane := 0; lane < d.WaveSize; lane++ {
			entries, err := Lookup(d, MatrixD, gpr, lane, Modifiers{})
			if err != nil {
				t.Fatalf("lookup gpr%d lane%d: %v", gpr, lane, err)
			}
			for _, e := range entries {
				loc, err := Locate(d, MatrixD, e.Coord, Modifiers{})
				if err != nil {
					t.Fatalf("locate %v: %v", e.Coord, err)
				}
				if loc.GPROffset != gpr || loc.Lane != lane {
					t.Errorf("coord %v round-trips to gpr%d lane%d, want gpr%d lane%d", e.Coord, loc.GPROffset, loc.Lane, gpr, lane)
				}
			}
		}
	}
}
