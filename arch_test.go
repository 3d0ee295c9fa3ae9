// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

import "testing"

func TestResolveCaseInsensitive(t *testing.T) {
	id, err := Resolve("  GfX90A  ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id != CDNA2 {
		t.Errorf("got %v, want CDNA2", id)
	}
}

func TestResolveEmptyName(t *testing.T) {
	if _, err := Resolve(""); err == nil {
		t.Fatal("expected error for empty architecture name")
	}
}

func TestWaveSizeByGeneration(t *testing.T) {
	for _, a := range []ArchitectureID{CDNA1, CDNA2, CDNA3} {
		if a.WaveSize() != 64 {
			t.Errorf("%v.WaveSize() = %d, want 64", a, a.WaveSize())
		}
	}
	for _, a := range []ArchitectureID{RDNA3, RDNA4} {
		if a.WaveSize() != 32 {
			t.Errorf("%v.WaveSize() = %d, want 32", a, a.WaveSize())
		}
	}
}

func TestInstructionsOfNonEmpty(t *testing.T) {
	for _, a := range []ArchitectureID{CDNA1, CDNA2, CDNA3, RDNA3, RDNA4} {
		if len(InstructionsOf(a)) == 0 {
			t.Errorf("InstructionsOf(%v) is empty", a)
		}
	}
}

func TestCanonicalNameUppercasesFirstAlias(t *testing.T) {
	if got := CDNA3.CanonicalName(); got != "CDNA3" {
		t.Errorf("CanonicalName() = %q, want %q", got, "CDNA3")
	}
}
