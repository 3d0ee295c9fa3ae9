// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"testing"

	micalc "github.com/ROCm/amd-matrix-instruction-calculator"
)

func TestListInstructions(t *testing.T) {
	names := ListInstructions(micalc.CDNA2)
	if len(names) == 0 {
		t.Fatal("expected at least one instruction for CDNA2")
	}
	found := false
	for _, n := range names {
		if n == "V_MFMA_F32_4X4X1F32" {
			found = true
		}
	}
	if !found {
		t.Errorf("V_MFMA_F32_4X4X1F32 missing from %v", names)
	}
}

func TestDetailRequiresKnownInstruction(t *testing.T) {
	if _, err := Detail(Args{Arch: micalc.CDNA2, Instruction: "NOT_A_REAL_INSTRUCTION"}); err == nil {
		t.Fatal("expected error for unknown instruction")
	}
}

func TestGetRegisterRequiresMatrix(t *testing.T) {
	_, err := GetRegister(Args{Arch: micalc.CDNA2, Instruction: "V_MFMA_F32_4X4X1F32", HasI: true})
	if err == nil {
		t.Fatal("expected BadUsage for missing matrix selection")
	}
	var merr *micalc.Error
	if !asError(err, &merr) || merr.Kind != micalc.ErrBadUsage {
		t.Fatalf("err = %v, want BadUsage", err)
	}
}

func TestGetRegisterRequiresCoordinate(t *testing.T) {
	_, err := GetRegister(Args{Arch: micalc.CDNA2, Instruction: "V_MFMA_F32_4X4X1F32", Matrix: micalc.MatrixA, HasMatrix: true})
	if err == nil {
		t.Fatal("expected BadUsage for missing I coordinate")
	}
}

func TestGetRegisterCompressionOverridesMatrix(t *testing.T) {
	a := Args{
		Arch: micalc.RDNA4, Instruction: "V_SWMMAC_F32_16X16X32_F16",
		Matrix: micalc.MatrixA, HasMatrix: true,
		Compression: true, HasI: true, I: 2, K: 31, HasK: true,
		Mods: micalc.Modifiers{OPSEL: 1},
	}
	res, err := GetRegister(a)
	if err != nil {
		t.Fatalf("GetRegister: %v", err)
	}
	if res.Location.GPROffset != 0 || res.Location.Lane != 18 || res.Location.BitLo != 28 {
		t.Fatalf("loc = %+v, want gpr0 lane18 lo28", res.Location)
	}
}

// TestGetRegisterFormula re-verifies E4's accumulation formula via the
// facade, matching the coordinate used in mapper/catalog tests.
func TestGetRegisterFormula(t *testing.T) {
	a := Args{
		Arch: micalc.CDNA2, Instruction: "V_MFMA_F32_4X4X4F16",
		Matrix: micalc.MatrixD, HasMatrix: true,
		I: 3, HasI: true, J: 2, HasJ: true, Block: 1, HasBlock: true,
		Formula: true,
	}
	res, err := GetRegister(a)
	if err != nil {
		t.Fatalf("GetRegister: %v", err)
	}
	want := "Vdst_v3{6} = Src0_v0{7}.[15:0]·Src1_v0{6}.[15:0] + Src0_v0{7}.[31:16]·Src1_v0{6}.[31:16] + " +
		"Src0_v1{7}.[15:0]·Src1_v1{6}.[15:0] + Src0_v1{7}.[31:16]·Src1_v1{6}.[31:16] + Src2_v3{6}"
	if res.Formula != want {
		t.Errorf("formula = %q, want %q", res.Formula, want)
	}
}

func TestGetRegisterFormulaOnlyForCD(t *testing.T) {
	a := Args{
		Arch: micalc.CDNA2, Instruction: "V_MFMA_F32_4X4X4F16",
		Matrix: micalc.MatrixA, HasMatrix: true,
		I: 1, HasI: true, K: 2, HasK: true, Block: 4, HasBlock: true,
		Formula: true,
	}
	res, err := GetRegister(a)
	if err != nil {
		t.Fatalf("GetRegister: %v", err)
	}
	if res.Formula != "" {
		t.Errorf("formula = %q, want empty for an A-matrix query", res.Formula)
	}
}

func TestMatrixEntryRequiresRegisterAndLane(t *testing.T) {
	_, err := MatrixEntry(Args{Arch: micalc.CDNA2, Instruction: "V_MFMA_F32_4X4X4F16", Matrix: micalc.MatrixA, HasMatrix: true, HasReg: true})
	if err == nil {
		t.Fatal("expected BadUsage for missing lane")
	}
}

func TestRegisterLayoutCoversEveryCell(t *testing.T) {
	res, err := RegisterLayout(Args{Arch: micalc.CDNA2, Instruction: "V_MFMA_F32_4X4X1F32", Matrix: micalc.MatrixA, HasMatrix: true})
	if err != nil {
		t.Fatalf("RegisterLayout: %v", err)
	}
	if len(res.Cells) != 64 {
		t.Fatalf("got %d occupied cells, want 64 (1 A GPR x 64 lanes)", len(res.Cells))
	}
	for _, c := range res.Cells {
		if len(c.Entries) == 0 {
			t.Errorf("cell gpr=%d lane=%d has no entries", c.GPR, c.Lane)
		}
	}
}

func asError(err error, target **micalc.Error) bool {
	e, ok := err.(*micalc.Error)
	if ok {
		*target = e
	}
	return ok
}
