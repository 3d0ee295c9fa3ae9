// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

// loadRDNA4 seeds the gfx12xx (RDNA4) WMMA/SWMMAC instruction catalog:
// a dense wave32 WMMA descriptor, plus structured-sparsity SWMMAC with
// OPSEL selecting which half of the K range the shared compression-index
// GPR currently carries.
func loadRDNA4() {
	archRegFile := RegFiles{Arch: true}

	register(RDNA4, Descriptor{
		Mnemonic:       "V_WMMA_F32_16X16X16_BF16",
		Encoding:       EncodingVOP3P,
		OpcodeVOP3P:    0x42,
		OpcodeVOP3PMAI: -1,
		Dimensions:     Dimensions{M: 16, N: 16, K: 16, Blocks: 1},
		Execution:      Execution{FLOPs: 8192, Cycles: 16},
		GPRs:           GPRCounts{A: 8, B: 8, C: 16, D: 16},
		AlignBytes:     4,
		SrcTypes:       [4]DataType{TypeBF16, TypeBF16, TypeFP32, TypeFP32},
		RegFileA:       archRegFile,
		RegFileB:       archRegFile,
		RegFileCD:      archRegFile,
		Modifiers:      ModifierSupport{NEG: true, NEGHI: true},
		Rules: map[Matrix]MappingRule{
			MatrixA: ruleDenseA(32, 1, 16),
			MatrixB: ruleDenseB(16, 16),
			MatrixC: ruleWave32CD(16, 32),
			MatrixD: ruleWave32CD(16, 32),
		},
	})

	// Structured 2:4 sparsity on a wave32 architecture: the compression
	// index lives in a single shared GPR at lane LanesPerBlock+I (the
	// upper half of the wave); OPSEL=1 reindexes K by a fixed offset so
	// the hardware's two K halves both land on that same GPR range. See
	// DESIGN.md's sparse K register-packing interpretation.
	register(RDNA4, Descriptor{
		Mnemonic:       "V_SWMMAC_F32_16X16X32_F16",
		Encoding:       EncodingVOP3P,
		OpcodeVOP3P:    0x50,
		OpcodeVOP3PMAI: -1,
		Dimensions:     Dimensions{M: 16, N: 16, K: 32, Blocks: 1},
		Execution:      Execution{FLOPs: 16384, Cycles: 16},
		GPRs:           GPRCounts{A: 16, B: 16, C: 16, D: 16, K: 4},
		AlignBytes:     4,
		SrcTypes:       [4]DataType{TypeFP16, TypeFP16, TypeFP32, TypeFP32},
		RegFileA:       archRegFile,
		RegFileB:       archRegFile,
		RegFileCD:      archRegFile,
		IsSparse:       true,
		Modifiers:      ModifierSupport{OPSEL: true, NEG: true, NEGHI: true},
		Rules: map[Matrix]MappingRule{
			MatrixA: ruleDenseA(32, 1, 16),
			MatrixB: ruleDenseB(16, 16),
			MatrixC: ruleWave32CD(16, 32),
			MatrixD: ruleWave32CD(16, 32),
			MatrixK: ruleSparseKWave32(32, 4, 24),
		},
	})
}
