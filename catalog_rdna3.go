// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

// loadRDNA3 seeds the gfx11xx (RDNA3) WMMA instruction catalog: dense
// wave32 C/D addressing, with OPSEL selecting the low/high half of a
// 16-bit-packed accumulator register.
func loadRDNA3() {
	archRegFile := RegFiles{Arch: true}

	register(RDNA3, Descriptor{
		Mnemonic:       "V_WMMA_F32_16X16X16_F16",
		Encoding:       EncodingVOP3P,
		OpcodeVOP3P:    0x40,
		OpcodeVOP3PMAI: -1,
		Dimensions:     Dimensions{M: 16, N: 16, K: 16, Blocks: 1},
		Execution:      Execution{FLOPs: 8192, Cycles: 16},
		GPRs:           GPRCounts{A: 8, B: 8, C: 16, D: 16},
		AlignBytes:     4,
		SrcTypes:       [4]DataType{TypeFP16, TypeFP16, TypeFP32, TypeFP32},
		RegFileA:       archRegFile,
		RegFileB:       archRegFile,
		RegFileCD:      archRegFile,
		Modifiers:      ModifierSupport{OPSEL: true, NEG: true, NEGHI: true},
		Rules: map[Matrix]MappingRule{
			MatrixA: ruleDenseA(32, 1, 16),
			MatrixB: ruleDenseB(16, 16),
			MatrixC: ruleWave32CD(16, 16),
			MatrixD: ruleWave32CD(16, 16),
		},
	})

	register(RDNA3, Descriptor{
		Mnemonic:       "V_WMMA_I32_16X16X16_IU8",
		Encoding:       EncodingVOP3P,
		OpcodeVOP3P:    0x41,
		OpcodeVOP3PMAI: -1,
		Dimensions:     Dimensions{M: 16, N: 16, K: 16, Blocks: 1},
		Execution:      Execution{FLOPs: 8192, Cycles: 16},
		GPRs:           GPRCounts{A: 4, B: 4, C: 16, D: 16},
		AlignBytes:     4,
		SrcTypes:       [4]DataType{TypeINT8, TypeINT8, TypeINT32, TypeINT32},
		RegFileA:       archRegFile,
		RegFileB:       archRegFile,
		RegFileCD:      archRegFile,
		Modifiers:      ModifierSupport{},
		Rules: map[Matrix]MappingRule{
			MatrixA: ruleDenseA(32, 1, 8),
			MatrixB: ruleDenseB(16, 8),
			MatrixC: ruleWave32CD(16, 32),
			MatrixD: ruleWave32CD(16, 32),
		},
	})
}
