// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

// loadCDNA1 seeds the gfx908 (Arcturus/MI100) instruction catalog: the
// original CDNA dense MFMA family, its lane-swizzle BLGP mode, and the
// integer accumulate path.
func loadCDNA1() {
	archRegFile := RegFiles{Arch: true}
	accRegFile := RegFiles{Arch: true, Acc: true}

	register(CDNA1, Descriptor{
		Mnemonic:       "V_MFMA_F32_4X4X1F32",
		Encoding:       EncodingVOP3PMAI,
		OpcodeVOP3P:    0x40,
		OpcodeVOP3PMAI: 0x0,
		Dimensions:     Dimensions{M: 4, N: 4, K: 1, Blocks: 16},
		Execution:      Execution{FLOPs: 512, Cycles: 8},
		GPRs:           GPRCounts{A: 1, B: 1, C: 4, D: 4},
		AlignBytes:     8,
		SrcTypes:       [4]DataType{TypeFP32, TypeFP32, TypeFP32, TypeFP32},
		RegFileA:       archRegFile,
		RegFileB:       archRegFile,
		RegFileCD:      accRegFile,
		Modifiers: ModifierSupport{
			CBSZ: true, ABID: true, BLGP: true, NEG: true, NEGHI: true,
			CBSZMod: CBSZDenseBroadcast, BLGPMod: BLGPLaneSwizzle,
		},
		Rules: map[Matrix]MappingRule{
			MatrixA: ruleDenseA(64, 16, 32),
			MatrixB: ruleDenseB(4, 32),
			MatrixC: ruleDenseCD(4, 32),
			MatrixD: ruleDenseCD(4, 32),
		},
	})

	register(CDNA1, Descriptor{
		Mnemonic:       "V_MFMA_F32_4X4X4F16",
		Encoding:       EncodingVOP3PMAI,
		OpcodeVOP3P:    0x41,
		OpcodeVOP3PMAI: 0x1,
		Dimensions:     Dimensions{M: 4, N: 4, K: 4, Blocks: 16},
		Execution:      Execution{FLOPs: 2048, Cycles: 32},
		GPRs:           GPRCounts{A: 2, B: 2, C: 4, D: 4},
		AlignBytes:     8,
		SrcTypes:       [4]DataType{TypeFP16, TypeFP16, TypeFP32, TypeFP32},
		RegFileA:       archRegFile,
		RegFileB:       archRegFile,
		RegFileCD:      accRegFile,
		Modifiers: ModifierSupport{
			CBSZ: true, ABID: true, BLGP: true, NEG: true, NEGHI: true,
			CBSZMod: CBSZDenseBroadcast, BLGPMod: BLGPLaneSwizzle,
		},
		Rules: map[Matrix]MappingRule{
			MatrixA: ruleDenseA(64, 16, 16),
			MatrixB: ruleDenseB(4, 16),
			MatrixC: ruleDenseCD(4, 32),
			MatrixD: ruleDenseCD(4, 32),
		},
	})

	register(CDNA1, Descriptor{
		Mnemonic:       "V_MFMA_F32_16X16X4F16",
		Encoding:       EncodingVOP3PMAI,
		OpcodeVOP3P:    0x44,
		OpcodeVOP3PMAI: 0x4,
		Dimensions:     Dimensions{M: 16, N: 16, K: 4, Blocks: 4},
		Execution:      Execution{FLOPs: 8192, Cycles: 16},
		GPRs:           GPRCounts{A: 2, B: 2, C: 16, D: 16},
		AlignBytes:     8,
		SrcTypes:       [4]DataType{TypeFP16, TypeFP16, TypeFP32, TypeFP32},
		RegFileA:       archRegFile,
		RegFileB:       archRegFile,
		RegFileCD:      accRegFile,
		Modifiers: ModifierSupport{
			CBSZ: true, ABID: true, BLGP: true, NEG: true, NEGHI: true,
			CBSZMod: CBSZDenseBroadcast, BLGPMod: BLGPLaneSwizzle,
		},
		Rules: map[Matrix]MappingRule{
			MatrixA: ruleDenseA(64, 4, 16),
			MatrixB: ruleDenseB(16, 16),
			MatrixC: ruleDenseCD(16, 32),
			MatrixD: ruleDenseCD(16, 32),
		},
	})

	// Multi-row C/D addressing (spec family 2): 32 accumulator rows share
	// 16 physical GPRs, two rows per GPR, selected by lane half.
	register(CDNA1, Descriptor{
		Mnemonic:       "V_MFMA_I32_32X32X4I8",
		Encoding:       EncodingVOP3PMAI,
		OpcodeVOP3P:    0x45,
		OpcodeVOP3PMAI: 0x5,
		Dimensions:     Dimensions{M: 32, N: 32, K: 4, Blocks: 1},
		Execution:      Execution{FLOPs: 8192, Cycles: 32},
		GPRs:           GPRCounts{A: 1, B: 1, C: 16, D: 16},
		AlignBytes:     4,
		SrcTypes:       [4]DataType{TypeINT8, TypeINT8, TypeINT32, TypeINT32},
		RegFileA:       archRegFile,
		RegFileB:       archRegFile,
		RegFileCD:      accRegFile,
		Modifiers: ModifierSupport{
			CBSZ: true, ABID: true, NEG: true, NEGHI: true,
			CBSZMod: CBSZDenseBroadcast,
		},
		Rules: map[Matrix]MappingRule{
			MatrixA: ruleDenseA(64, 1, 8),
			MatrixB: ruleDenseB(32, 8),
			MatrixC: ruleMultiRowCD(2, 1, 64, 32),
			MatrixD: ruleMultiRowCD(2, 1, 64, 32),
		},
	})
}
