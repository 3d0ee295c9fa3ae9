// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

// loadCDNA3 seeds the gfx940/941/942 (Aqua Vanjaram/MI300) instruction
// catalog: FP64 MFMA with BLGP as a negate mask, FP8 dense MFMA, and
// SMFMAC structured-sparsity MFMA with CBSZ/ABID field selection.
func loadCDNA3() {
	archRegFile := RegFiles{Arch: true}
	accRegFile := RegFiles{Arch: true, Acc: true}

	register(CDNA3, Descriptor{
		Mnemonic:       "V_MFMA_F64_16X16X4_F64",
		Encoding:       EncodingVOP3PMAI,
		OpcodeVOP3P:    0x4c,
		OpcodeVOP3PMAI: 0xc,
		Dimensions:     Dimensions{M: 16, N: 16, K: 4, Blocks: 1},
		Execution:      Execution{FLOPs: 2048, Cycles: 64},
		GPRs:           GPRCounts{A: 8, B: 8, C: 32, D: 32},
		AlignBytes:     16,
		SrcTypes:       [4]DataType{TypeFP64, TypeFP64, TypeFP64, TypeFP64},
		RegFileA:       archRegFile,
		RegFileB:       archRegFile,
		RegFileCD:      accRegFile,
		Modifiers: ModifierSupport{
			CBSZ: true, ABID: true, BLGP: true,
			CBSZMod: CBSZDenseBroadcast, BLGPMod: BLGPFP64Negate,
		},
		Rules: map[Matrix]MappingRule{
			MatrixA: ruleDenseA(64, 1, 64),
			MatrixB: ruleDenseB(16, 64),
			MatrixC: ruleDenseCD(16, 64),
			MatrixD: ruleDenseCD(16, 64),
		},
	})

	register(CDNA3, Descriptor{
		Mnemonic:       "V_MFMA_F32_16X16X32_FP8_FP8",
		Encoding:       EncodingVOP3PMAI,
		OpcodeVOP3P:    0x4e,
		OpcodeVOP3PMAI: 0xe,
		Dimensions:     Dimensions{M: 16, N: 16, K: 32, Blocks: 1},
		Execution:      Execution{FLOPs: 16384, Cycles: 32},
		GPRs:           GPRCounts{A: 8, B: 8, C: 16, D: 16},
		AlignBytes:     8,
		SrcTypes:       [4]DataType{TypeFP8E4M3, TypeFP8E4M3, TypeFP32, TypeFP32},
		RegFileA:       archRegFile,
		RegFileB:       archRegFile,
		RegFileCD:      accRegFile,
		Modifiers: ModifierSupport{
			CBSZ: true, ABID: true, NEG: true, NEGHI: true,
			CBSZMod: CBSZDenseBroadcast,
		},
		Rules: map[Matrix]MappingRule{
			MatrixA: ruleDenseA(64, 1, 8),
			MatrixB: ruleDenseB(16, 8),
			MatrixC: ruleDenseCD(16, 32),
			MatrixD: ruleDenseCD(16, 32),
		},
	})

	// Structured 2:4 sparsity: K carries the compression-index matrix,
	// addressed by PatternSparseKDense sharing A's row/block lane
	// formula; CBSZ/ABID select a fixed field instead of remapping
	// blocks (spec section 4.4 rule 2).
	register(CDNA3, Descriptor{
		Mnemonic:       "V_SMFMAC_F32_16X16X32_F16",
		Encoding:       EncodingVOP3PMAI,
		OpcodeVOP3P:    0x5c,
		OpcodeVOP3PMAI: 0x1c,
		Dimensions:     Dimensions{M: 16, N: 16, K: 32, Blocks: 4},
		Execution:      Execution{FLOPs: 65536, Cycles: 16},
		GPRs:           GPRCounts{A: 16, B: 16, C: 16, D: 16, K: 2},
		AlignBytes:     8,
		SrcTypes:       [4]DataType{TypeFP16, TypeFP16, TypeFP32, TypeFP32},
		RegFileA:       archRegFile,
		RegFileB:       archRegFile,
		RegFileCD:      accRegFile,
		IsSparse:       true,
		Modifiers: ModifierSupport{
			CBSZ: true, ABID: true, NEG: true, NEGHI: true,
			CBSZMod: CBSZSparseFieldSelect,
		},
		Rules: map[Matrix]MappingRule{
			MatrixA: ruleDenseA(64, 4, 16),
			MatrixB: ruleDenseB(16, 16),
			MatrixC: ruleDenseCD(16, 32),
			MatrixD: ruleDenseCD(16, 32),
			MatrixK: ruleSparseKDense(64, 4, 2),
		},
	})
}
