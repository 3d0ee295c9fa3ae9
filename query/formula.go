// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"fmt"
	"strings"

	micalc "github.com/ROCm/amd-matrix-instruction-calculator"
)

// ExplainFormula renders the full K-deep accumulation formula that
// produces one C/D cell: the sum, over every k, of the A and B register
// locations that contributed to it, plus the accumulated C term.
func ExplainFormula(d *micalc.Descriptor, c micalc.Coordinate, mods micalc.Modifiers) (string, error) {
	_, kMax, _, _ := boundsForFormula(d)
	var terms []string
	for k := 0; k < kMax; k++ {
		aLoc, err := micalc.Locate(d, micalc.MatrixA, micalc.Coordinate{Matrix: micalc.MatrixA, I: c.I, K: k, Block: c.Block}, mods)
		if err != nil {
			return "", err
		}
		bLoc, err := micalc.Locate(d, micalc.MatrixB, micalc.Coordinate{Matrix: micalc.MatrixB, J: c.J, K: k, Block: c.Block}, mods)
		if err != nil {
			return "", err
		}
		terms = append(terms, fmt.Sprintf("Src0_%s·Src1_%s", aLoc.String(), bLoc.String()))
	}
	cLoc, err := micalc.Locate(d, micalc.MatrixC, micalc.Coordinate{Matrix: micalc.MatrixC, I: c.I, J: c.J, Block: c.Block}, mods)
	if err != nil {
		return "", err
	}
	terms = append(terms, fmt.Sprintf("Src2_%s", cLoc.String()))

	dCoord := c
	dCoord.Matrix = micalc.MatrixD
	dLoc, err := micalc.Locate(d, micalc.MatrixD, dCoord, mods)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Vdst_%s = %s", dLoc.String(), strings.Join(terms, " + ")), nil
}

func boundsForFormula(d *micalc.Descriptor) (iMax, kMax, jMax, blockMax int) {
	iMax, jMax, kMax, blockMax = d.Bounds(micalc.MatrixA)
	return
}
