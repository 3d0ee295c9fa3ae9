// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

import (
	"strings"

	"github.com/beevik/prefixtree/v2"
)

// ArchitectureID is the closed set of supported architecture
// generations: three datacenter "CDNA" generations and two client
// "RDNA" generations.
type ArchitectureID byte

const (
	CDNA1 ArchitectureID = iota
	CDNA2
	CDNA3
	RDNA3
	RDNA4
)

func (a ArchitectureID) String() string {
	switch a {
	case CDNA1:
		return "CDNA1"
	case CDNA2:
		return "CDNA2"
	case CDNA3:
		return "CDNA3"
	case RDNA3:
		return "RDNA3"
	case RDNA4:
		return "RDNA4"
	default:
		return "?"
	}
}

// WaveSize returns the SIMD wave width of the architecture: 64 lanes
// for the three datacenter generations, 32 for the two client
// generations.
func (a ArchitectureID) WaveSize() int {
	if a == RDNA3 || a == RDNA4 {
		return 32
	}
	return 64
}

// archAliases lists every accepted name for each architecture, per
// spec section 4.1. Matching is case-insensitive; the table stores
// lower-cased aliases only.
var archAliases = map[ArchitectureID][]string{
	CDNA1: {"cdna", "cdna1", "gfx908", "arcturus", "mi100"},
	CDNA2: {"cdna2", "gfx90a", "aldebaran", "mi200", "mi210", "mi250", "mi250x"},
	CDNA3: {
		"cdna3", "gfx940", "gfx941", "gfx942", "aqua_vanjaram",
		"mi300", "mi300a", "mi300x", "mi325x",
	},
	RDNA3: {
		"rdna3",
		"gfx1100", "gfx1101", "gfx1102", "gfx1103",
		"gfx1150", "gfx1151", "gfx1152", "gfx1153",
	},
	RDNA4: {"rdna4", "gfx1200", "gfx1201"},
}

// aliasTree resolves an abbreviated or full architecture alias to its
// ArchitectureID, the same abbreviation-friendly lookup the teacher
// gives its debugger settings (see host/settings.go in the retrieval
// pack's beevik/go6502 teacher).
var aliasTree = func() *prefixtree.Tree[ArchitectureID] {
	t := prefixtree.New[ArchitectureID]()
	for id, aliases := range archAliases {
		for _, alias := range aliases {
			t.Add(alias, id)
		}
	}
	return t
}()

// Resolve maps an architecture alias (generation name, codename, or
// chip marketing name, matched case-insensitively) to its canonical
// ArchitectureID.
func Resolve(name string) (ArchitectureID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return 0, newErr(ErrInvalidArch, "architecture", "name must not be empty")
	}
	id, err := aliasTree.FindValue(key)
	if err != nil {
		return 0, newErr(ErrInvalidArch, "architecture", "unrecognized architecture %q", name)
	}
	return id, nil
}

// CanonicalName returns an architecture's canonical (first-listed)
// alias.
func (a ArchitectureID) CanonicalName() string {
	names := archAliases[a]
	if len(names) == 0 {
		return "?"
	}
	return strings.ToUpper(names[0])
}

// InstructionsOf returns the ordered list of mnemonics the architecture
// supports.
func InstructionsOf(a ArchitectureID) []string {
	return catalogOrder[a]
}
