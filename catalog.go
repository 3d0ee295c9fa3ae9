// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

import (
	"fmt"
	"strings"
)

// byArch is the read-only, process-initialized descriptor table, keyed
// by (architecture, uppercased mnemonic), following the teacher's
// init()-time table assembly in instructions.go.
var byArch = map[ArchitectureID]map[string]*Descriptor{}

// catalogOrder preserves each architecture's instruction ordering for
// list_instructions, mirroring the teacher's per-name variant ordering.
var catalogOrder = map[ArchitectureID][]string{}

func register(a ArchitectureID, d Descriptor) {
	d.Mnemonic = strings.ToUpper(d.Mnemonic)
	d.WaveSize = a.WaveSize()
	if byArch[a] == nil {
		byArch[a] = make(map[string]*Descriptor)
	}
	cp := d
	byArch[a][d.Mnemonic] = &cp
	catalogOrder[a] = append(catalogOrder[a], d.Mnemonic)
}

func init() {
	loadCDNA1()
	loadCDNA2()
	loadCDNA3()
	loadRDNA3()
	loadRDNA4()
	for a, descs := range byArch {
		for _, d := range descs {
			if err := selfCheck(d); err != nil {
				panic(fmt.Sprintf("%s: catalog self-check failed for %s/%s: %v", ErrCatalogInconsistency, a, d.Mnemonic, err))
			}
		}
	}
}

// LookupInstruction returns the descriptor for (arch, mnemonic). Matching is
// case-insensitive.
func LookupInstruction(a ArchitectureID, mnemonic string) (*Descriptor, error) {
	descs, ok := byArch[a]
	if !ok {
		return nil, newErr(ErrInvalidArch, "architecture", "unrecognized architecture %v", a)
	}
	d, ok := descs[strings.ToUpper(mnemonic)]
	if !ok {
		return nil, newErr(ErrUnknownInstruction, "instruction", "%s is not defined for %s", mnemonic, a)
	}
	return d, nil
}

// selfCheck runs spec section 4.2 and 8's construction-time round trip:
// for every matrix the descriptor defines, enumerate its coordinate
// space, locate each coordinate, and assert that looking the resulting
// register location back up reports that same coordinate.
func selfCheck(d *Descriptor) error {
	for m := range d.Rules {
		iMax, jMax, kMax, blockMax := d.Bounds(m)
		for block := 0; block < blockMax; block++ {
			for i := 0; i < iMax; i++ {
				for j := 0; j < jMax; j++ {
					for k := 0; k < kMax; k++ {
						c := Coordinate{Matrix: m, I: i, J: j, K: k, Block: block}
						loc, err := Locate(d, m, c, Modifiers{})
						if err != nil {
							return fmt.Errorf("locate %v: %w", c, err)
						}
						entries, err := Lookup(d, m, loc.GPROffset, loc.Lane, Modifiers{})
						if err != nil {
							return fmt.Errorf("lookup of %v (from %v): %w", loc, c, err)
						}
						if !containsCoord(entries, c) {
							return fmt.Errorf("round trip broke: locate(%v) = %v, but lookup(%v) did not report %v", c, loc, loc, c)
						}
					}
				}
			}
		}
	}
	return nil
}

func containsCoord(entries []Entry, c Coordinate) bool {
	for _, e := range entries {
		if e.Coord == c {
			return true
		}
	}
	return false
}
