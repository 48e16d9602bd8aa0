// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lfp

import (
	"fmt"
	"strings"

	"github.com/goki/ki/kit"
)

// PopClass are the broad classes of presynaptic populations,
// determining synapse targeting in kernel generation (inhibitory
// inputs may target all compartments, excitatory only dendrites)
// and display conventions.
type PopClass int

//go:generate stringer -type=PopClass

var KiT_PopClass = kit.Enums.AddEnum(PopClassN, false, nil)

func (ev PopClass) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *PopClass) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Excitatory are cortical excitatory populations (names ending in E).
	Excitatory PopClass = iota

	// Inhibitory are cortical inhibitory populations (names ending in I).
	Inhibitory

	// Thalamic is the external thalamocortical population (TC).
	Thalamic

	PopClassN
)

// ClassFmName returns the population class implied by a standard
// population name (L23E, L4I, TC, ...).
func ClassFmName(name string) PopClass {
	switch {
	case strings.HasPrefix(name, "TC"):
		return Thalamic
	case strings.HasSuffix(name, "I"):
		return Inhibitory
	default:
		return Excitatory
	}
}

// Pops is the fixed registry of presynaptic populations, with the
// mapping from external spike-recorder IDs to population names.
// It is established at initialization time and immutable thereafter.
type Pops struct {
	Names []string       `desc:"population names in canonical order"`
	IDs   map[int]string `desc:"spike-recorder ID to population name"`
}

// NewPops creates the registry for the given ordered population names
// and the parallel list of spike-recorder IDs identifying them in
// incoming spike buffers.
func NewPops(names []string, recIDs []int) (*Pops, error) {
	if len(names) != len(recIDs) {
		return nil, fmt.Errorf("lfp.NewPops: %d population names but %d recorder IDs", len(names), len(recIDs))
	}
	ps := &Pops{
		Names: names,
		IDs:   make(map[int]string, len(names)),
	}
	seen := make(map[string]bool, len(names))
	for i, nm := range names {
		if seen[nm] {
			return nil, fmt.Errorf("lfp.NewPops: duplicate population name: %s", nm)
		}
		seen[nm] = true
		if _, dup := ps.IDs[recIDs[i]]; dup {
			return nil, fmt.Errorf("lfp.NewPops: duplicate recorder ID: %d", recIDs[i])
		}
		ps.IDs[recIDs[i]] = nm
	}
	return ps, nil
}

// NameFmID resolves a spike-recorder ID to its population name.
// An unknown ID is a fatal lookup failure: misattributing a spike
// would corrupt the running state irrecoverably.
func (ps *Pops) NameFmID(id int) (string, error) {
	nm, ok := ps.IDs[id]
	if !ok {
		return "", fmt.Errorf("lfp.Pops: spike-recorder ID %d is not mapped to any population", id)
	}
	return nm, nil
}
