// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package binzegger parses the Binzegger et al. (2004) laminar synaptic
connectivity table for cat V1, as distributed in json form with the
Potjans-Diesmann model, and derives the normalized layer-specific
synaptic input profile for each directed connection pathway between
model populations.

Each model population is made up of anatomical subpopulations (e.g.
L4E = p4, ss4(L23), ss4(L4)), each with a relative occurrence and,
per cortical layer, a total synapse count per neuron plus the
percentage of those synapses contributed by every presynaptic
subpopulation.  Many subpopulations in the table are not part of the
model; per-layer percentages still sum to 100 over all of them, which
is checked while parsing is aggregated.
*/
package binzegger

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
)

// Layers are the cortical layers distinguished by the connectivity
// table, in pial-to-white-matter order.
var Layers = []string{"1", "23", "4", "5", "6"}

// NLayers is the number of cortical layers.
const NLayers = 5

// KPerNeuronKey is the in-table key holding the total synapse count,
// mixed in with the per-source percentage entries.
const KPerNeuronKey = "number of synapses per neuron"

// SubPops lists the table subpopulations making up each model
// population.
var SubPops = map[string][]string{
	"L23E": {"p23"},
	"L23I": {"b23", "nb23"},
	"L4E":  {"p4", "ss4(L23)", "ss4(L4)"},
	"L4I":  {"b4", "nb4"},
	"L5E":  {"p5(L23)", "p5(L56)"},
	"L5I":  {"b5", "nb5"},
	"L6E":  {"p6(L4)", "p6(L56)"},
	"L6I":  {"b6", "nb6"},
	"TC":   {"TCs", "TCn"},
}

// PopFmSubPop maps each table subpopulation to its model population.
var PopFmSubPop = map[string]string{
	"p23":      "L23E",
	"b23":      "L23I",
	"nb23":     "L23I",
	"p4":       "L4E",
	"ss4(L23)": "L4E",
	"ss4(L4)":  "L4E",
	"b4":       "L4I",
	"nb4":      "L4I",
	"p5(L23)":  "L5E",
	"p5(L56)":  "L5E",
	"b5":       "L5I",
	"nb5":      "L5I",
	"p6(L4)":   "L6E",
	"p6(L56)":  "L6E",
	"b6":       "L6I",
	"nb6":      "L6I",
	"TCs":      "TC",
	"TCn":      "TC",
}

// LayerSyn is the synaptic input to one layer of one postsynaptic
// subpopulation.
type LayerSyn struct {
	KPerNeuron float64            `desc:"total number of synapses per neuron in this layer"`
	SrcPct     map[string]float64 `desc:"percent of those synapses from each presynaptic subpopulation"`
}

// SubPop is one postsynaptic subpopulation entry of the table.
type SubPop struct {
	Occurrence float64              `desc:"relative occurrence of this subpopulation"`
	SynDict    map[string]*LayerSyn `desc:"per-layer synaptic input, keyed by layer name"`
}

// Table is the parsed connectivity table.
type Table struct {
	Data map[string]*SubPop `desc:"subpopulation entries, keyed by subpopulation name"`
}

// OpenTable reads and parses the connectivity table json file.
func OpenTable(fname string) (*Table, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("binzegger.OpenTable: %v", err)
	}
	return ParseTable(b)
}

// ParseTable parses the connectivity table from its json form,
// splitting the total synapse count out of each layer's percentage
// map.
func ParseTable(b []byte) (*Table, error) {
	var raw struct {
		Data map[string]struct {
			Occurrence float64                       `json:"occurrence"`
			SynDict    map[string]map[string]float64 `json:"syn_dict"`
		} `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("binzegger.ParseTable: %v", err)
	}
	tb := &Table{Data: make(map[string]*SubPop, len(raw.Data))}
	for nm, sd := range raw.Data {
		sp := &SubPop{Occurrence: sd.Occurrence, SynDict: make(map[string]*LayerSyn, len(sd.SynDict))}
		for ly, srcs := range sd.SynDict {
			ls := &LayerSyn{SrcPct: make(map[string]float64, len(srcs))}
			for src, v := range srcs {
				if src == KPerNeuronKey {
					ls.KPerNeuron = v
				} else {
					ls.SrcPct[src] = v
				}
			}
			sp.SynDict[ly] = ls
		}
		tb.Data[nm] = sp
	}
	return tb, nil
}

// PathwayProfiles computes the normalized layer-specific synaptic
// input profile for every directed pathway post:pre between the given
// model populations.  Per postsynaptic subpopulation, synapse counts
// from each presynaptic population are accumulated per layer and
// normalized; subpopulation profiles are then combined weighted by
// relative occurrence.  A pathway with no connectivity data yields an
// all-zero profile.
func (tb *Table) PathwayProfiles(postPops, prePops []string) (map[string][]float64, error) {
	pres := make(map[string]bool, len(prePops))
	for _, p := range prePops {
		pres[p] = true
	}

	// per postsynaptic subpopulation: layer-wise input counts from
	// each presynaptic population
	subProf := map[string][]float64{}
	for _, post := range postPops {
		for _, sub := range SubPops[post] {
			for _, pre := range prePops {
				subProf[sub+":"+pre] = make([]float64, NLayers)
			}
			sd, ok := tb.Data[sub]
			if !ok {
				return nil, fmt.Errorf("binzegger: subpopulation %s not in table", sub)
			}
			for li, ly := range Layers {
				ls, ok := sd.SynDict[ly]
				if !ok {
					continue
				}
				sum := 0.0
				for src, pct := range ls.SrcPct {
					sum += pct
					pre, ok := PopFmSubPop[src]
					if !ok || !pres[pre] {
						continue
					}
					// synapses from this source onto this layer of
					// the subpopulation
					subProf[sub+":"+pre][li] += pct / 100 * ls.KPerNeuron
				}
				if math.Round(sum) != 100 {
					return nil, fmt.Errorf("binzegger: %s layer %s: source percentages sum to %v, expected 100", sub, ly, sum)
				}
			}
		}
	}
	for _, prof := range subProf {
		if s := floats.Sum(prof); s > 0 {
			floats.Scale(1/s, prof)
		}
	}

	// combine subpopulation profiles weighted by relative occurrence
	profs := make(map[string][]float64, len(postPops)*len(prePops))
	for _, post := range postPops {
		subs := SubPops[post]
		occ := make([]float64, len(subs))
		for i, sub := range subs {
			occ[i] = tb.Data[sub].Occurrence
		}
		osum := floats.Sum(occ)
		for _, pre := range prePops {
			prof := make([]float64, NLayers)
			for i, sub := range subs {
				floats.AddScaled(prof, occ[i]/osum, subProf[sub+":"+pre])
			}
			profs[post+":"+pre] = prof
		}
	}
	return profs, nil
}
