// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"fmt"
	"log"
	"math"

	"github.com/emer/etable/etensor"
	"github.com/emer/lfpkern/lfp"
	"github.com/emer/lfpkern/potjans"
	"gonum.org/v1/gonum/floats"
)

// connProbEps is the threshold below which a connection probability
// counts as no pathway.
const connProbEps = 1e-9

// RankSize identifies this process within the set of processes
// cooperating on the precomputation.  Process identity is passed in
// explicitly -- the driver never consults global MPI state.
type RankSize struct {
	Rank int `desc:"0-based rank of this process"`
	N    int `desc:"total number of cooperating processes"`
}

// Single is the RankSize of an uncooperating single process.
var Single = RankSize{Rank: 0, N: 1}

// Config configures the precomputation driver.
type Config struct {
	Proc      RankSize `desc:"this process within the cooperating set"`
	Overwrite bool     `desc:"recompute kernels even if already present in the store"`
}

// Driver runs the per-pathway kernel precomputation and assembles the
// per-population summed kernels.  Pathway tasks are independent and
// statically assigned round-robin across the cooperating processes;
// each writes only its own pathways' store entries, so no locking is
// needed.  The caller must synchronize all processes (e.g. an MPI
// barrier) between Run and LoadPathways, so every store entry is
// visible before aggregation.
type Driver struct {
	Cfg      Config
	Net      *potjans.NetParams          `desc:"network statistics"`
	Store    *Store                      `desc:"resumable pathway kernel store"`
	Prov     Provider                    `desc:"pathway kernel provider"`
	Profiles map[string][]float64        `desc:"normalized layer input profile per pathway, from the connectivity table"`
	Pathways map[string]*etensor.Float64 `desc:"pathway kernels loaded from the store -- missing pathways are absent"`
}

// Run computes the kernel for every pathway task assigned to this
// process: pathways with negligible connection probability are
// skipped (no store entry -- the valid no-connection state), and
// pathways already in the store are skipped unless Overwrite is set,
// which makes interrupted runs resumable.
func (dr *Driver) Run() error {
	ti := 0
	for pi, post := range potjans.Pops {
		for qi, pre := range potjans.PrePops {
			if ti%dr.Cfg.Proc.N == dr.Cfg.Proc.Rank {
				if err := dr.RunPathway(post, pi, pre, qi); err != nil {
					return err
				}
			}
			ti++
		}
	}
	return nil
}

// RunPathway computes and stores the kernel for one pathway.
func (dr *Driver) RunPathway(post string, postIdx int, pre string, preIdx int) error {
	key := lfp.PathwayName(post, pre)
	cp := dr.Net.ConnProb(postIdx, preIdx)
	if math.Abs(cp) < connProbEps {
		return nil // no pathway
	}
	if !dr.Cfg.Overwrite && dr.Store.Has(key) {
		return nil // already computed
	}
	prof := append([]float64(nil), dr.Profiles[key]...)
	if len(prof) == 0 {
		prof = make([]float64, len(potjans.Layers))
	}
	if floats.Sum(prof) < connProbEps {
		// the connection probability is non-negligible but the
		// connectivity table yielded no layer data for this pathway:
		// assume all input lands in the postsynaptic cell's own layer
		log.Printf("kernels: pathway %s has connection probability %g but no layer profile -- defaulting input to the postsynaptic layer\n", key, cp)
		prof[potjans.LayerIdxOfPop(post)] = 1
	}
	psp := dr.Net.PSPMean(postIdx, preIdx)
	if dr.Net.KScaling != 1 {
		// synapse weights compensate the indegree scaling
		psp /= math.Sqrt(dr.Net.KScaling)
		cp *= dr.Net.KScaling
	}
	szs := dr.Net.PopSizes()
	ps := &PathwaySpec{
		Post:       post,
		Pre:        pre,
		LayerInput: prof,
		Weight:     psp * dr.Net.Neuron.PSCOverPSP(),
		NPre:       szs[preIdx],
		NPost:      szs[postIdx],
		ConnProb:   cp,
		DelayMean:  dr.Net.DelayMean(postIdx, preIdx),
		DelaySD:    dr.Net.DelaySD(preIdx),
		TauSyn:     dr.Net.Neuron.TauSyn,
	}
	k, err := dr.Prov.PathwayKernel(ps)
	if err != nil {
		return fmt.Errorf("kernels: pathway %s: %v", key, err)
	}
	return dr.Store.Save(key, k)
}

// LoadPathways loads every pathway kernel present in the store into
// Pathways.  Call only after all cooperating processes have completed
// Run and the caller has synchronized.
func (dr *Driver) LoadPathways() error {
	dr.Pathways = make(map[string]*etensor.Float64)
	for _, post := range potjans.Pops {
		for _, pre := range potjans.PrePops {
			key := lfp.PathwayName(post, pre)
			if !dr.Store.Has(key) {
				continue
			}
			k, err := dr.Store.Load(key)
			if err != nil {
				return err
			}
			dr.Pathways[key] = k
		}
	}
	return nil
}

// PopKernels sums the loaded pathway kernels into one kernel per
// presynaptic population, across all postsynaptic targets.
func (dr *Driver) PopKernels() map[string]*etensor.Float64 {
	return lfp.SumPathways(dr.Pathways, potjans.PrePops, dr.Store.NChans, dr.Store.KernLen)
}
