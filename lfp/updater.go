// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lfp

import (
	"fmt"

	"github.com/emer/etable/etensor"
)

// SpikeEvent is one spike received over the co-simulation boundary:
// the recorder ID identifying the source population, the ID of the
// spiking neuron (carried but unused), and the spike time in msec.
type SpikeEvent struct {
	RecID    int     `desc:"spike-recorder ID -- resolved to a population name through the Pops registry"`
	NeuronID int     `desc:"ID of the spiking neuron -- not used in the LFP prediction"`
	Time     float64 `desc:"spike time (msec)"`
}

// Updater converts batches of spike events into a running
// multi-channel LFP estimate, by convolving each population's binned
// firing rate with its precomputed kernel and accumulating the result
// into the time window covered by the batch.
//
// Each Update call must cover a time window at or after the windows
// of prior calls: re-delivering spikes for grid indexes already
// covered by an earlier batch window would re-accumulate those
// contributions.  Under that monotonic-advance contract, the
// accumulated signal is identical to a single full-trace convolution
// of the complete firing-rate history, which SelfCheck verifies.
//
// All state is single-writer: Update is intended to be called
// synchronously, once per arriving batch.
type Updater struct {
	Grid    *TimeGrid                   `desc:"shared time grid -- immutable after initialization"`
	Pops    *Pops                       `desc:"population registry and recorder-ID mapping -- immutable after initialization"`
	Kernels map[string]*etensor.Float64 `desc:"summed kernel per presynaptic population, channels x KernLen -- immutable after initialization"`
	NChans  int                         `inactive:"+" desc:"number of recording channels"`
	KernLen int                         `inactive:"+" desc:"kernel length in time steps -- even and uniform across populations"`
	Rates   map[string]*etensor.Int     `desc:"per-population spike counts on the time grid"`
	LFP     *etensor.Float64            `desc:"accumulated LFP signal, channels x grid length"`
}

// NewUpdater creates an Updater over the given grid, population
// registry and per-population kernels, with zeroed firing-rate and
// LFP state pre-sized to the full grid length.  Every registered
// population must have a kernel, all kernels must share one
// channels x length shape, and the length must be even.
func NewUpdater(grid *TimeGrid, pops *Pops, kernels map[string]*etensor.Float64) (*Updater, error) {
	if len(pops.Names) == 0 {
		return nil, fmt.Errorf("lfp.NewUpdater: no populations")
	}
	k0, ok := kernels[pops.Names[0]]
	if !ok {
		return nil, fmt.Errorf("lfp.NewUpdater: no kernel for population %s", pops.Names[0])
	}
	chans, klen := k0.Dim(0), k0.Dim(1)
	up := &Updater{
		Grid:    grid,
		Pops:    pops,
		Kernels: kernels,
		NChans:  chans,
		KernLen: klen,
		Rates:   make(map[string]*etensor.Int, len(pops.Names)),
	}
	for _, nm := range pops.Names {
		k, ok := kernels[nm]
		if !ok {
			return nil, fmt.Errorf("lfp.NewUpdater: no kernel for population %s", nm)
		}
		if err := KernelShape(k, chans, klen); err != nil {
			return nil, fmt.Errorf("lfp.NewUpdater: population %s: %v", nm, err)
		}
		up.Rates[nm] = etensor.NewInt([]int{grid.NPts}, nil, []string{"Time"})
	}
	up.LFP = etensor.NewFloat64([]int{chans, grid.NPts}, nil, []string{"Chan", "Time"})
	return up, nil
}

// Update consumes one batch of spike events, incrementing the
// per-population firing rates and accumulating the corresponding LFP
// contribution over the batch time window.  An empty batch is a
// no-op.  Spike times past the simulation horizon are dropped
// silently: they are outside the grid, not merged into the final bin.
// An unmapped recorder ID returns an error before any state is
// mutated.
func (up *Updater) Update(buf []SpikeEvent) error {
	if len(buf) == 0 {
		return nil
	}
	// resolve all recorder IDs before touching anything, so a bad ID
	// cannot leave partial state behind
	byPop := make(map[string][]float64)
	t0, t1 := buf[0].Time, buf[0].Time
	for _, ev := range buf {
		nm, err := up.Pops.NameFmID(ev.RecID)
		if err != nil {
			return err
		}
		byPop[nm] = append(byPop[nm], ev.Time)
		if ev.Time < t0 {
			t0 = ev.Time
		}
		if ev.Time > t1 {
			t1 = ev.Time
		}
	}
	tmax := up.Grid.T()
	t0i := up.Grid.IdxFmTime(t0)
	t1i := up.Grid.IdxFmTime(t1) + 1
	half := up.KernLen / 2

	// output window: contributions start at the window start and the
	// convolution tail extends half a kernel beyond the window end
	sig0 := t0i
	sig1 := t1i + half - 1
	if sig1 > up.Grid.NPts {
		sig1 = up.Grid.NPts
	}

	for nm, times := range byPop {
		fr := up.Rates[nm]
		for _, t := range times {
			if t > tmax { // beyond the simulation horizon
				continue
			}
			fr.Values[up.Grid.IdxFmTime(t)]++
		}
		win := fr.Values[t0i:t1i]
		k := up.Kernels[nm]
		for ch := 0; ch < up.NChans; ch++ {
			kr := k.Values[ch*up.KernLen : (ch+1)*up.KernLen]
			seg := convSeg(kr, win, half)
			dst := up.LFP.Values[ch*up.Grid.NPts+sig0 : ch*up.Grid.NPts+sig1]
			n := len(dst)
			if len(seg) < n {
				n = len(seg)
			}
			for i := 0; i < n; i++ {
				dst[i] += seg[i]
			}
		}
	}
	return nil
}

// convSeg computes the full (non-truncated) linear convolution of
// kernel kr with the spike-count window win, then discards the first
// off samples: the kernel is centered on the triggering spike, so
// only the aligned portion from the midpoint onward contributes at
// and after the spike's grid index.
func convSeg(kr []float64, win []int, off int) []float64 {
	out := make([]float64, len(win)+len(kr)-1)
	for i, c := range win {
		if c == 0 {
			continue
		}
		fc := float64(c)
		for j, kv := range kr {
			out[i+j] += fc * kv
		}
	}
	return out[off:]
}

// SelfCheck recomputes the LFP in one pass from the complete
// firing-rate history, convolving each population's full count array
// with its kernel, and returns the maximum absolute deviation from
// the incrementally accumulated signal.  For disjoint, time-ordered
// update batches the deviation is zero up to floating-point roundoff.
func (up *Updater) SelfCheck() float64 {
	n := up.Grid.NPts
	half := up.KernLen / 2
	maxDev := 0.0
	acc := make([]float64, n)
	for ch := 0; ch < up.NChans; ch++ {
		for i := range acc {
			acc[i] = 0
		}
		for _, nm := range up.Pops.Names {
			kr := up.Kernels[nm].Values[ch*up.KernLen : (ch+1)*up.KernLen]
			seg := convSeg(kr, up.Rates[nm].Values, half)
			for i := 0; i < n; i++ {
				acc[i] += seg[i]
			}
		}
		lrow := up.LFP.Values[ch*n : (ch+1)*n]
		for i := 0; i < n; i++ {
			dev := acc[i] - lrow[i]
			if dev < 0 {
				dev = -dev
			}
			if dev > maxDev {
				maxDev = dev
			}
		}
	}
	return maxDev
}
