// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"fmt"
	"math"

	"github.com/emer/etable/etensor"
	"github.com/emer/lfpkern/lfp"
	"github.com/emer/lfpkern/potjans"
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussProvider is a self-contained analytic kernel provider: the
// compound postsynaptic current (exponential decay, weighted by the
// expected synapse count, smeared by a truncated-normal delay
// distribution) multiplied by a gaussian source-sink depth profile
// over the electrode contacts.  Per layer, synaptic input contributes
// a current source spread as a gaussian around the layer midline,
// with the return current spread around the postsynaptic soma layer.
// Synapse targeting follows the presynaptic class: excitatory input
// lands on the dendrites at the input layer, while inhibitory input
// targets every compartment, the soma included, so half of its
// current enters at the soma layer and the dipole is shortened.
//
// It replaces the external compartmental-model capability with a
// forward-model approximation, so the full precomputation and online
// pipeline can run without an external simulator.
type GaussProvider struct {
	Dt      float64               `desc:"simulation time step (msec)"`
	NChans  int                   `desc:"number of recording channels"`
	KernLen int                   `desc:"kernel length in time steps -- even"`
	Elec    *potjans.ElecParams   `desc:"electrode geometry and conductivity"`
	Kp      *potjans.KernelParams `desc:"kernel parameters -- depth spread and column radius"`
}

// NewGaussProvider returns a provider producing kernels of shape
// (elec.NChans, kp.Length(dt)).
func NewGaussProvider(dt float64, elec *potjans.ElecParams, kp *potjans.KernelParams) *GaussProvider {
	return &GaussProvider{Dt: dt, NChans: elec.NChans, KernLen: kp.Length(dt), Elec: elec, Kp: kp}
}

// PathwayKernel derives the analytic kernel for one pathway.  The
// front half of the kernel is zero: delays are bounded below by one
// time step, so no response precedes the spike.
func (gp *GaussProvider) PathwayKernel(ps *PathwaySpec) (*etensor.Float64, error) {
	if len(ps.LayerInput) != len(potjans.Layers) {
		return nil, fmt.Errorf("kernels.GaussProvider: %s: layer input has %d entries, expected %d", lfp.PathwayName(ps.Post, ps.Pre), len(ps.LayerInput), len(potjans.Layers))
	}
	half := gp.KernLen / 2

	// delay distribution on the time grid, truncated below at one step
	delay := distuv.Normal{Mu: ps.DelayMean, Sigma: ps.DelaySD}
	nd := half
	dw := make([]float64, nd)
	dsum := 0.0
	for i := range dw {
		d := float64(i+1) * gp.Dt
		dw[i] = delay.Prob(d)
		dsum += dw[i]
	}
	if dsum > 0 {
		for i := range dw {
			dw[i] /= dsum
		}
	}

	// compound temporal response: delay-smeared exponential current
	tk := make([]float64, gp.KernLen)
	for i := half; i < gp.KernLen; i++ {
		lag := float64(i-half) * gp.Dt
		v := 0.0
		for j, w := range dw {
			s := lag - float64(j+1)*gp.Dt
			if s < 0 {
				break // delays only grow from here
			}
			v += w * math.Exp(-s/ps.TauSyn)
		}
		tk[i] = v
	}

	// per-channel depth profile: per-layer gaussian sources against a
	// gaussian return at the postsynaptic soma layer
	postLy := potjans.LayerOfPop(ps.Post)
	ret := distuv.Normal{Mu: potjans.LayerMid(postLy), Sigma: potjans.LayerThickness(postLy) / gp.Kp.SpreadDz}
	zs := gp.Elec.ZCoords()
	cw := make([]float64, gp.NChans)
	cls := lfp.ClassFmName(ps.Pre)
	for li, ly := range potjans.Layers {
		in := ps.LayerInput[li]
		if in == 0 {
			continue
		}
		src := distuv.Normal{Mu: potjans.LayerMid(ly), Sigma: potjans.LayerThickness(ly) / gp.Kp.SpreadDz}
		for ci, z := range zs {
			sp := src.Prob(z)
			if cls == lfp.Inhibitory {
				// soma targeting: half the input current enters at
				// the soma layer instead of the input layer
				sp = 0.5*sp + 0.5*ret.Prob(z)
			}
			cw[ci] += in * (sp - ret.Prob(z))
		}
	}

	// expected synapses per presynaptic spike scale the amplitude,
	// attenuated by the volume conductor
	amp := ps.Weight * ps.ConnProb * ps.NPre / (4 * math.Pi * gp.Elec.Sigma * gp.Kp.Radius())

	k := lfp.NewKernel(gp.NChans, gp.KernLen)
	for ci, w := range cw {
		row := k.Values[ci*gp.KernLen : (ci+1)*gp.KernLen]
		aw := amp * w
		for i, v := range tk {
			row[i] = aw * v
		}
	}
	return k, nil
}
