// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import "github.com/emer/etable/etensor"

// PathwaySpec collects everything a kernel provider needs to derive
// the impulse response of one directed pathway, in model units:
// msec for times, mV/nA for synapse strength, µm for geometry.
type PathwaySpec struct {
	Post       string    `desc:"postsynaptic population name"`
	Pre        string    `desc:"presynaptic population name"`
	LayerInput []float64 `desc:"normalized layer-specific synaptic input profile (5 layers)"`
	Weight     float64   `desc:"peak postsynaptic current per synapse (nA)"`
	NPre       float64   `desc:"presynaptic population size"`
	NPost      float64   `desc:"postsynaptic population size"`
	ConnProb   float64   `desc:"connection probability, after indegree scaling compensation"`
	DelayMean  float64   `desc:"mean synaptic delay (msec)"`
	DelaySD    float64   `desc:"synaptic delay standard deviation (msec)"`
	TauSyn     float64   `desc:"postsynaptic current time constant (msec)"`
}

// Provider derives the channels x length kernel for one pathway.
// This is the black-box kernel generation capability: implementations
// typically wrap an external compartmental-model simulation, while
// GaussProvider is a self-contained analytic reference.
type Provider interface {
	PathwayKernel(ps *PathwaySpec) (*etensor.Float64, error)
}
