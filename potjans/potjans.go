// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package potjans holds the anatomical and synaptic parameters of the
Potjans & Diesmann (2014) cortical microcircuit model that the LFP
kernel derivation depends on: population sizes, the connection
probability map including the thalamocortical pathway, postsynaptic
potential and delay statistics, single-neuron membrane parameters,
cortical layer geometry, and the extracellular electrode layout.

The network itself is simulated externally -- only its statistics
live here.
*/
package potjans

import "math"

// Pops are the eight cortical populations of the microcircuit, in
// standard order.
var Pops = []string{"L23E", "L23I", "L4E", "L4I", "L5E", "L5I", "L6E", "L6I"}

// PrePops are the presynaptic populations: the cortical eight plus
// the external thalamocortical population.
var PrePops = []string{"L23E", "L23I", "L4E", "L4I", "L5E", "L5I", "L6E", "L6I", "TC"}

// NPops is the number of cortical (postsynaptic) populations.
const NPops = 8

// FullNumNeurons are the full-scale population sizes.
var FullNumNeurons = []int{20683, 5834, 21915, 5479, 4850, 1065, 14395, 2948}

// ConnProbs are the connection probabilities, postsynaptic population
// by row, presynaptic by column, both in Pops order.
var ConnProbs = [NPops][NPops]float64{
	{0.1009, 0.1689, 0.0437, 0.0818, 0.0323, 0.0, 0.0076, 0.0},
	{0.1346, 0.1371, 0.0316, 0.0515, 0.0755, 0.0, 0.0042, 0.0},
	{0.0077, 0.0059, 0.0497, 0.135, 0.0067, 0.0003, 0.0453, 0.0},
	{0.0691, 0.0029, 0.0794, 0.1597, 0.0033, 0.0, 0.1057, 0.0},
	{0.1004, 0.0622, 0.0505, 0.0057, 0.0831, 0.3726, 0.0204, 0.0},
	{0.0548, 0.0269, 0.0257, 0.0022, 0.06, 0.3158, 0.0086, 0.0},
	{0.0156, 0.0066, 0.0211, 0.0166, 0.0572, 0.0197, 0.0396, 0.2252},
	{0.0364, 0.001, 0.0034, 0.0005, 0.0277, 0.008, 0.0658, 0.1443},
}

// Layers are the cortical layers of the column, pial surface first.
var Layers = []string{"1", "23", "4", "5", "6"}

// LayerBounds are the depth boundaries of each layer in µm, upper
// then lower, from Hagen et al. (2016).
var LayerBounds = map[string][2]float64{
	"1":  {0.0, -81.6},
	"23": {-81.6, -587.1},
	"4":  {-587.1, -922.2},
	"5":  {-922.2, -1170.0},
	"6":  {-1170.0, -1491.7},
}

// LayerMid returns the depth midpoint of the given layer.
func LayerMid(layer string) float64 {
	b := LayerBounds[layer]
	return (b[0] + b[1]) / 2
}

// LayerThickness returns the thickness of the given layer.
func LayerThickness(layer string) float64 {
	b := LayerBounds[layer]
	return b[0] - b[1]
}

// LayerOfPop returns the layer name of a cortical population
// (L23E -> 23).
func LayerOfPop(pop string) string {
	return pop[1 : len(pop)-1]
}

// LayerIdxOfPop returns the Layers index of a cortical population's
// layer.
func LayerIdxOfPop(pop string) int {
	ly := LayerOfPop(pop)
	for i, l := range Layers {
		if l == ly {
			return i
		}
	}
	return -1
}

// PopIdx returns the PrePops index of a population name, or -1.
func PopIdx(pop string) int {
	for i, p := range PrePops {
		if p == pop {
			return i
		}
	}
	return -1
}

// NeuronParams are the leaky integrate-and-fire membrane parameters
// shared by all model neurons.
type NeuronParams struct {
	TauSyn float64 `def:"0.5" desc:"postsynaptic current time constant (msec)"`
	TauM   float64 `def:"10" desc:"membrane time constant (msec)"`
	CM     float64 `def:"250" desc:"membrane capacitance (pF)"`
	EL     float64 `def:"-65" desc:"leak reversal potential (mV)"`
}

func (np *NeuronParams) Defaults() {
	np.TauSyn = 0.5
	np.TauM = 10
	np.CM = 250
	np.EL = -65
}

// PSCOverPSP returns the factor converting a postsynaptic potential
// amplitude (mV) into the peak postsynaptic current (nA) that
// produces it, for the exponential synapse model.
func (np *NeuronParams) PSCOverPSP() float64 {
	sub := 1 / (np.TauSyn - np.TauM)
	pre := np.TauM * np.TauSyn / np.CM * sub
	frac := math.Pow(np.TauM/np.TauSyn, sub)
	return 1 / (pre * (math.Pow(frac, np.TauM) - math.Pow(frac, np.TauSyn))) * 1e-3
}

// StimParams are the thalamocortical stimulus parameters.
type StimParams struct {
	NumThNeurons int     `def:"902" desc:"number of thalamic neurons"`
	PSPTh        float64 `def:"0.15" desc:"mean thalamocortical postsynaptic potential (mV)"`
	DelayThMean  float64 `def:"1.5" desc:"mean thalamocortical delay (msec)"`
	DelayThSD    float64 `def:"0.5" desc:"thalamocortical delay standard deviation relative to the mean"`
	ConnProbsTh  [NPops]float64
}

func (sp *StimParams) Defaults() {
	sp.NumThNeurons = 902
	sp.PSPTh = 0.15
	sp.DelayThMean = 1.5
	sp.DelayThSD = 0.5
	sp.ConnProbsTh = [NPops]float64{0.0, 0.0, 0.0983, 0.0619, 0.0, 0.0, 0.0512, 0.0196}
}

// NetParams are the network-level statistics needed for kernel
// derivation: scaling factors, synapse strength and delay matrices,
// plus the membrane and stimulus parameters.
type NetParams struct {
	NScaling   float64 `def:"1" desc:"population size scaling factor"`
	KScaling   float64 `def:"1" desc:"indegree scaling factor -- synapse weights are compensated accordingly"`
	PSPBase    float64 `def:"0.15" desc:"mean excitatory postsynaptic potential (mV)"`
	PSPRel234  float64 `def:"2" desc:"relative strength of the L4E to L23E pathway"`
	G          float64 `def:"-4" desc:"relative inhibitory synaptic strength"`
	DelayExc   float64 `def:"1.5" desc:"mean excitatory delay (msec)"`
	DelayInh   float64 `def:"0.75" desc:"mean inhibitory delay (msec)"`
	DelayRelSD float64 `def:"0.5" desc:"delay standard deviation relative to the mean"`
	Neuron     NeuronParams
	Stim       StimParams
}

func (nt *NetParams) Defaults() {
	nt.NScaling = 1
	nt.KScaling = 1
	nt.PSPBase = 0.15
	nt.PSPRel234 = 2
	nt.G = -4
	nt.DelayExc = 1.5
	nt.DelayInh = 0.75
	nt.DelayRelSD = 0.5
	nt.Neuron.Defaults()
	nt.Stim.Defaults()
}

// PopSizes returns the scaled population sizes in PrePops order,
// with the thalamic population last.
func (nt *NetParams) PopSizes() []float64 {
	szs := make([]float64, len(PrePops))
	for i, n := range FullNumNeurons {
		szs[i] = float64(n) * nt.NScaling
	}
	szs[len(szs)-1] = float64(nt.Stim.NumThNeurons)
	return szs
}

// ConnProb returns the connection probability from presynaptic
// population preIdx (PrePops order) to postsynaptic population
// postIdx (Pops order).
func (nt *NetParams) ConnProb(postIdx, preIdx int) float64 {
	if preIdx == len(PrePops)-1 {
		return nt.Stim.ConnProbsTh[postIdx]
	}
	return ConnProbs[postIdx][preIdx]
}

// PSPMean returns the mean postsynaptic potential (mV) for the given
// pathway: excitatory PSPBase, doubled for L4E to L23E, G-scaled for
// inhibitory sources, and the thalamic value for TC.
func (nt *NetParams) PSPMean(postIdx, preIdx int) float64 {
	if preIdx == len(PrePops)-1 {
		return nt.Stim.PSPTh
	}
	if preIdx%2 == 1 { // inhibitory populations alternate with excitatory
		return nt.G * nt.PSPBase
	}
	if PrePops[preIdx] == "L4E" && Pops[postIdx] == "L23E" {
		return nt.PSPRel234 * nt.PSPBase
	}
	return nt.PSPBase
}

// DelayMean returns the mean synaptic delay (msec) for the given
// pathway.
func (nt *NetParams) DelayMean(postIdx, preIdx int) float64 {
	switch {
	case preIdx == len(PrePops)-1:
		return nt.Stim.DelayThMean
	case preIdx%2 == 1:
		return nt.DelayInh
	default:
		return nt.DelayExc
	}
}

// DelaySD returns the synaptic delay standard deviation (msec) for
// the given presynaptic population.
func (nt *NetParams) DelaySD(preIdx int) float64 {
	if preIdx == len(PrePops)-1 {
		return nt.Stim.DelayThSD
	}
	return nt.DelayRelSD
}

// ElecParams is the extracellular laminar electrode: a vertical array
// of contacts along the depth axis where the LFP is predicted.
type ElecParams struct {
	NChans  int     `def:"16" desc:"number of recording channels"`
	Spacing float64 `def:"100" desc:"vertical distance between contacts (µm)"`
	Sigma   float64 `def:"0.3" desc:"extracellular conductivity (S/m)"`
}

func (ep *ElecParams) Defaults() {
	ep.NChans = 16
	ep.Spacing = 100
	ep.Sigma = 0.3
}

// ZCoords returns the contact depth coordinates: channel i at
// -i * Spacing.
func (ep *ElecParams) ZCoords() []float64 {
	zs := make([]float64, ep.NChans)
	for i := range zs {
		zs[i] = -float64(i) * ep.Spacing
	}
	return zs
}

// KernelParams parameterize the kernel prediction itself.  These are
// fairly static and should not need to change across network
// configurations.
type KernelParams struct {
	Tau       float64 `def:"50" desc:"time lag relative to the spike covered by the kernel, both ways (msec)"`
	Transient float64 `def:"200" desc:"initial simulation time ignored in kernel prediction (msec)"`
	SpreadDz  float64 `def:"4" desc:"layer thickness over this factor is the gaussian SD of somas and synapses along depth"`
	Area      float64 `def:"1e6" desc:"cortical column area (µm^2)"`
}

func (kp *KernelParams) Defaults() {
	kp.Tau = 50
	kp.Transient = 200
	kp.SpreadDz = 4
	kp.Area = 1000 * 1000
}

// Length returns the kernel length in time steps at resolution dt:
// twice the Tau lag, always even.
func (kp *KernelParams) Length(dt float64) int {
	return 2 * int(kp.Tau/dt)
}

// Radius returns the equivalent-area column radius (µm).
func (kp *KernelParams) Radius() float64 {
	return math.Sqrt(kp.Area / math.Pi)
}
