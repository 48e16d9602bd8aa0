// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"math"
	"testing"

	"github.com/emer/lfpkern/potjans"
)

func TestGaussProvider(t *testing.T) {
	elec := &potjans.ElecParams{}
	elec.Defaults()
	elec.NChans = 4
	kp := &potjans.KernelParams{}
	kp.Defaults()
	kp.Tau = 5
	gp := NewGaussProvider(1, elec, kp)
	if gp.KernLen != 10 {
		t.Fatalf("kernel length: %d", gp.KernLen)
	}
	ps := &PathwaySpec{
		Post:       "L23E",
		Pre:        "L4E",
		LayerInput: []float64{1, 0, 0, 0, 0}, // all input in layer 1
		Weight:     0.0878,
		NPre:       21915,
		NPost:      20683,
		ConnProb:   0.0437,
		DelayMean:  1.5,
		DelaySD:    0.5,
		TauSyn:     0.5,
	}
	k, err := gp.PathwayKernel(ps)
	if err != nil {
		t.Fatal(err)
	}
	half := gp.KernLen / 2
	mx := 0.0
	for ci := 0; ci < elec.NChans; ci++ {
		row := k.Values[ci*gp.KernLen : (ci+1)*gp.KernLen]
		// no response precedes the spike: delays are at least one step
		for i := 0; i <= half; i++ {
			if row[i] != 0 {
				t.Errorf("chan %d sample %d: %v, expected 0 before the first delay", ci, i, row[i])
			}
		}
		for _, v := range row {
			if math.Abs(v) > mx {
				mx = math.Abs(v)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("chan %d: non-finite kernel value %v", ci, v)
			}
		}
	}
	if mx == 0 {
		t.Error("kernel is identically zero")
	}
	// input in layer 1 is closest to the top contact: the depth
	// profile must not be uniform across channels
	if k.Value([]int{0, half + 1}) == k.Value([]int{3, half + 1}) {
		t.Error("depth profile is flat across channels")
	}
	// deterministic across calls
	k2, err := gp.PathwayKernel(ps)
	if err != nil {
		t.Fatal(err)
	}
	for i := range k.Values {
		if k.Values[i] != k2.Values[i] {
			t.Fatal("provider is not deterministic")
		}
	}
}

func TestGaussProviderSynapseTargeting(t *testing.T) {
	elec := &potjans.ElecParams{}
	elec.Defaults()
	elec.NChans = 4
	kp := &potjans.KernelParams{}
	kp.Defaults()
	kp.Tau = 5
	gp := NewGaussProvider(1, elec, kp)
	exc := &PathwaySpec{
		Post:       "L23E",
		Pre:        "L4E",
		LayerInput: []float64{0, 0.25, 0.75, 0, 0},
		Weight:     0.0878,
		NPre:       21915,
		NPost:      20683,
		ConnProb:   0.0437,
		DelayMean:  1.5,
		DelaySD:    0.5,
		TauSyn:     0.5,
	}
	inh := &PathwaySpec{}
	*inh = *exc
	inh.Pre = "L4I"
	ke, err := gp.PathwayKernel(exc)
	if err != nil {
		t.Fatal(err)
	}
	ki, err := gp.PathwayKernel(inh)
	if err != nil {
		t.Fatal(err)
	}
	// half the inhibitory input current enters at the soma layer,
	// where it cancels against the return current, so all else equal
	// the inhibitory dipole is half the dendrite-targeting one
	for i := range ke.Values {
		if math.Abs(ki.Values[i]-0.5*ke.Values[i]) > 1.0e-15 {
			t.Fatalf("sample %d: inhibitory %v vs excitatory %v, expected half", i, ki.Values[i], ke.Values[i])
		}
	}
}

func TestGaussProviderBadInput(t *testing.T) {
	elec := &potjans.ElecParams{}
	elec.Defaults()
	kp := &potjans.KernelParams{}
	kp.Defaults()
	gp := NewGaussProvider(0.1, elec, kp)
	if _, err := gp.PathwayKernel(&PathwaySpec{Post: "L4E", Pre: "TC", LayerInput: []float64{1, 0}}); err == nil {
		t.Error("short layer profile accepted")
	}
}
