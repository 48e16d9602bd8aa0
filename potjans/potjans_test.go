// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potjans

import (
	"math"
	"testing"
)

func TestPSCOverPSP(t *testing.T) {
	np := &NeuronParams{}
	np.Defaults()
	// a 0.15 mV PSP corresponds to a 87.8 pA peak current in the
	// full-scale model
	w := 0.15 * np.PSCOverPSP()
	if math.Abs(w-0.0878) > 2e-4 {
		t.Errorf("PSC for 0.15 mV PSP: %v nA, expected ~0.0878", w)
	}
}

func TestPSPMean(t *testing.T) {
	nt := &NetParams{}
	nt.Defaults()
	if v := nt.PSPMean(PopIdx("L23E"), PopIdx("L4E")); v != 0.3 {
		t.Errorf("L4E to L23E PSP: %v, expected 0.3", v)
	}
	if v := nt.PSPMean(PopIdx("L4E"), PopIdx("L4E")); v != 0.15 {
		t.Errorf("L4E to L4E PSP: %v, expected 0.15", v)
	}
	if v := nt.PSPMean(PopIdx("L4E"), PopIdx("L4I")); v != -0.6 {
		t.Errorf("L4I to L4E PSP: %v, expected -0.6", v)
	}
	if v := nt.PSPMean(PopIdx("L4E"), PopIdx("TC")); v != 0.15 {
		t.Errorf("TC to L4E PSP: %v, expected 0.15", v)
	}
}

func TestConnProb(t *testing.T) {
	nt := &NetParams{}
	nt.Defaults()
	if v := nt.ConnProb(PopIdx("L23E"), PopIdx("L23E")); v != 0.1009 {
		t.Errorf("L23E to L23E: %v", v)
	}
	if v := nt.ConnProb(PopIdx("L4E"), PopIdx("TC")); v != 0.0983 {
		t.Errorf("TC to L4E: %v", v)
	}
	if v := nt.ConnProb(PopIdx("L23E"), PopIdx("TC")); v != 0 {
		t.Errorf("TC to L23E: %v", v)
	}
}

func TestLayers(t *testing.T) {
	if LayerOfPop("L23E") != "23" || LayerOfPop("L6I") != "6" {
		t.Error("LayerOfPop")
	}
	if LayerIdxOfPop("L4E") != 2 {
		t.Errorf("LayerIdxOfPop(L4E): %d", LayerIdxOfPop("L4E"))
	}
	th := 0.0
	for _, ly := range Layers {
		th += LayerThickness(ly)
	}
	if math.Abs(th-1491.7) > 1e-9 {
		t.Errorf("total column depth: %v", th)
	}
}

func TestKernelLength(t *testing.T) {
	kp := &KernelParams{}
	kp.Defaults()
	if l := kp.Length(0.1); l != 1000 {
		t.Errorf("kernel length at dt=0.1: %d", l)
	}
	if l := kp.Length(1); l != 100 {
		t.Errorf("kernel length at dt=1: %d", l)
	}
	if kp.Length(0.1)%2 != 0 {
		t.Error("kernel length must be even")
	}
}

func TestPopSizes(t *testing.T) {
	nt := &NetParams{}
	nt.Defaults()
	szs := nt.PopSizes()
	if len(szs) != len(PrePops) {
		t.Fatalf("PopSizes len: %d", len(szs))
	}
	if szs[0] != 20683 || szs[len(szs)-1] != 902 {
		t.Errorf("sizes: %v", szs)
	}
	nt.NScaling = 0.5
	szs = nt.PopSizes()
	if szs[0] != 20683*0.5 {
		t.Errorf("scaled size: %v", szs[0])
	}
}
