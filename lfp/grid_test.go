// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lfp

import (
	"math"
	"testing"
)

// argminIdx is the original nearest-index definition: minimum absolute
// difference against the full time vector, first match winning.
func argminIdx(tg *TimeGrid, t float64) int {
	mni := 0
	mnd := math.Inf(1)
	for i := 0; i < tg.NPts; i++ {
		d := math.Abs(t - float64(i)*tg.Dt)
		if d < mnd {
			mnd = d
			mni = i
		}
	}
	return mni
}

func TestGridLen(t *testing.T) {
	tg := &TimeGrid{}
	tg.Defaults()
	if tg.NPts != 10001 {
		t.Errorf("NPts: %d, expected 10001", tg.NPts)
	}
	if tg.T() != 1000 {
		t.Errorf("T: %v, expected 1000", tg.T())
	}
	tg.Dt = 1
	tg.TSim = 999
	tg.Update()
	if tg.NPts != 1000 {
		t.Errorf("NPts: %d, expected 1000", tg.NPts)
	}
}

func TestIdxFmTime(t *testing.T) {
	tg := &TimeGrid{Dt: 0.1, TSim: 10}
	tg.Update()
	// direct integer arithmetic must reproduce the minimum-distance
	// scan, including at the grid boundaries
	// note: exact half-step ties are excluded -- argmin resolves them
	// by scan order and rounding by round-half-away, but spike times
	// on a dt-multiple co-simulation grid never land on half steps
	times := []float64{0, 0.04, 0.06, 0.1, 0.14999, 1.23, 5.57, 9.96, 10, 10.04, 12, 100, -0.3, -0.04}
	for _, tm := range times {
		ci := tg.IdxFmTime(tm)
		ri := argminIdx(tg, tm)
		if ci != ri {
			t.Errorf("IdxFmTime(%v): %d, argmin reference: %d", tm, ci, ri)
		}
	}
}

func TestTimes(t *testing.T) {
	tg := &TimeGrid{Dt: 0.5, TSim: 2}
	tg.Update()
	ts := tg.Times()
	if len(ts) != tg.NPts {
		t.Fatalf("Times len: %d, expected %d", len(ts), tg.NPts)
	}
	if ts[0] != 0 || ts[len(ts)-1] != tg.T() {
		t.Errorf("Times endpoints: %v, %v", ts[0], ts[len(ts)-1])
	}
}
