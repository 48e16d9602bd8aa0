// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lfp

import "math"

// TimeGrid is the shared discrete time grid that firing rates and the
// LFP signal are defined on: strictly increasing, evenly spaced,
// zero-based time points at the simulation resolution Dt.
type TimeGrid struct {
	Dt   float64 `def:"0.1" desc:"simulation time step (msec)"`
	TSim float64 `def:"1000" desc:"total simulated time (msec)"`
	NPts int     `inactive:"+" desc:"number of grid points = floor(TSim / Dt) + 1 -- computed by Update"`
}

func (tg *TimeGrid) Defaults() {
	tg.Dt = 0.1
	tg.TSim = 1000
	tg.Update()
}

// Update computes NPts from Dt and TSim -- must be called after
// changing either.
func (tg *TimeGrid) Update() {
	tg.NPts = int(math.Floor(tg.TSim/tg.Dt)) + 1
}

// T returns the last time point on the grid (the simulation horizon).
func (tg *TimeGrid) T() float64 {
	return float64(tg.NPts-1) * tg.Dt
}

// IdxFmTime returns the grid index nearest to time t, clamped to the
// valid index range.  The grid is uniform, so this is direct integer
// arithmetic -- no minimum-distance scan is needed.
func (tg *TimeGrid) IdxFmTime(t float64) int {
	ix := int(math.Round(t / tg.Dt))
	if ix < 0 {
		return 0
	}
	if ix >= tg.NPts {
		return tg.NPts - 1
	}
	return ix
}

// Times returns the full time vector.  Only needed for output and
// plotting -- the update path works in indexes.
func (tg *TimeGrid) Times() []float64 {
	ts := make([]float64, tg.NPts)
	for i := range ts {
		ts[i] = float64(i) * tg.Dt
	}
	return ts
}
