// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lfplot renders summary plots of firing rates, LFP signals and
kernels as png files, without any GUI dependency.  Traces are
normalized and stacked vertically, population by population or
channel by channel, after the convention of laminar LFP figures.
*/
package lfplot

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/emer/etable/etensor"
	"github.com/emer/lfpkern/lfp"
	"github.com/wcharczuk/go-chart/v2"
)

// maxAbs returns the maximum absolute value of xs, or 1 if all zero,
// for safe normalization.
func maxAbs(xs []float64) float64 {
	mx := 0.0
	for _, v := range xs {
		if math.Abs(v) > mx {
			mx = math.Abs(v)
		}
	}
	if mx == 0 {
		return 1
	}
	return mx
}

func renderPNG(graph *chart.Chart, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("lfplot: %v", err)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("lfplot: render %s: %v", fname, err)
	}
	return nil
}

// RatesPNG renders the per-population firing rates, one normalized
// trace per population stacked by registry order.
func RatesPNG(up *lfp.Updater, fname string) error {
	ts := up.Grid.Times()
	mx := 1.0
	for _, nm := range up.Pops.Names {
		for _, c := range up.Rates[nm].Values {
			if float64(c) > mx {
				mx = float64(c)
			}
		}
	}
	var series []chart.Series
	for pi, nm := range up.Pops.Names {
		ys := make([]float64, len(ts))
		for i, c := range up.Rates[nm].Values {
			ys[i] = float64(c)/mx + float64(pi)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    nm,
			XValues: ts,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(pi),
				StrokeWidth: 1.0,
			},
		})
	}
	graph := chart.Chart{
		Title:  "firing rates",
		Width:  1024,
		Height: 512,
		XAxis:  chart.XAxis{Name: "time (ms)"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return renderPNG(&graph, fname)
}

// LFPPNG renders the multi-channel LFP signal with channel 0 on top,
// stacked downward by channel, normalized to the global maximum.
func LFPPNG(grid *lfp.TimeGrid, sig *etensor.Float64, fname string) error {
	chans := sig.Dim(0)
	n := sig.Dim(1)
	ts := grid.Times()
	norm := maxAbs(sig.Values)
	var series []chart.Series
	for ci := 0; ci < chans; ci++ {
		row := sig.Values[ci*n : (ci+1)*n]
		ys := make([]float64, n)
		for i, v := range row {
			ys[i] = v/norm - float64(ci)
		}
		series = append(series, chart.ContinuousSeries{
			XValues: ts,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: chart.ColorBlack,
				StrokeWidth: 1.0,
			},
		})
	}
	graph := chart.Chart{
		Title:  "LFP",
		Width:  1024,
		Height: 768,
		XAxis:  chart.XAxis{Name: "time (ms)"},
		YAxis:  chart.YAxis{Name: "channel (depth order)"},
		Series: series,
	}
	return renderPNG(&graph, fname)
}

// ProfilesPNG renders the per-pathway layer input profiles from the
// connectivity table, one normalized trace per pathway stacked in
// sorted key order, with the layer index on the x axis.
func ProfilesPNG(profiles map[string][]float64, fname string) error {
	keys := make([]string, 0, len(profiles))
	for nm := range profiles {
		keys = append(keys, nm)
	}
	sort.Strings(keys)
	norm := 1.0
	for _, nm := range keys {
		if mx := maxAbs(profiles[nm]); mx > norm {
			norm = mx
		}
	}
	var series []chart.Series
	for ki, nm := range keys {
		prof := profiles[nm]
		xs := make([]float64, len(prof))
		ys := make([]float64, len(prof))
		for li, v := range prof {
			xs[li] = float64(li + 1)
			ys[li] = v/norm - float64(ki)
		}
		series = append(series, chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(ki),
				StrokeWidth: 1.0,
			},
		})
	}
	graph := chart.Chart{
		Title:  "layer input profiles",
		Width:  512,
		Height: 1024,
		XAxis:  chart.XAxis{Name: "layer"},
		YAxis:  chart.YAxis{Name: "pathway (sorted)"},
		Series: series,
	}
	return renderPNG(&graph, fname)
}

// KernelPNG renders one population kernel, channel traces stacked by
// depth with the time lag axis centered on the spike.
func KernelPNG(dt float64, k *etensor.Float64, fname string) error {
	chans := k.Dim(0)
	klen := k.Dim(1)
	ts := make([]float64, klen)
	for i := range ts {
		ts[i] = float64(i-klen/2) * dt
	}
	norm := maxAbs(k.Values)
	var series []chart.Series
	for ci := 0; ci < chans; ci++ {
		row := k.Values[ci*klen : (ci+1)*klen]
		ys := make([]float64, klen)
		for i, v := range row {
			ys[i] = v/norm - float64(ci)
		}
		series = append(series, chart.ContinuousSeries{
			XValues: ts,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: chart.ColorBlack,
				StrokeWidth: 1.0,
			},
		})
	}
	graph := chart.Chart{
		Title:  "kernel",
		Width:  640,
		Height: 768,
		XAxis:  chart.XAxis{Name: "lag (ms)"},
		Series: series,
	}
	return renderPNG(&graph, fname)
}
