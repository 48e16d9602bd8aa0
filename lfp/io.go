// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lfp

import (
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/goki/gi/gi"
)

// RatesTable returns the per-population firing rates as a table with
// the time grid in the first column and one spike-count column per
// population, for saving at session end.
func (up *Updater) RatesTable() *etable.Table {
	sch := etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	for _, nm := range up.Pops.Names {
		sch = append(sch, etable.Column{Name: nm, Type: etensor.INT64, CellShape: nil, DimNames: nil})
	}
	dt := &etable.Table{}
	dt.SetMetaData("name", "Rates")
	dt.SetMetaData("desc", "per-population spike counts on the simulation time grid")
	dt.SetFromSchema(sch, up.Grid.NPts)
	for i := 0; i < up.Grid.NPts; i++ {
		dt.SetCellFloat("Time", i, float64(i)*up.Grid.Dt)
		for _, nm := range up.Pops.Names {
			dt.SetCellFloat(nm, i, float64(up.Rates[nm].Values[i]))
		}
	}
	return dt
}

// SaveRates saves the per-population firing rates as a tab-separated
// table.
func (up *Updater) SaveRates(fname string) error {
	return up.RatesTable().SaveCSV(gi.FileName(fname), etable.Tab, etable.Headers)
}

// SaveLFP saves the accumulated channels x time LFP signal as a
// tab-separated tensor file.
func (up *Updater) SaveLFP(fname string) error {
	return etensor.SaveCSV(up.LFP, gi.FileName(fname), '\t')
}

// SizeReport returns a string report of the memory held by the
// updater state.
func (up *Updater) SizeReport() string {
	var b strings.Builder
	frMem := 0
	for _, nm := range up.Pops.Names {
		frMem += len(up.Rates[nm].Values) * 8
	}
	kMem := 0
	for _, k := range up.Kernels {
		kMem += len(k.Values) * 8
	}
	lfpMem := len(up.LFP.Values) * 8
	fmt.Fprintf(&b, "%14s:\t Pops: %d\t RateMem: %v\n", "Rates", len(up.Pops.Names), (datasize.ByteSize)(frMem).HumanReadable())
	fmt.Fprintf(&b, "%14s:\t Pops: %d\t KernMem: %v\n", "Kernels", len(up.Kernels), (datasize.ByteSize)(kMem).HumanReadable())
	fmt.Fprintf(&b, "%14s:\t Chans: %d\t LFPMem: %v\n", "LFP", up.NChans, (datasize.ByteSize)(lfpMem).HumanReadable())
	return b.String()
}
