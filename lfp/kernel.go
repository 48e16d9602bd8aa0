// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lfp

import (
	"fmt"

	"github.com/emer/etable/etensor"
	"gonum.org/v1/gonum/floats"
)

// NewKernel returns a zero-valued kernel tensor with the given number
// of recording channels and kernel length.  A kernel is the
// channel-wise impulse response for one population's spiking
// activity: one row per channel, all rows the same even length,
// covering the response both before and after the triggering spike.
func NewKernel(chans, length int) *etensor.Float64 {
	return etensor.NewFloat64([]int{chans, length}, nil, []string{"Chan", "Time"})
}

// KernelShape verifies that k has the expected channels x length
// shape with an even length.
func KernelShape(k *etensor.Float64, chans, length int) error {
	if k.NumDims() != 2 || k.Dim(0) != chans || k.Dim(1) != length {
		return fmt.Errorf("lfp: kernel shape %v, expected [%d, %d]", k.Shapes(), chans, length)
	}
	if length%2 != 0 {
		return fmt.Errorf("lfp: kernel length %d must be even", length)
	}
	return nil
}

// SumPathways sums pathway kernels, keyed by the directed pathway
// name post:pre, into one kernel per presynaptic population: for each
// population in pops, all pathway kernels whose presynaptic label
// matches are added together across every postsynaptic target.
// Pathways absent from the map contribute zero.  Each summed kernel
// starts from zeros of shape (chans, length), so a population with no
// pathways yields an all-zero kernel.
func SumPathways(pathways map[string]*etensor.Float64, pops []string, chans, length int) map[string]*etensor.Float64 {
	sums := make(map[string]*etensor.Float64, len(pops))
	for _, pop := range pops {
		sum := NewKernel(chans, length)
		suf := ":" + pop
		for nm, k := range pathways {
			if k == nil || len(nm) <= len(suf) || nm[len(nm)-len(suf):] != suf {
				continue
			}
			floats.Add(sum.Values, k.Values)
		}
		sums[pop] = sum
	}
	return sums
}

// PathwayName returns the directed pathway name for the given
// postsynaptic and presynaptic population names.
func PathwayName(post, pre string) string {
	return post + ":" + pre
}
