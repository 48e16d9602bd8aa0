// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lfp

import (
	"testing"

	"github.com/emer/etable/etensor"
)

func TestSumPathways(t *testing.T) {
	chans, klen := 2, 4
	ka := NewKernel(chans, klen)
	for i := range ka.Values {
		ka.Values[i] = float64(i)
	}
	kb := NewKernel(chans, klen)
	for i := range kb.Values {
		kb.Values[i] = 10
	}
	pathways := map[string]*etensor.Float64{
		"L4E:A":  ka,
		"L23E:A": kb,
		// pathway L5E:A absent -- contributes zero
		// population B has no pathways at all
	}
	sums := SumPathways(pathways, []string{"A", "B"}, chans, klen)
	sa, sb := sums["A"], sums["B"]
	if sa == nil || sb == nil {
		t.Fatal("missing summed kernel")
	}
	for i := range sa.Values {
		exp := float64(i) + 10
		if sa.Values[i] != exp {
			t.Errorf("A[%d]: %v, expected %v", i, sa.Values[i], exp)
		}
	}
	for i := range sb.Values {
		if sb.Values[i] != 0 {
			t.Errorf("B[%d]: %v, expected 0", i, sb.Values[i])
		}
	}
}

func TestSumPathwaysNoCrossMatch(t *testing.T) {
	// the presynaptic label must match exactly: population E must not
	// collect pathways of L23E etc.
	k := NewKernel(1, 2)
	k.Values[0] = 1
	pathways := map[string]*etensor.Float64{
		"L4E:L23E": k,
	}
	sums := SumPathways(pathways, []string{"E", "L23E"}, 1, 2)
	if sums["E"].Values[0] != 0 {
		t.Errorf("pathway L4E:L23E wrongly summed into population E")
	}
	if sums["L23E"].Values[0] != 1 {
		t.Errorf("pathway L4E:L23E not summed into population L23E")
	}
}

func TestKernelShape(t *testing.T) {
	k := NewKernel(3, 6)
	if err := KernelShape(k, 3, 6); err != nil {
		t.Error(err)
	}
	if err := KernelShape(k, 3, 4); err == nil {
		t.Error("wrong length accepted")
	}
	ko := NewKernel(2, 5)
	if err := KernelShape(ko, 2, 5); err == nil {
		t.Error("odd kernel length accepted")
	}
}
