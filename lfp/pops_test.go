// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lfp

import (
	"testing"
)

func TestClassFmName(t *testing.T) {
	cases := []struct {
		name string
		cls  PopClass
	}{
		{"L23E", Excitatory},
		{"L4E", Excitatory},
		{"L6E", Excitatory},
		{"L23I", Inhibitory},
		{"L5I", Inhibitory},
		{"TC", Thalamic},
		{"TCs", Thalamic},
		{"TCn", Thalamic},
	}
	for _, cs := range cases {
		if cls := ClassFmName(cs.name); cls != cs.cls {
			t.Errorf("%s: got class %d, expected %d", cs.name, cls, cs.cls)
		}
	}
}

func TestNewPopsDup(t *testing.T) {
	if _, err := NewPops([]string{"L23E", "L23E"}, []int{1, 2}); err == nil {
		t.Errorf("duplicate population name not rejected")
	}
	if _, err := NewPops([]string{"L23E", "L23I"}, []int{1, 1}); err == nil {
		t.Errorf("duplicate recorder ID not rejected")
	}
	if _, err := NewPops([]string{"L23E", "L23I"}, []int{1}); err == nil {
		t.Errorf("mismatched name / ID lengths not rejected")
	}
	ps, err := NewPops([]string{"L23E", "L23I"}, []int{4, 7})
	if err != nil {
		t.Fatal(err)
	}
	nm, err := ps.NameFmID(7)
	if err != nil {
		t.Fatal(err)
	}
	if nm != "L23I" {
		t.Errorf("got %s for recorder ID 7", nm)
	}
}
