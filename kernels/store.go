// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/emer/etable/etensor"
	"github.com/emer/lfpkern/lfp"
	"github.com/goki/gi/gi"
)

// Store is a key-addressed on-disk store of pathway kernels, one
// tab-separated tensor file per directed pathway.  It is the
// checkpoint between the precomputation stage and the online updater:
// Has reports whether a pathway has already been computed, so
// interrupted runs resume where they stopped.  A missing key is the
// valid no-connection state, not an error.
type Store struct {
	Dir     string `desc:"directory holding the kernel files"`
	NChans  int    `desc:"number of recording channels -- fixed across all kernels"`
	KernLen int    `desc:"kernel length -- fixed across all kernels"`
}

// NewStore creates a store in dir for kernels of the given fixed
// shape, creating the directory if needed.
func NewStore(dir string, chans, klen int) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("kernels.NewStore: %v", err)
	}
	return &Store{Dir: dir, NChans: chans, KernLen: klen}, nil
}

// FileName returns the file a pathway kernel is stored in.
func (st *Store) FileName(key string) string {
	return filepath.Join(st.Dir, "kernel_"+key+".tsv")
}

// Has reports whether a kernel for the given pathway key is present.
func (st *Store) Has(key string) bool {
	_, err := os.Stat(st.FileName(key))
	return err == nil
}

// Save stores the kernel under the given pathway key.
func (st *Store) Save(key string, k *etensor.Float64) error {
	if err := lfp.KernelShape(k, st.NChans, st.KernLen); err != nil {
		return fmt.Errorf("kernels.Store.Save %s: %v", key, err)
	}
	return etensor.SaveCSV(k, gi.FileName(st.FileName(key)), '\t')
}

// Load reads the kernel stored under the given pathway key.
func (st *Store) Load(key string) (*etensor.Float64, error) {
	k := lfp.NewKernel(st.NChans, st.KernLen)
	if err := etensor.OpenCSV(k, gi.FileName(st.FileName(key)), '\t'); err != nil {
		return nil, fmt.Errorf("kernels.Store.Load %s: %v", key, err)
	}
	return k, nil
}
