// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lfpkern is the overall repository for computing local field potentials
(LFP) from spiking activity of the Potjans-Diesmann cortical microcircuit
model, using precomputed spatiotemporal kernels, implemented in the Go
language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* lfp: the core online updater that bins spike events into per-population
firing rates and accumulates the windowed convolution with the population
kernels into the multi-channel LFP signal, along with the shared time grid
and population registry.

* potjans: the parameters of the Potjans-Diesmann microcircuit -- population
sizes, connection probabilities, synapse strengths and delays, layer
geometry, and the electrode and kernel parameters.

* binzegger: the quantitative anatomical connectivity table of Binzegger,
Douglas & Martin (2004), parsed into normalized per-pathway layer input
profiles.

* kernels: the offline per-pathway kernel precomputation -- a resumable
file store, a provider interface for the per-pathway kernel computation,
and a driver that distributes the independent pathway tasks across MPI
processes and sums the results per presynaptic population.

* lfplot: png plots of firing rates, LFP signals and kernels.

* examples: these actually compile into runnable programs.  examples/pdlfp
runs the full pipeline from kernel precomputation through the online LFP
computation on a synthetic spike feed.
*/
package lfpkern
