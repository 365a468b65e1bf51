// Copyright 2016 The Hermes-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"github.com/cpmech/gosl/la"
)

// History is a fixed-capacity store of the most recent solution iterates, in oldest-to-newest
// order. Once full, appending evicts the oldest entry by rotating vector ownership; no vector
// is reallocated or fully copied during eviction.
type History struct {
	vecs [][]float64 // all kmax vectors, allocated upfront
	n    int         // occupancy; never exceeds kmax
}

// NewHistory allocates a buffer for kmax vectors of length dim
func NewHistory(kmax, dim int) (o *History) {
	o = new(History)
	o.vecs = la.MatAlloc(kmax, dim)
	return
}

// Len returns the current occupancy
func (o *History) Len() int { return o.n }

// Full tells whether the buffer reached capacity
func (o *History) Full() bool { return o.n == len(o.vecs) }

// At returns the i-th stored iterate in oldest-to-newest order, for i within [0, Len()).
// The returned slice is a view into the buffer; callers must not modify it.
func (o *History) At(i int) []float64 { return o.vecs[i] }

// Append copies u into the buffer. While not at capacity, u fills the next free slot;
// afterwards the oldest vector is recycled to hold u and becomes the newest entry.
func (o *History) Append(u []float64) {
	if o.n < len(o.vecs) {
		la.VecCopy(o.vecs[o.n], 1, u)
		o.n++
		return
	}
	oldest := o.vecs[0]
	copy(o.vecs, o.vecs[1:])
	o.vecs[len(o.vecs)-1] = oldest
	la.VecCopy(oldest, 1, u)
}
