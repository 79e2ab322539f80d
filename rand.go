// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.02
//

package atmos

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Standard-Gaussian stream. All random draws of the atmosphere model come
// from one stream so that results are reproducible from a single seed
// shared with the rest of the simulation.
type GaussStream struct {
	norm distuv.Normal
}

func NewGaussStream(src rand.Source) *GaussStream {
	return &GaussStream{
		norm: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}

// One N(0,1) deviate
func (g *GaussStream) Draw() float64 {
	return g.norm.Rand()
}

// One N(0,1) deviate clipped to [lo, hi]
func (g *GaussStream) DrawClip(lo, hi float64) float64 {
	r := g.norm.Rand()
	if r < lo {
		r = lo
	} else if r > hi {
		r = hi
	}
	return r
}
