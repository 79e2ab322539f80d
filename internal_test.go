// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.25
//

package atmos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func newTestSource() rand.Source {
	return rand.NewSource(17)
}

func TestParallacticCosQ(t *testing.T) {
	sinLat := math.Sin(-29.257 * RADIAN)
	sinDec := math.Sin(2.2 * RADIAN)
	cosDec := math.Cos(2.2 * RADIAN)

	// regular geometry stays inside the acos domain
	alt := 47.93 * RADIAN
	cosQ := parallacticCosQ(sinLat, sinDec, math.Sin(alt), cosDec, math.Cos(alt))
	assert.GreaterOrEqual(t, cosQ, -1.0)
	assert.LessOrEqual(t, cosQ, 1.0)
	assert.False(t, math.IsNaN(math.Acos(cosQ)))

	// degenerate denominator is defined to zero
	assert.Zero(t, parallacticCosQ(sinLat, sinDec, 1.0, cosDec, 0.0))
	assert.Zero(t, parallacticCosQ(sinLat, sinDec, 1.0, 0.0, 0.5))
}

func TestSiteSigmaPerturb(t *testing.T) {
	site := NewSiteProfile(-29.257, -70.738, 2400.0)
	site.Temperature = 10.0
	site.Pressure = 560.0
	site.PWV = 8.0

	sig := SiteSigma{Temperature: 2.0, Pressure: 5.0, PWV: 1.0}
	assert.True(t, sig.Enabled())
	assert.False(t, SiteSigma{}.Enabled())

	g := NewGaussStream(newTestSource())
	for i := 0; i < 200; i++ {
		c := sig.Perturb(site, g)
		// draws are clipped to +-3 sigma around the means
		assert.InDelta(t, site.Temperature, c.Temperature, 3.0*sig.Temperature)
		assert.InDelta(t, site.Pressure, c.Pressure, 3.0*sig.Pressure)
		assert.InDelta(t, site.PWV, c.PWV, 3.0*sig.PWV)
	}
}
