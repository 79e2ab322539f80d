// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.22
//

package atmos_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/skysim/atmos"
)

// Comparison with the ESO SkyCalc calculator for La Silla:
// zenith distance 42.07 deg, airmass 1.347.
func TestResolveGeometryLaSilla(t *testing.T) {
	site := m.NewSiteProfile(-29.257, -70.738, 2400.0)
	ev := m.NewEvent(149.0, 2.2)
	ep := &m.Epoch{MJD: 59583.2409}

	m.ResolveGeometry(ep, ev, site)

	assert.InDelta(t, 42.07, ep.ZenithAng, 0.1)
	assert.InDelta(t, 47.93, ep.Altitude, 0.1)
	assert.InDelta(t, 1.347, ep.Airmass, 0.01)

	// cached trig is consistent with the stored angles
	assert.InDelta(t, math.Sin(ep.Altitude*m.RADIAN), ep.SinAlt, 1e-9)
	assert.InDelta(t, math.Cos(ep.Altitude*m.RADIAN), ep.CosAlt, 1e-9)
	assert.InDelta(t, math.Tan(ep.ZenithAng*m.RADIAN), ep.TanZenith, 1e-9)

	// airmass = 1/cos(zenith) exactly
	assert.InDelta(t, 1.0/math.Cos(ep.ZenithAng*m.RADIAN), ep.Airmass, 1e-9)
	assert.GreaterOrEqual(t, ep.Airmass, 1.0)
}

func TestResolveGeometryAtZenith(t *testing.T) {
	// Put the source at the site latitude with hour angle zero, so it
	// transits through the zenith at the chosen MJD.
	site := m.NewSiteProfile(-29.257, -70.738, 2400.0)
	mjd := 59583.2409
	ra := site.GeoLon + m.GMSTDeg(mjd) // LST
	ev := m.NewEvent(ra, site.GeoLat)
	ep := &m.Epoch{MJD: mjd}

	m.ResolveGeometry(ep, ev, site)

	assert.InDelta(t, 90.0, ep.Altitude, 1e-4)
	assert.InDelta(t, 1.0, ep.Airmass, 1e-9)
}

func TestResolveGeometryUnsetSite(t *testing.T) {
	site := m.NewSiteProfile(9999.0, 9999.0, 0.0)
	ev := m.NewEvent(149.0, 2.2)
	ep := &m.Epoch{MJD: 59583.2409}

	m.ResolveGeometry(ep, ev, site)

	assert.Equal(t, -9.0, ep.Airmass)
	assert.Equal(t, -9.0, ep.Altitude)
	assert.Equal(t, -9.0, ep.ZenithAng)
	assert.Equal(t, -9.0, ep.TanZenith)
}
