// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.18
//

package atmos

import (
	"math"
)

//-------------------------------------------------------------------
// SiteProfile
//-------------------------------------------------------------------

// Geographic location and mean atmospheric conditions of one survey site.
// Immutable after construction; shared read-only by all events.
type SiteProfile struct {
	GeoLat float64 // Geographic latitude [deg]
	GeoLon float64 // Geographic longitude [deg], east positive
	GeoAlt float64 // Telescope altitude [m]

	Pressure    float64 // Mean barometric pressure [mmHg]
	Temperature float64 // Mean temperature [C]
	PWV         float64 // Mean precipitable water vapor pressure [mmHg]

	PixelScale float64 // Detector pixel scale [arcsec/pixel]

	// Cached trig of the latitude, computed once at construction
	sinLat float64
	cosLat float64
}

func NewSiteProfile(geoLat, geoLon, geoAlt float64) *SiteProfile {
	return &SiteProfile{
		GeoLat: geoLat,
		GeoLon: geoLon,
		GeoAlt: geoAlt,
		sinLat: math.Sin(geoLat * RADIAN),
		cosLat: math.Cos(geoLat * RADIAN),
	}
}

// Geographic coordinates above GeoUnsetDeg mean the survey did not
// provide a site location; geometry then cannot be computed.
func (site *SiteProfile) GeoUnset() bool {
	return site.GeoLat > GeoUnsetDeg || site.GeoLon > GeoUnsetDeg
}

func (site *SiteProfile) SinLat() float64 { return site.sinLat }
func (site *SiteProfile) CosLat() float64 { return site.cosLat }

// Mean site conditions without perturbation
func (site *SiteProfile) Conditions() SiteConditions {
	return SiteConditions{
		Temperature: site.Temperature,
		Pressure:    site.Pressure,
		PWV:         site.PWV,
	}
}

//-------------------------------------------------------------------
// SiteConditions
//-------------------------------------------------------------------

// Atmospheric scalars used for one refraction-index evaluation.
// Transient value; recomputed per call when site jitter is enabled.
type SiteConditions struct {
	Temperature float64 // [C]
	Pressure    float64 // [mmHg]
	PWV         float64 // [mmHg]
}

//-------------------------------------------------------------------
// SiteSigma
//-------------------------------------------------------------------

// Gaussian standard deviations for site-condition jitter.
// Any positive value enables jitter.
type SiteSigma struct {
	Temperature float64 // [C]
	Pressure    float64 // [mmHg]
	PWV         float64 // [mmHg]
}

func (sig SiteSigma) Enabled() bool {
	return sig.Temperature > 0.0 || sig.Pressure > 0.0 || sig.PWV > 0.0
}

// Perturb the mean site conditions with independent Gaussian draws
// clipped to +-3 sigma. Draws are taken fresh on every call, so the
// jitter is uncorrelated between observations. This is too extreme a
// model because it ignores weather correlations.
func (sig SiteSigma) Perturb(site *SiteProfile, g *GaussStream) SiteConditions {
	c := site.Conditions()
	c.Temperature += g.DrawClip(-3.0, 3.0) * sig.Temperature
	c.Pressure += g.DrawClip(-3.0, 3.0) * sig.Pressure
	c.PWV += g.DrawClip(-3.0, 3.0) * sig.PWV
	return c
}
