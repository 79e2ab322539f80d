// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.21
//

package atmos

import (
	"math"
)

// Greenwich Mean Sidereal Time in degrees for the given MJD (UT).
// Polynomial in Julian centuries since J2000.0 plus the fractional-day
// correction for the hours elapsed since 0h UT.
func GMSTDeg(mjd float64) float64 {
	jd := mjd + MJDOFF
	tU := (jd - JD2000) / 36525.0
	sec := math.Mod(24110.54841+8640184.812866*tU+0.093104*tU*tU, 86400.0)
	return (sec/86400.0 + 1.0027379*math.Mod(mjd, 1.0)) * 360.0
}

// Resolve the zenith geometry of one epoch: local sidereal time, hour
// angle, altitude, zenith angle and airmass. Trig of the altitude and
// tan of the zenith angle are cached on the epoch for the DCR stage.
//
// If the site geographic coordinates are unset, the geometry fields are
// left at NullGeom and the routine returns; the DCR stage treats that
// as "no shift".
func ResolveGeometry(ep *Epoch, ev *Event, site *SiteProfile) {
	ep.Altitude = NullGeom
	ep.Airmass = NullGeom
	ep.ZenithAng = NullGeom
	ep.TanZenith = NullGeom
	ep.SinAlt = NullGeom
	ep.CosAlt = NullGeom

	if site.GeoUnset() {
		return
	}

	// hour angle h = Local Sidereal Time - RA
	lstDeg := site.GeoLon + GMSTDeg(ep.MJD)
	hDeg := lstDeg - ev.RA
	cosH := math.Cos(hDeg * RADIAN)

	sinAlt := site.SinLat()*ev.SinDec() + site.CosLat()*ev.CosDec()*cosH
	altRad := math.Asin(sinAlt)
	zenRad := 0.5*PI - altRad

	ep.Altitude = altRad / RADIAN
	ep.SinAlt = sinAlt
	ep.CosAlt = math.Cos(altRad)
	ep.ZenithAng = zenRad / RADIAN
	ep.TanZenith = math.Tan(zenRad)
	ep.Airmass = 1.0 / math.Cos(zenRad)
}
