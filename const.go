// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.12
//

package atmos

const (
	PI      = 3.1415926535897932 // Pi
	RADIAN  = PI / 180.0         // Degrees to radians
	ASECRAD = 206265.0           // Arcseconds per radian
	JD2000  = 2451545.0          // Julian date of the J2000.0 epoch
	MJDOFF  = 2400000.5          // JD = MJD + MJDOFF

	// Sentinel stored in geometry fields when site coordinates are unavailable
	NullGeom = -9.0

	// Geographic coordinates above this value mean "unset"
	GeoUnsetDeg = 1000.0

	// Minimum realized SNR for an epoch to enter the weighted coord averages
	SNRMinCoordAvg = 3.0

	// Gaussian sigma to full width at half maximum
	FWHMPerSigma = 2.355

	// Maximum number of rows accepted from a calibration spectrum file
	MaxSpecBins = 5000
)

// Feature mask bits selecting which atmosphere effects are simulated
const (
	OptDCRCoord    = 1 << 0 // DCR shift applied to RA,DEC coordinates
	OptDCRPSFShape = 1 << 1 // DCR mag shift for PSF-fitted fluxes
)
