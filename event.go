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

//-------------------------------------------------------------------
// DCRShift
//-------------------------------------------------------------------

// DCR coordinate shift with an explicit validity tag. An invalid shift
// means no SED model was available for the epoch (pre-explosion, or
// model mags extrapolated); smearing and mag-shift stages must skip it.
type DCRShift struct {
	Total float64 // Radial shift [deg]
	RA    float64 // Projection on RA [deg]
	Dec   float64 // Projection on DEC [deg]
	Valid bool
}

//-------------------------------------------------------------------
// Epoch
//-------------------------------------------------------------------

// One exposure of one event. The outer light-curve generator owns the
// input fields; the atmosphere driver annotates the derived fields.
type Epoch struct {
	MJD       float64 // Modified Julian date of the exposure
	Band      int     // Absolute passband index
	TrueSNR   float64 // Model signal-to-noise
	ObsSNR    float64 // Realized signal-to-noise
	Detected  bool    // Detection flag from the search pipeline
	Generated bool    // Epoch was generated by the outer simulator
	PSFSig1   float64 // Effective Gaussian PSF sigma [pixels]

	// Derived zenith geometry; NullGeom until resolved
	Altitude  float64 // [deg]
	Airmass   float64
	ZenithAng float64 // [deg]
	TanZenith float64
	SinAlt    float64
	CosAlt    float64

	LamSEDWgted float64 // SED-weighted mean wavelength in the band [A]

	DCR DCRShift

	RATrue  float64 // True coords including DCR shift [deg]
	DecTrue float64
	RAObs   float64 // Measured coords after astrometric smearing [deg]
	DecObs  float64

	MagShift float64 // DCR mag shift for PSF-fitted flux [mag]
}

//-------------------------------------------------------------------
// Event
//-------------------------------------------------------------------

// One simulated transient: true sky position, synthetic spectra keyed by
// MJD, the per-epoch records, and the per-event weighted coordinate
// averages. No state is shared between events.
type Event struct {
	RA  float64 // True RA [deg]
	Dec float64 // True DEC [deg]

	Spectra []*Spectrum
	Epochs  []*Epoch

	// Weighted averages over detected epochs: measured and true coords
	AvgRAObs   *CoordAvg
	AvgDecObs  *CoordAvg
	AvgRATrue  *CoordAvg
	AvgDecTrue *CoordAvg

	// Cached trig of the true position
	sinDec float64
	cosDec float64
}

func NewEvent(ra, dec float64) *Event {
	return &Event{
		RA:         ra,
		Dec:        dec,
		AvgRAObs:   NewCoordAvg(),
		AvgDecObs:  NewCoordAvg(),
		AvgRATrue:  NewCoordAvg(),
		AvgDecTrue: NewCoordAvg(),
		sinDec:     math.Sin(dec * RADIAN),
		cosDec:     math.Cos(dec * RADIAN),
	}
}

func (ev *Event) SinDec() float64 { return ev.sinDec }
func (ev *Event) CosDec() float64 { return ev.cosDec }
