// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.26
//

package atmos

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

//-------------------------------------------------------------------
// Config
//-------------------------------------------------------------------

// Configuration of the atmosphere model, supplied once at init.
type Config struct {
	OptMask int // Feature mask (OptDCRCoord, OptDCRPSFShape)

	SigmaSite SiteSigma // Site-condition jitter; zero disables

	ResPoly Poly // Astrometric resolution [arcsec] vs 1/sqrt(SNR)
	MagPoly Poly // Mag shift vs DCR-shift/PSF-FWHM fraction

	CalStarFile string // Two-column calibration-star spectrum
}

//-------------------------------------------------------------------
// Atmosphere
//-------------------------------------------------------------------

// Atmosphere simulates DCR effects on coordinates and PSF-fitted mags.
// All state owned here is immutable after New except the random stream;
// per-event state lives on the Event passed to GenEvent.
type Atmosphere struct {
	cfg  Config
	site *SiteProfile

	filters map[int]*FilterModel

	calStar       *Spectrum
	lamAvgCalStar map[int]float64 // Reference wavelength per band [A]
	nCalStarAvg   map[int]float64 // Reference index of refraction per band

	doCoord    bool
	doPSFShape bool
	applySigma bool
	meanCond   SiteConditions

	gauss *GaussStream
}

// One-time init: decode the feature mask, read the calibration-star
// spectrum and compute the per-band reference wavelength and index of
// refraction. Missing required configuration is a fatal error here,
// never a runtime fallback.
func New(cfg Config, site *SiteProfile, filters []*FilterModel, src rand.Source) (*Atmosphere, error) {
	a := &Atmosphere{
		cfg:           cfg,
		site:          site,
		filters:       map[int]*FilterModel{},
		lamAvgCalStar: map[int]float64{},
		nCalStarAvg:   map[int]float64{},
		doCoord:       cfg.OptMask&OptDCRCoord > 0,
		doPSFShape:    cfg.OptMask&OptDCRPSFShape > 0,
		applySigma:    cfg.SigmaSite.Enabled(),
		meanCond:      site.Conditions(),
		gauss:         NewGaussStream(src),
	}

	if cfg.OptMask == 0 {
		return a, nil // no atmosphere effects selected
	}

	PrintD(1, "Model DCR effects on RA, DEC, MAG\n")
	PrintD(1, "\t DO_DCR_COORD    = %v\n", a.doCoord)
	PrintD(1, "\t DO_DCR_PSFSHAPE = %v\n", a.doPSFShape)
	PrintD(1, "\t Sigma(temperature/pressure/PWV) = %.1f C / %.1f mmHg / %.1f mmHg\n",
		cfg.SigmaSite.Temperature, cfg.SigmaSite.Pressure, cfg.SigmaSite.PWV)

	if a.doCoord {
		if cfg.ResPoly.Order() < 0 {
			return nil, fmt.Errorf("missing required coord resolution vs 1/sqrt(SNR) polynomial")
		}
		if cfg.MagPoly.Order() < 0 {
			return nil, fmt.Errorf("missing required mag shift vs PSF-shift-fraction polynomial")
		}
	}

	if len(filters) == 0 {
		return nil, fmt.Errorf("no filter models supplied")
	}
	for _, f := range filters {
		if _, dup := a.filters[f.Band]; dup {
			return nil, fmt.Errorf("duplicate filter model for band index %d", f.Band)
		}
		a.filters[f.Band] = f
	}

	calStar, err := ReadSpectrumFile(cfg.CalStarFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read calibration-star spectrum: %w", err)
	}
	a.calStar = calStar
	PrintD(1, "\t Read calStar SED: %d wave bins from %.0f to %.0f A\n",
		len(calStar.Lam), calStar.Lam[0], calStar.Lam[len(calStar.Lam)-1])

	// per-band reference wavelength and index of refraction from the
	// calibration star, evaluated at mean site conditions
	PrintD(1, "\t  band   flatSED <lam>   calStar <lam>   calStar <n-1>\n")
	for _, f := range filters {
		lamAvg := f.SEDWeightedWavelength(calStar)
		if lamAvg < 0.01 {
			return nil, fmt.Errorf("calibration-star SED has no flux in band %s", f.Name)
		}
		n := IndexOfRefraction(lamAvg, a.meanCond)
		a.lamAvgCalStar[f.Band] = lamAvg
		a.nCalStarAvg[f.Band] = n
		PrintD(1, "\t  %s   %9.1f   %9.1f   %e\n", f.Name, f.MeanLam, lamAvg, n-1.0)
	}

	a.printPolySummaries()

	return a, nil
}

// Summaries of the empirical fits for visual inspection
func (a *Atmosphere) printPolySummaries() {
	if !a.doCoord || DBG_ < 1 {
		return
	}
	PrintA("\n%s\n", a.cfg.ResPoly.String())
	for snr := 10.0; snr <= 100.0; snr += 30.0 {
		angRes := a.cfg.ResPoly.Eval(1.0 / math.Sqrt(snr))
		PrintA("\t ANGRES = %7.4f arcsec for SNR = %4.0f\n", angRes, snr)
	}
	PrintA("\n%s\n", a.cfg.MagPoly.String())
	for fracPSF := 0.0; fracPSF <= 0.2; fracPSF += 0.04 {
		PrintA("\t mag_shift = %7.4f mag for PSFshift/PSF = %.4f\n",
			a.cfg.MagPoly.Eval(fracPSF), fracPSF)
	}
}

// GenEvent runs the two-pass atmosphere simulation over one event:
// reset the event accumulators, then per eligible epoch resolve the
// zenith geometry, the DCR coordinate shift and the smeared measured
// coordinates; finally, in a second pass, the per-epoch mag shift.
//
// The mag-shift pass runs only after the weighted coordinate averages
// of the whole event are final. The current mag-shift formula does not
// read the averages, but the ordering is part of the contract.
func (a *Atmosphere) GenEvent(ev *Event) error {
	if a.cfg.OptMask == 0 {
		return nil
	}

	ev.AvgRAObs.Reset()
	ev.AvgDecObs.Reset()
	ev.AvgRATrue.Reset()
	ev.AvgDecTrue.Reset()

	for _, ep := range ev.Epochs {
		if !ep.Generated {
			continue
		}
		ResolveGeometry(ep, ev, a.site)
		if err := a.genDCRCoordShift(ep, ev); err != nil {
			return err
		}
		a.smearCoords(ep, ev)
	}

	// determine magShift after obs-weighted RA,DEC are determined
	for _, ep := range ev.Epochs {
		if !ep.Generated {
			continue
		}
		a.genDCRMagShift(ep)
	}

	return nil
}
