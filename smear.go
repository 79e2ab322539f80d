// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.25
//

package atmos

import (
	"math"
)

// Apply Gaussian measurement noise to the DCR-shifted position of one
// epoch and update the event's weighted coordinate averages.
func (a *Atmosphere) smearCoords(ep *Epoch, ev *Event) {
	// Both deviates are always consumed so the shared random stream
	// stays aligned regardless of per-epoch validity.
	ranRA := a.gauss.Draw()
	ranDec := a.gauss.Draw()

	if !ep.DCR.Valid {
		return // nothing physical to smear
	}

	trueSNR := ep.TrueSNR
	if trueSNR < 0.01 {
		trueSNR = 0.01
	}
	angResAsec := a.cfg.ResPoly.Eval(1.0 / math.Sqrt(trueSNR))

	// convert to degrees and divide by sqrt(2) for the projected
	// resolution on the separate RA and DEC axes
	angResDeg := angResAsec / 3600.0 / math.Sqrt2

	// true coords include the DCR shift
	ep.RATrue = ev.RA + ep.DCR.RA
	ep.DecTrue = ev.Dec + ep.DCR.Dec

	// random smear gives the measured coords; the RA term is a
	// coordinate delta, hence the cos(DEC) factor
	ep.RAObs = ep.RATrue + (angResDeg*ranRA)/ev.CosDec()
	ep.DecObs = ep.DecTrue + angResDeg*ranDec

	// update wgted averages among detections
	if ep.ObsSNR > SNRMinCoordAvg {
		wgt := 1.0e-20
		if angResDeg > 0.0 {
			wgt = 1.0e-6 / (angResDeg * angResDeg)
		}
		ev.AvgRAObs.Add(ep.RAObs, wgt, ep.Band)
		ev.AvgDecObs.Add(ep.DecObs, wgt, ep.Band)
		ev.AvgRATrue.Add(ep.RATrue, wgt, ep.Band)
		ev.AvgDecTrue.Add(ep.DecTrue, wgt, ep.Band)
	}
}

// Mag shift for a PSF-fitted flux whose PSF center is offset from the
// band-average center. Computed in the second pass, after the weighted
// coordinate averages of the event are final.
func (a *Atmosphere) genDCRMagShift(ep *Epoch) {
	ep.MagShift = 0.0
	if !ep.DCR.Valid || !a.doCoord {
		return
	}

	psfFWHM := ep.PSFSig1 * a.site.PixelScale * FWHMPerSigma // arcsec
	fracPSF := math.Abs(ep.DCR.Total*3600.0) / psfFWHM

	ep.MagShift = a.cfg.MagPoly.Eval(fracPSF)
}
