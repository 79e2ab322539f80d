// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.24
//

package atmos

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/interp"
)

//-------------------------------------------------------------------
// Spectrum
//-------------------------------------------------------------------

// Flux vs wavelength on a fixed grid, with the MJD it applies to.
// MJD is zero for time-independent spectra such as the calibration star.
type Spectrum struct {
	MJD  float64
	Lam  []float64 // Wavelength grid [A], strictly increasing
	Flux []float64

	pl interp.PiecewiseLinear
}

func NewSpectrum(mjd float64, lam, flux []float64) (*Spectrum, error) {
	if len(lam) != len(flux) {
		return nil, fmt.Errorf("wavelength/flux length mismatch: %d vs %d", len(lam), len(flux))
	}
	s := &Spectrum{MJD: mjd, Lam: lam, Flux: flux}
	if err := s.pl.Fit(lam, flux); err != nil {
		return nil, fmt.Errorf("spectrum grid not usable for interpolation: %w", err)
	}
	return s, nil
}

// Linearly interpolated flux at wavelength lamA. Outside the grid the
// endpoint flux is used.
func (s *Spectrum) FluxAt(lamA float64) float64 {
	return s.pl.Predict(lamA)
}

// Read a two-column (wavelength, flux) whitespace-separated text file.
// Lines starting with '#' and blank lines are skipped. The wavelength
// column must be monotonically increasing.
func ReadSpectrumFile(path string) (*Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spectrum file: %w", err)
	}
	defer f.Close()

	lam := make([]float64, 0, 256)
	flux := make([]float64, 0, 256)
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		t := strings.TrimSpace(sc.Text())
		if len(t) == 0 || strings.HasPrefix(t, "#") {
			continue
		}
		fields := strings.Fields(t)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s line %d: expected two columns", path, line)
		}
		l, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad wavelength: %w", path, line, err)
		}
		fl, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad flux: %w", path, line, err)
		}
		if n := len(lam); n > 0 && l <= lam[n-1] {
			return nil, fmt.Errorf("%s line %d: wavelength not increasing (%.2f after %.2f)", path, line, l, lam[n-1])
		}
		if len(lam) >= MaxSpecBins {
			return nil, fmt.Errorf("%s: more than %d wavelength bins", path, MaxSpecBins)
		}
		lam = append(lam, l)
		flux = append(flux, fl)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read spectrum file: %w", err)
	}
	return NewSpectrum(0, lam, flux)
}

//-------------------------------------------------------------------
// FilterModel
//-------------------------------------------------------------------

// Transmission curve of one passband on a wavelength grid.
type FilterModel struct {
	Band  int    // Absolute passband index
	Name  string // Band name like "g"
	Lam   []float64
	Trans []float64

	MeanLam float64 // Flat-SED mean wavelength [A]
}

func NewFilterModel(band int, name string, lam, trans []float64) *FilterModel {
	sum0, sum1 := 0.0, 0.0
	for i, l := range lam {
		sum0 += trans[i]
		sum1 += trans[i] * l
	}
	mean := 0.0
	if sum0 > 0.0 {
		mean = sum1 / sum0
	}
	return &FilterModel{Band: band, Name: name, Lam: lam, Trans: trans, MeanLam: mean}
}

// Flux-weighted mean wavelength of the spectrum through this filter:
//
//	<lam> = integ[lam*SED*Trans] / integ[SED*Trans]
//
// The spectrum is interpolated onto the filter wavelength grid.
// Returns 0 when the weighted flux sums to zero (no usable SED model).
func (filt *FilterModel) SEDWeightedWavelength(sp *Spectrum) float64 {
	sum0, sum1 := 0.0, 0.0
	for i, lam := range filt.Lam {
		st := sp.FluxAt(lam) * filt.Trans[i]
		sum0 += st
		sum1 += st * lam
	}
	if sum0 > 0.0 {
		return sum1 / sum0
	}
	return 0.0
}

// Return the spectrum whose MJD is nearest to mjd.
// An empty spectrum list is a data inconsistency, not a valid state.
func NearestSpectrum(spectra []*Spectrum, mjd float64) (*Spectrum, error) {
	if len(spectra) == 0 {
		return nil, fmt.Errorf("no spectrum available for MJD=%.4f", mjd)
	}
	best := spectra[0]
	diffMin := math.Abs(best.MJD - mjd)
	for _, s := range spectra[1:] {
		if d := math.Abs(s.MJD - mjd); d < diffMin {
			best, diffMin = s, d
		}
	}
	return best, nil
}
