// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.26
//

package atmos

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DCRTable writes the DCR shift in arcsec on a grid of airmass and
// wavelength for the given band, for comparison with Table 1 in
// Filippenko 1982.
func (a *Atmosphere) DCRTable(w io.Writer, band int) error {
	if _, ok := a.filters[band]; !ok {
		return fmt.Errorf("no filter model for band index %d", band)
	}

	lamGrid := make([]float64, 7)
	floats.Span(lamGrid, 3000.0, 9000.0)

	fmt.Fprintf(w, "# Airmass  ")
	for _, lam := range lamGrid {
		fmt.Fprintf(w, " %6.0f ", lam)
	}
	fmt.Fprintf(w, "\n# ---------------------------------------------------------------\n")

	for airmass := 1.0; airmass < 4.0; airmass += 1.0 {
		z := math.Acos(1.0 / airmass)
		tanZ := math.Tan(z)
		fmt.Fprintf(w, " %6.3f    ", airmass)
		for _, lam := range lamGrid {
			fmt.Fprintf(w, " %6.3f ", a.DCRAngle(lam, tanZ, band))
		}
		fmt.Fprintf(w, "\n")
	}
	return nil
}
