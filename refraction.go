// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.18
//

package atmos

// Index of refraction of the atmosphere at wavelength lamA (Angstrom)
// for the given site conditions.
// Uses Eqs 1,2,3 in Filippenko 1982,
//
//	https://articles.adsabs.harvard.edu/full/1982PASP...94..715F
//
// Three stages: sea-level index from a Cauchy-type dispersion formula,
// pressure/temperature correction for the site, water-vapor correction.
func IndexOfRefraction(lamA float64, c SiteConditions) float64 {
	invLamSq := 1.0e8 / (lamA * lamA) // inverse micron^2

	denomT := 1.0 + 0.003661*c.Temperature

	// Sea level, 15 C, 760 mmHg dry air (Eq 1)
	tmp0 := 64.328
	tmp1 := 29498.1 / (146.0 - invLamSq)
	tmp2 := 255.4 / (41.0 - invLamSq)
	n0 := 1.0 + (tmp0+tmp1+tmp2)*1.0e-6

	// Correct for site pressure and temperature (Eq 2)
	tmp0 = n0 - 1.0
	tmp1 = c.Pressure * (1.0 + (1.049-0.0157*c.Temperature)*1.0e-6*c.Pressure)
	tmp2 = 720.883 * denomT
	n1 := 1.0 + tmp0*(tmp1/tmp2)

	// Correct for water vapor (Eq 3)
	tmp1 = (0.0624 - 0.000680*invLamSq) * c.PWV / denomT
	return 1.0 + (n1 - 1.0) - tmp1*1.0e-6
}
