// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.22
//

package atmos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/skysim/atmos"
)

// Conditions of the worked examples in Filippenko 1982: sea level,
// 15 C, 760 mmHg, 8 mmHg water vapor.
var seaLevel = m.SiteConditions{Temperature: 15.0, Pressure: 760.0, PWV: 8.0}

func TestIndexOfRefractionMonotonic(t *testing.T) {
	prev := m.IndexOfRefraction(3000.0, seaLevel)
	for lam := 3100.0; lam <= 10000.0; lam += 100.0 {
		n := m.IndexOfRefraction(lam, seaLevel)
		assert.Less(t, n, prev, "n must decrease with wavelength at %.0f A", lam)
		assert.Greater(t, n, 1.0)
		prev = n
	}
}

func TestIndexOfRefractionMagnitude(t *testing.T) {
	// (n-1)*1e6 at 5000 A is close to 278 under the paper's conditions
	n := m.IndexOfRefraction(5000.0, seaLevel)
	assert.InDelta(t, 278.0e-6, n-1.0, 3.0e-6)
}

func TestIndexOfRefractionPressureScaling(t *testing.T) {
	// lower pressure reduces the refractivity roughly in proportion
	lo := m.SiteConditions{Temperature: 15.0, Pressure: 380.0, PWV: 8.0}
	nHi := m.IndexOfRefraction(5000.0, seaLevel) - 1.0
	nLo := m.IndexOfRefraction(5000.0, lo) - 1.0
	assert.InDelta(t, 0.5, nLo/nHi, 0.02)
}
