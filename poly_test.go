// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.11
//

package atmos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/skysim/atmos"
)

func TestPolyEval(t *testing.T) {
	// 2 - 3x + 0.5x^2
	p := m.Poly{2.0, -3.0, 0.5}

	assert.Equal(t, 2, p.Order())
	assert.InDelta(t, 2.0, p.Eval(0.0), 1e-12)
	assert.InDelta(t, -0.5, p.Eval(1.0), 1e-12)
	assert.InDelta(t, 2.0-3.0*2.0+0.5*4.0, p.Eval(2.0), 1e-12)
}

func TestPolyUnset(t *testing.T) {
	var p m.Poly

	assert.Equal(t, -1, p.Order())
	assert.Equal(t, 0.0, p.Eval(3.0))
	assert.Equal(t, "POLY(unset)", p.String())
}
