// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.7.30
//

package atmos

import (
	"fmt"
	"strings"
)

// Polynomial with ordered coefficients c[0] + c[1]*x + c[2]*x^2 + ...
// Used to encode empirical fits supplied by configuration.
type Poly []float64

// Polynomial order; -1 for an empty (unset) polynomial
func (p Poly) Order() int {
	return len(p) - 1
}

// Evaluate the polynomial at x (Horner's method)
func (p Poly) Eval(x float64) float64 {
	v := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		v = v*x + p[i]
	}
	return v
}

// Display polynomial overview
func (p Poly) String() string {
	if p.Order() < 0 {
		return "POLY(unset)"
	}
	var sb strings.Builder
	sb.WriteString("POLY:")
	for i, c := range p {
		sb.WriteString(fmt.Sprintf(" %g*x^%d", c, i))
	}
	return sb.String()
}
