// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.27
//

package atmos

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ------------------------------------
// Mini functions
// ------------------------------------

func SQ(x float64) float64 {
	return x * x
}

func ToDeg(rad float64) float64 {
	return rad / PI * 180.0
}

func ToRad(deg float64) float64 {
	return deg / 180.0 * PI
}

// ------------------------------------
// Debug print function
// ------------------------------------

func PrintA(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
}

func PrintAIf(cond bool, format string, a ...any) {
	if cond {
		PrintA(format, a...)
	}
}

// Debug display level
var DBG_ int

// Debug display
func PrintD(v int, format string, a ...any) {
	PrintAIf(DBG_ >= v, format, a...)
}

func PrintE(err error) {
	fmt.Fprintf(os.Stderr, "err=%s\n", err.Error())
}

// ------------------------------------
// For command argument parsing
// ------------------------------------

// Feature mask selecting atmosphere effects. Accepts a comma-separated
// list of effect names (coord, psfshape) or a raw integer mask.
type OptVar int

func (p *OptVar) Set(s string) error {
	if i, err := strconv.ParseInt(s, 10, 0); err == nil {
		*p = OptVar(i)
		return nil
	}
	*p = 0
	for _, a := range strings.Split(s, ",") {
		switch strings.TrimSpace(a) {
		case "coord":
			*p |= OptDCRCoord
		case "psfshape":
			*p |= OptDCRPSFShape
		default:
			return fmt.Errorf("unknown atmosphere effect %q", a)
		}
	}
	return nil
}

func (p *OptVar) String() string {
	s := []string{}
	if *p&OptDCRCoord != 0 {
		s = append(s, "coord")
	}
	if *p&OptDCRPSFShape != 0 {
		s = append(s, "psfshape")
	}
	return strings.Join(s, ",")
}
