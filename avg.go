// Copyright (c) 2026 skysim authors. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the authors.
// The authors accept no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.05
//

package atmos

// Online weighted average for one coordinate axis, overall and keyed by
// passband. Reset once per simulated event, incremented once per
// qualifying epoch. The mean is recomputed on every increment so it can
// be read at any time without a separate finalize step.
type CoordAvg struct {
	Sum    float64
	WgtSum float64
	Avg    float64

	SumBand    map[int]float64
	WgtSumBand map[int]float64
	AvgBand    map[int]float64
}

func NewCoordAvg() *CoordAvg {
	c := &CoordAvg{}
	c.Reset()
	return c
}

// Clear all sums and means
func (c *CoordAvg) Reset() {
	c.Sum, c.WgtSum, c.Avg = 0.0, 0.0, 0.0
	c.SumBand = map[int]float64{}
	c.WgtSumBand = map[int]float64{}
	c.AvgBand = map[int]float64{}
}

// Increment the sums with one weighted observation in the given band
func (c *CoordAvg) Add(val, wgt float64, band int) {
	c.Sum += wgt * val
	c.WgtSum += wgt
	c.SumBand[band] += wgt * val
	c.WgtSumBand[band] += wgt

	c.Avg = c.Sum / c.WgtSum
	c.AvgBand[band] = c.SumBand[band] / c.WgtSumBand[band]
}
