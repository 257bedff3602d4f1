package go_bsoption

import "gonum.org/v1/gonum/stat/distuv"

// normCdf returns the probability that a standard normal variate is less
// than or equal to x.
func normCdf(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// normPdf returns the standard normal density at x.
func normPdf(x float64) float64 {
	return distuv.UnitNormal.Prob(x)
}
