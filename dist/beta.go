// Package dist implements density and distribution functions for the
// beta and binomial distributions.
package dist

import (
	"math"

	"github.com/gonum/mathext"
)

// LnBeta returns log of Beta function.
func LnBeta(p, q float64) float64 {
	lgp, _ := math.Lgamma(p)
	lgq, _ := math.Lgamma(q)
	lgpq, _ := math.Lgamma(p + q)
	return lgp + lgq - lgpq
}

/*

BetaLogPDF returns the log density of the beta distribution with shape
parameters p and q at x.

The shape parameters must be positive and x must be in [0; 1]; the
boundaries are part of the domain, there the result can be -Inf or
+Inf depending on the shape parameters.

*/
func BetaLogPDF(x, p, q float64) float64 {
	// (p-1)*log(x) is 0*(-Inf) for p=1 and x=0,
	// handle the boundaries explicitly
	lx := 0.0
	if p != 1 {
		lx = (p - 1) * math.Log(x)
	}
	l1x := 0.0
	if q != 1 {
		l1x = (q - 1) * math.Log1p(-x)
	}
	return lx + l1x - LnBeta(p, q)
}

// BetaPDF returns the density of the beta distribution with shape
// parameters p and q at x.
func BetaPDF(x, p, q float64) float64 {
	return math.Exp(BetaLogPDF(x, p, q))
}

/*

CDFBeta returns distribution function of the standard form of the beta
distribution, that is, the incomplete beta ratio I_x(p,q).

*/
func CDFBeta(x, p, q float64) float64 {
	return mathext.RegIncBeta(p, q, x)
}

/*
QuantileBeta calculates the Quantile of the beta distribution
*/
func QuantileBeta(prob, p, q float64) float64 {
	return mathext.InvRegIncBeta(p, q, prob)
}
