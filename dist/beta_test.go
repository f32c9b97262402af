package dist

import (
	"math"
	"testing"
)

const smallDiff = 1e-6

/*** Tests if a and b are approximately equal ***/
func appreq(a, b float64) bool {
	return math.Abs(a-b) <= smallDiff
}

/*** Test log of the beta function ***/
func TestLnBeta(tst *testing.T) {
	type Settings struct {
		p, q float64
	}
	settings := [...]Settings{
		{1, 1},
		{2, 5},
		{0.5, 0.5},
		{11, 91},
	}
	results := [...]float64{
		0,
		-3.401197381662157,
		1.144729885849400,
		-35.097443879119850,
	}
	for i, s := range settings {
		r := LnBeta(s.p, s.q)
		if !appreq(r, results[i]) {
			tst.Error("Results missmatch:", r, results[i])
		}
	}
}

/*** Test beta density values ***/
func TestBetaPDF(tst *testing.T) {
	type Settings struct {
		x, p, q float64
	}
	settings := [...]Settings{
		{0.3, 1, 1},
		{0.5, 2, 2},
		{0.2, 2, 5},
		{0.5, 0.5, 0.5},
		{0.1, 11, 91},
		{0.75, 1.16, 3.54},
	}
	results := [...]float64{
		1,
		1.5,
		2.4576,
		0.636620,
		13.318400,
		0.134877,
	}
	for i, s := range settings {
		r := BetaPDF(s.x, s.p, s.q)
		if !appreq(r, results[i]) {
			tst.Error("Results missmatch:", r, results[i])
		}
		lr := BetaLogPDF(s.x, s.p, s.q)
		if !appreq(math.Exp(lr), results[i]) {
			tst.Error("Log results missmatch:", lr, math.Log(results[i]))
		}
	}
}

// Test beta density at the boundaries of the support.
func TestBetaPDFBoundaries(tst *testing.T) {
	// uniform prior is flat everywhere including the boundaries
	if r := BetaPDF(0, 1, 1); r != 1 {
		tst.Error("Uniform density at 0 should be 1, got:", r)
	}
	if r := BetaPDF(1, 1, 1); r != 1 {
		tst.Error("Uniform density at 1 should be 1, got:", r)
	}
	// density vanishes at 0 for p>1
	if r := BetaPDF(0, 2, 2); r != 0 {
		tst.Error("Beta(2,2) density at 0 should be 0, got:", r)
	}
	if lr := BetaLogPDF(0, 2, 2); !math.IsInf(lr, -1) {
		tst.Error("Beta(2,2) log density at 0 should be -Inf, got:", lr)
	}
	// density diverges at 0 for p<1
	if r := BetaPDF(0, 0.5, 0.5); !math.IsInf(r, 1) {
		tst.Error("Beta(0.5,0.5) density at 0 should be +Inf, got:", r)
	}
}

/*** Test beta distribution function ***/
func TestCDFBeta(tst *testing.T) {
	type Settings struct {
		x, p, q float64
	}
	settings := [...]Settings{
		{0.2, 2, 5},
		{0.6, 64, 38},
		{0.5, 0.5, 0.5},
		{0.3, 1, 1},
	}
	results := [...]float64{
		0.344640,
		0.279530,
		0.5,
		0.3,
	}
	for i, s := range settings {
		r := CDFBeta(s.x, s.p, s.q)
		if !appreq(r, results[i]) {
			tst.Error("Results missmatch:", r, results[i])
		}
	}
}

// Test that the quantile function inverts the distribution function.
func TestQuantileBeta(tst *testing.T) {
	if r := QuantileBeta(0.5, 2, 5); !appreq(r, 0.264450) {
		tst.Error("Results missmatch:", r, 0.264450)
	}
	for _, prob := range []float64{0.025, 0.5, 0.975} {
		q := QuantileBeta(prob, 64, 38)
		if !appreq(CDFBeta(q, 64, 38), prob) {
			tst.Errorf("CDF(Quantile(%v)) != %v, got %v", prob, prob, CDFBeta(q, 64, 38))
		}
	}
}
