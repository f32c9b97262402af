package dist

import "math"

// LnChoose returns the log of the binomial coefficient C(n, k).
func LnChoose(n, k int) float64 {
	lgn, _ := math.Lgamma(float64(n) + 1)
	lgk, _ := math.Lgamma(float64(k) + 1)
	lgnk, _ := math.Lgamma(float64(n-k) + 1)
	return lgn - lgk - lgnk
}

/*

BinomialLogPMF returns the log probability of k successes in n trials
given the success probability p.

k must be in [0; n] and p in [0; 1]; p=0 and p=1 are part of the
domain (the result is -Inf for impossible outcomes).

*/
func BinomialLogPMF(k, n int, p float64) float64 {
	// k*log(p) is 0*(-Inf) for k=0 and p=0,
	// handle the boundaries explicitly
	lp := 0.0
	if k != 0 {
		lp = float64(k) * math.Log(p)
	}
	lq := 0.0
	if k != n {
		lq = float64(n-k) * math.Log1p(-p)
	}
	return LnChoose(n, k) + lp + lq
}

// BinomialPMF returns the probability of k successes in n trials
// given the success probability p.
func BinomialPMF(k, n int, p float64) float64 {
	return math.Exp(BinomialLogPMF(k, n, p))
}
