/*

Package bmodel implements a conjugate binomial-beta model for
comparing two hypotheses about a binomial success rate: a null model
with a fixed success probability and an alternative model where the
probability follows a beta prior.

Inspired by the lizard-flipping example in Chapter 2 of Luke Harmon's
book on phylogenetic comparative methods:

https://lukejharmon.github.io/pcm/chapter2_stats/

*/
package bmodel

import (
	"fmt"
	"math"

	"bitbucket.org/Davydov/goflip/dist"
)

// DomainError is returned when a model parameter is outside of its
// domain.
type DomainError struct {
	// Name is the parameter name.
	Name string
	// Value is the offending value.
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("parameter %s=%v is out of the domain", e.Name, e.Value)
}

// BinomialModel is a binomial sampling distribution with a conjugate
// beta prior on the success probability. The model is read-only after
// construction, all the queries are pure.
type BinomialModel struct {
	n, k  int
	p     float64
	betaA float64
	betaB float64
}

// NewBinomialModel creates a model from the number of trials n, the
// number of observed successes k, the fixed success probability p of
// the null model (also the default point for density evaluation), and
// the shape parameters of the beta prior. Parameters outside of the
// domain result in a *DomainError.
func NewBinomialModel(n, k int, p, betaA, betaB float64) (*BinomialModel, error) {
	switch {
	case n < 1:
		return nil, &DomainError{"n", float64(n)}
	case k < 0 || k > n:
		return nil, &DomainError{"k", float64(k)}
	case !(p >= 0 && p <= 1):
		return nil, &DomainError{"p", p}
	case !(betaA > 0):
		return nil, &DomainError{"a", betaA}
	case !(betaB > 0):
		return nil, &DomainError{"b", betaB}
	}
	return &BinomialModel{n: n, k: k, p: p, betaA: betaA, betaB: betaB}, nil
}

// checkP returns a *DomainError if p is not a valid probability.
func checkP(p float64) error {
	if !(p >= 0 && p <= 1) {
		return &DomainError{"p", p}
	}
	return nil
}

// N returns the number of trials.
func (m *BinomialModel) N() int { return m.n }

// K returns the number of observed successes.
func (m *BinomialModel) K() int { return m.k }

// P returns the fixed success probability of the null model.
func (m *BinomialModel) P() float64 { return m.p }

// Prior returns the shape parameters of the beta prior.
func (m *BinomialModel) Prior() (a, b float64) {
	return m.betaA, m.betaB
}

// Posterior returns the shape parameters of the beta posterior, i.e.
// the conjugate update Beta(a+k, b+n-k).
func (m *BinomialModel) Posterior() (a, b float64) {
	return m.betaA + float64(m.k), m.betaB + float64(m.n-m.k)
}

// PriorDensity returns the prior density at the stored p.
func (m *BinomialModel) PriorDensity() float64 {
	return dist.BetaPDF(m.p, m.betaA, m.betaB)
}

// PriorDensityAt returns the prior density at p.
func (m *BinomialModel) PriorDensityAt(p float64) (float64, error) {
	if err := checkP(p); err != nil {
		return 0, err
	}
	return dist.BetaPDF(p, m.betaA, m.betaB), nil
}

// LogPriorDensity returns the log prior density at the stored p.
func (m *BinomialModel) LogPriorDensity() float64 {
	return dist.BetaLogPDF(m.p, m.betaA, m.betaB)
}

// LogPriorDensityAt returns the log prior density at p. The result
// can be infinite at the boundaries depending on the shape
// parameters.
func (m *BinomialModel) LogPriorDensityAt(p float64) (float64, error) {
	if err := checkP(p); err != nil {
		return 0, err
	}
	return dist.BetaLogPDF(p, m.betaA, m.betaB), nil
}

// PosteriorDensity returns the posterior density at the stored p.
func (m *BinomialModel) PosteriorDensity() float64 {
	a, b := m.Posterior()
	return dist.BetaPDF(m.p, a, b)
}

// PosteriorDensityAt returns the posterior density at p.
func (m *BinomialModel) PosteriorDensityAt(p float64) (float64, error) {
	if err := checkP(p); err != nil {
		return 0, err
	}
	a, b := m.Posterior()
	return dist.BetaPDF(p, a, b), nil
}

// LogPosteriorDensity returns the log posterior density at the stored
// p.
func (m *BinomialModel) LogPosteriorDensity() float64 {
	a, b := m.Posterior()
	return dist.BetaLogPDF(m.p, a, b)
}

// LogPosteriorDensityAt returns the log posterior density at p.
func (m *BinomialModel) LogPosteriorDensityAt(p float64) (float64, error) {
	if err := checkP(p); err != nil {
		return 0, err
	}
	a, b := m.Posterior()
	return dist.BetaLogPDF(p, a, b), nil
}

// Likelihood returns the binomial probability of the data given the
// stored p.
func (m *BinomialModel) Likelihood() float64 {
	return dist.BinomialPMF(m.k, m.n, m.p)
}

// LikelihoodAt returns the binomial probability of the data given p.
func (m *BinomialModel) LikelihoodAt(p float64) (float64, error) {
	if err := checkP(p); err != nil {
		return 0, err
	}
	return dist.BinomialPMF(m.k, m.n, p), nil
}

// LogLikelihood returns the log likelihood at the stored p.
func (m *BinomialModel) LogLikelihood() float64 {
	return dist.BinomialLogPMF(m.k, m.n, m.p)
}

// LogLikelihoodAt returns the log likelihood at p.
func (m *BinomialModel) LogLikelihoodAt(p float64) (float64, error) {
	if err := checkP(p); err != nil {
		return 0, err
	}
	return dist.BinomialLogPMF(m.k, m.n, p), nil
}

/*

LogMarginalLikelihood returns the log marginal probability of the
data under the beta prior. Rearranging Bayes rule

	p(rate | data) = p(data | rate) p(rate)
	                 -----------------------
	                        p(data)

gives

	p(data) = p(data | rate) p(rate)
	          ----------------------
	              p(rate | data)

for any rate value in the support, since the ratio is constant in the
rate. It is evaluated at the stored p; the three terms must be
computed at the same point. The computation is on the log scale to
avoid underflow for large n.

Precision degrades when the stored p is close to 0 or 1, where the
prior and posterior densities approach 0 or diverge.

*/
func (m *BinomialModel) LogMarginalLikelihood() float64 {
	return m.LogLikelihood() + m.LogPriorDensity() - m.LogPosteriorDensity()
}

// MarginalLikelihood returns the marginal probability of the data
// under the beta prior.
func (m *BinomialModel) MarginalLikelihood() float64 {
	return math.Exp(m.LogMarginalLikelihood())
}

// PosteriorMean returns the mean of the beta posterior.
func (m *BinomialModel) PosteriorMean() float64 {
	a, b := m.Posterior()
	return a / (a + b)
}

// PosteriorInterval returns the equal-tailed credible interval
// containing prob of the posterior mass.
func (m *BinomialModel) PosteriorInterval(prob float64) (lower, upper float64, err error) {
	if !(prob > 0 && prob < 1) {
		return 0, 0, &DomainError{"prob", prob}
	}
	a, b := m.Posterior()
	tail := (1 - prob) / 2
	return dist.QuantileBeta(tail, a, b), dist.QuantileBeta(1-tail, a, b), nil
}
