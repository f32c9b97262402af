package main

import (
	"bitbucket.org/Davydov/goflip/bmodel"
)

// hypTest compares the fixed-probability null model with the
// beta-prior alternative. The null model has no free parameters, so
// its marginal likelihood is just the likelihood at the fixed p; the
// alternative marginal likelihood comes from the rearranged Bayes
// identity.
func hypTest(m *bmodel.BinomialModel) (summary *TestSummary) {
	summary = &TestSummary{}

	lnL0 := m.LogLikelihood()
	lnL1 := m.LogMarginalLikelihood()
	log.Noticef("lnL0=%f, lnL1=%f", lnL0, lnL1)

	l0 := m.Likelihood()
	l1 := m.MarginalLikelihood()
	p0, p1 := bmodel.PosteriorModelProbs(l0, l1)

	summary.Null = ModelSummary{
		LnEvidence:    lnL0,
		Evidence:      l0,
		PosteriorProb: p0,
	}
	summary.Alt = ModelSummary{
		LnEvidence:    lnL1,
		Evidence:      l1,
		PosteriorProb: p1,
	}
	summary.LnBayesFactor = m.LogBayesFactor()

	summary.PosteriorMean = m.PosteriorMean()
	lower, upper, err := m.PosteriorInterval(0.95)
	if err != nil {
		// prob=0.95 is always in the domain
		log.Fatal(err)
	}
	summary.PosteriorLower = lower
	summary.PosteriorUpper = upper

	return summary
}
