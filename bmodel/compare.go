package bmodel

// PosteriorModelProbs returns the posterior probabilities of two
// models given their marginal likelihoods, assuming equal prior model
// probabilities. The equal model priors cancel out:
//
//	p(model0 | data) =        p(data | model0)
//	                   ------------------------------------
//	                   p(data | model0) + p(data | model1)
func PosteriorModelProbs(l0, l1 float64) (p0, p1 float64) {
	t := l0 + l1
	return l0 / t, l1 / t
}

// LogBayesFactor returns the log Bayes factor in favor of the
// beta-prior alternative model over the fixed-rate null model.
func (m *BinomialModel) LogBayesFactor() float64 {
	return m.LogMarginalLikelihood() - m.LogLikelihood()
}
