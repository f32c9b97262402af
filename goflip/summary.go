package main

// ModelSummary stores the evidence and the posterior probability of a
// single model.
type ModelSummary struct {
	// LnEvidence is the log marginal probability of the data under
	// the model.
	LnEvidence float64 `json:"lnEvidence"`
	// Evidence is the marginal probability of the data under the
	// model.
	Evidence float64 `json:"evidence"`
	// PosteriorProb is the posterior probability of the model given
	// equal prior model probabilities.
	PosteriorProb float64 `json:"posteriorProbability"`
}

// TestSummary stores the full result of the two-model comparison.
type TestSummary struct {
	// Version stores goflip version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Parameters stores the analysis parameters.
	Parameters map[string]float64 `json:"parameters"`
	// Null is the result for the fixed-probability null model.
	Null ModelSummary `json:"null"`
	// Alt is the result for the beta-prior alternative model.
	Alt ModelSummary `json:"alt"`
	// LnBayesFactor is the log Bayes factor in favor of the
	// alternative model.
	LnBayesFactor float64 `json:"lnBayesFactor"`
	// PosteriorMean is the mean of the beta posterior on the
	// probability of heads.
	PosteriorMean float64 `json:"posteriorMean"`
	// PosteriorLower and PosteriorUpper are the bounds of the 95%
	// equal-tailed credible interval of the probability of heads.
	PosteriorLower float64 `json:"posteriorLower"`
	PosteriorUpper float64 `json:"posteriorUpper"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}

// results returns the numeric results for the run log.
func (s *TestSummary) results() map[string]float64 {
	return map[string]float64{
		"lnEvidenceNull": s.Null.LnEvidence,
		"lnEvidenceAlt":  s.Alt.LnEvidence,
		"pNull":          s.Null.PosteriorProb,
		"pAlt":           s.Alt.PosteriorProb,
		"lnBayesFactor":  s.LnBayesFactor,
		"posteriorMean":  s.PosteriorMean,
		"posteriorLower": s.PosteriorLower,
		"posteriorUpper": s.PosteriorUpper,
	}
}
