package main

import (
	"math"

	"bitbucket.org/Davydov/goflip/bmodel"
)

// exampleCheck is a single known-value check from the worked
// lizard-flipping example (100 flips, 10 heads, p=0.1, uniform
// prior).
type exampleCheck struct {
	name     string
	value    func(m *bmodel.BinomialModel) float64
	expected float64
	tol      float64
}

var exampleChecks = []exampleCheck{
	{"likelihood", (*bmodel.BinomialModel).Likelihood, 0.1318653, 1e-5},
	{"posterior density", (*bmodel.BinomialModel).PosteriorDensity, 13.3184, 1e-4},
	{"marginal likelihood", (*bmodel.BinomialModel).MarginalLikelihood, 0.00990099, 1e-6},
}

// runSelfTest checks the embedded worked example and returns the
// process exit code (0 on success).
func runSelfTest() int {
	m, err := bmodel.NewBinomialModel(100, 10, 0.1, 1, 1)
	if err != nil {
		log.Error("Error creating model:", err)
		return 1
	}

	failed := 0
	for _, c := range exampleChecks {
		v := c.value(m)
		if math.Abs(v-c.expected) > c.tol {
			log.Errorf("FAIL %s: got %g, expected %g", c.name, v, c.expected)
			failed++
		} else {
			log.Noticef("ok %s = %g", c.name, v)
		}
	}

	// the marginal likelihood should not depend on the evaluation
	// point
	m2, err := bmodel.NewBinomialModel(100, 10, 0.7, 1, 1)
	if err != nil {
		log.Error("Error creating model:", err)
		return 1
	}
	if d := math.Abs(m.LogMarginalLikelihood() - m2.LogMarginalLikelihood()); d > 1e-6 {
		log.Errorf("FAIL marginal likelihood invariance: difference %g", d)
		failed++
	} else {
		log.Notice("ok marginal likelihood invariance")
	}

	if failed > 0 {
		log.Errorf("%d check(s) failed", failed)
		return 1
	}
	log.Notice("All checks passed")
	return 0
}
