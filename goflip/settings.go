package main

import (
	"fmt"
	"math"

	"bitbucket.org/Davydov/goflip/bmodel"
)

// settings stores the analysis parameters for a single run.
type settings struct {
	n, k  int
	p     float64
	betaA float64
	betaB float64
}

// newSettings creates settings from the command-line parameters
// (global variables) and validates them before the model is ever
// constructed.
func newSettings() (*settings, error) {
	switch {
	case *nFlips < 1:
		return nil, fmt.Errorf("%v is not a positive integer", *nFlips)
	case *nHeads < 1:
		return nil, fmt.Errorf("%v is not a positive integer", *nHeads)
	case *nHeads > *nFlips:
		return nil, fmt.Errorf("number of heads (%v) cannot exceed number of flips (%v)", *nHeads, *nFlips)
	case *pHeads < 0 || math.IsNaN(*pHeads):
		return nil, fmt.Errorf("%v is not a non-negative real number", *pHeads)
	case *betaA <= 0 || math.IsNaN(*betaA):
		return nil, fmt.Errorf("%v is not a positive real number", *betaA)
	case *betaB <= 0 || math.IsNaN(*betaB):
		return nil, fmt.Errorf("%v is not a positive real number", *betaB)
	}
	return &settings{
		n:     *nFlips,
		k:     *nHeads,
		p:     *pHeads,
		betaA: *betaA,
		betaB: *betaB,
	}, nil
}

// createModel creates a new model from settings.
func (s *settings) createModel() (*bmodel.BinomialModel, error) {
	return bmodel.NewBinomialModel(s.n, s.k, s.p, s.betaA, s.betaB)
}

// parameters returns the parameter map for the run log and the
// summary.
func (s *settings) parameters() map[string]float64 {
	return map[string]float64{
		"n": float64(s.n),
		"k": float64(s.k),
		"p": s.p,
		"a": s.betaA,
		"b": s.betaB,
	}
}
