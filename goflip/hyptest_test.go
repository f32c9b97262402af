package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"bitbucket.org/Davydov/goflip/bmodel"
)

const smallDiff = 1e-6

/*** Tests if a and b are approximately equal ***/
func appreq(a, b float64) bool {
	return math.Abs(a-b) <= smallDiff
}

func TestHypTest(tst *testing.T) {
	m, err := bmodel.NewBinomialModel(100, 63, 0.5, 1, 1)
	if err != nil {
		tst.Fatal("Error creating model:", err)
	}

	s := hypTest(m)

	if !appreq(s.Null.Evidence, 0.002698) {
		tst.Error("Wrong null evidence:", s.Null.Evidence)
	}
	if !appreq(s.Alt.Evidence, 1.0/101.0) {
		tst.Error("Wrong alternative evidence:", s.Alt.Evidence)
	}
	if !appreq(s.Null.PosteriorProb, 0.214140) {
		tst.Error("Wrong null posterior probability:", s.Null.PosteriorProb)
	}
	if !appreq(s.Alt.PosteriorProb, 0.785860) {
		tst.Error("Wrong alternative posterior probability:", s.Alt.PosteriorProb)
	}
	if !appreq(s.Null.PosteriorProb+s.Alt.PosteriorProb, 1) {
		tst.Error("Model probabilities do not sum to 1")
	}
	if !appreq(s.LnBayesFactor, 1.300151) {
		tst.Error("Wrong log Bayes factor:", s.LnBayesFactor)
	}
	if !appreq(s.PosteriorMean, 64.0/102.0) {
		tst.Error("Wrong posterior mean:", s.PosteriorMean)
	}
	if !appreq(s.PosteriorLower, 0.531931) || !appreq(s.PosteriorUpper, 0.718235) {
		tst.Error("Wrong credible interval:", s.PosteriorLower, s.PosteriorUpper)
	}
}

func TestReport(tst *testing.T) {
	m, err := bmodel.NewBinomialModel(100, 10, 0.1, 1, 1)
	if err != nil {
		tst.Fatal("Error creating model:", err)
	}

	s := hypTest(m)
	s.Parameters = map[string]float64{"n": 100, "k": 10, "p": 0.1, "a": 1, "b": 1}

	var buf bytes.Buffer
	printReport(&buf, s)
	report := buf.String()

	for _, want := range []string{
		"p(data | null model) = 0.131865",
		"p(data | alt model) = 0.00990099",
		"p(null model | data) = 0.93",
		"p(alt model | data) = 0.06",
	} {
		if !strings.Contains(report, want) {
			tst.Errorf("Report does not contain %q:\n%s", want, report)
		}
	}
}

func TestSelfTest(tst *testing.T) {
	if code := runSelfTest(); code != 0 {
		tst.Error("Self test failed with code:", code)
	}
}
