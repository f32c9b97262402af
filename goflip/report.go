package main

import (
	"fmt"
	"io"
)

// reportText is the explanatory report; it embeds the evidence for
// both models and their posterior probabilities.
const reportText = `
Let's use Bayes rule to calculate the posterior probability of 2 models:

1.  A "null" model where the probability of heads is fixed to %g

2.  An alternative model where the probability of heads is free to vary
    between 0 and 1 according to a beta prior

First, we need the marginal probability of the data (the marginal likelihood)
under both models. For the null model there are no free parameters to
marginalize over, so the marginal likelihood is just the likelihood.

    p(data | null model) = %g

For the alternative model, we can easily get the densities from the prior and
posterior distributions (they are both beta distributions), and the likelihood
is a binomial, just like for the null model. With these three numbers, we can
solve for the marginal probability of the data (the denominator of the model's
posterior density).

    p(data | alt model) = %g

Assuming a priori that both models are equally probable (i.e., p(null model)
= p(alt model) = 0.5), the model priors cancel out and the posterior
probability of each model is its evidence divided by the total evidence:

    p(null model | data) = %g

    p(alt model | data) = %g

The log Bayes factor in favor of the alternative model is %g.

Under the alternative model, the posterior mean of the probability of heads
is %g, with a 95%% credible interval of (%g, %g).
`

// printReport writes the report for a finished comparison.
func printReport(w io.Writer, s *TestSummary) {
	fmt.Fprintf(w, reportText,
		s.Parameters["p"],
		s.Null.Evidence,
		s.Alt.Evidence,
		s.Null.PosteriorProb,
		s.Alt.PosteriorProb,
		s.LnBayesFactor,
		s.PosteriorMean,
		s.PosteriorLower,
		s.PosteriorUpper)
}
