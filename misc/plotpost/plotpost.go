// plotpost creates a plot of the prior and the posterior density of
// the probability of heads.
package main

import (
	"flag"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"bitbucket.org/Davydov/goflip/dist"
)

func main() {
	n := flag.Int("n", 100, "number of flips")
	k := flag.Int("k", 63, "number of heads")
	a := flag.Float64("a", 1, "alpha of the beta prior")
	b := flag.Float64("b", 1, "beta of the beta prior")
	npoints := flag.Int("npoints", 101, "number of grid points")
	out := flag.String("o", "posterior.png", "output file")
	flag.Parse()

	prior := make(plotter.XYs, *npoints)
	posterior := make(plotter.XYs, *npoints)
	for i := 0; i < *npoints; i++ {
		// stay away from the boundaries, the densities can
		// diverge there
		x := (float64(i) + 0.5) / float64(*npoints)
		prior[i].X = x
		prior[i].Y = dist.BetaPDF(x, *a, *b)
		posterior[i].X = x
		posterior[i].Y = dist.BetaPDF(x, *a+float64(*k), *b+float64(*n-*k))
	}

	p, err := plot.New()
	if err != nil {
		panic(err)
	}
	p.X.Label.Text = "probability of heads"
	p.Y.Label.Text = "density"

	err = plotutil.AddLinePoints(p,
		"prior", prior,
		"posterior", posterior)
	if err != nil {
		panic(err)
	}

	if err := p.Save(4*vg.Inch, 4*vg.Inch, *out); err != nil {
		panic(err)
	}
}
