// DBeta prints values of a beta density on a grid.
package main

import (
	"flag"
	"fmt"

	"bitbucket.org/Davydov/goflip/dist"
)

func main() {
	p := flag.Float64("p", 1, "p")
	q := flag.Float64("q", 1, "q")
	npoints := flag.Int("npoints", 11, "number of grid points")
	flag.Parse()

	for i := 0; i < *npoints; i++ {
		x := float64(i) / float64(*npoints-1)
		fmt.Println(x, dist.BetaPDF(x, *p, *q))
	}
}
