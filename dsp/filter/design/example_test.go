package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-crossover/dsp/filter/biquad"
	"github.com/cwbudde/algo-crossover/dsp/filter/design"
)

func ExampleLinkwitzRiley24LP() {
	lp := design.LinkwitzRiley24LP(1000, 48000)

	db := biquad.CascadeMagnitudeDB(lp[:], 1000, 48000)

	fmt.Printf("sections=%d gain at cutoff=%.2f dB\n", len(lp), db)
	// Output:
	// sections=2 gain at cutoff=-6.02 dB
}
