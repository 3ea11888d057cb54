package window

import "fmt"

// A crossover kernel tapers only its right half: flat up to the centre
// tap, Blackman roll-off to zero at the last tap.
func ExampleWithSlope() {
	taper := Blackman(121, WithSlope(SlopeRight))
	half := taper[60:]
	fmt.Printf("centre=%.3f q1=%.3f q2=%.3f edge=%.3f\n", half[0], half[15], half[30], half[60])
	// Output:
	// centre=1.000 q1=0.774 q2=0.340 edge=0.000
}

func ExampleApply() {
	samples := []float64{1, 1, 1, 1, 1, 1, 1}
	if err := Apply(samples, Blackman(len(samples))); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f\n", samples)
	// Output:
	// [0.00 0.13 0.63 1.00 0.63 0.13 0.00]
}
