package design

import "github.com/cwbudde/algo-crossover/dsp/filter/biquad"

// LR24Sections is the number of biquads per side of a Linkwitz-Riley
// 24 dB/oct crossover.
const LR24Sections = 2

// LinkwitzRiley24LP returns the two identical Butterworth low-pass sections
// of an LR24 low-pass at freq. The cascade is -6.02 dB at freq.
func LinkwitzRiley24LP(freq, sampleRate float64) [LR24Sections]biquad.Coefficients {
	bw := Lowpass(freq, ButterworthQ, sampleRate)
	return [LR24Sections]biquad.Coefficients{bw, bw}
}

// LinkwitzRiley24HP returns the two identical Butterworth high-pass sections
// of an LR24 high-pass at freq. LR24 low- and high-pass outputs are in phase
// and need no polarity flip.
func LinkwitzRiley24HP(freq, sampleRate float64) [LR24Sections]biquad.Coefficients {
	bw := Highpass(freq, ButterworthQ, sampleRate)
	return [LR24Sections]biquad.Coefficients{bw, bw}
}

// LinkwitzRiley24AP returns the allpass that equals the sum of the LR24
// low-pass and high-pass at freq. Lower bands of a multiband crossover are
// run through the allpass of every higher crossover so all bands stay in
// phase.
func LinkwitzRiley24AP(freq, sampleRate float64) biquad.Coefficients {
	return Allpass(freq, ButterworthQ, sampleRate)
}
