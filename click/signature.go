// SPDX-License-Identifier: EPL-2.0

package click

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ZeroCrossings counts the polarity runs of samples. Zeros belong to no run,
// so a positive run interrupted by zeros is still one run, and the first
// nonzero sample opens the first run.
func ZeroCrossings(samples []float64) int {
	var (
		count    int
		polarity int
	)

	for _, s := range samples {
		switch {
		case s > 0 && polarity != 1:
			polarity = 1
			count++
		case s < 0 && polarity != -1:
			polarity = -1
			count++
		}
	}

	return count
}

// Peak returns the largest sample magnitude.
func Peak(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	return math.Max(floats.Max(samples), -floats.Min(samples))
}

// Equalize scales a copy of slice so its peak matches the peak of ref, then
// cuts both to the shorter length.
func Equalize(slice, ref []float64) ([]float64, []float64) {
	n := min(len(slice), len(ref))

	scaled := make([]float64, len(slice))
	if p := Peak(slice); p > 0 {
		floats.ScaleTo(scaled, Peak(ref)/p, slice)
	}

	return scaled[:n], ref[:n]
}

// TrimZeros drops the leading and trailing exact zeros of samples.
func TrimZeros(samples []float64) []float64 {
	start, end := 0, len(samples)
	for start < end && samples[start] == 0 {
		start++
	}
	for end > start && samples[end-1] == 0 {
		end--
	}

	return samples[start:end]
}

// Difference is the cumulative absolute sample-wise difference between a
// and b after each is scaled to unit L2 norm, stripped of leading and
// trailing zeros, and cut to the shorter length. ok is false when either
// input is silent.
func Difference(a, b []float64) (diff float64, ok bool) {
	na, oka := unitTrimmed(a)
	nb, okb := unitTrimmed(b)
	if !oka || !okb {
		return 0, false
	}

	n := min(len(na), len(nb))

	return floats.Distance(na[:n], nb[:n], 1), true
}

func unitTrimmed(samples []float64) ([]float64, bool) {
	trimmed := TrimZeros(samples)
	if len(trimmed) == 0 {
		return nil, false
	}

	out := make([]float64, len(trimmed))
	floats.ScaleTo(out, 1/floats.Norm(trimmed, 2), trimmed)

	return out, true
}
