// SPDX-License-Identifier: EPL-2.0

package click

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroCrossings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []float64
		want    int
	}{
		{name: "empty", samples: nil, want: 0},
		{name: "all zero", samples: []float64{0, 0, 0}, want: 0},
		{name: "single positive run", samples: []float64{0.1, 0.5, 0.2}, want: 1},
		{name: "alternating", samples: []float64{1, -1, 1, -1}, want: 4},
		{name: "zeros do not split a run", samples: []float64{1, 0, 0, 1, -1, 0, -1}, want: 2},
		{name: "leading zeros", samples: []float64{0, 0, -0.3, 0.3}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ZeroCrossings(tt.samples))
		})
	}
}

func TestZeroCrossings_IgnoresPositiveScale(t *testing.T) {
	t.Parallel()

	s := []float64{0.2, -0.1, 0.4, 0.4, -0.9}
	scaled := make([]float64, len(s))
	for i, x := range s {
		scaled[i] = x * 1e-6
	}

	assert.Equal(t, ZeroCrossings(s), ZeroCrossings(scaled))
}

func TestEqualize(t *testing.T) {
	t.Parallel()

	slice := []float64{0.1, -0.2, 0.05, 0.1, 0.1}
	ref := []float64{1, -0.5, 0.25}

	a, b := Equalize(slice, ref)

	assert.Len(t, a, 3)
	assert.Len(t, b, 3)
	assert.InDelta(t, 0.5, a[0], 1e-12)
	assert.InDelta(t, -1, a[1], 1e-12)
	assert.Equal(t, ref, b)
	assert.Equal(t, 0.1, slice[0], "input must not be modified")
}

func TestTrimZeros(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float64{1, 0, 2}, TrimZeros([]float64{0, 0, 1, 0, 2, 0}))
	assert.Empty(t, TrimZeros([]float64{0, 0}))
	assert.Empty(t, TrimZeros(nil))
}

func TestDifference(t *testing.T) {
	t.Parallel()

	a := []float64{0, 0.5, -0.25, 0.75, 0}

	t.Run("identical up to scale and padding", func(t *testing.T) {
		t.Parallel()

		b := []float64{2, -1, 3}
		diff, ok := Difference(a, b)
		assert.True(t, ok)
		assert.InDelta(t, 0, diff, 1e-12)
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()

		b := []float64{1, 1, -1, -1}
		d1, _ := Difference(a, b)
		d2, _ := Difference(b, a)
		assert.InDelta(t, d1, d2, 1e-12)
		assert.Greater(t, d1, 0.0)
	})

	t.Run("silent input", func(t *testing.T) {
		t.Parallel()

		_, ok := Difference(a, []float64{0, 0})
		assert.False(t, ok)
	})
}
