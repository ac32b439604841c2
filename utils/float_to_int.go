// SPDX-License-Identifier: EPL-2.0

package utils

// FloatToInt16 clamps x to [-1,1] and scales it to a 16-bit PCM value.
func FloatToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}
