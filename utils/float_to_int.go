// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

const (
	int16Scale = 32767.0
	int16Min   = -32768.0
	int16Max   = 32767.0
)

// ToInt16 quantizes a float sample to 16-bit PCM as
// round(clamp(x*32767, -32768, 32767)), rounding half away from zero.
// NaN maps to 0.
func ToInt16(x float32) int16 {
	v := float64(x) * int16Scale
	if v != v { // NaN
		return 0
	}

	if v > int16Max {
		v = int16Max
	} else if v < int16Min {
		v = int16Min
	}

	return int16(math.Round(v))
}

// ToInt16Slice quantizes src into dst and returns the number of samples
// written, which is min(len(dst), len(src)).
func ToInt16Slice(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = ToInt16(src[i])
	}

	return n
}
