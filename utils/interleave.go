// SPDX-License-Identifier: EPL-2.0

package utils

// Interleave flattens N equally long channels into one slice where sample i
// of channel c lands at index i*N+c.
func Interleave(channels [][]float32) ([]float32, error) {
	if len(channels) == 0 {
		return []float32{}, nil
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, ErrChannelLengthMismatch
		}
	}

	n := len(channels)
	out := make([]float32, frames*n)

	switch n {
	case 1:
		copy(out, channels[0])
	case 2:
		left, right := channels[0], channels[1]
		for i := range frames {
			out[i<<1] = left[i]
			out[i<<1+1] = right[i]
		}
	default:
		for c, ch := range channels {
			for i, s := range ch {
				out[i*n+c] = s
			}
		}
	}

	return out, nil
}

// Deinterleave is the inverse of Interleave. len(samples) must be a
// multiple of channels.
func Deinterleave(samples []float32, channels int) ([][]float32, error) {
	if channels <= 0 || len(samples)%channels != 0 {
		return nil, ErrChannelLengthMismatch
	}

	frames := len(samples) / channels
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
	}

	for i := range frames {
		base := i * channels
		for c := range channels {
			out[c][i] = samples[base+c]
		}
	}

	return out, nil
}
