// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"errors"
	"testing"
)

func TestInterleave(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels [][]float32
		want     []float32
	}{
		{
			name:     "mono",
			channels: [][]float32{{1, 2, 3}},
			want:     []float32{1, 2, 3},
		},
		{
			name:     "stereo",
			channels: [][]float32{{1, 2, 3}, {-1, -2, -3}},
			want:     []float32{1, -1, 2, -2, 3, -3},
		},
		{
			name:     "three channels",
			channels: [][]float32{{1, 2}, {10, 20}, {100, 200}},
			want:     []float32{1, 10, 100, 2, 20, 200},
		},
		{
			name:     "empty channels",
			channels: [][]float32{{}, {}},
			want:     []float32{},
		},
		{
			name:     "no channels",
			channels: nil,
			want:     []float32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Interleave(tt.channels)
			if err != nil {
				t.Fatalf("Interleave() error = %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("Interleave() len = %d, want %d", len(got), len(tt.want))
			}

			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Interleave()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestInterleave_Mismatch(t *testing.T) {
	t.Parallel()

	_, err := Interleave([][]float32{{1, 2, 3}, {1, 2}})
	if !errors.Is(err, ErrChannelLengthMismatch) {
		t.Errorf("Interleave() error = %v, want ErrChannelLengthMismatch", err)
	}
}

func TestDeinterleave_Inverse(t *testing.T) {
	t.Parallel()

	for channels := 1; channels <= 5; channels++ {
		in := make([][]float32, channels)
		for c := range in {
			in[c] = make([]float32, 37)
			for i := range in[c] {
				in[c][i] = float32(c*1000 + i)
			}
		}

		flat, err := Interleave(in)
		if err != nil {
			t.Fatalf("Interleave() error = %v", err)
		}

		out, err := Deinterleave(flat, channels)
		if err != nil {
			t.Fatalf("Deinterleave() error = %v", err)
		}

		for c := range in {
			for i := range in[c] {
				if out[c][i] != in[c][i] {
					t.Fatalf("channels=%d: out[%d][%d] = %v, want %v", channels, c, i, out[c][i], in[c][i])
				}
			}
		}
	}
}

func TestDeinterleave_Mismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		samples  []float32
		channels int
	}{
		{name: "not a multiple", samples: []float32{1, 2, 3}, channels: 2},
		{name: "zero channels", samples: []float32{1, 2}, channels: 0},
		{name: "negative channels", samples: []float32{1, 2}, channels: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Deinterleave(tt.samples, tt.channels)
			if !errors.Is(err, ErrChannelLengthMismatch) {
				t.Errorf("Deinterleave() error = %v, want ErrChannelLengthMismatch", err)
			}
		})
	}
}

func BenchmarkInterleaveStereo(b *testing.B) {
	channels := [][]float32{make([]float32, 44100), make([]float32, 44100)}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = Interleave(channels)
	}
}
