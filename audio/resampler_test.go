// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"
)

func drain(t *testing.T, src Source, bufSize int) []float32 {
	t.Helper()

	buf := make([]float32, bufSize)
	var samples []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}
		if err == io.EOF {
			return samples
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 1000)

	resampler, err := NewResampler(src, 1.5)
	if err != nil {
		t.Fatalf("NewResampler() error = %v", err)
	}

	// Playback-rate resampling keeps the nominal rate.
	if resampler.SampleRate() != 44100 {
		t.Errorf("Resampler.SampleRate() = %d, want 44100", resampler.SampleRate())
	}
	if resampler.Channels() != 2 {
		t.Errorf("Resampler.Channels() = %d, want 2", resampler.Channels())
	}
	if resampler.Rate() != 1.5 {
		t.Errorf("Resampler.Rate() = %v, want 1.5", resampler.Rate())
	}
}

func TestResampler_InvalidRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewResampler(newSilentSource(8000, 1, 10), rate)
		if !errors.Is(err, ErrInvalidRate) {
			t.Errorf("NewResampler(rate=%v) error = %v, want ErrInvalidRate", rate, err)
		}
	}
}

func TestResampler_UnityRateIsIdentity(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 1, 500, func(sample int, channel int) float32 {
		return float32(math.Sin(float64(sample) * 0.05))
	})

	resampler, _ := NewResampler(src, 1.0)
	samples := drain(t, resampler, 128)

	if len(samples) != 500 {
		t.Fatalf("rate 1.0 produced %d samples, want 500", len(samples))
	}

	for i, s := range samples {
		want := float32(math.Sin(float64(i) * 0.05))
		if math.Abs(float64(s-want)) > 1e-6 {
			t.Fatalf("samples[%d] = %v, want %v", i, s, want)
		}
	}
}

func TestResampler_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		frames int
		rate   float64
		want   int // ceil(frames/rate)
	}{
		{name: "double speed", frames: 44100, rate: 2.0, want: 22050},
		{name: "half speed", frames: 1000, rate: 0.5, want: 2000},
		{name: "nightcore", frames: 44100, rate: 1.25, want: 35280},
		{name: "odd ratio", frames: 1001, rate: 2.0, want: 501},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resampler, _ := NewResampler(newConstantSource(44100, 1, tt.frames, 0.5), tt.rate)
			samples := drain(t, resampler, 1024)

			if len(samples) != tt.want {
				t.Errorf("got %d samples, want %d", len(samples), tt.want)
			}
		})
	}
}

func TestResampler_DoubleRateSkipsEveryOtherFrame(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 1, 100, func(sample int, channel int) float32 {
		return float32(sample) / 100
	})

	resampler, _ := NewResampler(src, 2.0)
	samples := drain(t, resampler, 16)

	for i, s := range samples {
		want := float32(2*i) / 100
		if math.Abs(float64(s-want)) > 1e-5 {
			t.Errorf("samples[%d] = %v, want %v", i, s, want)
		}
	}
}

func TestResampler_StereoPreserved(t *testing.T) {
	t.Parallel()

	src := newMockSource(44100, 2, 1000, func(sample int, channel int) float32 {
		if channel == 0 {
			return 0.3
		}
		return 0.7
	})

	resampler, _ := NewResampler(src, 1.3)
	samples := drain(t, resampler, 20)

	for f := range len(samples) / 2 {
		left := samples[f*2]
		right := samples[f*2+1]

		if math.Abs(float64(left-0.3)) > 1e-5 {
			t.Fatalf("frame[%d] left = %v, want 0.3", f, left)
		}
		if math.Abs(float64(right-0.7)) > 1e-5 {
			t.Fatalf("frame[%d] right = %v, want 0.7", f, right)
		}
	}
}

func TestResampler_EOF(t *testing.T) {
	t.Parallel()

	resampler, _ := NewResampler(newSilentSource(44100, 1, 100), 1.5)
	buf := make([]float32, 1024)

	if total := len(drain(t, resampler, 1024)); total == 0 {
		t.Error("No samples read before EOF")
	}

	n, err := resampler.ReadSamples(buf)
	if err != io.EOF {
		t.Errorf("After EOF, ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("After EOF, ReadSamples() n = %d, want 0", n)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	resampler, _ := NewResampler(newSilentSource(8000, 1, 0), 1.0)

	n, err := resampler.ReadSamples(make([]float32, 16))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() on empty source = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	resampler, _ := NewResampler(newSilentSource(44100, 2, 1000), 1.0)

	_, err := resampler.ReadSamples(make([]float32, 7))
	if err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() with invalid size error = %v, want ErrInvalidDstSize", err)
	}
}

func TestSampleRateConverter(t *testing.T) {
	t.Parallel()

	src := newSineSource(96000, 1, 96000, 440.0)

	conv, err := NewSampleRateConverter(src, 48000)
	if err != nil {
		t.Fatalf("NewSampleRateConverter() error = %v", err)
	}
	if conv.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", conv.SampleRate())
	}

	if got := len(drain(t, conv, 4096)); got != 48000 {
		t.Errorf("converted %d samples, want 48000", got)
	}
}

func TestSampleRateConverter_InvalidRate(t *testing.T) {
	t.Parallel()

	_, err := NewSampleRateConverter(newSilentSource(44100, 1, 10), 0)
	if !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("NewSampleRateConverter(0) error = %v, want ErrInvalidSampleRate", err)
	}
}

func BenchmarkResampler_Nightcore(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		resampler, _ := NewResampler(newSineSource(44100, 2, 44100, 440.0), 1.25)
		for {
			_, err := resampler.ReadSamples(buf)
			if err != nil {
				break
			}
		}
	}
}
