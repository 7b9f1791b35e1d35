// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"fmt"
	"io"

	"github.com/cwbudde/algo-dsp/dsp/conv"
	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/ik5/suncore/audio"
)

// Stage names of the render graph.
const (
	StageSource   = "source"
	StageLowShelf = "lowshelf"
	StageReverb   = "reverb"
	StageMix      = "mix"
	StageEnvelope = "envelope"
)

const readBlockFrames = 4096

// sourceStage reads the buffer at the playback rate. Frames past the end of
// the source are silent.
type sourceStage struct {
	buf    *audio.Buffer
	rate   float64
	frames int
}

func (s *sourceStage) Name() string { return StageSource }

func (s *sourceStage) Process(ctx context.Context, _ []Signal) (Signal, error) {
	channels := s.buf.Channels()

	resampler, err := audio.NewResampler(s.buf.Reader(), s.rate)
	if err != nil {
		return nil, err
	}

	out := make(Signal, channels)
	for c := range out {
		out[c] = make([]float64, s.frames)
	}

	block := make([]float32, readBlockFrames*channels)
	written := 0

	for written < s.frames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		want := min(readBlockFrames, s.frames-written) * channels
		n, err := resampler.ReadSamples(block[:want])

		for f := range n / channels {
			for c := range channels {
				out[c][written+f] = float64(block[f*channels+c])
			}
		}
		written += n / channels

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// lowShelfStage applies the bass boost. At 0 dB it passes its input through.
type lowShelfStage struct {
	gainDB     float64
	sampleRate float64
}

func (s *lowShelfStage) Name() string { return StageLowShelf }

func (s *lowShelfStage) Process(_ context.Context, inputs []Signal) (Signal, error) {
	in := inputs[0]
	if s.gainDB == 0 {
		return in, nil
	}

	coeffs := design.LowShelf(BassShelfFrequency, s.gainDB, BassShelfQ, s.sampleRate)

	out := make(Signal, len(in))
	for c, ch := range in {
		out[c] = append(make([]float64, 0, len(ch)), ch...)
		biquad.NewSection(coeffs).ProcessBlock(out[c])
	}

	return out, nil
}

// reverbStage convolves every channel with the impulse response channel of
// the same parity and truncates the tail to the input length. Channels run
// in parallel.
type reverbStage struct {
	kernels [][]float64
}

func (s *reverbStage) Name() string { return StageReverb }

func (s *reverbStage) Process(ctx context.Context, inputs []Signal) (Signal, error) {
	in := inputs[0]
	out := make(Signal, len(in))

	g, ctx := errgroup.WithContext(ctx)
	for c, ch := range in {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if len(ch) == 0 {
				out[c] = []float64{}
				return nil
			}

			full, err := conv.Convolve(ch, s.kernels[c%len(s.kernels)])
			if err != nil {
				return fmt.Errorf("channel %d: %w", c, err)
			}

			out[c] = full[:len(ch)]
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// mixStage sums its inputs, weighting input k by weights[k].
type mixStage struct {
	weights []float64
}

func (s *mixStage) Name() string { return StageMix }

func (s *mixStage) Process(_ context.Context, inputs []Signal) (Signal, error) {
	first := inputs[0]
	out := make(Signal, len(first))

	for c := range out {
		out[c] = floats.ScaleTo(make([]float64, len(first[c])), s.weights[0], first[c])
		for k := 1; k < len(inputs); k++ {
			floats.AddScaled(out[c], s.weights[k], inputs[k][c])
		}
	}

	return out, nil
}

// envelopeStage multiplies every channel by the gain envelope.
type envelopeStage struct {
	gain       float64
	sampleRate int
}

func (s *envelopeStage) Name() string { return StageEnvelope }

func (s *envelopeStage) Process(_ context.Context, inputs []Signal) (Signal, error) {
	in := inputs[0]
	curve := NewEnvelope(s.gain, s.sampleRate, in.Frames()).Curve()

	out := make(Signal, len(in))
	for c, ch := range in {
		out[c] = floats.MulTo(make([]float64, len(ch)), ch, curve)
	}

	return out, nil
}
