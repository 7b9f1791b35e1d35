// SPDX-License-Identifier: EPL-2.0

package suncore

import (
	"context"
	"fmt"

	"github.com/ik5/suncore/audio"
	"github.com/ik5/suncore/formats/mp3"
	"github.com/ik5/suncore/formats/wav"
	"github.com/ik5/suncore/render"
)

// Encoded is a finished file.
type Encoded struct {
	Data     []byte
	MIME     string
	Filename string
}

// Encoder turns a rendered buffer into a file body.
type Encoder interface {
	Encode(ctx context.Context, buf *audio.Buffer) ([]byte, error)
}

// EncoderFunc builds the encoder for one call.
type EncoderFunc func() Encoder

// Pipeline renders and encodes. Every call builds its own renderer and
// encoder. The zero value is not usable; use NewPipeline.
type Pipeline struct {
	renderOpts []render.Option
	encoders   map[Format]EncoderFunc
}

type PipelineOption func(*Pipeline)

// WithRenderer sets the options each call's renderer is built with, for
// example to fix the impulse response.
func WithRenderer(opts ...render.Option) PipelineOption {
	return func(p *Pipeline) {
		p.renderOpts = append(p.renderOpts, opts...)
	}
}

// WithEncoder replaces the encoder constructor used for f.
func WithEncoder(f Format, newEncoder EncoderFunc) PipelineOption {
	return func(p *Pipeline) {
		if newEncoder != nil {
			p.encoders[f] = newEncoder
		}
	}
}

func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		encoders: map[Format]EncoderFunc{
			FormatWAV: func() Encoder { return wav.NewEncoder() },
			FormatMP3: func() Encoder { return mp3.NewEncoder() },
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process validates settings and runs ProcessParams with them.
func (p *Pipeline) Process(ctx context.Context, source *audio.Buffer, name string, settings Settings, format Format) (*Encoded, error) {
	if source.Empty() {
		return nil, ErrSourceNotLoaded
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return p.ProcessParams(ctx, source, name, settings.Params(), format)
}

// ProcessParams renders source with params and encodes the result as
// format. The source is left untouched. On any error, including
// cancellation, no partial output is returned.
func (p *Pipeline) ProcessParams(ctx context.Context, source *audio.Buffer, name string, params render.Params, format Format) (*Encoded, error) {
	newEncoder, ok := p.encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOutputFormat, format)
	}

	rendered, err := render.New(p.renderOpts...).Render(ctx, source, params)
	if err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}

	data, err := newEncoder().Encode(ctx, rendered)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", format, err)
	}

	return &Encoded{
		Data:     data,
		MIME:     format.MIME(),
		Filename: OutputName(name, format),
	}, nil
}

// Process runs a default Pipeline.
func Process(ctx context.Context, source *audio.Buffer, name string, settings Settings, format Format) (*Encoded, error) {
	return NewPipeline().Process(ctx, source, name, settings, format)
}
