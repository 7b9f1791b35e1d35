// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory and streaming audio primitives the
// render pipeline is built on.
//
// # Buffer
//
// Buffer holds decoded multichannel PCM as one []float32 per channel. Every
// channel has the same frame count and the sample rate is positive; the
// constructors enforce both. Buffers are never modified after construction:
// each processing stage allocates its own output.
//
//	buf, err := audio.NewBuffer(44100, [][]float32{left, right})
//
// # Source Interface
//
// Decoders produce a streaming Source of interleaved float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadAll drains a Source into a Buffer and Buffer.Reader streams a Buffer
// back out as a Source.
//
// # Playback Rate
//
// The Resampler reads a Source at a playback rate with cubic interpolation.
// Tempo and pitch shift together:
//
//	fast, _ := audio.NewResampler(buf.Reader(), 1.25)
//
// NewSampleRateConverter uses the same interpolator to change the nominal
// sample rate instead.
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	buf, err := registry.Load("wav", file)
//
// # Sample Format
//
// Audio samples are float32 in the range [-1.0, 1.0]. Intermediate results
// may exceed that range; quantization to integers clamps.
package audio
