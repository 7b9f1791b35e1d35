// SPDX-License-Identifier: EPL-2.0

// Package mp3 encodes and decodes MPEG Layer III audio.
//
// # Encoding
//
// Encoder produces 128 kbps constant bitrate streams. Mono buffers are
// encoded as mono; buffers with two or more channels as stereo from their
// first two channels. Samples are quantized to 16 bits and handed to the
// frame encoder in blocks of 1152 frames, after which the frame encoder is
// flushed:
//
//	data, err := mp3.NewEncoder().Encode(ctx, buf)
//
// The default frame encoder is github.com/braheezy/shine-mp3, a pure Go port
// of the shine fixed-point encoder. At 128 kbps it supports 16000, 22050 and
// 24000 Hz (MPEG-2) and 32000, 44100 and 48000 Hz (MPEG-1); other rates,
// including the MPEG-2.5 rates, fail with ErrUnsupportedFormat. Use
// WithFrameEncoder to plug in another encoder.
//
// Encoded output is not guaranteed to be byte-identical across encoder
// implementations or versions.
//
// # Decoding
//
// Decoder uses github.com/hajimehoshi/go-mp3. Decoded audio is always
// stereo; mono streams come back with both channels equal.
//
//	src, err := mp3.Decoder{}.Decode(file)
package mp3
