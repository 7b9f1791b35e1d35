// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files.
//
// # Encoding
//
// Encoder writes 32-bit IEEE float WAV (format tag 3) with a fact chunk, the
// layout the WAVE specification requires for non-PCM data:
//
//	RIFF header   12 bytes
//	fmt  chunk    26 bytes  (18-byte body, cbSize 0)
//	fact chunk    12 bytes  (sample frames)
//	data chunk     8 bytes + interleaved little-endian float32
//
// Samples are stored exactly, without clipping, so out-of-range values from
// the effects chain survive.
//
//	data, err := wav.NewEncoder().Encode(ctx, buf)
//
// WriteFloat32 and WriteFloat32Buffer stream the same format to any
// io.Writer.
//
// # Decoding
//
// Decoder accepts 32-bit float files and integer PCM of 8, 16, 24 or 32
// bits. Float data is parsed directly; PCM goes through
// github.com/go-audio/wav. Unknown chunks are skipped. The whole file is
// read into memory before decoding.
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(src)
package wav
