// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Samples come out as float32 in [-1, 1], interleaved, at the stream's own
// sample rate and channel count.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(src)
package vorbis
