// SPDX-License-Identifier: EPL-2.0

// Package reverb synthesizes impulse responses for convolution reverb.
//
// The response is shaped white noise, not a measured room: a cheap
// approximation of a diffuse reverb tail whose energy falls off as
// (1 - t/T)^decay. Only the statistical decay is meaningful; individual
// samples are random.
//
//	ir, err := reverb.Synthesize(44100, 2.5)
//	// ir is a 2-channel, 88200-frame audio.Buffer
package reverb
