// SPDX-License-Identifier: EPL-2.0

// Package suncore turns decoded audio into "nightcore" renditions: sped up
// (tempo and pitch together), optionally bass boosted, washed with a
// synthetic convolution reverb, faded in and out, and exported as 32-bit
// float WAV or 128 kbps MP3.
//
// # Quick Start
//
//	reg := suncore.NewRegistry()
//	buf, err := suncore.LoadFile(reg, "song.mp3", file)
//	if err != nil {
//	    // unsupported or corrupt input
//	}
//
//	settings := suncore.DefaultSettings()
//	settings.Speed = 1.25
//	settings.ReverbDecay = 2
//
//	out, err := suncore.Process(ctx, buf, "song.mp3", settings, suncore.FormatMP3)
//	// out.Filename == "song_processed.mp3", out.MIME == "audio/mp3"
//
// # Pipeline
//
// A Pipeline runs impulse response synthesis, the effects render and the
// encoder in order. Each step lives in its own package and can be used on
// its own:
//
//   - reverb: decaying-noise impulse responses
//   - render: the offline effects graph
//   - formats/wav, formats/mp3: encoders (and decoders)
//   - audio: buffers, sources, the decoder registry and resampling
//   - utils: sample conversion and interleaving
//
// Every call allocates its own renderer state and encoder; nothing is shared
// between calls, so a Pipeline is safe for concurrent use.
//
// # Errors
//
// Errors keep their kind through wrapping; test them with errors.Is against
// the sentinels re-exported here (ErrSourceNotLoaded, ErrInvalidParameters,
// ErrEmptyBuffer, ErrUnsupportedFormat...).
package suncore
