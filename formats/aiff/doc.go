// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Integer PCM of 8, 16, 24 and 32 bits is supported; samples are scaled to
// [-1, 1) by their bit depth. go-audio needs an io.ReadSeeker, so other
// readers are buffered in memory first.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not AIFF
//	}
package aiff
