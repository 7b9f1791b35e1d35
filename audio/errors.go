// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"

	"github.com/ik5/suncore/utils"
)

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrNoChannels        = errors.New("buffer needs at least one channel")
	ErrInvalidRate       = errors.New("playback rate must be positive and finite")
	ErrUnknownFormat     = errors.New("no decoder registered for format")
	ErrEmptyBuffer       = errors.New("nothing to encode")

	// ErrChannelLengthMismatch is returned when channels of one buffer differ
	// in length.
	ErrChannelLengthMismatch = utils.ErrChannelLengthMismatch
)
