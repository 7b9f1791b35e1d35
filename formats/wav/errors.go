// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	"github.com/ik5/suncore/audio"
)

var (
	ErrNotWavFile         = errors.New("not a WAV file")
	ErrUnsupportedFormat  = errors.New("unsupported WAV sample format")
	ErrMissingChunk       = errors.New("WAV file is missing a required chunk")
	ErrEmptyBuffer        = audio.ErrEmptyBuffer
	ErrInvalidChannelSize = errors.New("sample count is not a multiple of channels")
)
