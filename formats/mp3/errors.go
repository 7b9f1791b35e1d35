// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"

	"github.com/ik5/suncore/audio"
)

var (
	ErrEmptyBuffer       = audio.ErrEmptyBuffer
	ErrUnsupportedFormat = errors.New("unsupported MP3 sample rate or channel layout")
)
