// SPDX-License-Identifier: EPL-2.0

package suncore

import (
	"errors"

	"github.com/ik5/suncore/audio"
	"github.com/ik5/suncore/formats/mp3"
	"github.com/ik5/suncore/render"
	"github.com/ik5/suncore/utils"
)

var (
	ErrUnknownOutputFormat = errors.New("unknown output format")

	ErrSourceNotLoaded       = render.ErrSourceNotLoaded
	ErrInvalidParameters     = render.ErrInvalidParameters
	ErrChannelLengthMismatch = utils.ErrChannelLengthMismatch
	ErrEmptyBuffer           = audio.ErrEmptyBuffer
	ErrUnsupportedFormat     = mp3.ErrUnsupportedFormat
	ErrUnknownInputFormat    = audio.ErrUnknownFormat
)
