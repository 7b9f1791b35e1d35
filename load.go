// SPDX-License-Identifier: EPL-2.0

package suncore

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ik5/suncore/audio"
	"github.com/ik5/suncore/formats/aiff"
	"github.com/ik5/suncore/formats/mp3"
	"github.com/ik5/suncore/formats/vorbis"
	"github.com/ik5/suncore/formats/wav"
)

// NewRegistry returns a registry with every decoder in formats/, keyed by
// file extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// LoadFile decodes r with the decoder registered for the extension of name.
func LoadFile(reg *audio.Registry, name string, r io.Reader) (*audio.Buffer, error) {
	return reg.Load(strings.TrimPrefix(filepath.Ext(name), "."), r)
}

// ConvertSampleRate resamples buf to rate with the cubic resampler. Duration
// and pitch are kept. A buffer already at rate is returned as is.
func ConvertSampleRate(buf *audio.Buffer, rate int) (*audio.Buffer, error) {
	if buf.Empty() {
		return nil, ErrSourceNotLoaded
	}
	if buf.SampleRate() == rate {
		return buf, nil
	}

	conv, err := audio.NewSampleRateConverter(buf.Reader(), rate)
	if err != nil {
		return nil, err
	}
	defer conv.Close()

	return audio.ReadAll(conv)
}
