// SPDX-License-Identifier: EPL-2.0

package suncore

import (
	"fmt"
	"strings"

	"github.com/ik5/suncore/formats/mp3"
	"github.com/ik5/suncore/formats/wav"
)

// Format is an output container.
type Format int

const (
	FormatWAV Format = iota + 1
	FormatMP3
)

// ParseFormat accepts "wav" and "mp3", in any case, with or without a
// leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "wav":
		return FormatWAV, nil
	case "mp3":
		return FormatMP3, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOutputFormat, s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatMP3:
		return "mp3"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension is the file extension without the dot.
func (f Format) Extension() string { return f.String() }

func (f Format) MIME() string {
	switch f {
	case FormatWAV:
		return wav.MIME
	case FormatMP3:
		return mp3.MIME
	default:
		return "application/octet-stream"
	}
}

// OutputName derives the suggested file name for a processed file: the part
// of name before its first dot, "_processed", and the extension of f.
// Directories in name are dropped.
func OutputName(name string, f Format) string {
	base := name
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if base == "" {
		base = "audio"
	}

	return base + "_processed." + f.Extension()
}
