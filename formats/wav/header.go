// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
)

const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE

	// HeaderSize is the size of everything WriteFloat32 emits before the
	// samples: RIFF header, 18-byte fmt chunk, fact chunk and data chunk
	// header.
	HeaderSize = 12 + 8 + 18 + 8 + 4 + 8
)

// fmtChunk holds the fields of a WAVE fmt chunk that decoding needs.
type fmtChunk struct {
	format        uint16
	channels      int
	sampleRate    int
	bitsPerSample int
}

// layout is the result of walking the RIFF chunks of a WAV file.
type layout struct {
	fmt  fmtChunk
	data []byte
}

// parseLayout walks the chunk list of a complete WAV file. Chunks are word
// aligned; a data chunk that claims more bytes than the file holds is
// truncated to what is present.
func parseLayout(file []byte) (*layout, error) {
	if len(file) < 12 || !bytes.Equal(file[0:4], []byte("RIFF")) || !bytes.Equal(file[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	var (
		l       layout
		haveFmt bool
		pos     = 12
	)

	for pos+8 <= len(file) {
		id := string(file[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(file[pos+4 : pos+8]))
		body := file[pos+8:]
		if size < len(body) {
			body = body[:size]
		}

		switch id {
		case "fmt ":
			if len(body) < 16 {
				return nil, ErrNotWavFile
			}

			l.fmt = fmtChunk{
				format:        binary.LittleEndian.Uint16(body[0:2]),
				channels:      int(binary.LittleEndian.Uint16(body[2:4])),
				sampleRate:    int(binary.LittleEndian.Uint32(body[4:8])),
				bitsPerSample: int(binary.LittleEndian.Uint16(body[14:16])),
			}
			// WAVE_FORMAT_EXTENSIBLE keeps the real tag in the sub-format GUID.
			if l.fmt.format == formatExtensible && len(body) >= 26 {
				l.fmt.format = binary.LittleEndian.Uint16(body[24:26])
			}
			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, ErrMissingChunk
			}
			l.data = body
			return &l, nil
		}

		pos += 8 + size + size&1
	}

	return nil, ErrMissingChunk
}
