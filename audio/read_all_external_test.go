// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"testing"

	"github.com/ik5/suncore/audio"
	"github.com/ik5/suncore/internal/audiotest"
)

func TestReadAll_ShortReads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		chunk int
	}{
		{"one frame", 1},
		{"odd packets", 577},
		{"uncapped", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(8000, 2, 3000, 440)
			src.ChunkFrames = tt.chunk

			buf, err := audio.ReadAll(src)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if buf.Frames() != 3000 || buf.Channels() != 2 {
				t.Fatalf("ReadAll() = %d frames, %d ch; want 3000, 2", buf.Frames(), buf.Channels())
			}

			src.Rewind()
			src.ChunkFrames = 0
			want, err := audio.ReadAll(src)
			if err != nil {
				t.Fatalf("ReadAll() after Rewind error = %v", err)
			}
			for c := range 2 {
				got, ref := buf.Channel(c), want.Channel(c)
				for i := range ref {
					if got[i] != ref[i] {
						t.Fatalf("channel %d sample %d = %v, want %v", c, i, got[i], ref[i])
					}
				}
			}
		})
	}
}
