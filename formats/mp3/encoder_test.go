// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/ik5/suncore/audio"
	"github.com/ik5/suncore/internal/audiotest"
)

// recordingEncoder keeps every block it is given and emits one marker byte
// per call, so tests can check blocking and emission order.
type recordingEncoder struct {
	sampleRate, channels, bitrate int

	blocks  [][]int16
	flushed bool
	failAt  int
}

func (r *recordingEncoder) Encode(pcm []int16) ([]byte, error) {
	if r.failAt > 0 && len(r.blocks)+1 == r.failAt {
		return nil, errors.New("frame encoder failed")
	}
	r.blocks = append(r.blocks, slices.Clone(pcm))
	return []byte{byte(len(r.blocks))}, nil
}

func (r *recordingEncoder) Flush() ([]byte, error) {
	r.flushed = true
	return []byte("end"), nil
}

func recording(rec *recordingEncoder) Option {
	return WithFrameEncoder(func(sampleRate, channels, bitrate int) (FrameEncoder, error) {
		rec.sampleRate, rec.channels, rec.bitrate = sampleRate, channels, bitrate
		return rec, nil
	})
}

func TestEncoder_Blocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		frames     int
		wantBlocks []int
	}{
		{"single short block", 100, []int{100}},
		{"exact block", BlockFrames, []int{BlockFrames}},
		{"one and a bit", BlockFrames + 1, []int{BlockFrames, 1}},
		{"one second", 44100, append(slices.Repeat([]int{BlockFrames}, 38), 44100-38*BlockFrames)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &recordingEncoder{}
			buf := audiotest.SineBuffer(44100, 2, tt.frames, 440, 0.5)

			data, err := NewEncoder(recording(rec)).Encode(context.Background(), buf)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			if rec.sampleRate != 44100 || rec.channels != 2 || rec.bitrate != Bitrate {
				t.Errorf("frame encoder created with %d Hz, %d ch, %d kbps", rec.sampleRate, rec.channels, rec.bitrate)
			}

			got := make([]int, len(rec.blocks))
			for i, b := range rec.blocks {
				got[i] = len(b) / 2
			}
			if !slices.Equal(got, tt.wantBlocks) {
				t.Errorf("block frames = %v, want %v", got, tt.wantBlocks)
			}

			if !rec.flushed {
				t.Errorf("Flush() not called")
			}

			// One marker per block in order, then the flush tail.
			want := make([]byte, 0, len(got)+3)
			for i := range got {
				want = append(want, byte(i+1))
			}
			want = append(want, "end"...)
			if !slices.Equal(data, want) {
				t.Errorf("output = %v, want %v", data, want)
			}
		})
	}
}

func TestEncoder_ChannelMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		channels     int
		wantChannels int
		wantFirst    []int16
	}{
		{"mono stays mono", 1, 1, []int16{0}},
		{"stereo", 2, 2, []int16{0, 16384}},
		{"surround keeps first two", 6, 2, []int16{0, 16384}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Channel c holds the constant c/2.
			buf := audiotest.NewBuffer(22050, tt.channels, 10, func(_, c int) float32 {
				return float32(c) / 2
			})

			rec := &recordingEncoder{}
			if _, err := NewEncoder(recording(rec)).Encode(context.Background(), buf); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			if rec.channels != tt.wantChannels {
				t.Errorf("channels = %d, want %d", rec.channels, tt.wantChannels)
			}

			block := rec.blocks[0]
			if len(block) != 10*tt.wantChannels {
				t.Fatalf("block length = %d, want %d", len(block), 10*tt.wantChannels)
			}
			if !slices.Equal(block[:tt.wantChannels], tt.wantFirst) {
				t.Errorf("first frame = %v, want %v", block[:tt.wantChannels], tt.wantFirst)
			}
		})
	}
}

func TestEncoder_Quantization(t *testing.T) {
	t.Parallel()

	buf, err := audio.NewBuffer(8000, [][]float32{{1, -1, 2, -2, 0.5}})
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	rec := &recordingEncoder{}
	if _, err := NewEncoder(recording(rec)).Encode(context.Background(), buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := []int16{32767, -32767, 32767, -32768, 16384}
	if !slices.Equal(rec.blocks[0], want) {
		t.Errorf("quantized = %v, want %v", rec.blocks[0], want)
	}
}

func TestEncoder_Errors(t *testing.T) {
	t.Parallel()

	buf := audiotest.SineBuffer(44100, 2, 3000, 440, 0.5)

	t.Run("empty buffer", func(t *testing.T) {
		t.Parallel()

		empty, _ := audio.NewBuffer(44100, [][]float32{{}})
		if _, err := NewEncoder().Encode(context.Background(), empty); !errors.Is(err, ErrEmptyBuffer) {
			t.Errorf("Encode() error = %v, want ErrEmptyBuffer", err)
		}
	})

	t.Run("frame encoder refuses format", func(t *testing.T) {
		t.Parallel()

		refuse := WithFrameEncoder(func(int, int, int) (FrameEncoder, error) {
			return nil, fmt.Errorf("no tables")
		})
		if _, err := NewEncoder(refuse).Encode(context.Background(), buf); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Encode() error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("frame encoder fails mid stream", func(t *testing.T) {
		t.Parallel()

		rec := &recordingEncoder{failAt: 2}
		data, err := NewEncoder(recording(rec)).Encode(context.Background(), buf)
		if err == nil {
			t.Fatal("Encode() error = nil")
		}
		if data != nil {
			t.Errorf("Encode() returned partial output")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		data, err := NewEncoder().Encode(ctx, buf)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Encode() error = %v, want context.Canceled", err)
		}
		if data != nil {
			t.Errorf("Encode() returned output after cancellation")
		}
	})
}

func TestChannels(t *testing.T) {
	t.Parallel()

	for in, want := range map[int]int{1: 1, 2: 2, 3: 2, 8: 2} {
		if got := Channels(audiotest.ConstantBuffer(8000, in, 1, 0)); got != want {
			t.Errorf("Channels(%d) = %d, want %d", in, got, want)
		}
	}
}
