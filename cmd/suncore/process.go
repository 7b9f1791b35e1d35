// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ik5/suncore"
)

var errProcessArgs = errors.New("expected exactly one argument: file path")

func processCommand() *cli.Command {
	defaults := suncore.DefaultSettings()

	return &cli.Command{
		Name:      "process",
		Usage:     "Speed up, bass boost and reverberate an audio file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:    "volume",
				Aliases: []string{"v"},
				Usage:   "Output volume in percent (0-100)",
				Value:   defaults.Volume,
			},
			&cli.FloatFlag{
				Name:    "speed",
				Aliases: []string{"s"},
				Usage:   "Playback rate, tempo and pitch together (0.5-2)",
				Value:   defaults.Speed,
			},
			&cli.FloatFlag{
				Name:    "reverb",
				Aliases: []string{"r"},
				Usage:   "Reverb decay exponent, higher is drier (0.01-10)",
				Value:   defaults.ReverbDecay,
			},
			&cli.FloatFlag{
				Name:    "bass",
				Aliases: []string{"b"},
				Usage:   "Bass boost in dB (0-12)",
				Value:   defaults.BassBoost,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: mp3, wav",
				Value:   "mp3",
			},
			&cli.IntFlag{
				Name:  "sample-rate",
				Usage: "Convert the input to this sample rate before processing (0 keeps it)",
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "Directory for the processed file (default: next to the input)",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"D"},
				Usage:   "Log every step with timings",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errProcessArgs, cmd.NArg())
			}

			log := newLogger(cmd.Root().ErrWriter, cmd.Bool("debug"))

			format, err := suncore.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			settings := suncore.Settings{
				Volume:      cmd.Float("volume"),
				Speed:       cmd.Float("speed"),
				ReverbDecay: cmd.Float("reverb"),
				BassBoost:   cmd.Float("bass"),
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			inPath := cmd.Args().First()

			outDir := cmd.String("output-dir")
			if outDir == "" {
				outDir = filepath.Dir(inPath)
			}

			outPath, err := process(ctx, log, inPath, outDir, cmd.Int("sample-rate"), settings, format)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, outPath)
			return err
		},
	}
}

func formatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "formats",
		Usage: "List the input formats that can be decoded",
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(cmd.Root().Writer, strings.Join(suncore.NewRegistry().Formats(), " "))
			return err
		},
	}
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// process decodes inPath, renders it and writes the result into outDir,
// returning the path written.
func process(ctx context.Context, log *slog.Logger, inPath, outDir string, sampleRate int, settings suncore.Settings, format suncore.Format) (string, error) {
	start := time.Now()

	file, err := os.Open(inPath) //nolint:gosec // CLI tool opens user-specified audio files
	if err != nil {
		return "", fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	buf, err := suncore.LoadFile(suncore.NewRegistry(), inPath, file)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", inPath, err)
	}

	log.Debug("decoded",
		"file", inPath,
		"sample_rate", buf.SampleRate(),
		"channels", buf.Channels(),
		"duration", buf.Duration(),
		"elapsed", time.Since(start),
	)

	if sampleRate > 0 && sampleRate != buf.SampleRate() {
		step := time.Now()

		buf, err = suncore.ConvertSampleRate(buf, sampleRate)
		if err != nil {
			return "", fmt.Errorf("converting sample rate: %w", err)
		}

		log.Debug("converted sample rate", "sample_rate", sampleRate, "elapsed", time.Since(step))
	}

	step := time.Now()

	out, err := suncore.Process(ctx, buf, filepath.Base(inPath), settings, format)
	if err != nil {
		return "", err
	}

	log.Debug("processed", "format", format, "bytes", len(out.Data), "elapsed", time.Since(step))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outPath := filepath.Join(outDir, out.Filename)
	if err := os.WriteFile(outPath, out.Data, 0o644); err != nil { //nolint:gosec // output is a regular media file
		return "", fmt.Errorf("writing output: %w", err)
	}

	log.Info("wrote file", "path", outPath, "mime", out.MIME, "elapsed", time.Since(start))

	return outPath, nil
}
