// Package main provides the CLI entry point for camrec.
package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/user/camrec/pkg/adapters/logger"
	"github.com/user/camrec/pkg/adapters/osfilesystem"
	"github.com/user/camrec/pkg/adapters/sessionpaths"
	"github.com/user/camrec/pkg/adapters/smartsink"
	"github.com/user/camrec/pkg/config"
	"github.com/user/camrec/pkg/ports"
	"github.com/user/camrec/pkg/recorder"
	"github.com/user/camrec/pkg/testpattern"
	"github.com/user/camrec/pkg/timeseries"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "camrec",
		Usage:   "Buffer timestamped video frames and flush them to disk",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "data-dir", Usage: "Base directory for session folders"},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: "Log level (debug, info, warn, error)"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: "Suppress all log output"},
		},
		Commands: []*cli.Command{
			recordCommand(),
			imagesCommand(),
			timestampsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "camrec: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig overlays config file and global flags onto the defaults.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if dir := c.String("data-dir"); dir != "" {
		cfg.DataDir = dir
	}
	return cfg, nil
}

func buildLogger(c *cli.Context, cfg config.Config) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	level := cfg.LogLevel
	if c.IsSet("log-level") {
		level = c.String("log-level")
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}

func buildRecorder(cfg config.Config, log ports.Logger, opts recorder.Options) (*recorder.Recorder, error) {
	fs := osfilesystem.New()
	sink, info := smartsink.New(opts.FourCC, fs, smartsink.Options{
		FFmpegPath: cfg.FFmpegPath,
		Logger:     log,
	})
	log.Debug("Using %s sink backend", string(info.Backend))

	paths := sessionpaths.New(cfg.DataDir)
	return recorder.New(opts, paths, sink, fs, log)
}

func recordCommand() *cli.Command {
	return &cli.Command{
		Name:  "record",
		Usage: "Record a synthetic test-pattern video through the full pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Value: "test_pattern", Usage: "Video name"},
			&cli.StringFlag{Name: "session", Aliases: []string{"s"}, Usage: "Session identifier (generated when omitted)"},
			&cli.IntFlag{Name: "frames", Value: 90, Usage: "Number of frames to render"},
			&cli.IntFlag{Name: "interval-ms", Value: 33, Usage: "Synthetic capture interval in milliseconds"},
			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: "Frame width"},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: "Frame height"},
			&cli.StringFlag{Name: "fourcc", Usage: "Codec fourcc (default from config)"},
			&cli.Float64Flag{Name: "fps", Usage: "Explicit frame rate (default: derived from timestamps)"},
			&cli.BoolFlag{Name: "calibration", Usage: "Save under the calibration videos folder"},
			&cli.BoolFlag{Name: "annotated", Usage: "Save under the annotated videos folder"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			log := buildLogger(c, cfg)

			opts := recorder.Options{
				VideoName:   c.String("name"),
				Width:       cfg.Width,
				Height:      cfg.Height,
				SessionID:   c.String("session"),
				FourCC:      cfg.FourCC,
				Calibration: c.Bool("calibration"),
				Annotated:   c.Bool("annotated"),
				FrameRate:   cfg.FrameRate,
			}
			if c.IsSet("width") {
				opts.Width = c.Int("width")
			}
			if c.IsSet("height") {
				opts.Height = c.Int("height")
			}
			if c.IsSet("fourcc") {
				opts.FourCC = c.String("fourcc")
			}
			if c.IsSet("fps") {
				opts.FrameRate = c.Float64("fps")
			}
			if opts.SessionID == "" {
				opts.SessionID = "session_" + uuid.NewString()
			}

			rec, err := buildRecorder(cfg, log, opts)
			if err != nil {
				return err
			}

			count := c.Int("frames")
			interval := time.Duration(c.Int("interval-ms")) * time.Millisecond
			log.Info("Recording %d frames to %s", count, rec.FilePath())

			for _, f := range testpattern.Frames(count, opts.Width, opts.Height, interval.Nanoseconds()) {
				rec.Append(f)
			}
			if err := rec.Flush(); err != nil {
				return err
			}

			log.Info("Recording completed: %s", rec.FilePath())
			return nil
		},
	}
}

func imagesCommand() *cli.Command {
	return &cli.Command{
		Name:      "images",
		Usage:     "Flush a directory of image files to a video at an explicit frame rate",
		ArgsUsage: "<directory>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Value: "image_sequence", Usage: "Video name"},
			&cli.StringFlag{Name: "session", Aliases: []string{"s"}, Usage: "Session identifier (generated when omitted)"},
			&cli.Float64Flag{Name: "fps", Required: true, Usage: "Frame rate for the output video"},
			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: "Frame width"},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: "Frame height"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one directory argument")
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			log := buildLogger(c, cfg)

			images, err := loadImages(c.Args().First())
			if err != nil {
				return err
			}

			opts := recorder.Options{
				VideoName: c.String("name"),
				Width:     cfg.Width,
				Height:    cfg.Height,
				SessionID: c.String("session"),
				FourCC:    cfg.FourCC,
			}
			if c.IsSet("width") {
				opts.Width = c.Int("width")
			}
			if c.IsSet("height") {
				opts.Height = c.Int("height")
			}
			if len(images) > 0 && !c.IsSet("width") && !c.IsSet("height") {
				bounds := images[0].Bounds()
				opts.Width = bounds.Dx()
				opts.Height = bounds.Dy()
			}
			if opts.SessionID == "" {
				opts.SessionID = "session_" + uuid.NewString()
			}

			rec, err := buildRecorder(cfg, log, opts)
			if err != nil {
				return err
			}

			log.Info("Flushing %d images to %s", len(images), rec.FilePath())
			return rec.WriteImages(images, c.Float64("fps"))
		},
	}
}

func timestampsCommand() *cli.Command {
	return &cli.Command{
		Name:      "timestamps",
		Usage:     "Dump a binary timestamp side-file as CSV to stdout",
		ArgsUsage: "<timestamps.npy>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one file argument")
			}
			data, err := osfilesystem.New().ReadFile(c.Args().First())
			if err != nil {
				return err
			}
			series, err := timeseries.ParseNPY(data)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(series.CSV())
			return err
		},
	}
}

// loadImages decodes every image file in dir in lexical order.
func loadImages(dir string) ([]image.Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".png", ".jpg", ".jpeg":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	images := make([]image.Image, 0, len(names))
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		images = append(images, img)
	}
	return images, nil
}
