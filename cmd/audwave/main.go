// SPDX-License-Identifier: EPL-2.0

// Command audwave prints waveform envelopes of audio files as JSON.
//
//	audwave -bars 60 -db intro.wav outro.flac
//
// Every flag defaults from an AUDWAVE_* environment variable, see -help.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/audwave"
	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/waveform"
)

var (
	errNoInput    = errors.New("no input files")
	errSomeFailed = errors.New("one or more files failed")
)

// result is one entry of the JSON output.
type result struct {
	Path     string             `json:"path"`
	Envelope *waveform.Envelope `json:"envelope,omitempty"`
	Error    string             `json:"error,omitempty"`
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	log := newLogger(opts.LogLevel)
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, log, opts, audwave.DefaultRegistry(), os.Stdout); err != nil {
		log.Errorw("audwave failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()

	switch strings.ToLower(level) {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	case "warn", "warning":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger.Sugar()
}

// run renders every path in opts, at most opts.Workers at a time, and writes
// the results to out in input order. Renders share nothing, so each one runs
// its own pipeline.
func run(ctx context.Context, log *zap.SugaredLogger, opts options, registry *audio.Registry, out io.Writer) error {
	cfg, err := opts.config()
	if err != nil {
		return err
	}

	results := make([]result, len(opts.Paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, path := range opts.Paths {
		g.Go(func() error {
			results[i].Path = path

			start := time.Now()
			env, err := audwave.RenderFileWith(gctx, registry, path, cfg)
			if err != nil {
				results[i].Error = err.Error()
				log.Warnw("render failed", "path", path, "error", err)

				if opts.FailFast {
					return fmt.Errorf("%s: %w", path, err)
				}
				return nil
			}

			results[i].Envelope = &env
			log.Debugw("rendered",
				"path", path,
				"values", len(env.Values),
				"samples_per_pixel", env.SamplesPerPixel,
				"range_start", env.Range.Start,
				"range_end", env.Range.End,
				"took", time.Since(start),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	for _, r := range results {
		if r.Error != "" {
			return errSomeFailed
		}
	}
	return nil
}
