// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/ik5/audwave/waveform"
)

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// options holds the command line, defaulted from AUDWAVE_* variables.
type options struct {
	Bars      int
	Decibel   bool
	Floor     float64
	FullScale float64
	FullTrack bool
	ChunkSize int
	Workers   int
	FailFast  bool
	Pretty    bool
	LogLevel  string

	Paths []string
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("audwave", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: audwave [flags] file...\n\n")
		fs.PrintDefaults()
	}

	fs.IntVar(&o.Bars, "bars", envInt("AUDWAVE_BARS", waveform.DefaultTargetBars), "envelope values per rendered range")
	fs.BoolVar(&o.Decibel, "db", envBool("AUDWAVE_DECIBEL", false), "convert magnitudes to decibels before averaging")
	fs.Float64Var(&o.Floor, "floor", envFloat("AUDWAVE_NOISE_FLOOR", waveform.DefaultNoiseFloorDB), "noise floor in dB, must be negative")
	fs.Float64Var(&o.FullScale, "full-scale", envFloat("AUDWAVE_FULL_SCALE", waveform.DefaultFullScale), "magnitude treated as 0 dB")
	fs.BoolVar(&o.FullTrack, "full", envBool("AUDWAVE_FULL_TRACK", false), "render the whole track instead of its first third")
	fs.IntVar(&o.ChunkSize, "chunk", envInt("AUDWAVE_CHUNK_SIZE", 0), "read size in bytes, 0 uses the decoder's preference")
	fs.IntVar(&o.Workers, "workers", envInt("AUDWAVE_WORKERS", runtime.NumCPU()), "files rendered concurrently")
	fs.BoolVar(&o.FailFast, "fail-fast", envBool("AUDWAVE_FAIL_FAST", false), "stop at the first file that fails")
	fs.BoolVar(&o.Pretty, "pretty", envBool("AUDWAVE_PRETTY", false), "indent JSON output")
	fs.StringVar(&o.LogLevel, "log-level", envStr("AUDWAVE_LOG_LEVEL", "info"), "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	o.Paths = fs.Args()
	if len(o.Paths) == 0 {
		fs.Usage()
		return options{}, errNoInput
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	return o, nil
}

// config maps the options onto a render configuration and validates it.
func (o options) config() (waveform.Config, error) {
	cfg := waveform.DefaultConfig()
	cfg.TargetBars = o.Bars
	cfg.Decibel = o.Decibel
	cfg.NoiseFloorDB = o.Floor
	cfg.FullScale = o.FullScale
	cfg.ChunkSize = o.ChunkSize
	if o.FullTrack {
		cfg.Range = waveform.FullTrack
	}

	if err := cfg.Validate(); err != nil {
		return waveform.Config{}, err
	}
	return cfg, nil
}
