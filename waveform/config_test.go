// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.TargetBars != 30 {
		t.Errorf("TargetBars = %d, want 30", cfg.TargetBars)
	}
	if cfg.Decibel {
		t.Error("Decibel = true, want false")
	}
	if cfg.NoiseFloorDB != -60 {
		t.Errorf("NoiseFloorDB = %v, want -60", cfg.NoiseFloorDB)
	}
	if cfg.FullScale != 32768 {
		t.Errorf("FullScale = %v, want 32768", cfg.FullScale)
	}
	if cfg.Range == nil {
		t.Fatal("Range = nil, want LeadingThird")
	}
	if got := cfg.Range(48000); got != (SampleRange{0, 16000}) {
		t.Errorf("Range(48000) = %v, want [0, 16000)", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero bars", func(c *Config) { c.TargetBars = 0 }, ErrInvalidTargetBars},
		{"negative bars", func(c *Config) { c.TargetBars = -3 }, ErrInvalidTargetBars},
		{"zero floor", func(c *Config) { c.NoiseFloorDB = 0 }, ErrInvalidNoiseFloor},
		{"positive floor", func(c *Config) { c.NoiseFloorDB = 6 }, ErrInvalidNoiseFloor},
		{"NaN floor", func(c *Config) { c.NoiseFloorDB = math.NaN() }, ErrInvalidNoiseFloor},
		{"infinite floor", func(c *Config) { c.NoiseFloorDB = math.Inf(-1) }, ErrInvalidNoiseFloor},
		{"zero full scale", func(c *Config) { c.FullScale = 0 }, ErrInvalidFullScale},
		{"NaN full scale", func(c *Config) { c.FullScale = math.NaN() }, ErrInvalidFullScale},
		{"negative chunk", func(c *Config) { c.ChunkSize = -1 }, ErrInvalidChunkSize},
		{"one bar", func(c *Config) { c.TargetBars = 1 }, nil},
		{"nil range", func(c *Config) { c.Range = nil }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig in chain", err)
			}
		})
	}
}

func TestConfig_Scale(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Scale() != 32768 {
		t.Errorf("linear Scale() = %v, want 32768", cfg.Scale())
	}

	cfg.Decibel = true
	cfg.NoiseFloorDB = -48
	if cfg.Scale() != 48 {
		t.Errorf("decibel Scale() = %v, want 48", cfg.Scale())
	}
}

func TestConfig_RangeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sel     RangeSelector
		total   int64
		want    SampleRange
		wantErr bool
	}{
		{"default is leading third", nil, 48000, SampleRange{0, 16000}, false},
		{"leading third rounds down", LeadingThird, 10, SampleRange{0, 3}, false},
		{"full track", FullTrack, 48000, SampleRange{0, 48000}, false},
		{"empty track", FullTrack, 0, SampleRange{0, 0}, false},
		{
			"clamped to track",
			func(int64) SampleRange { return SampleRange{-10, 1 << 40} },
			100, SampleRange{0, 100}, false,
		},
		{
			"inverted",
			func(int64) SampleRange { return SampleRange{50, 10} },
			100, SampleRange{}, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.Range = tt.sel

			got, err := cfg.rangeFor(tt.total)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRange) {
					t.Errorf("rangeFor() error = %v, want ErrInvalidRange", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("rangeFor() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("rangeFor(%d) = %v, want %v", tt.total, got, tt.want)
			}
		})
	}
}

func TestSamplesPerPixel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		frames   int64
		bars     int
		want     int
	}{
		{"mono first third of 48000", 1, 16000, 10, 1600},
		{"stereo doubles the window", 2, 16000, 10, 3200},
		{"integer division", 1, 1000, 3, 333},
		{"more bars than samples", 1, 5, 100, 1},
		{"empty range", 2, 0, 30, 1},
		{"zero bars is clamped", 1, 100, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SamplesPerPixel(tt.channels, tt.frames, tt.bars)
			if got != tt.want {
				t.Errorf("SamplesPerPixel(%d, %d, %d) = %d, want %d",
					tt.channels, tt.frames, tt.bars, got, tt.want)
			}
		})
	}
}

// TestSamplesPerPixel_NeverBelowOne sweeps inputs for the lower bound.
func TestSamplesPerPixel_NeverBelowOne(t *testing.T) {
	t.Parallel()

	for channels := 1; channels <= 8; channels++ {
		for frames := int64(0); frames < 64; frames++ {
			for bars := 1; bars < 200; bars += 7 {
				if got := SamplesPerPixel(channels, frames, bars); got < 1 {
					t.Fatalf("SamplesPerPixel(%d, %d, %d) = %d, want >= 1", channels, frames, bars, got)
				}
			}
		}
	}
}
