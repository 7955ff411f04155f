// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"math"
)

const (
	DefaultTargetBars   = 30
	DefaultNoiseFloorDB = -60.0
	// DefaultFullScale is the magnitude of the most negative 16-bit sample.
	DefaultFullScale = 32768.0
)

// Config controls a single Render call. It is read-only during the call.
type Config struct {
	// TargetBars is the number of envelope values wanted for a full window
	// count. A trailing partial window adds at most one more.
	TargetBars int
	// Decibel switches the envelope to the inverted decibel scale, see
	// ToDecibels.
	Decibel bool
	// NoiseFloorDB is the decibel value treated as silence.
	NoiseFloorDB float64
	// FullScale is the sample magnitude treated as 0 dB.
	FullScale float64
	// Range picks the frames to process out of the track. Nil means
	// LeadingThird.
	Range RangeSelector
	// ChunkSize is the read size in bytes. Zero uses the source's BufSize.
	ChunkSize int
}

// DefaultConfig returns a linear-scale configuration with 30 bars over the
// leading third of the track.
func DefaultConfig() Config {
	return Config{
		TargetBars:   DefaultTargetBars,
		NoiseFloorDB: DefaultNoiseFloorDB,
		FullScale:    DefaultFullScale,
		Range:        LeadingThird,
	}
}

func (c Config) Validate() error {
	switch {
	case c.TargetBars < 1:
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrInvalidTargetBars)
	case !(c.NoiseFloorDB < 0) || math.IsInf(c.NoiseFloorDB, -1):
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrInvalidNoiseFloor)
	case !(c.FullScale > 0) || math.IsInf(c.FullScale, 1):
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrInvalidFullScale)
	case c.ChunkSize < 0:
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrInvalidChunkSize)
	}
	return nil
}

// Scale is the constant a renderer divides envelope values by.
func (c Config) Scale() float64 {
	if c.Decibel {
		return math.Abs(c.NoiseFloorDB)
	}
	return c.FullScale
}

// rangeFor resolves the frames to process for a track of total frames.
func (c Config) rangeFor(total int64) (SampleRange, error) {
	sel := c.Range
	if sel == nil {
		sel = LeadingThird
	}

	r := sel(total)
	r.Start = min(max(r.Start, 0), total)
	r.End = min(max(r.End, 0), total)
	if r.Start > r.End {
		return SampleRange{}, fmt.Errorf("%w: %w [%d, %d)", ErrInvalidConfig, ErrInvalidRange, r.Start, r.End)
	}

	return r, nil
}

// SampleRange is a half-open interval of frames [Start, End).
type SampleRange struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Len is the number of frames in r.
func (r SampleRange) Len() int64 { return r.End - r.Start }

// RangeSelector picks the frames to process given the track length in frames.
type RangeSelector func(totalSamples int64) SampleRange

// LeadingThird selects [0, total/3). This is the historical default: only
// the first third of a track contributes to the envelope. Use FullTrack to
// cover the whole track.
func LeadingThird(totalSamples int64) SampleRange {
	return SampleRange{Start: 0, End: totalSamples / 3}
}

// FullTrack selects every frame.
func FullTrack(totalSamples int64) SampleRange {
	return SampleRange{Start: 0, End: totalSamples}
}

// SamplesPerPixel is the decimation window: how many interleaved samples are
// averaged into one envelope value. It is never below 1.
func SamplesPerPixel(channels int, frames int64, targetBars int) int {
	if targetBars < 1 {
		targetBars = 1
	}

	spp := int64(channels) * frames / int64(targetBars)
	return int(max(1, spp))
}
