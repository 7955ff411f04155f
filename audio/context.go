// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"errors"
	"math"
)

// Duration is a rational track length: Value/Timescale seconds.
type Duration struct {
	Value     int64
	Timescale int64
}

// Seconds returns d as floating point seconds.
func (d Duration) Seconds() float64 {
	if d.Timescale <= 0 {
		return 0
	}
	return float64(d.Value) / float64(d.Timescale)
}

func (d Duration) resolved() bool {
	return d.Timescale > 0 && d.Value >= 0
}

// TrackContext describes one audio track of an asset. It is immutable once
// built and is what a waveform render is configured from.
type TrackContext struct {
	asset        Asset
	totalSamples int64
	sampleRate   int
	channels     int
	timescale    int64
}

// NewTrackContext builds a context for callers that already know the track
// metadata. It fails with ErrNoAudioTrack when channels < 1 and with
// ErrMetadataLoadFailed when duration is unresolved.
func NewTrackContext(asset Asset, sampleRate, channels int, duration Duration) (*TrackContext, error) {
	if channels < 1 {
		return nil, ErrNoAudioTrack
	}
	if !duration.resolved() {
		return nil, &MetadataError{Status: StatusUnknown}
	}

	total := math.Round(float64(sampleRate) * float64(duration.Value) / float64(duration.Timescale))

	return &TrackContext{
		asset:        asset,
		totalSamples: int64(total),
		sampleRate:   sampleRate,
		channels:     channels,
		timescale:    duration.Timescale,
	}, nil
}

// TotalSamples is the track length in frames (samples per channel).
func (c *TrackContext) TotalSamples() int64 { return c.totalSamples }
func (c *TrackContext) SampleRate() int     { return c.sampleRate }
func (c *TrackContext) Channels() int       { return c.channels }
func (c *TrackContext) Timescale() int64    { return c.timescale }

// Open starts a new reader on the track's asset.
func (c *TrackContext) Open() (Source, error) { return c.asset.Open() }

type durationResult struct {
	d   Duration
	err error
}

// LoadContext opens asset, checks it carries audio and loads its duration.
//
// The duration load runs on its own goroutine, which owns the opened source
// and closes it once the load finishes; LoadContext waits for it or for ctx.
// Every failure is returned as an error: ErrNoAudioTrack when the asset has no
// audio, otherwise a *MetadataError carrying the terminal status.
func LoadContext(ctx context.Context, asset Asset) (*TrackContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, &MetadataError{Status: StatusCancelled, Err: err}
	}

	src, err := asset.Open()
	if errors.Is(err, ErrNoAudioTrack) {
		return nil, err
	}
	if err != nil {
		return nil, &MetadataError{Status: StatusFailed, Err: err}
	}

	if src.Channels() < 1 {
		src.Close()
		return nil, ErrNoAudioTrack
	}

	sampleRate, channels := src.SampleRate(), src.Channels()

	done := make(chan durationResult, 1)
	go func() {
		d, err := src.Duration()
		src.Close()

		done <- durationResult{d: d, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, &MetadataError{Status: StatusCancelled, Err: ctx.Err()}

	case res := <-done:
		if errors.Is(res.err, ErrDurationUnknown) {
			return nil, &MetadataError{Status: StatusUnknown, Err: res.err}
		}
		if res.err != nil {
			return nil, &MetadataError{Status: StatusFailed, Err: res.err}
		}
		if !res.d.resolved() {
			return nil, &MetadataError{Status: StatusUnknown}
		}

		return NewTrackContext(asset, sampleRate, channels, res.d)
	}
}
