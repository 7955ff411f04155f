// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audwave/audio"
)

const defaultChunkSize = 4096

// Render reduces the configured range of tc's track to an envelope.
//
// It opens a reader on the track, streams it chunk by chunk through a carry
// buffer and decimates every whole window as soon as it is buffered. When the
// reader is exhausted, leftover samples are averaged into one final value.
// The reader is closed on every return path.
//
// Render either returns the complete envelope or an error, never a partial
// envelope:
//   - audio.ErrReaderInitFailed when the reader cannot be opened
//   - audio.ErrReaderReadFailed when a read fails
//   - audio.ErrReaderIncomplete when the stream is truncated or ctx is done
func Render(ctx context.Context, tc *audio.TrackContext, cfg Config) (Envelope, error) {
	if err := cfg.Validate(); err != nil {
		return Envelope{}, err
	}

	rng, err := cfg.rangeFor(tc.TotalSamples())
	if err != nil {
		return Envelope{}, err
	}

	channels := tc.Channels()
	spp := SamplesPerPixel(channels, rng.Len(), cfg.TargetBars)

	src, err := tc.Open()
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", audio.ErrReaderInitFailed, err)
	}
	defer src.Close()

	frameBytes := int64(channels) * sampleWidth
	if err := skip(src, rng.Start*frameBytes); err != nil {
		return Envelope{}, err
	}
	r := io.LimitReader(src, rng.Len()*frameBytes)

	chunkSize := cfg.ChunkSize
	if chunkSize == 0 {
		chunkSize = src.BufSize()
	}
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}

	p := newPipeline(spp, cfg)
	chunk := make([]byte, chunkSize)

	for {
		if err := ctx.Err(); err != nil {
			return Envelope{}, fmt.Errorf("%w: %w", audio.ErrReaderIncomplete, err)
		}

		n, err := r.Read(chunk)
		if n > 0 {
			p.push(chunk[:n])
		}

		if err == io.EOF {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Envelope{}, fmt.Errorf("%w: %w", audio.ErrReaderIncomplete, err)
		}
		if err != nil {
			return Envelope{}, fmt.Errorf("%w: %w", audio.ErrReaderReadFailed, err)
		}
	}

	if p.carry.Len()%sampleWidth != 0 {
		return Envelope{}, fmt.Errorf("%w: stream ends inside a sample", audio.ErrReaderIncomplete)
	}
	p.flush()

	return Envelope{
		Values:          p.out,
		Scale:           cfg.Scale(),
		Decibel:         cfg.Decibel,
		NoiseFloorDB:    cfg.NoiseFloorDB,
		SamplesPerPixel: spp,
		Range:           rng,
	}, nil
}

// skip discards n bytes from the head of src. Running out of data is not an
// error; the range simply ends up empty.
func skip(src io.Reader, n int64) error {
	if n <= 0 {
		return nil
	}

	_, err := io.CopyN(io.Discard, src, n)
	switch {
	case err == nil, err == io.EOF:
		return nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %w", audio.ErrReaderIncomplete, err)
	default:
		return fmt.Errorf("%w: %w", audio.ErrReaderReadFailed, err)
	}
}

// pipeline is the per-render working state. It is not shared between renders.
type pipeline struct {
	spp       int
	filter    Filter
	decibel   bool
	fullScale float64
	floor     float64

	carry   carryBuffer
	scratch []float32
	out     []float32
}

func newPipeline(spp int, cfg Config) *pipeline {
	return &pipeline{
		spp:       spp,
		filter:    NewFilter(spp),
		decibel:   cfg.Decibel,
		fullScale: cfg.FullScale,
		floor:     cfg.NoiseFloorDB,
		out:       make([]float32, 0, cfg.TargetBars+1),
	}
}

// push buffers chunk and decimates every whole window now available.
func (p *pipeline) push(chunk []byte) {
	p.carry.Append(chunk)

	windows := p.carry.Samples() / p.spp
	if windows == 0 {
		return
	}

	p.process(p.carry.Take(windows*p.spp), p.filter)
}

// flush averages whatever is left as a single window.
func (p *pipeline) flush() {
	n := p.carry.Samples()
	if n == 0 {
		return
	}

	p.process(p.carry.Take(n), NewFilter(n))
}

func (p *pipeline) process(raw []byte, f Filter) {
	n := len(raw) / sampleWidth
	if cap(p.scratch) < n {
		p.scratch = make([]float32, n)
	}

	samples := Rectify(p.scratch[:n], raw)
	if p.decibel {
		ToDecibels(samples, p.fullScale, p.floor)
	}

	p.out = Decimate(p.out, samples, f)
}
