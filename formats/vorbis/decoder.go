// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/utils"
)

const defaultBufSize = 4096

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frameBuf   []float32 // float values straight from the decoder
	pending    utils.PCMQueue
	err        error // terminal, returned once pending is drained
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return defaultBufSize }

// Duration reports the stream length in frames. oggvorbis reports zero when
// it could not seek to the last page.
func (s *source) Duration() (audio.Duration, error) {
	frames := s.dec.Length()
	if frames <= 0 {
		return audio.Duration{}, audio.ErrDurationUnknown
	}
	return audio.Duration{Value: frames, Timescale: int64(s.sampleRate)}, nil
}

func (s *source) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for s.pending.Len() == 0 {
		if s.err != nil {
			return 0, s.err
		}
		s.fill(len(p) / 2)
	}

	return s.pending.Read(p), nil
}

// fill decodes about n values, rounded to whole frames, into the pending
// queue as 16-bit PCM.
func (s *source) fill(n int) {
	n = max(n/s.channels, 1) * s.channels
	if cap(s.frameBuf) < n {
		s.frameBuf = make([]float32, n)
	}
	s.frameBuf = s.frameBuf[:n]

	// oggvorbis returns values (frames * channels), not frames.
	got, err := s.dec.Read(s.frameBuf)
	for _, v := range s.frameBuf[:got] {
		s.pending.Push(utils.Float32ToInt16(v))
	}

	switch {
	case err == io.EOF, err == nil && got == 0:
		s.err = io.EOF
	case err != nil:
		s.err = fmt.Errorf("%w", err)
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// oggvorbis needs a seeker to measure the stream.
	if _, ok := r.(io.ReadSeeker); !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading ogg data: %w", err)
		}
		r = bytes.NewReader(data)
	}

	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	if dec.Channels() < 1 {
		return nil, audio.ErrNoAudioTrack
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
