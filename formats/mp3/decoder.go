// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audwave/audio"
)

// go-mp3 always emits 16-bit little-endian stereo, even for mono files.
const (
	channels   = 2
	frameBytes = channels * 2
	bufSize    = 8192
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec        mp3Reader
	sampleRate int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return bufSize }

// Duration derives the frame count from the decoded byte length. go-mp3 only
// knows it for seekable inputs.
func (s *source) Duration() (audio.Duration, error) {
	length := s.dec.Length()
	if length < 0 {
		return audio.Duration{}, audio.ErrDurationUnknown
	}
	return audio.Duration{Value: length / frameBytes, Timescale: int64(s.sampleRate)}, nil
}

// Read hands out the decoder's PCM unchanged; it is already the layout
// audio.Source promises.
func (s *source) Read(p []byte) (int, error) {
	n, err := s.dec.Read(p)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-mp3 can only measure seekable input.
	if _, ok := r.(io.ReadSeeker); !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading mp3 data: %w", err)
		}
		r = bytes.NewReader(data)
	}

	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
	}, nil
}
