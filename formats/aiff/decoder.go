// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/utils"
)

const defaultBufSize = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source. Samples of
// any supported depth are rescaled to 16 bits and served little-endian.
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64
	intBuf     *goaudio.IntBuffer
	pending    utils.PCMQueue
	err        error // terminal, returned once pending is drained
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data) * 2
	}
	return defaultBufSize
}

func (s *source) Duration() (audio.Duration, error) {
	return audio.Duration{Value: s.frames, Timescale: int64(s.sampleRate)}, nil
}

func (s *source) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for s.pending.Len() == 0 {
		if s.err != nil {
			return 0, s.err
		}
		s.fill(max(len(p)/2, 1))
	}

	return s.pending.Read(p), nil
}

// fill decodes up to n samples into the pending queue.
func (s *source) fill(n int) {
	if s.intBuf == nil || cap(s.intBuf.Data) < n {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, n),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:n]
	}

	got, err := s.dec.PCMBuffer(s.intBuf)
	for _, v := range s.intBuf.Data[:got] {
		s.pending.Push(utils.IntToInt16(v, s.bitDepth))
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
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}
	form := string(header[8:12])
	if string(header[:4]) != "FORM" || (form != "AIFF" && form != "AIFC") {
		return nil, ErrNotAiffFile
	}
	if _, err := rs.Seek(-int64(len(header)), io.SeekCurrent); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := aiff.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}

	if dec.NumChans == 0 {
		return nil, audio.ErrNoAudioTrack
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
		frames:     int64(dec.NumSampleFrames),
	}, nil
}
