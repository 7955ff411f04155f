// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/utils"
)

const defaultBufSize = 4096

// frameReader is an interface for flac.Stream to allow testing
type frameReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

// source serves decoded FLAC frames as interleaved little-endian int16.
type source struct {
	stream     frameReader
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64 // 0 when STREAMINFO leaves it unset
	bufSize    int
	pending    utils.PCMQueue
	err        error // terminal, returned once pending is drained
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return s.bufSize }
func (s *source) Close() error    { return s.stream.Close() }

func (s *source) Duration() (audio.Duration, error) {
	if s.frames <= 0 {
		return audio.Duration{}, audio.ErrDurationUnknown
	}
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
		s.fill()
	}

	return s.pending.Read(p), nil
}

// fill decodes the next frame and interleaves its subframes.
func (s *source) fill() {
	f, err := s.stream.ParseNext()
	if err == io.EOF {
		s.err = io.EOF
		return
	}
	if err != nil {
		s.err = fmt.Errorf("%w", err)
		return
	}

	if len(f.Subframes) != s.channels {
		s.err = fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, len(f.Subframes), s.channels)
		return
	}

	n := len(f.Subframes[0].Samples)
	for i := range n {
		for _, sub := range f.Subframes {
			s.pending.Push(utils.IntToInt16(int(sub.Samples[i]), s.bitDepth))
		}
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// Hide io.Closer: whoever opened r closes it, not the stream.
	stream, err := flac.New(struct{ io.Reader }{r})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 {
		stream.Close()
		return nil, audio.ErrNoAudioTrack
	}
	if info.BitsPerSample < 4 || info.BitsPerSample > 32 {
		stream.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, info.BitsPerSample)
	}

	bufSize := int(info.BlockSizeMax) * int(info.NChannels) * 2
	if bufSize <= 0 {
		bufSize = defaultBufSize
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
		frames:     int64(info.NSamples),
		bufSize:    bufSize,
	}, nil
}
