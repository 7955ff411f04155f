// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audwave/audio"
)

const formatPCM = 1

type source struct {
	r          io.Reader
	sampleRate int
	channels   int
	pcmLen     int64 // data chunk size in bytes
	read       int64
	bufSize    int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return s.bufSize }
func (s *source) Close() error    { return nil }

func (s *source) Duration() (audio.Duration, error) {
	return audio.Duration{
		Value:     s.pcmLen / int64(s.channels*2),
		Timescale: int64(s.sampleRate),
	}, nil
}

// Read passes the data chunk through untouched: PCM 16-bit WAV is already
// interleaved little-endian int16.
func (s *source) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	s.read += int64(n)

	if err == io.EOF && s.read < s.pcmLen {
		// The file ends before the size the data chunk declares.
		return n, io.ErrUnexpectedEOF
	}
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	// Check the RIFF/WAVE magic ourselves; go-audio accepts any RIFF form.
	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}
	if _, err := rs.Seek(-int64(len(header)), io.SeekCurrent); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.NumChans == 0 {
		return nil, audio.ErrNoAudioTrack
	}
	if dec.WavAudioFormat != formatPCM || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	if err := dec.FwdToPCM(); err != nil || dec.PCMChunk == nil {
		return nil, ErrPCMChunkNotFound
	}

	return &source{
		r:          io.LimitReader(dec.PCMChunk, dec.PCMLen()),
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		pcmLen:     dec.PCMLen(),
		bufSize:    4096,
	}, nil
}
