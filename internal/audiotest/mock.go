// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync"

	"github.com/ik5/audwave/audio"
)

// ErrInjected is the read error returned by sources built with FailAfter.
var ErrInjected = errors.New("injected read failure")

// MockSource is a test helper that generates 16-bit PCM for testing.
// It implements audio.Source.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // frames (samples per channel) to generate
	produced    int // bytes produced so far
	waveform    func(frame int, channel int) int16

	// ChunkSize caps the bytes returned by a single Read. Zero means no cap.
	ChunkSize int
	// FailAfter makes Read fail with ErrInjected once this many bytes were
	// produced. Negative disables it.
	FailAfter int
	// Truncate ends the stream with io.ErrUnexpectedEOF instead of io.EOF.
	Truncate bool
	// DurationErr is returned by Duration when set.
	DurationErr error

	mtx    sync.Mutex
	closed bool
}

// NewMockSource creates a new mock audio source.
// totalFrames is the number of samples per channel to generate.
// waveform generates sample values given frame index and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) int16) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
		FailAfter:   -1,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) int16 {
		return 0
	})
}

// NewConstantSource creates a mock source with a constant sample value.
func NewConstantSource(sampleRate, channels, totalFrames int, value int16) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) int16 {
		return value
	})
}

// NewSineSource creates a mock source that generates a full scale sine wave.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, _ int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(math.Sin(2*math.Pi*frequency*t) * math.MaxInt16)
	})
}

// NewSliceSource plays back interleaved samples. totalFrames is derived from
// len(samples)/channels.
func NewSliceSource(sampleRate, channels int, samples []int16) *MockSource {
	return NewMockSource(sampleRate, channels, len(samples)/channels, func(frame int, channel int) int16 {
		return samples[frame*channels+channel]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Duration() (audio.Duration, error) {
	if m.DurationErr != nil {
		return audio.Duration{}, m.DurationErr
	}
	return audio.Duration{Value: int64(m.totalFrames), Timescale: int64(m.sampleRate)}, nil
}

func (m *MockSource) Close() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.closed
}

// Reset rewinds the source to allow re-reading.
func (m *MockSource) Reset() {
	m.produced = 0
}

func (m *MockSource) Read(p []byte) (int, error) {
	total := m.totalFrames * m.channels * 2
	if m.FailAfter >= 0 && m.produced >= m.FailAfter {
		return 0, ErrInjected
	}
	if m.produced >= total {
		if m.Truncate {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, io.EOF
	}

	n := min(len(p), total-m.produced)
	if m.ChunkSize > 0 {
		n = min(n, m.ChunkSize)
	}
	if m.FailAfter >= 0 {
		n = min(n, m.FailAfter-m.produced)
	}

	// Chunks may split a sample; emit byte by byte from the logical stream.
	var sample [2]byte
	for i := range n {
		pos := m.produced + i
		idx := pos / 2
		binary.LittleEndian.PutUint16(sample[:], uint16(m.waveform(idx/m.channels, idx%m.channels)))
		p[i] = sample[pos%2]
	}
	m.produced += n

	return n, nil
}

// MockAsset opens a fresh source from NewSource on every Open call.
type MockAsset struct {
	NewSource func() *MockSource
	OpenErr   error

	mtx     sync.Mutex
	sources []*MockSource
}

func NewMockAsset(newSource func() *MockSource) *MockAsset {
	return &MockAsset{NewSource: newSource}
}

func (a *MockAsset) Open() (audio.Source, error) {
	if a.OpenErr != nil {
		return nil, a.OpenErr
	}

	src := a.NewSource()

	a.mtx.Lock()
	a.sources = append(a.sources, src)
	a.mtx.Unlock()

	return src, nil
}

// Sources returns every source handed out so far.
func (a *MockAsset) Sources() []*MockSource {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	return append([]*MockSource(nil), a.sources...)
}

// AllClosed reports whether every opened source was closed.
func (a *MockAsset) AllClosed() bool {
	for _, s := range a.Sources() {
		if !s.Closed() {
			return false
		}
	}
	return true
}
