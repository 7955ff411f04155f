package audio

import (
	"encoding/binary"
	"errors"
	"io"
)

// mockSource is a test helper that generates 16-bit PCM for testing.
type mockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int // bytes produced so far
	duration    Duration
	durationErr error
	block       chan struct{} // when set, Duration waits on it
	closed      bool
}

func newMockSource(sampleRate, channels, totalFrames int) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		duration:    Duration{Value: int64(totalFrames), Timescale: int64(sampleRate)},
	}
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

func (m *mockSource) Duration() (Duration, error) {
	if m.block != nil {
		<-m.block
	}
	return m.duration, m.durationErr
}

func (m *mockSource) Read(p []byte) (int, error) {
	total := m.totalFrames * m.channels * 2
	if m.generated >= total {
		return 0, io.EOF
	}

	n := min(len(p)&^1, total-m.generated)
	for i := 0; i < n; i += 2 {
		binary.LittleEndian.PutUint16(p[i:], uint16(int16(1000)))
	}
	m.generated += n

	return n, nil
}

// mockAsset hands out one preconfigured source per Open call.
type mockAsset struct {
	src     *mockSource
	openErr error
	opens   int
}

func (a *mockAsset) Open() (Source, error) {
	a.opens++
	if a.openErr != nil {
		return nil, a.openErr
	}
	return a.src, nil
}

var errMockDecode = errors.New("mock decode failed")
