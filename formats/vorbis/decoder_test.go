// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audwave/audio"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	length     int64
	readErr    error
}

func newMockReader(sampleRate, channels int, samples []float32) *mockOggVorbisReader {
	return &mockOggVorbisReader{
		sampleRate: sampleRate,
		channels:   channels,
		samples:    samples,
		length:     int64(len(samples) / channels),
	}
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }
func (m *mockOggVorbisReader) Length() int64   { return m.length }

// Read mirrors oggvorbis: it returns values and only whole frames.
func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := min(len(buf)/m.channels, (len(m.samples)-m.offset)/m.channels) * m.channels
	copy(buf, m.samples[m.offset:m.offset+n])
	m.offset += n

	return n, nil
}

func newSource(dec *mockOggVorbisReader) *source {
	return &source{dec: dec, sampleRate: dec.sampleRate, channels: dec.channels}
}

func readInt16s(t *testing.T, r io.Reader) []int16 {
	t.Helper()

	pcm, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	out := make([]int16, len(pcm)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}
	return out
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    io.Reader
	}{
		{"garbage", bytes.NewReader([]byte("This is not Ogg Vorbis data"))},
		{"empty", bytes.NewReader(nil)},
		{"non seekable", io.MultiReader(bytes.NewReader([]byte("OggS")))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(tt.r)
			if !errors.Is(err, ErrNotVorbisFile) {
				t.Errorf("Decode() error = %v, want ErrNotVorbisFile", err)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(newMockReader(48000, 2, make([]float32, 20)))

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != defaultBufSize {
		t.Errorf("BufSize() = %d, want %d", src.BufSize(), defaultBufSize)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_Duration(t *testing.T) {
	t.Parallel()

	src := newSource(newMockReader(48000, 2, make([]float32, 20)))
	d, err := src.Duration()
	if err != nil {
		t.Fatalf("Duration() error = %v", err)
	}
	if d.Value != 10 || d.Timescale != 48000 {
		t.Errorf("Duration() = %+v, want {10 48000}", d)
	}

	unknown := newMockReader(48000, 2, nil)
	unknown.length = 0
	if _, err := newSource(unknown).Duration(); !errors.Is(err, audio.ErrDurationUnknown) {
		t.Errorf("Duration() error = %v, want audio.ErrDurationUnknown", err)
	}
}

func TestSource_Read_Conversion(t *testing.T) {
	t.Parallel()

	src := newSource(newMockReader(44100, 1, []float32{0, 1, -1, 0.5, 2, -2}))

	got := readInt16s(t, src)
	want := []int16{0, 32767, -32767, 16383, 32767, -32767}
	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSource_Read_SmallBuffers(t *testing.T) {
	t.Parallel()

	// Stereo frames with 1, 3 and 5 byte reads.
	values := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	for _, size := range []int{1, 3, 5} {
		src := newSource(newMockReader(44100, 2, values))

		var pcm []byte
		p := make([]byte, size)
		for {
			n, err := src.Read(p)
			pcm = append(pcm, p[:n]...)
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("Read(%d bytes) error = %v", size, err)
			}
		}

		if len(pcm) != len(values)*2 {
			t.Errorf("Read(%d bytes) produced %d bytes, want %d", size, len(pcm), len(values)*2)
		}
	}
}

func TestSource_Read_Error(t *testing.T) {
	t.Parallel()

	dec := newMockReader(44100, 2, nil)
	dec.readErr = io.ErrUnexpectedEOF
	src := newSource(dec)

	_, err := src.Read(make([]byte, 64))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Read() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_Read_Empty(t *testing.T) {
	t.Parallel()

	src := newSource(newMockReader(44100, 2, nil))

	if n, err := src.Read(nil); n != 0 || err != nil {
		t.Errorf("Read(nil) = (%d, %v), want (0, nil)", n, err)
	}
	if _, err := src.Read(make([]byte, 8)); err != io.EOF {
		t.Errorf("Read() error = %v, want io.EOF", err)
	}
}

func BenchmarkSource_Read(b *testing.B) {
	values := make([]float32, 44100*2)
	for i := range values {
		values[i] = float32(i%200)/100 - 1
	}
	buf := make([]byte, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src := newSource(newMockReader(44100, 2, values))
		for {
			if _, err := src.Read(buf); err != nil {
				break
			}
		}
	}
}
