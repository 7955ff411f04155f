// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Source is a decoded audio track. Read yields interleaved little-endian
// signed 16-bit PCM bytes, in order, until io.EOF.
type Source interface {
	io.Reader

	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// Duration reports the track length. It returns ErrDurationUnknown when
	// the container does not carry it.
	Duration() (Duration, error)
	// BufSize is the preferred read size in bytes.
	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	formats := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		formats = append(formats, k)
	}
	sort.Strings(formats)

	return formats
}

// Asset resolves a file asset for path using its extension as format key.
// The lookup is case-insensitive on the extension.
func (r *Registry) Asset(path string) (FileAsset, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	d, ok := r.Get(ext)
	if !ok {
		return FileAsset{}, &FormatError{Format: ext}
	}

	return FileAsset{Path: path, Decoder: d}, nil
}
