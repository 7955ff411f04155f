// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// Asset is an encoded audio resource that can be decoded more than once.
type Asset interface {
	// Open returns a new Source positioned at the first sample.
	Open() (Source, error)
}

// FileAsset decodes the file at Path with Decoder.
type FileAsset struct {
	Path    string
	Decoder Decoder
}

func (a FileAsset) Open() (Source, error) {
	f, err := os.Open(a.Path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := a.Decoder.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", a.Path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// fileSource closes the underlying file together with the decoder.
type fileSource struct {
	Source
	f *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.f.Close())
}

// MemoryAsset decodes an in-memory encoded file.
type MemoryAsset struct {
	Data    []byte
	Decoder Decoder
}

func (a MemoryAsset) Open() (Source, error) {
	src, err := a.Decoder.Decode(bytes.NewReader(a.Data))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return src, nil
}
