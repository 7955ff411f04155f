// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoding collaborators a waveform render reads
// from.
//
// This package contains:
//   - Source interface for decoded 16-bit PCM input
//   - Decoder interface and a format Registry
//   - Asset implementations for files and in-memory data
//   - TrackContext and LoadContext for track metadata
//   - The error taxonomy shared by loaders and renderers
//
// # Source Interface
//
// A Source is an io.Reader of interleaved little-endian signed 16-bit PCM:
//
//	type Source interface {
//	    io.Reader
//	    SampleRate() int
//	    Channels() int
//	    Duration() (Duration, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Read follows the io.Reader contract. io.EOF marks a clean end of stream,
// io.ErrUnexpectedEOF a truncated one; anything else is a decode failure.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	asset, err := registry.Asset("song.wav")
//
// # Track Context
//
// LoadContext opens an asset and resolves its duration without blocking past
// ctx:
//
//	tc, err := audio.LoadContext(ctx, asset)
//	if errors.Is(err, audio.ErrNoAudioTrack) {
//	    // nothing to draw
//	}
//
// A failed duration load is reported as a *MetadataError whose Status tells
// failed, cancelled and unresolved loads apart.
//
// # Error Handling
//
// All failures are returned, never raised. Callers match them with errors.Is:
//
//	ErrNoAudioTrack       asset has no audio track
//	ErrMetadataLoadFailed duration could not be resolved
//	ErrReaderInitFailed   a reader could not be opened for rendering
//	ErrReaderReadFailed   the reader failed mid-stream
//	ErrReaderIncomplete   the reader stopped short of a clean end
package audio
