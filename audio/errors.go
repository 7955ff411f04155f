// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrNoAudioTrack       = errors.New("no audio track")
	ErrMetadataLoadFailed = errors.New("metadata load failed")
	ErrReaderInitFailed   = errors.New("reader init failed")
	ErrReaderReadFailed   = errors.New("reader read failed")
	ErrReaderIncomplete   = errors.New("reader did not complete")

	ErrDurationUnknown   = errors.New("duration unknown")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// MetadataStatus is the terminal state of a duration load.
type MetadataStatus int

const (
	StatusUnknown MetadataStatus = iota
	StatusLoaded
	StatusFailed
	StatusCancelled
)

func (s MetadataStatus) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// MetadataError reports a duration load that did not reach StatusLoaded.
// It matches ErrMetadataLoadFailed with errors.Is.
type MetadataError struct {
	Status MetadataStatus
	Err    error
}

func (e *MetadataError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s (%s)", ErrMetadataLoadFailed, e.Status)
	}
	return fmt.Sprintf("%s (%s): %v", ErrMetadataLoadFailed, e.Status, e.Err)
}

func (e *MetadataError) Is(target error) bool { return target == ErrMetadataLoadFailed }
func (e *MetadataError) Unwrap() error         { return e.Err }

// FormatError is returned when no decoder is registered for a format key.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedFormat, e.Format)
}

func (e *FormatError) Unwrap() error { return ErrUnsupportedFormat }
