// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid waveform config")

	ErrInvalidTargetBars = errors.New("target bars must be at least 1")
	ErrInvalidNoiseFloor = errors.New("noise floor must be a negative decibel value")
	ErrInvalidFullScale  = errors.New("full scale sample value must be positive")
	ErrInvalidChunkSize  = errors.New("chunk size must not be negative")
	ErrInvalidRange      = errors.New("sample range start is past its end")
)
