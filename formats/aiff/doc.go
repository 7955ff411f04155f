// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files.
//
// Chunk parsing is done by github.com/go-audio/aiff. Samples of 8, 16, 24
// or 32 bits are rescaled to 16 bits and served as interleaved little-endian
// int16, the layout audio.Source promises. Deeper samples lose their low
// bits, which is below anything a waveform envelope can show.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	switch {
//	case errors.Is(err, aiff.ErrNotAiffFile):
//	case errors.Is(err, audio.ErrNoAudioTrack):
//	}
//
// Duration comes from the COMM chunk frame count, so it is known before any
// sample is read.
package aiff
