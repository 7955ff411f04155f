// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC audio with github.com/mewkiz/flac.
//
// Each call that finds no buffered PCM parses one frame, interleaves its
// subframes and rescales every sample to 16 bits. STREAMINFO provides the
// sample rate, channel count and total frame count up front; a stream that
// leaves the total at zero reports audio.ErrDurationUnknown from Duration.
package flac
