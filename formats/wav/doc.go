// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes PCM 16-bit WAV files.
//
// Chunk parsing is done by github.com/go-audio/wav. The decoder only checks
// the RIFF/WAVE magic itself, then hands the data chunk through untouched:
// 16-bit PCM WAV is already interleaved little-endian int16, which is what
// audio.Source expects.
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// A file whose data chunk is shorter than its header claims reads to
// io.ErrUnexpectedEOF rather than io.EOF.
//
// WriteWAV16 writes a canonical 44 byte header followed by the samples. It is
// used to build fixtures.
package wav
