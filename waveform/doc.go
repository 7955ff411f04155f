// SPDX-License-Identifier: EPL-2.0

// Package waveform reduces a decoded audio track to a low-resolution
// amplitude envelope suitable for drawing waveform bars.
//
// # Pipeline
//
// Render pulls 16-bit PCM chunks from an audio.Source and, for every chunk:
//
//  1. appends it to a carry buffer
//  2. takes as many whole windows of SamplesPerPixel samples as are buffered
//  3. converts them to absolute magnitudes
//  4. optionally converts magnitudes to decibels (ToDecibels)
//  5. averages each window with a box-car Filter (Decimate)
//
// Samples that do not fill a window stay in the carry buffer. When the source
// is exhausted, the remainder is averaged into one last value, so the tail of
// the range is never dropped.
//
// Interleaved channels are treated as one flat stream; the box-car average
// mixes them.
//
// # Range
//
// By default only the first third of the track is processed (LeadingThird).
// This matches the historical output of the tool and is kept as an explicit
// Config.Range so callers can opt into FullTrack.
//
// # Scales
//
// Linear envelopes hold mean magnitudes in [0, FullScale]. Decibel envelopes
// hold |dB| clipped to [0, |NoiseFloorDB|], where 0 is full scale and
// |NoiseFloorDB| is silence. Envelope.Normalized maps either to [0, 1].
//
// # Example
//
//	tc, err := audio.LoadContext(ctx, asset)
//	if err != nil {
//	    return err
//	}
//
//	cfg := waveform.DefaultConfig()
//	cfg.TargetBars = 100
//	env, err := waveform.Render(ctx, tc, cfg)
//
// Render is synchronous and keeps all of its state local, so independent
// renders can run on separate goroutines.
package waveform
