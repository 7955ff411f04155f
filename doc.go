// SPDX-License-Identifier: EPL-2.0

// Package audwave turns audio files into compact waveform envelopes: a few
// dozen amplitude values, one per bar of a waveform drawing.
//
// # Quick Start
//
// RenderFile picks a decoder by file extension, loads the track metadata and
// renders the envelope in one call:
//
//	env, err := audwave.RenderFile(ctx, "song.flac", waveform.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	for _, v := range env.Normalized() {
//	    // v is in [0, 1]
//	}
//
// # Building Blocks
//
// The work is split across subpackages that can be used on their own:
//
//   - audio: the Source and Decoder interfaces, the decoder Registry, file
//     and memory assets, TrackContext and its asynchronous LoadContext
//   - waveform: Config, the streaming Render pipeline and Envelope
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis, formats/flac:
//     decoders producing interleaved little-endian 16-bit PCM
//
// A custom pipeline looks like this:
//
//	asset := audio.MemoryAsset{Data: data, Decoder: wav.Decoder{}}
//	tc, err := audio.LoadContext(ctx, asset)
//	if err != nil {
//	    return err
//	}
//	env, err := waveform.Render(ctx, tc, cfg)
//
// # Errors
//
// Failures are reported through sentinel errors in the audio and waveform
// packages and are meant to be checked with errors.Is. Metadata failures
// additionally carry a status in *audio.MetadataError.
package audwave
