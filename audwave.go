// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"context"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/formats/aiff"
	"github.com/ik5/audwave/formats/flac"
	"github.com/ik5/audwave/formats/mp3"
	"github.com/ik5/audwave/formats/vorbis"
	"github.com/ik5/audwave/formats/wav"
	"github.com/ik5/audwave/waveform"
)

// DefaultRegistry returns a registry holding every bundled decoder, keyed by
// file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}

// RenderFile renders the envelope of the audio file at path with the decoders
// of DefaultRegistry.
func RenderFile(ctx context.Context, path string, cfg waveform.Config) (waveform.Envelope, error) {
	return RenderFileWith(ctx, DefaultRegistry(), path, cfg)
}

// RenderFileWith is RenderFile with a caller supplied registry.
func RenderFileWith(ctx context.Context, registry *audio.Registry, path string, cfg waveform.Config) (waveform.Envelope, error) {
	asset, err := registry.Asset(path)
	if err != nil {
		return waveform.Envelope{}, err
	}

	tc, err := audio.LoadContext(ctx, asset)
	if err != nil {
		return waveform.Envelope{}, err
	}

	return waveform.Render(ctx, tc, cfg)
}
