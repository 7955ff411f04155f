// SPDX-License-Identifier: EPL-2.0

package waveform

// Envelope is the result of a render: one amplitude value per bar, plus what a
// renderer needs to normalize them.
type Envelope struct {
	Values []float32 `json:"values"`
	// Scale is FullScale for linear envelopes and |NoiseFloorDB| for decibel
	// ones.
	Scale           float64     `json:"scale"`
	Decibel         bool        `json:"decibel"`
	NoiseFloorDB    float64     `json:"noise_floor_db"`
	SamplesPerPixel int         `json:"samples_per_pixel"`
	Range           SampleRange `json:"range"`
}

// Normalized maps Values into [0, 1], 0 being silence.
func (e Envelope) Normalized() []float32 {
	out := make([]float32, len(e.Values))
	if e.Scale == 0 {
		return out
	}

	for i, v := range e.Values {
		n := float64(v) / e.Scale
		if e.Decibel {
			// Decibel values are |dB|: 0 is full scale, Scale is the floor.
			n = (float64(v) + e.NoiseFloorDB) / e.NoiseFloorDB
		}
		out[i] = float32(min(max(n, 0), 1))
	}

	return out
}
