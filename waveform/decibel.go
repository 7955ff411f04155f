// SPDX-License-Identifier: EPL-2.0

package waveform

import "math"

// ToDecibels converts rectified magnitudes in place to decibels relative to
// fullScale, clips them to [floor, 0] and drops the sign.
//
// The result is inverted with respect to the usual convention: a magnitude of
// 0 becomes |floor| and a full scale magnitude becomes 0. Renderers undo this
// with (v + floor) / floor, see Envelope.Normalized.
func ToDecibels(samples []float32, fullScale, floor float64) {
	for i, m := range samples {
		db := 20 * math.Log10(float64(m)/fullScale)
		db = min(max(db, floor), 0)
		samples[i] = float32(math.Abs(db))
	}
}
