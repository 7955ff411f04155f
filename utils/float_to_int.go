// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 scales a [-1, 1] float sample to int16, clamping outside
// values.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 for both signs avoids overflow at +1.
	return int16(x * 32767.0)
}

// IntToInt16 rescales an integer sample of the given bit depth to 16 bits.
// Deeper samples lose their low bits, shallower ones are shifted up.
func IntToInt16(v int, bitDepth int) int16 {
	switch {
	case bitDepth > 16:
		v >>= bitDepth - 16
	case bitDepth > 0 && bitDepth < 16:
		v <<= 16 - bitDepth
	}

	return int16(max(min(v, 32767), -32768))
}
