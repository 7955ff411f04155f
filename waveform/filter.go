// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"encoding/binary"
	"math"
)

// Filter is a normalized box-car: n equal coefficients of 1/n.
type Filter []float64

func NewFilter(n int) Filter {
	f := make(Filter, n)
	c := 1 / float64(n)
	for i := range f {
		f[i] = c
	}
	return f
}

// Decimate reduces src to len(src)/len(f) values, each the filtered sum of one
// window, and appends them to dst. Trailing samples that do not fill a window
// are ignored. Sums are accumulated in index order so results are
// reproducible.
func Decimate(dst, src []float32, f Filter) []float32 {
	n := len(f)
	if n == 0 {
		return dst
	}

	for w := 0; w+n <= len(src); w += n {
		var sum float64
		for j, c := range f {
			sum += float64(src[w+j]) * c
		}
		dst = append(dst, float32(sum))
	}

	return dst
}

// Rectify decodes little-endian 16-bit PCM from raw into dst as absolute
// magnitudes. dst must hold len(raw)/2 values.
func Rectify(dst []float32, raw []byte) []float32 {
	n := len(raw) / sampleWidth
	dst = dst[:n]
	for i := range n {
		v := int16(binary.LittleEndian.Uint16(raw[sampleWidth*i:]))
		dst[i] = float32(math.Abs(float64(v)))
	}
	return dst
}
