// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// PCMQueue holds little-endian int16 bytes that a decoder produced but its
// reader has not handed out yet. Decoders whose native unit is a sample or a
// frame use it to serve byte-oriented Read calls of any size.
type PCMQueue struct {
	buf []byte
	off int
}

// Len returns the number of queued bytes.
func (q *PCMQueue) Len() int { return len(q.buf) - q.off }

// Push appends s as two little-endian bytes. Push on a drained queue reuses
// its storage.
func (q *PCMQueue) Push(s int16) {
	if q.off == len(q.buf) {
		q.buf = q.buf[:0]
		q.off = 0
	}
	q.buf = binary.LittleEndian.AppendUint16(q.buf, uint16(s))
}

// Read moves up to len(p) queued bytes into p.
func (q *PCMQueue) Read(p []byte) int {
	n := copy(p, q.buf[q.off:])
	q.off += n
	return n
}
