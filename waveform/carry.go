// SPDX-License-Identifier: EPL-2.0

package waveform

import "bytes"

// sampleWidth is the size in bytes of one 16-bit PCM sample.
const sampleWidth = 2

// carryBuffer accumulates PCM bytes across reads and hands them out in whole
// samples from the head. Whatever does not fill a window stays for the next
// chunk.
type carryBuffer struct {
	buf bytes.Buffer
}

func (c *carryBuffer) Append(chunk []byte) {
	c.buf.Write(chunk)
}

// Len is the number of buffered bytes, including a dangling half sample.
func (c *carryBuffer) Len() int { return c.buf.Len() }

// Samples is the number of whole samples buffered.
func (c *carryBuffer) Samples() int { return c.buf.Len() / sampleWidth }

// Take removes n samples from the head. The returned slice is only valid
// until the next Append.
func (c *carryBuffer) Take(n int) []byte {
	return c.buf.Next(n * sampleWidth)
}
