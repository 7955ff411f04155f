// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float values in [-1, 1]. The source converts them to
// interleaved little-endian int16 as it reads, buffering whatever does not
// fit the caller's slice, so Read accepts slices of any length.
//
// The stream length comes from the granule position of the last Ogg page.
// oggvorbis can only find it on seekable input, so Decode buffers other
// readers in memory first. A stream whose length cannot be determined
// reports audio.ErrDurationUnknown from Duration.
package vorbis
