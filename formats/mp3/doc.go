// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved little-endian 16-bit stereo, so mono
// files report two identical channels. Its output is handed to callers
// unchanged.
//
// Duration needs the total decoded length, which go-mp3 can only compute
// from a seekable input. Decode therefore buffers non-seekable readers in
// memory before decoding.
package mp3
