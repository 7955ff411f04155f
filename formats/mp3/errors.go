// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File indicates that no MPEG audio frame could be decoded
var ErrNotMP3File = errors.New("not an MP3 file")
