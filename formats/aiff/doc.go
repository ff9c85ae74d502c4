// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding.
//
// Decoding is built on github.com/go-audio/aiff and supports 16-bit PCM
// AIFF files with any channel count and sample rate. The decoder returns an
// audio.Source producing normalized float32 samples in [-1.0, 1.0].
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//
// Non-seekable readers are buffered into memory before decoding, since the
// underlying library requires an io.ReadSeeker.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: bit depth other than 16
//   - ErrUnsupportedAiffLayout: malformed or unsupported chunk structure
package aiff
