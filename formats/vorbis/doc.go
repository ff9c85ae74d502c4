// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// Decoding is built on github.com/jfreymuth/oggvorbis, which already
// produces interleaved float32 samples, so the adapter is a thin wrapper
// around the reader. The decoder returns an audio.Source producing
// normalized samples in [-1.0, 1.0].
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//
// Invalid Ogg input fails at Decode time with the underlying library error.
package vorbis
