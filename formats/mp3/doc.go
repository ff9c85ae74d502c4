// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// Decoding is built on github.com/hajimehoshi/go-mp3, which outputs 16-bit
// little-endian PCM at the stream's native sample rate, always as stereo.
// The decoder returns an audio.Source producing normalized float32 samples
// in [-1.0, 1.0].
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//
// Invalid or truncated MP3 input fails at Decode time with the underlying
// library error.
package mp3
