// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and PCM 16-bit encoding.
//
// Decoding is built on github.com/go-audio/wav and supports PCM WAV files
// with 8, 16, 24 or 32 bits per sample, any channel count and any sample
// rate. The decoder returns an audio.Source producing normalized float32
// samples in [-1.0, 1.0].
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// Non-seekable readers are buffered into memory before decoding, since the
// underlying library requires an io.ReadSeeker.
//
// # Writing WAV Files
//
// WriteWAV16 writes mono int16 samples; WritePCM16 writes interleaved
// float32 samples with any channel count, clamping to [-1, 1]:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrUnsupportedBitDepth: bit depth other than 8/16/24/32
//   - ErrUnsupportedWavLayout: malformed or unsupported chunk structure
package wav
