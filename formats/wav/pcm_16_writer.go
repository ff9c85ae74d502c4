// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audset/utils"
)

// WriteWAV16 writes mono 16-bit PCM WAV data at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	return writePCM16(w, sampleRate, 1, samples)
}

// WritePCM16 writes interleaved float32 samples in [-1, 1] as a 16-bit PCM
// WAV file with the given channel count. Samples outside [-1, 1] are clamped.
func WritePCM16(w io.Writer, sampleRate, channels int, samples []float32) error {
	if channels <= 0 {
		return ErrUnsupportedWavLayout
	}

	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = utils.Float32ToInt16(s)
	}

	return writePCM16(w, sampleRate, channels, pcm)
}

func writePCM16(w io.Writer, sampleRate, channels int, samples []int16) error {
	const bitsPerSample = 16

	numChannels := uint16(channels)
	byteRate := uint32(sampleRate) * uint32(numChannels) * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8
	dataSize := uint32(len(samples) * 2)

	header := make([]byte, 44)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Write sample data in chunks to bound the conversion buffer.
	const chunkFrames = 8192
	buf := make([]byte, min(len(samples), chunkFrames)*2)

	for i := 0; i < len(samples); i += chunkFrames {
		end := min(i+chunkFrames, len(samples))
		chunk := samples[i:end]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf[:len(chunk)*2]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
