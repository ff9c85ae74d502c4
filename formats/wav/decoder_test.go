// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

func TestDecoder_RoundTripMono(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, 200, -100, -200, 0}
	wavData := new(bytes.Buffer)
	if err := WriteWAV16(wavData, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(wavData.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	buf := make([]float32, len(samples))
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i, s := range samples {
		want := float64(s) / 32768.0
		if math.Abs(float64(buf[i])-want) > 0.0001 {
			t.Errorf("buf[%d] = %v, want ≈%v", i, buf[i], want)
		}
	}
}

func TestDecoder_RoundTripStereo(t *testing.T) {
	t.Parallel()

	// Interleaved stereo: left 0.5, right -0.5.
	samples := make([]float32, 100)
	for i := 0; i < len(samples); i += 2 {
		samples[i] = 0.5
		samples[i+1] = -0.5
	}

	wavData := new(bytes.Buffer)
	if err := WritePCM16(wavData, 16000, 2, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(wavData.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}

	buf := make([]float32, len(samples))
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i := 0; i < n; i += 2 {
		if math.Abs(float64(buf[i])-0.5) > 0.001 {
			t.Errorf("left[%d] = %v, want ≈0.5", i/2, buf[i])
			break
		}
		if math.Abs(float64(buf[i+1])+0.5) > 0.001 {
			t.Errorf("right[%d] = %v, want ≈-0.5", i/2, buf[i+1])
			break
		}
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("not an audio file")))

	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(nil))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300}
	wavData := new(bytes.Buffer)
	if err := WriteWAV16(wavData, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	// bytes.Buffer is an io.Reader but not an io.ReadSeeker; the decoder
	// must buffer it internally.
	decoder := Decoder{}
	src, err := decoder.Decode(wavData)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	buf := make([]float32, 10)
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 3 {
		t.Errorf("ReadSamples() n = %d, want 3", n)
	}
}
