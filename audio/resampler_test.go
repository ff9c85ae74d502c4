// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"
)

// drainResampler reads src to EOF and returns all produced samples.
func drainResampler(t *testing.T, r *Resampler) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 1024*r.Channels())

	for {
		n, err := r.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_PassthroughSameRate(t *testing.T) {
	t.Parallel()

	src := newConstantSource(16000, 1, 100, 0.25)

	res, err := NewResampler(src, 16000)
	if err != nil {
		t.Fatalf("NewResampler() error = %v", err)
	}

	if res.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", res.SampleRate())
	}

	out := drainResampler(t, res)
	if len(out) != 100 {
		t.Fatalf("got %d samples, want 100 (pass-through)", len(out))
	}
	for i, s := range out {
		if s != 0.25 {
			t.Errorf("out[%d] = %v, want 0.25", i, s)
			break
		}
	}
}

func TestResampler_Downsample(t *testing.T) {
	t.Parallel()

	// 1 second of mono 44.1kHz audio down to 8kHz.
	src := newSineSource(44100, 1, 44100, 440.0)

	res, err := NewResampler(src, 8000)
	if err != nil {
		t.Fatalf("NewResampler() error = %v", err)
	}

	out := drainResampler(t, res)

	expected := 8000
	tolerance := expected / 10
	if len(out) < expected-tolerance || len(out) > expected+tolerance {
		t.Errorf("got %d samples, want ≈%d (±%d)", len(out), expected, tolerance)
	}

	for i, s := range out {
		if s < -1.5 || s > 1.5 {
			t.Errorf("out[%d] = %v, outside plausible range", i, s)
			break
		}
	}
}

func TestResampler_Upsample(t *testing.T) {
	t.Parallel()

	// 1 second of mono 8kHz audio up to 16kHz.
	src := newSineSource(8000, 1, 8000, 440.0)

	res, err := NewResampler(src, 16000)
	if err != nil {
		t.Fatalf("NewResampler() error = %v", err)
	}

	out := drainResampler(t, res)

	expected := 16000
	tolerance := expected / 10
	if len(out) < expected-tolerance || len(out) > expected+tolerance {
		t.Errorf("got %d samples, want ≈%d (±%d)", len(out), expected, tolerance)
	}
}

func TestResampler_PreservesChannels(t *testing.T) {
	t.Parallel()

	src := newSineSource(44100, 2, 44100, 440.0)

	res, err := NewResampler(src, 22050)
	if err != nil {
		t.Fatalf("NewResampler() error = %v", err)
	}

	if res.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", res.Channels())
	}

	out := drainResampler(t, res)
	if len(out)%2 != 0 {
		t.Errorf("got %d samples, want a multiple of 2 (whole stereo frames)", len(out))
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 100)

	res, err := NewResampler(src, 22050)
	if err != nil {
		t.Fatalf("NewResampler() error = %v", err)
	}

	buf := make([]float32, 3) // not a multiple of 2 channels
	if _, err := res.ReadSamples(buf); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_InvalidRate(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 1, 100)

	if _, err := NewResampler(src, 0); err != ErrInvalidRate {
		t.Errorf("NewResampler(src, 0) error = %v, want ErrInvalidRate", err)
	}
	if _, err := NewResampler(src, -8000); err != ErrInvalidRate {
		t.Errorf("NewResampler(src, -8000) error = %v, want ErrInvalidRate", err)
	}
}
