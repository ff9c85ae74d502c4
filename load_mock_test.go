// SPDX-License-Identifier: EPL-2.0

package audset

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ik5/audset/audio"
	"github.com/ik5/audset/internal/audiotest"
)

// mockDecoder ignores the reader and serves a canned source, so pipeline
// behavior can be tested without real container formats.
type mockDecoder struct {
	src *audiotest.MockSource
}

func (d mockDecoder) Decode(r io.Reader) (audio.Source, error) {
	d.src.Reset()
	return d.src, nil
}

// mockLoaderFor registers dec under the "snd" key and returns a loader plus
// a matching dummy file path.
func mockLoaderFor(t *testing.T, dec mockDecoder) (*Loader, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clip.snd")
	if err := os.WriteFile(path, []byte{0}, 0o644); err != nil {
		t.Fatalf("creating dummy file: %v", err)
	}

	reg := audio.NewRegistry()
	reg.Register("snd", dec)

	l := fastLoader()
	l.Registry = reg

	return l, path
}

func TestLoad_FullPipeline(t *testing.T) {
	t.Parallel()

	// 1 second of stereo at 44.1kHz: left 0.4, right 0.6.
	dec := mockDecoder{
		src: audiotest.NewMockSource(44100, 2, 44100, func(frame, channel int) float32 {
			if channel == 0 {
				return 0.4
			}
			return 0.6
		}),
	}

	l, path := mockLoaderFor(t, dec)

	wf, err := l.Load(path, LoadOptions{
		Mono:          true,
		SampleRate:    22050,
		EnforceLength: time.Second,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if wf.Rate != 22050 {
		t.Errorf("Rate = %d, want 22050", wf.Rate)
	}
	if wf.Channels != 1 {
		t.Errorf("Channels = %d, want 1", wf.Channels)
	}
	// Length enforcement pins the frame count regardless of resampler tail
	// behavior.
	if wf.Frames() != 22050 {
		t.Errorf("Frames() = %d, want exactly 22050", wf.Frames())
	}
}

func TestLoad_NativeRateKeptWithoutTarget(t *testing.T) {
	t.Parallel()

	dec := mockDecoder{src: audiotest.NewConstantSource(12345, 1, 100, 0.5)}

	l, path := mockLoaderFor(t, dec)

	wf, err := l.Load(path, LoadOptions{Mono: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if wf.Rate != 12345 {
		t.Errorf("Rate = %d, want native 12345", wf.Rate)
	}
	if wf.Frames() != 100 {
		t.Errorf("Frames() = %d, want 100", wf.Frames())
	}
}
