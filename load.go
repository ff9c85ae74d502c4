// SPDX-License-Identifier: EPL-2.0

package audset

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/audset/audio"
)

// LoadOptions control waveform normalization after decoding.
type LoadOptions struct {
	// Mono downmixes multi-channel audio to a single channel by averaging.
	Mono bool
	// SampleRate resamples the waveform to this rate when it differs from
	// the native one. Zero keeps the native rate.
	SampleRate int
	// EnforceLength trims or zero-pads the waveform to this duration.
	// Zero disables enforcement; negative values fail with ErrInvalidLength.
	EnforceLength time.Duration
}

// RetryPolicy bounds the decode retry loop. Decoding over network
// filesystems occasionally hiccups; a fixed pause between attempts rides
// out transient failures.
type RetryPolicy struct {
	// Attempts is the total number of decode attempts. Values below 1 are
	// treated as 1.
	Attempts int
	// Delay is the fixed pause between failed attempts.
	Delay time.Duration
	// Sleep is called to wait out Delay; nil means time.Sleep. Tests inject
	// a fake to avoid real delays.
	Sleep func(time.Duration)
}

// DefaultRetryPolicy is 3 attempts with a 0.5s pause between them.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
	}
}

// Loader decodes audio sources into normalized waveforms.
// The zero value is not usable; construct with NewLoader.
type Loader struct {
	// Registry resolves format keys (file extensions) to decoders.
	Registry *audio.Registry
	// Retry bounds the decode attempt loop.
	Retry RetryPolicy
	// Logger, when set, records per-attempt decode failures. Advisory only.
	Logger *slog.Logger
}

// NewLoader returns a Loader with all built-in decoders and the default
// retry policy.
func NewLoader() *Loader {
	return &Loader{
		Registry: DefaultRegistry(),
		Retry:    DefaultRetryPolicy(),
	}
}

// Load decodes the audio file at path and normalizes it per opts:
// resample, then downmix to mono, then enforce length. Decode failures are
// retried per the Loader's RetryPolicy before giving up with ErrDecode.
func (l *Loader) Load(path string, opts LoadOptions) (*Waveform, error) {
	format := formatKey(path)
	dec, ok := l.Registry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", path, ErrUnknownFormat, format)
	}

	attempts := l.Retry.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := l.Retry.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var (
		wf  *Waveform
		err error
	)
	for attempt := range attempts {
		if attempt > 0 {
			sleep(l.Retry.Delay)
		}

		wf, err = decodeFile(path, dec)
		if err == nil {
			break
		}

		if l.Logger != nil {
			l.Logger.Warn("decode attempt failed",
				"source", path, "attempt", attempt+1, "error", err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrDecode, err)
	}

	if opts.SampleRate > 0 && opts.SampleRate != wf.Rate {
		wf, err = resampleWaveform(wf, opts.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if opts.Mono && wf.Channels > 1 {
		wf, err = downmixWaveform(wf)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if opts.EnforceLength != 0 {
		if err := wf.EnforceLength(opts.EnforceLength); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return wf, nil
}

// formatKey derives the registry key from a source path: the lowercase file
// extension without the dot.
func formatKey(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// decodeFile runs a single decode attempt: open, decode, drain.
func decodeFile(path string, dec audio.Decoder) (*Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer src.Close()

	data, err := drain(src)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNoData
	}

	return &Waveform{
		Data:     data,
		Channels: src.Channels(),
		Rate:     src.SampleRate(),
	}, nil
}

// drain reads src to EOF and collects all samples.
func drain(src audio.Source) ([]float32, error) {
	var data []float32
	buf := make([]float32, 1024*src.Channels())

	for {
		n, err := src.ReadSamples(buf)
		data = append(data, buf[:n]...)

		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}

func resampleWaveform(w *Waveform, rate int) (*Waveform, error) {
	src, err := audio.NewBufferSource(w.Data, w.Rate, w.Channels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	res, err := audio.NewResampler(src, rate)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	data, err := drain(res)
	if err != nil {
		return nil, err
	}

	return &Waveform{Data: data, Channels: w.Channels, Rate: rate}, nil
}

func downmixWaveform(w *Waveform) (*Waveform, error) {
	src, err := audio.NewBufferSource(w.Data, w.Rate, w.Channels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	data, err := drain(audio.NewMonoMixer(src))
	if err != nil {
		return nil, err
	}

	return &Waveform{Data: data, Channels: 1, Rate: w.Rate}, nil
}
