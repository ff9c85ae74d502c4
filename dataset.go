// SPDX-License-Identifier: EPL-2.0

package audset

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"
)

// Config controls dataset construction.
type Config struct {
	// OnlyWaveform leaves Sample.Source empty, for callers that batch
	// waveforms and do not care where they came from.
	OnlyWaveform bool
	// Mono downmixes every loaded waveform to a single channel.
	Mono bool
	// SampleRate resamples every loaded waveform to this rate.
	// Zero keeps native rates.
	SampleRate int
	// EnforceLength trims or zero-pads every loaded waveform to this
	// duration. Zero disables enforcement.
	EnforceLength time.Duration
	// Loader overrides the default loader (custom registry, retry policy).
	Loader *Loader
	// Rand drives the substitution permutation. Nil uses the shared
	// math/rand/v2 generator; inject a seeded one for determinism.
	Rand *rand.Rand
	// Logger, when set, records load failures and substitutions.
	Logger *slog.Logger
}

// DefaultConfig mirrors the common case: mono waveforms at native rates.
func DefaultConfig() Config {
	return Config{Mono: true}
}

// Sample is the record returned per dataset query.
// Source is empty when the dataset was built with OnlyWaveform; Label is the
// zero value when the dataset is unlabeled.
type Sample[L any] struct {
	Source   string
	Waveform *Waveform
	Label    L
}

// Dataset serves fixed-length waveforms from an ordered list of audio
// sources, substituting a random loadable sample when a requested one fails
// to load. Sources and labels are copied at construction and never mutated,
// and no waveform is cached, so concurrent Get calls are safe as long as a
// per-goroutine Rand is injected (or none at all).
type Dataset[L any] struct {
	sources []string
	labels  []L

	loader       *Loader
	opts         LoadOptions
	onlyWaveform bool
	rng          *rand.Rand
	logger       *slog.Logger
}

// New builds a dataset over sources with parallel labels. labels may be nil
// for an unlabeled dataset; otherwise its length must match sources or
// construction fails with ErrDimensionMismatch.
func New[L any](sources []string, labels []L, cfg Config) (*Dataset[L], error) {
	if labels != nil && len(labels) != len(sources) {
		return nil, fmt.Errorf("%w: len(sources)=%d, len(labels)=%d",
			ErrDimensionMismatch, len(sources), len(labels))
	}

	loader := cfg.Loader
	if loader == nil {
		loader = NewLoader()
		loader.Logger = cfg.Logger
	}

	return &Dataset[L]{
		sources: slices.Clone(sources),
		labels:  slices.Clone(labels),
		loader:  loader,
		opts: LoadOptions{
			Mono:          cfg.Mono,
			SampleRate:    cfg.SampleRate,
			EnforceLength: cfg.EnforceLength,
		},
		onlyWaveform: cfg.OnlyWaveform,
		rng:          cfg.Rand,
		logger:       cfg.Logger,
	}, nil
}

// NewUnlabeled builds a dataset without labels.
func NewUnlabeled(sources []string, cfg Config) (*Dataset[struct{}], error) {
	return New[struct{}](sources, nil, cfg)
}

// Len returns the number of sources in the dataset.
func (d *Dataset[L]) Len() int { return len(d.sources) }

// Get loads the sample at idx. When that source fails to load, Get scans a
// random permutation of all indices and returns the first sample that loads;
// the returned Source and Label then reflect the substituted index, not the
// requested one. When nothing in the dataset loads, Get fails with
// ErrExhausted.
func (d *Dataset[L]) Get(idx int) (Sample[L], error) {
	var zero Sample[L]

	if idx < 0 || idx >= len(d.sources) {
		return zero, fmt.Errorf("%d: %w", idx, ErrIndexOutOfRange)
	}

	wf, err := d.loader.Load(d.sources[idx], d.opts)
	if err != nil {
		d.logWarn("failed to load sample", "source", d.sources[idx], "error", err)

		wf, idx, err = d.substitute()
		if err != nil {
			return zero, err
		}
	}

	sample := Sample[L]{Waveform: wf}
	if !d.onlyWaveform {
		sample.Source = d.sources[idx]
	}
	if d.labels != nil {
		sample.Label = d.labels[idx]
	}

	return sample, nil
}

// substitute scans a uniformly random permutation of all indices and returns
// the first waveform that loads, along with its index. A single permutation
// bounds the scan at Len() extra load attempts while still allowing any
// index, including the one that just failed, to be retried.
func (d *Dataset[L]) substitute() (*Waveform, int, error) {
	for _, i := range d.perm() {
		wf, err := d.loader.Load(d.sources[i], d.opts)
		if err != nil {
			d.logWarn("failed to load substitute", "source", d.sources[i], "error", err)
			continue
		}

		if d.logger != nil {
			d.logger.Info("substituted sample", "source", d.sources[i])
		}
		return wf, i, nil
	}

	return nil, 0, fmt.Errorf("%w", ErrExhausted)
}

func (d *Dataset[L]) perm() []int {
	if d.rng != nil {
		return d.rng.Perm(len(d.sources))
	}
	return rand.Perm(len(d.sources))
}

func (d *Dataset[L]) logWarn(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Warn(msg, args...)
	}
}
