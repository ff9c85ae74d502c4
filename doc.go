// SPDX-License-Identifier: EPL-2.0

// Package audset loads audio datasets for machine-learning pipelines.
//
// Given an ordered list of audio file paths (and optional parallel labels),
// a Dataset lazily decodes, resamples, downmixes and pads or trims each
// waveform to a fixed length on every query. When a requested file fails to
// load — large corpora routinely contain a few corrupt files — the dataset
// transparently substitutes another randomly chosen sample instead of
// failing the whole training run.
//
// # Quick Start
//
//	ds, err := audset.New(paths, labels, audset.Config{
//	    Mono:          true,
//	    SampleRate:    16000,
//	    EnforceLength: 5 * time.Second,
//	})
//	if err != nil {
//	    // labels/paths length mismatch
//	}
//
//	sample, err := ds.Get(0)
//	if err != nil {
//	    // errors.Is(err, audset.ErrExhausted): nothing in the corpus loads
//	}
//	// sample.Source is the path actually loaded (it may differ from
//	// paths[0] if substitution kicked in), sample.Waveform the normalized
//	// buffer, sample.Label the matching label.
//
// # Loading Pipeline
//
// Each query runs the same normalization pipeline:
//
//  1. Decode with bounded retry (default 3 attempts, 0.5s apart)
//  2. Resample to the target rate, when one is set
//  3. Downmix to mono by averaging channels, when requested
//  4. Trim or zero-pad to the enforced length, when one is set
//
// Use a Loader directly for one-off loads outside a dataset:
//
//	loader := audset.NewLoader()
//	wf, err := loader.Load("clip.wav", audset.LoadOptions{Mono: true})
//
// # Supported Formats
//
// The default registry decodes WAV, MP3, Ogg Vorbis and AIFF, dispatching
// on the file extension. Register additional decoders on a custom
// audio.Registry and pass it via a custom Loader.
//
// # Failure Model
//
// Per-candidate load failures are routine (corrupt files are expected) and
// are swallowed by the substitution scan. Only two errors surface from Get:
// ErrIndexOutOfRange for a bad index, and ErrExhausted when every source in
// the dataset fails to load. Inject a slog.Logger via Config to keep the
// per-candidate diagnostics.
//
// # Determinism
//
// Substitution scans a uniformly random permutation of all indices. Inject
// a seeded *rand.Rand via Config.Rand to make it reproducible, and a
// RetryPolicy with a fake Sleep to make tests run without real delays.
package audset
