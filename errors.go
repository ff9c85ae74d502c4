// SPDX-License-Identifier: EPL-2.0

package audset

import "errors"

var (
	// ErrDimensionMismatch is returned at construction when labels are
	// provided with a length different from sources.
	ErrDimensionMismatch = errors.New("sources and labels must have the same length")

	// ErrDecode is returned when a source cannot be decoded after the
	// configured retry budget.
	ErrDecode = errors.New("unable to decode source")

	// ErrNoData is returned when a source decodes successfully but contains
	// no audio samples.
	ErrNoData = errors.New("source contains no audio data")

	// ErrUnknownFormat is returned when no decoder is registered for a
	// source's format key.
	ErrUnknownFormat = errors.New("no decoder registered for format")

	// ErrEmptyWaveform is returned by length enforcement on an empty buffer.
	ErrEmptyWaveform = errors.New("waveform is empty")

	// ErrInvalidLength is returned by length enforcement for a non-positive
	// target duration.
	ErrInvalidLength = errors.New("enforced length must be positive")

	// ErrInvalidRate is returned by length enforcement for a non-positive
	// sample rate.
	ErrInvalidRate = errors.New("sample rate must be positive")

	// ErrExhausted is returned by Dataset.Get when no source in the dataset
	// could be loaded.
	ErrExhausted = errors.New("no loadable sample found in the dataset")

	// ErrIndexOutOfRange is returned by Dataset.Get for an index outside
	// [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
)
