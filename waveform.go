// SPDX-License-Identifier: EPL-2.0

package audset

import (
	"math"
	"time"
)

// Waveform is a decoded audio buffer together with its sample rate.
// Data holds interleaved samples in [-1, 1]; Channels is at least 1.
type Waveform struct {
	Data     []float32
	Channels int
	Rate     int
}

// Frames returns the number of frames (samples per channel).
func (w *Waveform) Frames() int {
	if w.Channels <= 0 {
		return 0
	}
	return len(w.Data) / w.Channels
}

// Duration returns the playing time of the waveform.
func (w *Waveform) Duration() time.Duration {
	if w.Rate <= 0 {
		return 0
	}
	return time.Duration(float64(w.Frames()) / float64(w.Rate) * float64(time.Second))
}

// EnforceLength trims or zero-pads the waveform in place so it lasts exactly
// d. The target frame count is round(Rate * seconds). Trimming keeps the
// first frames (hard cut, no fade); padding appends silence on the right.
func (w *Waveform) EnforceLength(d time.Duration) error {
	if w == nil || len(w.Data) == 0 {
		return ErrEmptyWaveform
	}
	if d <= 0 {
		return ErrInvalidLength
	}
	if w.Rate <= 0 {
		return ErrInvalidRate
	}

	channels := w.Channels
	if channels < 1 {
		channels = 1
	}

	target := int(math.Round(float64(w.Rate) * d.Seconds()))
	frames := len(w.Data) / channels

	switch {
	case frames == target:
		return nil
	case frames > target:
		w.Data = w.Data[:target*channels]
	default:
		padded := make([]float32, target*channels)
		copy(padded, w.Data)
		w.Data = padded
	}

	return nil
}
