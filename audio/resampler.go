// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	resampling "github.com/tphakala/go-audio-resampling"
)

// Resampler streams from src converted to a target sample rate using a
// bandlimited resampler (pure Go, no CGO). Works on interleaved samples and
// preserves channel count. When the source already runs at the target rate,
// samples pass through untouched.
type Resampler struct {
	src      Source
	dstRate  int
	channels int

	// conv is nil when no rate conversion is needed.
	conv resampling.Resampler

	srcBuf  []float32
	in      []float64
	pending []float32
	eof     bool
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 {
		return nil, ErrInvalidRate
	}

	channels := src.Channels()

	var conv resampling.Resampler
	if src.SampleRate() != dstRate {
		config := &resampling.Config{
			InputRate:  float64(src.SampleRate()),
			OutputRate: float64(dstRate),
			Channels:   channels,
			Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
		}

		var err error
		conv, err = resampling.New(config)
		if err != nil {
			return nil, fmt.Errorf("creating resampler: %w", err)
		}
	}

	return &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		conv:     conv,
		srcBuf:   make([]float32, 4096),
	}, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	r.conv = nil

	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// fill reads from the source and pushes converted samples into pending.
func (r *Resampler) fill() error {
	n, err := r.src.ReadSamples(r.srcBuf)
	if n > 0 {
		// Whole frames only; a short final frame would desync channels.
		n -= n % r.channels

		r.in = r.in[:0]
		for _, s := range r.srcBuf[:n] {
			r.in = append(r.in, float64(s))
		}

		out, perr := r.conv.Process(r.in)
		if perr != nil {
			return fmt.Errorf("resample: %w", perr)
		}

		// Keep output frame-aligned as well.
		usable := len(out) - len(out)%r.channels
		for _, s := range out[:usable] {
			r.pending = append(r.pending, float32(s))
		}
	}

	if err == io.EOF {
		r.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces interleaved samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if r.conv == nil {
		return r.src.ReadSamples(dst)
	}

	for len(r.pending) == 0 && !r.eof {
		if err := r.fill(); err != nil {
			return 0, err
		}
	}

	n := copy(dst, r.pending)
	n -= n % r.channels
	r.pending = r.pending[n:]
	if len(r.pending) == 0 {
		r.pending = nil
	}

	if r.eof && len(r.pending) == 0 {
		return n, io.EOF
	}

	return n, nil
}
