// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource serves an in-memory slice of interleaved samples as a Source.
// It does not copy the slice; callers must not mutate it while reading.
type BufferSource struct {
	data       []float32
	sampleRate int
	channels   int
	off        int
}

func NewBufferSource(data []float32, sampleRate, channels int) (*BufferSource, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidRate
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	return &BufferSource{
		data:       data,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) Close() error    { return nil }

// Rewind resets the read position to the start of the buffer.
func (b *BufferSource) Rewind() { b.off = 0 }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%b.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if b.off >= len(b.data) {
		return 0, io.EOF
	}

	n := copy(dst, b.data[b.off:])
	// Keep whole frames only; a short final frame would desync channels.
	n -= n % b.channels
	b.off += n

	if b.off >= len(b.data) {
		return n, io.EOF
	}

	return n, nil
}
