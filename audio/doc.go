// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the building blocks used by the dataset loader:
//   - Source interface for streaming audio input
//   - Resampler for bandlimited sample rate conversion
//   - MonoMixer for downmixing to a single channel
//   - BufferSource for serving in-memory sample buffers
//   - Registry for decoder registration by format key
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines:
//
//	res, _ := audio.NewResampler(source, 16000)
//	mono := audio.NewMonoMixer(res)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Sample Format
//
// Audio samples are represented as interleaved float32 in [-1.0, 1.0]:
//   - 0.0 represents silence
//   - ±1.0 represents maximum amplitude
//
// This normalized format avoids bit-depth concerns during intermediate
// processing.
//
// # Resampling
//
// The Resampler uses github.com/tphakala/go-audio-resampling, a pure Go
// bandlimited resampler, and preserves the channel count of its source.
// When the source already runs at the target rate the Resampler is a
// pass-through.
//
// # Error Handling
//
// Processing functions return io.EOF when no more data is available.
// A non-zero sample count may accompany io.EOF on the final read:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // consume buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
