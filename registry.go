// SPDX-License-Identifier: EPL-2.0

package audset

import (
	"github.com/ik5/audset/audio"
	"github.com/ik5/audset/formats/aiff"
	"github.com/ik5/audset/formats/mp3"
	"github.com/ik5/audset/formats/vorbis"
	"github.com/ik5/audset/formats/wav"
)

// DefaultRegistry returns a registry with every built-in decoder registered,
// keyed by the lowercase file extensions the Loader derives from source
// paths.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}
