// SPDX-License-Identifier: EPL-2.0

package soundwalk

import (
	"math/rand/v2"

	"github.com/ik5/soundwalk/audio"
	"github.com/ik5/soundwalk/formats/aiff"
	"github.com/ik5/soundwalk/formats/mp3"
	"github.com/ik5/soundwalk/formats/vorbis"
	"github.com/ik5/soundwalk/formats/wav"
	"github.com/ik5/soundwalk/stream"
)

// Format fixes the session-wide sample layout. Every clip is adapted to it
// before entering the mix.
type Format struct {
	Channels   int
	SampleRate int
}

// DefaultFormat is the session format used when no clip could be probed.
var DefaultFormat = Format{Channels: 2, SampleRate: 44100}

// Config carries the collaborators of a soundscape build. The zero value
// is usable; every field has a default.
type Config struct {
	// Rand drives the clip walks. nil seeds a fresh generator from
	// system entropy.
	Rand *rand.Rand

	// Registry resolves clip format keys to decoders. nil means
	// DefaultRegistry.
	Registry *audio.Registry

	// Warn receives non-fatal per-file problems, such as a clip that
	// could not be probed for the session format. nil discards them.
	Warn func(error)
}

func (c Config) withDefaults() Config {
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if c.Registry == nil {
		c.Registry = DefaultRegistry()
	}
	if c.Warn == nil {
		c.Warn = func(error) {}
	}
	return c
}

// DefaultRegistry returns a registry with every bundled decoder registered
// under the format keys the classify package produces.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("ogg vorbis", vorbis.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}

// Build scans each directory into a player and mixes them all. It is the
// one-call form of NewMixerBuilder plus AddDir per directory.
func Build(dirs []string, cfg Config) (*stream.Mixer, Format, error) {
	b := NewMixerBuilder(cfg)
	for _, dir := range dirs {
		if err := b.AddDir(dir); err != nil {
			return nil, Format{}, err
		}
	}
	return b.Build()
}
