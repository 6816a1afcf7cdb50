// SPDX-License-Identifier: EPL-2.0

package soundwalk

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/soundwalk/classify"
	"github.com/ik5/soundwalk/graph"
	"github.com/ik5/soundwalk/stream"
)

// PlayerBuilder accumulates the clips of one directory into a digraph.
// Clips sharing a (tail, head) label pair become parallel arrows the walk
// chooses between uniformly.
type PlayerBuilder struct {
	dir    string
	graph  *graph.Builder
	order  []string
	byPath map[string]classify.Clip
}

// NewPlayerBuilder returns an empty builder for the given directory label.
func NewPlayerBuilder(dir string) *PlayerBuilder {
	return &PlayerBuilder{
		dir:    dir,
		graph:  graph.NewBuilder(),
		byPath: make(map[string]classify.Clip),
	}
}

// Add records one classified clip as a digraph arrow.
func (b *PlayerBuilder) Add(clip classify.Clip) {
	b.graph.Arrow(clip.Tail, clip.Head, clip.Path)
	if _, seen := b.byPath[clip.Path]; !seen {
		b.order = append(b.order, clip.Path)
	}
	b.byPath[clip.Path] = clip
}

// NumClips returns how many distinct clip files were added.
func (b *PlayerBuilder) NumClips() int {
	return len(b.order)
}

// Build finalizes the digraph and starts a player walking it. An empty
// builder yields a terminally exhausted player. The returned streams are
// tails peeled off while loading the first clip; they belong in the same
// mix as the player.
func (b *PlayerBuilder) Build(cfg Config, format Format) (*stream.Player, []stream.Stream, error) {
	cfg = cfg.withDefaults()
	upcoming := &walkSource{
		registry: cfg.Registry,
		format:   format,
		walk:     b.graph.Build().RandomWalk(cfg.Rand),
		byPath:   b.byPath,
	}
	return stream.NewPlayer(upcoming)
}

// ScanDir classifies every regular file of dir into a PlayerBuilder.
// Files that are not clips are ignored.
func ScanDir(dir string) (*PlayerBuilder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("directory %s: %w", dir, err)
	}

	b := NewPlayerBuilder(dir)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if clip, ok := classify.File(filepath.Join(dir, entry.Name())); ok {
			b.Add(clip)
		}
	}
	return b, nil
}

// MixerBuilder assembles one player per directory and mixes them into a
// single soundscape.
type MixerBuilder struct {
	cfg      Config
	builders []*PlayerBuilder
}

// NewMixerBuilder returns a builder using cfg for every player it creates.
func NewMixerBuilder(cfg Config) *MixerBuilder {
	return &MixerBuilder{cfg: cfg.withDefaults()}
}

// AddDir scans dir and schedules one player for it. A directory without
// clips still gets a player; it just has nothing to play.
func (m *MixerBuilder) AddDir(dir string) error {
	b, err := ScanDir(dir)
	if err != nil {
		return err
	}
	m.builders = append(m.builders, b)
	return nil
}

// Build probes the session format from the first decodable clip, builds
// every player against it and returns the mixer over all of them.
func (m *MixerBuilder) Build() (*stream.Mixer, Format, error) {
	format := m.probeFormat()

	var members []stream.Stream
	for _, b := range m.builders {
		player, tails, err := b.Build(m.cfg, format)
		if err != nil {
			return nil, Format{}, fmt.Errorf("directory %s: %w", b.dir, err)
		}
		members = append(members, player)
		members = append(members, tails...)
	}
	return stream.NewMixer(members...), format, nil
}

// probeFormat opens clips in scan order until one decodes and takes its
// native layout as the session format. Clips that fail to probe are
// reported to the warn hook and skipped. With nothing decodable the
// session falls back to DefaultFormat.
func (m *MixerBuilder) probeFormat() Format {
	for _, b := range m.builders {
		for _, path := range b.order {
			format, err := probeClip(m.cfg.Registry, b.byPath[path])
			if err != nil {
				m.cfg.Warn(err)
				continue
			}
			return format
		}
	}
	return DefaultFormat
}
