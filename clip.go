// SPDX-License-Identifier: EPL-2.0

package soundwalk

import (
	"fmt"
	"os"

	"github.com/ik5/soundwalk/audio"
	"github.com/ik5/soundwalk/classify"
	"github.com/ik5/soundwalk/graph"
	"github.com/ik5/soundwalk/stream"
)

// walkSource feeds a player with tracks by following a digraph walk and
// opening the clip each step lands on. The walk running out of arrows ends
// the sequence; a clip that cannot be opened is an error the player
// surfaces without consuming the walk.
type walkSource struct {
	registry *audio.Registry
	format   Format
	walk     *graph.RandomWalk
	byPath   map[string]classify.Clip
}

func (w *walkSource) NextTrack() (*stream.Track, error) {
	path, ok := w.walk.Next()
	if !ok {
		return nil, nil
	}
	clip, found := w.byPath[path]
	if !found {
		return nil, fmt.Errorf("clip %s: unknown clip handle", path)
	}
	return openTrack(w.registry, w.format, clip)
}

// openTrack opens a clip file, decodes it, adapts it to the session format
// and wraps it into a track carrying the clip's splice point, if any.
func openTrack(registry *audio.Registry, format Format, clip classify.Clip) (*stream.Track, error) {
	decoder, ok := registry.Get(clip.Format)
	if !ok {
		return nil, fmt.Errorf("clip %s: no decoder registered for %q", clip.Path, clip.Format)
	}

	f, err := os.Open(clip.Path)
	if err != nil {
		return nil, fmt.Errorf("clip %s: %w", clip.Path, err)
	}

	src, err := decoder.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("clip %s: %w", clip.Path, err)
	}

	spliceFrames := int64(-1)
	if commented, ok := src.(audio.Commented); ok {
		frames, found, err := audio.SplicePoint(commented.Comments())
		if err != nil {
			src.Close()
			f.Close()
			return nil, fmt.Errorf("clip %s: %w", clip.Path, err)
		}
		if found {
			spliceFrames = frames
		}
	}
	srcRate := src.SampleRate()

	adapted, err := audio.Adapt(src, format.Channels, format.SampleRate)
	if err != nil {
		src.Close()
		f.Close()
		return nil, fmt.Errorf("clip %s: %w", clip.Path, err)
	}

	// The splice point is counted in frames of the file. Resampling moves
	// it to the session rate; the channel count then turns it into an
	// interleaved sample count.
	spliceSamples := -1
	if spliceFrames >= 0 {
		if srcRate != format.SampleRate {
			spliceFrames = spliceFrames * int64(format.SampleRate) / int64(srcRate)
		}
		spliceSamples = int(spliceFrames) * format.Channels
	}

	s, err := stream.NewSourceStream(&fileSource{Source: adapted, f: f})
	if err != nil {
		adapted.Close()
		f.Close()
		return nil, fmt.Errorf("clip %s: %w", clip.Path, err)
	}
	return stream.NewTrack(s, spliceSamples), nil
}

// probeClip decodes just far enough to learn a clip's native layout.
func probeClip(registry *audio.Registry, clip classify.Clip) (Format, error) {
	decoder, ok := registry.Get(clip.Format)
	if !ok {
		return Format{}, fmt.Errorf("clip %s: no decoder registered for %q", clip.Path, clip.Format)
	}

	f, err := os.Open(clip.Path)
	if err != nil {
		return Format{}, fmt.Errorf("clip %s: %w", clip.Path, err)
	}
	defer f.Close()

	src, err := decoder.Decode(f)
	if err != nil {
		return Format{}, fmt.Errorf("clip %s: %w", clip.Path, err)
	}
	defer src.Close()

	return Format{Channels: src.Channels(), SampleRate: src.SampleRate()}, nil
}

// fileSource ties the lifetime of the backing file to the decoded source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}
