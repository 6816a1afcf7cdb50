// SPDX-License-Identifier: EPL-2.0

package stream

// TrackSource supplies the upcoming tracks for a Player, typically driven
// by a random walk over a clip digraph. NextTrack returns nil when the
// sequence is exhausted; an error skips the offending clip's lineage.
type TrackSource interface {
	NextTrack() (*Track, error)
}

// TrackSourceFunc adapts a function to the TrackSource interface.
type TrackSourceFunc func() (*Track, error)

func (f TrackSourceFunc) NextTrack() (*Track, error) { return f() }

// Player sequences an unbounded series of tracks into one continuous
// stream, transparently advancing between them and forwarding any tails
// the tracks peel off.
type Player struct {
	track    *Track
	upcoming TrackSource
	done     bool // upcoming exhausted, current track is the last
}

// NewPlayer builds a player over upcoming and performs one eager load, so
// the result is immediately readable or terminally at end of stream. Tails
// produced during that first load (a leading clip spliced at zero) are
// returned for the caller's pool.
func NewPlayer(upcoming TrackSource) (*Player, []Stream, error) {
	p := &Player{track: EmptyTrack(), upcoming: upcoming}
	if p.MaxRead() == 0 {
		tails, err := p.Load()
		if err != nil {
			return nil, tails, err
		}
		return p, tails, nil
	}
	return p, nil, nil
}

// EOS reports true once the upcoming sequence is exhausted and the current
// track has nothing left.
func (p *Player) EOS() bool {
	return p.done && p.track.EOS()
}

// MaxRead delegates to the current track.
func (p *Player) MaxRead() int {
	return p.track.MaxRead()
}

// ReadAdd delegates to the current track.
func (p *Player) ReadAdd(buf Buffer) {
	if len(buf) > p.MaxRead() {
		panic("stream: read past MaxRead in Player")
	}
	p.track.ReadAdd(buf)
}

// Load advances the player until the current track has readable samples or
// the upcoming sequence ends. Tails collected from spliced tracks along
// the way are returned together. A load failure of the current track
// poisons the player; a failure to produce the next track leaves the
// player in place so the error can be attributed to that clip alone.
func (p *Player) Load() ([]Stream, error) {
	var tails []Stream
	for p.track.MaxRead() == 0 {
		newTails, err := p.track.Load()
		tails = append(tails, newTails...)
		if err != nil {
			p.track = EmptyTrack()
			p.done = true
			return tails, err
		}
		if !p.track.EOS() {
			continue
		}
		next, err := p.upcoming.NextTrack()
		if err != nil {
			return tails, err
		}
		if next == nil {
			p.done = true
			break
		}
		p.track = next
	}
	return tails, nil
}
