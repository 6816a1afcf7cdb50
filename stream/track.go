// SPDX-License-Identifier: EPL-2.0

package stream

// noSplice marks a track without a splice point.
const noSplice = -1

// Track wraps one decoded clip stream with an optional splice countdown.
// The countdown caps how many samples the track exposes; once it reaches
// zero the unplayed remainder of the clip is peeled off as an independent
// tail so it can keep playing as a background layer.
type Track struct {
	stream Stream
	splice int // remaining samples before the splice, noSplice when unset
}

// NewTrack wraps s. spliceSamples is the splice countdown in samples
// (frames times channels); pass a negative value for no splice point.
func NewTrack(s Stream, spliceSamples int) *Track {
	if spliceSamples < 0 {
		spliceSamples = noSplice
	}
	return &Track{stream: s, splice: spliceSamples}
}

// EmptyTrack returns a track that is already at end of stream.
func EmptyTrack() *Track {
	return &Track{stream: Empty{}, splice: noSplice}
}

// EOS reports true once the underlying stream is exhausted or the splice
// countdown hit zero. Splice truncation is authoritative: remaining audio
// past the splice point belongs to the tail, not to this track.
func (t *Track) EOS() bool {
	return t.splice == 0 || t.stream.EOS()
}

// MaxRead returns the underlying stream's value, capped by the remaining
// splice countdown.
func (t *Track) MaxRead() int {
	m := t.stream.MaxRead()
	if t.splice != noSplice && t.splice < m {
		return t.splice
	}
	return m
}

// ReadAdd accumulates samples from the wrapped stream and decrements the
// splice countdown.
func (t *Track) ReadAdd(buf Buffer) {
	if len(buf) > t.MaxRead() {
		panic("stream: read past MaxRead in Track")
	}
	t.stream.ReadAdd(buf)
	if t.splice != noSplice {
		t.splice -= len(buf)
	}
}

// Load loads the wrapped stream. When the splice countdown has reached
// zero and the wrapped stream still has decodable data, the stream is
// detached and returned as exactly one tail, leaving the track inert; an
// exhausted stream produces no tail.
func (t *Track) Load() ([]Stream, error) {
	if t.MaxRead() > 0 {
		return nil, nil
	}
	tails, err := t.stream.Load()
	if err != nil {
		return tails, err
	}
	if t.splice == 0 && !t.stream.EOS() {
		tail := t.stream
		t.stream = Empty{}
		tails = append(tails, tail)
	}
	return tails, nil
}
