// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"io"

	"github.com/ik5/soundwalk/audio"
)

// fallback packet size when a source does not suggest one
const defaultPacketSize = 4096

// SourceStream adapts one decoded audio.Source to the Stream interface.
// It keeps the current packet plus one prefetched packet, so MaxRead stays
// positive across packet boundaries without decoding inside ReadAdd.
//
// The SourceStream owns its source and closes it once decoding is done;
// close failures on a read-only source are not actionable mid-stream and
// are discarded.
type SourceStream struct {
	src    audio.Source
	offset int
	packet []float32
	next   []float32 // nil once the source is exhausted
	spare  []float32 // recycled packet storage
	eof    bool
	closed bool
}

// NewSourceStream wraps src. The first packet is decoded eagerly so the
// stream is immediately readable, or immediately at end of stream for an
// empty source.
func NewSourceStream(src audio.Source) (*SourceStream, error) {
	s := &SourceStream{src: src}
	first, err := s.fetch(nil)
	if err != nil {
		return nil, err
	}
	s.next = first
	if _, err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SourceStream) packetSize() int {
	if n := s.src.BufSize(); n > 0 {
		return n
	}
	return defaultPacketSize
}

// fetch decodes one packet into dst's storage, growing it as needed. It
// returns nil when the source has ended.
func (s *SourceStream) fetch(dst []float32) ([]float32, error) {
	if s.eof {
		return nil, nil
	}
	size := s.packetSize()
	if cap(dst) < size {
		dst = make([]float32, size)
	}
	dst = dst[:size]

	for {
		n, err := s.src.ReadSamples(dst)
		if err == io.EOF {
			s.eof = true
			s.close()
			if n == 0 {
				return nil, nil
			}
			return dst[:n], nil
		}
		if err != nil {
			s.close()
			return nil, err
		}
		if n > 0 {
			return dst[:n], nil
		}
		// A short read with no data and no error: the source needs another
		// pull before it can produce.
	}
}

func (s *SourceStream) close() {
	if s.closed {
		return
	}
	s.closed = true
	s.src.Close()
}

// EOS reports true once the source is exhausted and the buffered packets
// are fully read.
func (s *SourceStream) EOS() bool {
	return s.next == nil && s.MaxRead() == 0
}

// MaxRead returns the unread remainder of the current packet.
func (s *SourceStream) MaxRead() int {
	return len(s.packet) - s.offset
}

// ReadAdd accumulates the next len(buf) samples of the current packet into
// buf.
func (s *SourceStream) ReadAdd(buf Buffer) {
	if len(buf) > s.MaxRead() {
		panic("stream: read past MaxRead in SourceStream")
	}
	old := s.offset
	s.offset += len(buf)
	buf.Add(s.packet[old:s.offset])
}

// Load rotates the prefetched packet in and decodes the next one. It is a
// no-op while the current packet still has unread samples. A SourceStream
// never produces tails.
func (s *SourceStream) Load() ([]Stream, error) {
	if s.offset != len(s.packet) || s.next == nil {
		return nil, nil
	}
	recycled := s.spare
	s.spare = s.packet[:0]
	s.packet = s.next
	s.offset = 0

	next, err := s.fetch(recycled)
	if err != nil {
		s.next = nil
		return nil, err
	}
	s.next = next
	return nil, nil
}
