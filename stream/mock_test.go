// SPDX-License-Identifier: EPL-2.0

package stream

// memStream is a test Stream over fixed sample data, surfacing it one
// packet per Load like a real decoded clip would.
type memStream struct {
	data   []float32
	pos    int // samples already consumed
	avail  int // samples readable without another Load
	packet int // samples surfaced per Load
	loads  int // Load call count, for no-op assertions
}

// newMemStream surfaces data in packets of packet samples.
func newMemStream(data []float32, packet int) *memStream {
	return &memStream{data: data, packet: packet}
}

// rampData returns n samples valued 1, 2, 3, ... so tests can tell which
// region of a clip they are hearing.
func rampData(n int) []float32 {
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(i + 1)
	}
	return data
}

func (m *memStream) EOS() bool {
	return m.avail == 0 && m.pos == len(m.data)
}

func (m *memStream) MaxRead() int { return m.avail }

func (m *memStream) ReadAdd(buf Buffer) {
	if len(buf) > m.avail {
		panic("stream: read past MaxRead in memStream")
	}
	buf.Add(m.data[m.pos : m.pos+len(buf)])
	m.pos += len(buf)
	m.avail -= len(buf)
}

func (m *memStream) Load() ([]Stream, error) {
	m.loads++
	if m.avail > 0 {
		return nil, nil
	}
	m.avail = min(m.packet, len(m.data)-m.pos)
	return nil, nil
}

// errStream fails on its first Load.
type errStream struct {
	err error
}

func (e *errStream) EOS() bool              { return false }
func (e *errStream) MaxRead() int           { return 0 }
func (e *errStream) ReadAdd(buf Buffer)     { panic("stream: read past MaxRead in errStream") }
func (e *errStream) Load() ([]Stream, error) { return nil, e.err }

// readAll drains s through the public contract, returning every sample it
// produces. It panics if Load stops making progress, so a broken stream
// fails the test instead of hanging it.
func readAll(s Stream) ([]float32, error) {
	var out []float32
	idle := 0
	for !s.EOS() {
		if n := s.MaxRead(); n > 0 {
			buf := make(Buffer, n)
			s.ReadAdd(buf)
			out = append(out, buf...)
			idle = 0
			continue
		}
		if _, err := s.Load(); err != nil {
			return out, err
		}
		if idle++; idle > 100 {
			panic("stream: no progress in readAll")
		}
	}
	return out, nil
}
