// SPDX-License-Identifier: EPL-2.0

package stream

// Mixer owns a growable pool of streams, advances them in lock-step and
// averages their output. The pool grows when a member's Load peels off a
// tail and shrinks when a member is exhausted or fails. Member order is
// never significant; removal swaps with the last element.
type Mixer struct {
	pool []Stream
	errs []error // detected failures, surfaced one per Load call
}

// NewMixer builds a mixer over the given initial pool members.
func NewMixer(members ...Stream) *Mixer {
	pool := make([]Stream, len(members))
	copy(pool, members)
	return &Mixer{pool: pool}
}

// Members returns the current pool size.
func (m *Mixer) Members() int {
	return len(m.pool)
}

// EOS reports true when the pool is empty or every member is exhausted.
// Note that an any-member-exhausted condition is only ever used as the
// per-cycle pruning rule in Load, never as the stop condition here.
func (m *Mixer) EOS() bool {
	for _, s := range m.pool {
		if !s.EOS() {
			return false
		}
	}
	return true
}

// MaxRead returns the minimum immediately readable sample count across the
// pool, since every member must advance by the same amount each cycle.
// An empty pool reads zero.
func (m *Mixer) MaxRead() int {
	if len(m.pool) == 0 {
		return 0
	}
	n := m.pool[0].MaxRead()
	for _, s := range m.pool[1:] {
		n = min(n, s.MaxRead())
	}
	return n
}

// ReadAdd zeroes buf, accumulates every member into it and scales the sum
// by 1/len(pool). The coefficient is recomputed from the current
// membership every cycle, so adopted tails are weighted correctly.
func (m *Mixer) ReadAdd(buf Buffer) {
	if len(buf) > m.MaxRead() {
		panic("stream: read past MaxRead in Mixer")
	}
	buf.Zero()
	for _, s := range m.pool {
		s.ReadAdd(buf)
	}
	buf.Gain(1 / float32(len(m.pool)))
}

// Load services every member whose MaxRead is zero, adopts the tails they
// peel off and prunes members that failed or reached end of stream.
//
// Failures do not interrupt the scan: each error is queued together with
// the removal of its member, and queued errors are surfaced one at a time
// by subsequent Load calls. By the time an error is reported its member is
// already gone.
func (m *Mixer) Load() error {
	pending := len(m.errs)

	var tails []Stream
	for i := 0; i < len(m.pool); {
		s := m.pool[i]
		if s.MaxRead() == 0 {
			newTails, err := s.Load()
			tails = append(tails, newTails...)
			if err != nil {
				m.errs = append(m.errs, err)
				m.remove(i)
				continue
			}
		}
		if s.EOS() {
			m.remove(i)
			continue
		}
		i++
	}
	m.pool = append(m.pool, tails...)

	if pending > 0 {
		err := m.errs[0]
		m.errs = m.errs[1:]
		return err
	}
	return nil
}

// remove drops pool member i by swapping in the last element.
func (m *Mixer) remove(i int) {
	last := len(m.pool) - 1
	m.pool[i] = m.pool[last]
	m.pool[last] = nil
	m.pool = m.pool[:last]
}
