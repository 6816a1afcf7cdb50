// SPDX-License-Identifier: EPL-2.0

package graph

import "math/rand/v2"

// RandomWalk generates an unbounded sequence of clip handles by walking the
// digraph. It carries its own RNG state and is not restartable; construct a
// fresh walk to start over.
type RandomWalk struct {
	state int
	g     *Digraph
	rng   *rand.Rand
}

// RandomWalk starts a walk at the start node using rng as its sample source.
func (g *Digraph) RandomWalk(rng *rand.Rand) *RandomWalk {
	return &RandomWalk{state: 0, g: g, rng: rng}
}

// step performs one stage of the walk: choose an outgoing arrow uniformly,
// move to its head, choose one of its clips uniformly. A node without
// arrows leaves the state unchanged and yields nothing; an arrow without
// clips still advances the state.
func (w *RandomWalk) step() (string, bool) {
	arrows := w.g.nodes[w.state]
	if len(arrows) == 0 {
		return "", false
	}
	a := arrows[w.rng.IntN(len(arrows))]
	w.state = a.head
	if len(a.clips) == 0 {
		return "", false
	}
	return a.clips[w.rng.IntN(len(a.clips))], true
}

// Next returns the next clip handle of the sequence. A step that yields no
// clip is retried exactly once; if the retry also comes up empty, the
// sequence ends and Next reports false. The bounded retry is deliberate:
// one miss is expected when leaving a synthesized start arrow, two misses
// in a row end the walk.
func (w *RandomWalk) Next() (string, bool) {
	if clip, ok := w.step(); ok {
		return clip, true
	}
	return w.step()
}
