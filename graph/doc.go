// SPDX-License-Identifier: EPL-2.0

// Package graph builds a directed multigraph over clip group labels and
// generates playback sequences by random walk.
//
// Labels are interned to integer nodes in first-seen order, with the
// reserved label "start" always occupying node 0. Every edge carries the
// clip handles classified under its (tail, head) label pair; edges sharing
// the same pair accumulate their handles into a single arrow.
//
// # Building
//
//	b := graph.NewBuilder()
//	b.Arrow("calm", "storm", "calm-storm.ogg")
//	b.Arrow("storm", "calm", "storm-calm.ogg")
//	g := b.Build()
//
// Build guarantees that node 0 has at least one outgoing arrow: if no edge
// left "start", a clipless arrow to every other node is synthesized so a
// walk can always leave the start state.
//
// # Walking
//
//	walk := g.RandomWalk(rng)
//	for {
//	    clip, ok := walk.Next()
//	    if !ok {
//	        break
//	    }
//	    // decode and play clip
//	}
//
// Each step of the walk chooses an outgoing arrow uniformly, moves to its
// head node, and chooses one of the arrow's clip handles uniformly. A step
// can come up empty (a node with no arrows, or an arrow with no clips);
// Next retries exactly once before reporting the sequence as finished.
// A walk is not restartable; construct a fresh one to start over.
package graph
