// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"math/rand/v2"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestRandomWalk_NeverTerminatesOnCompleteGraph(t *testing.T) {
	t.Parallel()

	// Every node has an outgoing arrow and every arrow has a clip, so the
	// walk must keep producing forever.
	b := NewBuilder()
	b.Arrow(Start, "a", "start-a.ogg")
	b.Arrow("a", "b", "a-b.ogg")
	b.Arrow("b", "a", "b-a.ogg")
	w := b.Build().RandomWalk(testRand())

	for i := range 1000 {
		clip, ok := w.Next()
		if !ok {
			t.Fatalf("Next() ended after %d clips", i)
		}
		if clip == "" {
			t.Fatalf("Next() returned empty clip at step %d", i)
		}
	}
}

func TestRandomWalk_EmptyGraphEndsImmediately(t *testing.T) {
	t.Parallel()

	// Only the start node exists, with no arrows at all: both tries of the
	// first step miss and the sequence is empty.
	w := NewBuilder().Build().RandomWalk(testRand())

	if clip, ok := w.Next(); ok {
		t.Errorf("Next() = %q, true; want end of sequence", clip)
	}
}

func TestRandomWalk_SynthesizedArrowRetriesOnce(t *testing.T) {
	t.Parallel()

	// "start" has only synthesized clipless arrows. The first stage of the
	// first step misses but advances the state, and the one-step retry then
	// lands on a real clip.
	b := NewBuilder()
	b.Arrow("a", "a", "a-a.ogg")
	w := b.Build().RandomWalk(testRand())

	clip, ok := w.Next()
	if !ok {
		t.Fatal("Next() ended, want a clip via the bounded retry")
	}
	if clip != "a-a.ogg" {
		t.Errorf("Next() = %q, want %q", clip, "a-a.ogg")
	}
}

func TestRandomWalk_TwoMissesEndTheSequence(t *testing.T) {
	t.Parallel()

	// A lone self-loop with no clips: every step advances but never yields,
	// so Next gives up after its second try. The walk does not search
	// further even though the graph is unbounded.
	b := NewBuilder()
	b.Arrow("a", "a", "a-a.ogg")
	g := b.Build()
	// Strip the clip so every arrow of node "a" is empty.
	g.nodes[1][0].clips = nil

	w := g.RandomWalk(testRand())
	if clip, ok := w.Next(); ok {
		t.Errorf("Next() = %q, true; want end of sequence after two misses", clip)
	}
}

func TestRandomWalk_StateAdvancesOnEmptyArrow(t *testing.T) {
	t.Parallel()

	// start -> a carries no clips, a -> a does. The miss on the start arrow
	// must still move the state to "a", otherwise the retry could not
	// produce anything.
	b := NewBuilder()
	b.Arrow("a", "a", "a-a.ogg")
	w := b.Build().RandomWalk(testRand())

	if w.state != 0 {
		t.Fatalf("initial state = %d, want 0", w.state)
	}
	if _, ok := w.Next(); !ok {
		t.Fatal("Next() ended unexpectedly")
	}
	if w.state != 1 {
		t.Errorf("state after first Next() = %d, want 1", w.state)
	}
}

func TestRandomWalk_UniformArrowChoice(t *testing.T) {
	t.Parallel()

	// Two arrows out of "a"; over many steps both must be taken.
	b := NewBuilder()
	b.Arrow(Start, "a", "start-a.ogg")
	b.Arrow("a", "a", "a-a.ogg")
	b.Arrow("a", "b", "a-b.ogg")
	b.Arrow("b", "a", "b-a.ogg")
	w := b.Build().RandomWalk(testRand())

	seen := make(map[string]int)
	for range 2000 {
		clip, ok := w.Next()
		if !ok {
			t.Fatal("Next() ended unexpectedly")
		}
		seen[clip]++
	}
	if seen["a-a.ogg"] == 0 || seen["a-b.ogg"] == 0 {
		t.Errorf("walk never took one of the parallel arrows: %v", seen)
	}
}
