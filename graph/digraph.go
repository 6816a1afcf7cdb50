// SPDX-License-Identifier: EPL-2.0

package graph

// Start is the label of the reserved start node.
const Start = "start"

// arrow is one outgoing edge of a node: the target node and the clip
// handles accumulated under the (tail, head) label pair.
type arrow struct {
	head  int
	clips []string
}

// Digraph is a finalized directed multigraph. Node 0 is the start node and
// always has at least one outgoing arrow.
type Digraph struct {
	nodes [][]arrow
}

// NumNodes returns the number of nodes, including the start node.
func (g *Digraph) NumNodes() int {
	return len(g.nodes)
}

// NumArrows returns the number of outgoing arrows of node.
func (g *Digraph) NumArrows(node int) int {
	if node < 0 || node >= len(g.nodes) {
		return 0
	}
	return len(g.nodes[node])
}

// Builder accumulates labeled edges and finalizes them into a Digraph.
type Builder struct {
	index  map[string]int
	arrows map[[2]int][]string
}

// NewBuilder returns a Builder with the start label pre-registered as node 0.
func NewBuilder() *Builder {
	return &Builder{
		index:  map[string]int{Start: 0},
		arrows: make(map[[2]int][]string),
	}
}

// Arrow records an edge from the tail label to the head label carrying one
// clip handle. Unknown labels are assigned the next free node id.
func (b *Builder) Arrow(tail, head, clip string) {
	t := b.intern(tail)
	h := b.intern(head)
	key := [2]int{t, h}
	b.arrows[key] = append(b.arrows[key], clip)
}

func (b *Builder) intern(label string) int {
	if id, ok := b.index[label]; ok {
		return id
	}
	id := len(b.index)
	b.index[label] = id
	return id
}

// Build finalizes the edge set into a Digraph. Arrows are grouped under
// their tail node. If the start node ended up with no outgoing arrows, one
// clipless arrow to every other node is synthesized so the walk can always
// leave the start state.
func (b *Builder) Build() *Digraph {
	nodes := make([][]arrow, len(b.index))
	for key, clips := range b.arrows {
		tail, head := key[0], key[1]
		nodes[tail] = append(nodes[tail], arrow{head: head, clips: clips})
	}
	if len(nodes[0]) == 0 {
		for i := 1; i < len(nodes); i++ {
			nodes[0] = append(nodes[0], arrow{head: i})
		}
	}
	return &Digraph{nodes: nodes}
}
