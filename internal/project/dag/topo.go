package dag

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

type Topo struct {
	Order   []NodeID   // dependencies first; nodes on cycles are missing
	Batches [][]NodeID // waves of independent nodes
	Cyclic  bool
	Cycles  []NodeID // nodes left with unresolved dependencies
}

// ToposortKahn orders g with Kahn's algorithm. Ties are broken by ID.
func ToposortKahn(g Graph) *Topo {
	n := len(g.Edges)
	indeg := make([]int, len(g.Indeg))
	copy(indeg, g.Indeg)

	topo := &Topo{Order: make([]NodeID, 0, n)}

	current := make([]NodeID, 0, n)
	for i := range n {
		if indeg[i] == 0 {
			current = append(current, nodeID(i))
		}
	}

	for len(current) > 0 {
		batch := slices.Clone(current)
		topo.Batches = append(topo.Batches, batch)

		var next []NodeID
		for _, id := range batch {
			topo.Order = append(topo.Order, id)
			for _, to := range g.Edges[id] {
				indeg[to]--
				if indeg[to] == 0 {
					next = append(next, to)
				}
			}
		}
		slices.Sort(next)
		current = next
	}

	if len(topo.Order) != n {
		topo.Cyclic = true
		for i := range n {
			if indeg[i] > 0 {
				topo.Cycles = append(topo.Cycles, nodeID(i))
			}
		}
	}
	return topo
}

// CyclePath returns one cycle among t.Cycles in import order (each node
// imports the next) with the first node repeated at the end, or nil when
// g is acyclic.
//
// Every node left over by Kahn's algorithm has a predecessor that is also
// left over, so walking predecessors from any of them must revisit a node.
func CyclePath(g Graph, t *Topo) []NodeID {
	if t == nil || !t.Cyclic || len(t.Cycles) == 0 {
		return nil
	}
	left := make(map[NodeID]bool, len(t.Cycles))
	for _, id := range t.Cycles {
		left[id] = true
	}
	preds := make(map[NodeID][]NodeID, len(t.Cycles))
	for from, tos := range g.Edges {
		f := nodeID(from)
		if !left[f] {
			continue
		}
		for _, to := range tos {
			if left[to] {
				preds[to] = append(preds[to], f)
			}
		}
	}

	seen := make(map[NodeID]int, len(t.Cycles))
	var walk []NodeID
	cur := t.Cycles[0]
	for {
		if i, ok := seen[cur]; ok {
			loop := slices.Clone(walk[i:])
			return append(loop, loop[0])
		}
		seen[cur] = len(walk)
		walk = append(walk, cur)
		cur = preds[cur][0]
	}
}

func nodeID(i int) NodeID {
	id, err := safecast.Conv[NodeID](i)
	if err != nil {
		panic(fmt.Errorf("node id overflow: %w", err))
	}
	return id
}
