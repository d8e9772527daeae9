/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package cbst

// Graph is an undirected weighted graph: a fixed node set addressed by
// dense id, and an ordered edge slice. Edge records are shared by
// reference between a graph and every subgraph view derived from it;
// only InverseWeights ever mutates one (Camerini's endpoint remap works
// on value copies of the edges).
type Graph struct {
	Nodes []Node
	Edges []*Edge
}

// NewGraph builds a graph over nodes with no edges yet.
func NewGraph(nodes []Node) *Graph {
	return &Graph{Nodes: nodes}
}

// AddEdge appends e to the graph, returning the shared pointer callers
// should hold onto if they need to observe later mutation (e.g. by
// InverseWeights).
func (g *Graph) AddEdge(e Edge) (*Edge, error) {
	if e.U == e.V {
		return nil, errSelfLoop
	}
	pe := e
	g.Edges = append(g.Edges, &pe)
	return &pe, nil
}

// N returns the number of nodes.
func (g *Graph) N() int {
	return len(g.Nodes)
}

// SubgraphLE returns a view sharing g's node set and the edges with
// Weight <= w.
func (g *Graph) SubgraphLE(w float64) *Graph {
	sub := &Graph{Nodes: g.Nodes}
	for _, e := range g.Edges {
		if e.Weight <= w {
			sub.Edges = append(sub.Edges, e)
		}
	}
	return sub
}

// SubgraphGT returns a view sharing g's node set and the edges with
// Weight > w.
func (g *Graph) SubgraphGT(w float64) *Graph {
	sub := &Graph{Nodes: g.Nodes}
	for _, e := range g.Edges {
		if e.Weight > w {
			sub.Edges = append(sub.Edges, e)
		}
	}
	return sub
}

// TotalCost sums Cost over all edges.
func (g *Graph) TotalCost() float64 {
	var sum float64
	for _, e := range g.Edges {
		sum += e.Cost
	}
	return sum
}

// TotalWeight sums Weight over all edges.
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for _, e := range g.Edges {
		sum += e.Weight
	}
	return sum
}

// InverseWeights negates Weight and UpgradedWeight in place for every
// edge. This is the pre-processing step that lets Kruskal and Camerini
// be written purely as minimizers: after inversion, the largest
// original weight is the smallest negated one.
func (g *Graph) InverseWeights() {
	for _, e := range g.Edges {
		e.Weight = -e.Weight
		e.UpgradedWeight = -e.UpgradedWeight
	}
}

// isInverse reports whether the graph appears to hold negated weights,
// detected from the sign of the first edge. Kruskal and Camerini use it
// to decide whether the running bottleneck tracks the maximum (negated
// weights) or the minimum edge weight.
func (g *Graph) isInverse() bool {
	if len(g.Edges) == 0 {
		return false
	}
	return g.Edges[0].Weight < 0
}

// DuplicateEdgesForUpgrades builds the CBST-U working graph: for every
// edge in g, emit a primary copy (cost 0, not upgraded) and an upgraded
// copy (cost = e.Cost, upgraded, weight = e.UpgradedWeight).
func (g *Graph) DuplicateEdgesForUpgrades() *Graph {
	out := &Graph{Nodes: g.Nodes}
	for _, e := range g.Edges {
		primary := NewEdge(e.U, e.V,
			WithWeight(e.Weight),
			WithUpgradedWeight(e.Weight),
			WithCost(0),
			WithUpgraded(false),
			WithOrigWeight(e.Weight),
		)
		upgraded := NewEdge(e.U, e.V,
			WithWeight(e.UpgradedWeight),
			WithUpgradedWeight(e.UpgradedWeight),
			WithCost(e.Cost),
			WithUpgraded(true),
			WithOrigWeight(e.Weight),
		)
		p, u := primary, upgraded
		out.Edges = append(out.Edges, &p, &u)
	}
	return out
}

// Clone returns a graph with the same node slice and a copy of the edge
// pointer slice (not the edges themselves) - useful for building a
// working set that will be filtered or reordered independently of g.
func (g *Graph) Clone() *Graph {
	edges := make([]*Edge, len(g.Edges))
	copy(edges, g.Edges)
	return &Graph{Nodes: g.Nodes, Edges: edges}
}

// IsSpanningTree is a debug-only assertion (spec InternalInvariant):
// edges must number n-1, touch only ids in [0,n), and connect every
// node.
func IsSpanningTree(n int, edges []Edge) bool {
	if len(edges) != n-1 {
		return false
	}
	if n == 0 {
		return true
	}
	adj := make(map[int][]int, n)
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return false
		}
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	visited := make([]bool, n)
	q := newFIFO[int]()
	q.push(0)
	visited[0] = true
	count := 1
	for !q.empty() {
		u, _ := q.pop()
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				count++
				q.push(v)
			}
		}
	}
	return count == n
}
