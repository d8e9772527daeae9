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

import "sort"

// SumKey selects which edge attribute Kruskal accumulates and sorts by.
type SumKey int

const (
	// SumKeyWeight sums and sorts by Edge.Weight.
	SumKeyWeight SumKey = iota
	// SumKeyCost sums and sorts by Edge.Cost.
	SumKeyCost
)

// SpanningResult is the outcome of a min-sum spanning tree search.
// Tree is nil when the graph did not yield a spanning tree, in which
// case Sum and Bottleneck are the Infeasible sentinel posInf. Tree is
// also nil for a graph with fewer than two nodes, whose spanning tree
// has no edges; Sum is then 0.
type SpanningResult struct {
	Tree       []Edge
	Sum        float64
	Bottleneck float64
}

// OriginalBottleneck undoes a prior InverseWeights negation, returning
// the bottleneck in the units the graph was built in.
func (r SpanningResult) OriginalBottleneck() float64 {
	if r.Tree == nil {
		return 0
	}
	return -r.Bottleneck
}

func sortedCopy(edges []*Edge, k SumKey) []*Edge {
	out := make([]*Edge, len(edges))
	copy(out, edges)
	sort.Slice(out, func(i, j int) bool {
		return lessEdgeKey(*out[i], *out[j], k)
	})
	return out
}

// MinSumSpanningTree runs Kruskal's algorithm on g, minimizing the sum
// of k over the accepted edges. Ties in sort order are broken by
// (key, u, v), matching lessEdgeKey, so results are deterministic.
func MinSumSpanningTree(g *Graph, k SumKey) (SpanningResult, error) {
	return minSumSpanningTree(g, k, posInf, false)
}

// MinSumSpanningTreeBudget is MinSumSpanningTree with early abort: the
// search stops and reports Infeasible as soon as the accumulated sum
// would exceed budget.
func MinSumSpanningTreeBudget(g *Graph, k SumKey, budget float64) (SpanningResult, error) {
	return minSumSpanningTree(g, k, budget, true)
}

func minSumSpanningTree(g *Graph, k SumKey, budget float64, budgeted bool) (SpanningResult, error) {
	n := g.N()
	if n == 0 {
		return SpanningResult{Sum: 0, Bottleneck: 0}, nil
	}
	uf, err := NewUnionFind(n)
	if err != nil {
		return SpanningResult{}, err
	}
	inverse := g.isInverse()

	sorted := sortedCopy(g.Edges, k)
	var (
		tree       []Edge
		sum        float64
		bottleneck = initialBottleneck(inverse)
	)
	for _, e := range sorted {
		if uf.Connected(e.U, e.V) {
			continue
		}
		cost := sum + e.key(k)
		if budgeted && cost > budget {
			return SpanningResult{Tree: nil, Sum: posInf, Bottleneck: posInf}, nil
		}
		uf.Union(e.U, e.V)
		tree = append(tree, *e)
		sum = cost
		bottleneck = updateBottleneck(bottleneck, *e, inverse)
		if len(tree) == n-1 {
			break
		}
	}
	if len(tree) != n-1 {
		return SpanningResult{Tree: nil, Sum: posInf, Bottleneck: posInf}, nil
	}
	debugAssert(checkCutOptimality(g, tree, k), "kruskal result is not cut-optimal")
	return SpanningResult{Tree: tree, Sum: sum, Bottleneck: bottleneck}, nil
}

// ForestConnectivity reports whether MinSumSpanningForest's input graph
// was connected.
type ForestConnectivity int

const (
	Connected ForestConnectivity = iota
	Disconnected
)

// ForestResult is the outcome of MinSumSpanningForest.
type ForestResult struct {
	Connectivity ForestConnectivity
	Forest       [][]Edge
	Sums         []float64
	Bottlenecks  []float64
}

// MinSumSpanningForest runs Kruskal across every connected component of
// g, returning one tree per component. Unlike MinSumSpanningTree it
// never reports Infeasible for a disconnected graph - it reports the
// forest instead, with Connectivity set accordingly.
func MinSumSpanningForest(g *Graph, k SumKey) (ForestResult, error) {
	n := g.N()
	if n == 0 {
		return ForestResult{Connectivity: Connected}, nil
	}
	uf, err := NewUnionFind(n)
	if err != nil {
		return ForestResult{}, err
	}
	inverse := g.isInverse()
	sorted := sortedCopy(g.Edges, k)

	componentOf := make(map[int]int, n)
	var (
		forest      [][]Edge
		sums        []float64
		bottlenecks []float64
	)
	ensureComponent := func(root int) int {
		if idx, ok := componentOf[root]; ok {
			return idx
		}
		idx := len(forest)
		componentOf[root] = idx
		forest = append(forest, nil)
		sums = append(sums, 0)
		bottlenecks = append(bottlenecks, initialBottleneck(inverse))
		return idx
	}

	var accepted []Edge
	for _, e := range sorted {
		if uf.Connected(e.U, e.V) {
			continue
		}
		uf.Union(e.U, e.V)
		accepted = append(accepted, *e)
	}
	// Group accepted edges by their final root, so components merged by a
	// later edge end up in a single tree.
	for _, e := range accepted {
		idx := ensureComponent(uf.Find(e.U))
		forest[idx] = append(forest[idx], e)
		sums[idx] += e.key(k)
		bottlenecks[idx] = updateBottleneck(bottlenecks[idx], e, inverse)
	}
	// Any isolated node (no accepted edge touches it) still needs a
	// trivial single-node component so callers see every node once.
	seen := make(map[int]bool, n)
	for _, tree := range forest {
		for _, e := range tree {
			seen[e.U] = true
			seen[e.V] = true
		}
	}
	for id := 0; id < n; id++ {
		if seen[id] {
			continue
		}
		root := uf.Find(id)
		if _, ok := componentOf[root]; ok {
			continue
		}
		ensureComponent(root)
	}

	connectivity := Connected
	if uf.Count() > 1 {
		connectivity = Disconnected
	}
	return ForestResult{
		Connectivity: connectivity,
		Forest:       forest,
		Sums:         sums,
		Bottlenecks:  bottlenecks,
	}, nil
}

func initialBottleneck(inverse bool) float64 {
	if inverse {
		return negInf
	}
	return posInf
}
