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

// uniqueWeights returns the distinct weight values w satisfying
// lo < w <= hi, sorted ascending.
func uniqueWeights(edges []*Edge, lo, hi float64) []float64 {
	seen := make(map[float64]struct{})
	var out []float64
	for _, e := range edges {
		if e.Weight > lo && e.Weight <= hi {
			if _, ok := seen[e.Weight]; !ok {
				seen[e.Weight] = struct{}{}
				out = append(out, e.Weight)
			}
		}
	}
	sort.Float64s(out)
	return out
}

// uniqueWeightsAtOrAbove returns the distinct weight values w >= t,
// sorted ascending.
func uniqueWeightsAtOrAbove(edges []*Edge, t float64) []float64 {
	seen := make(map[float64]struct{})
	var out []float64
	for _, e := range edges {
		if e.Weight >= t {
			if _, ok := seen[e.Weight]; !ok {
				seen[e.Weight] = struct{}{}
				out = append(out, e.Weight)
			}
		}
	}
	sort.Float64s(out)
	return out
}

// relevantSlice linearly filters sorted (ascending) weights to those
// satisfying lo < w <= hi, preserving order. sorted need not actually
// be sorted for correctness, only for the result to itself be ordered.
func relevantSlice(sorted []float64, lo, hi float64) []float64 {
	var out []float64
	for _, w := range sorted {
		if w > lo && w <= hi {
			out = append(out, w)
		}
	}
	return out
}

// unionEdges returns the set union of a and b, deduplicated by
// structural equality (u,v,weight,upgradedWeight,cost).
func unionEdges(a, b []Edge) []Edge {
	out := make([]Edge, 0, len(a)+len(b))
	out = append(out, a...)
	for _, e := range b {
		dup := false
		for _, existing := range out {
			if existing.equalStructurally(e) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	return out
}

// disjointEdges returns the edges of a that are not structurally
// present in b. None of the solvers calls it.
func disjointEdges(a, b []Edge) []Edge {
	var out []Edge
	for _, e := range a {
		found := false
		for _, o := range b {
			if e.equalStructurally(o) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, e)
		}
	}
	return out
}

// filterLE returns the edges of edges with weight <= w.
func filterLE(edges []Edge, w float64) []Edge {
	var out []Edge
	for _, e := range edges {
		if e.Weight <= w {
			out = append(out, e)
		}
	}
	return out
}

// filterGT returns the edges of edges with weight > w.
func filterGT(edges []Edge, w float64) []Edge {
	var out []Edge
	for _, e := range edges {
		if e.Weight > w {
			out = append(out, e)
		}
	}
	return out
}

// edgesBetween returns the edges of edges with lo < weight <= hi.
func edgesBetween(edges []Edge, lo, hi float64) []Edge {
	var out []Edge
	for _, e := range edges {
		if e.Weight > lo && e.Weight <= hi {
			out = append(out, e)
		}
	}
	return out
}

// updateBottleneck folds edge's weight into the running bottleneck:
// max when working in the inverted (negated-weight) regime, min
// otherwise.
func updateBottleneck(current float64, edge Edge, inverse bool) float64 {
	if inverse {
		if edge.Weight > current {
			return edge.Weight
		}
		return current
	}
	if edge.Weight < current {
		return edge.Weight
	}
	return current
}

// toEdgePtrs is a small convenience for building a *Graph from a
// []Edge working set (Punnen and both EE variants shuttle between the
// two representations as they narrow their search window).
func toEdgePtrs(nodes []Node, edges []Edge) *Graph {
	g := &Graph{Nodes: nodes, Edges: make([]*Edge, len(edges))}
	for i := range edges {
		e := edges[i]
		g.Edges[i] = &e
	}
	return g
}

func toEdgeValues(edges []*Edge) []Edge {
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = *e
	}
	return out
}
