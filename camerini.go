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

// MinBottleneckSpanningTree runs Camerini's recursive median/contract
// algorithm, returning a tree that minimizes the maximum edge weight in
// expected O(|E|) time. If g is disconnected the result has fewer than
// n-1 edges and Bottleneck is the Infeasible sentinel.
func MinBottleneckSpanningTree(g *Graph) (SpanningResult, error) {
	n := g.N()
	if n == 0 {
		return SpanningResult{Sum: 0, Bottleneck: 0}, nil
	}
	if n == 1 {
		return SpanningResult{Tree: nil, Sum: 0, Bottleneck: 0}, nil
	}
	if len(g.Edges) == 0 {
		return SpanningResult{Tree: nil, Sum: posInf, Bottleneck: posInf}, nil
	}

	edges := toEdgeValues(g.Edges)
	raw, err := camereiniRecurse(edges, n)
	if err != nil {
		return SpanningResult{}, err
	}

	inverse := g.isInverse()
	bottleneck := initialBottleneck(inverse)
	final := make([]Edge, len(raw))
	var sum float64
	for i, e := range raw {
		fe := e
		fe.U, fe.V = e.OrigU, e.OrigV
		final[i] = fe
		bottleneck = updateBottleneck(bottleneck, fe, inverse)
		sum += fe.Weight
	}

	if len(final) != n-1 {
		return SpanningResult{Tree: nil, Sum: posInf, Bottleneck: posInf}, nil
	}
	debugAssert(IsSpanningTree(n, final), "camerini result is not a spanning tree")
	return SpanningResult{Tree: final, Sum: sum, Bottleneck: bottleneck}, nil
}

// camereiniRecurse implements the recursion of spec §4.4 over a node
// label space of size nLabels (shrinking at each contraction). Returned
// edges carry OrigU/OrigV from the true input graph throughout, even
// though U/V may be super-node indices from an intermediate contraction
// level - the caller remaps U/V back to OrigU/OrigV once recursion
// fully unwinds.
func camereiniRecurse(edges []Edge, nLabels int) ([]Edge, error) {
	if len(edges) == 0 {
		return nil, nil
	}
	if len(edges) == 1 {
		return []Edge{edges[0]}, nil
	}

	work := make([]Edge, len(edges))
	copy(work, edges)
	m, err := medianEdges(work)
	if err != nil {
		return nil, err
	}
	medianWeight := m.Weight

	var small, big []Edge
	for _, e := range edges {
		if e.Weight <= medianWeight {
			small = append(small, e)
		} else {
			big = append(big, e)
		}
	}

	uf, err := NewUnionFind(nLabels)
	if err != nil {
		return nil, err
	}
	var skeleton []Edge
	for _, e := range small {
		if !uf.Connected(e.U, e.V) {
			uf.Union(e.U, e.V)
			skeleton = append(skeleton, e)
		}
	}

	if len(big) == 0 {
		return skeleton, nil
	}
	if uf.Count() == 1 {
		return camereiniRecurse(small, nLabels)
	}

	// Contract each component of the skeleton into a super-node, using
	// a stable first-seen enumeration keyed by UF root - not a hash
	// map, so the mapping is reproducible across runs.
	present := make([]bool, nLabels)
	ids := make([]int, nLabels)
	next := 0
	remapped := make([]Edge, len(big))
	for i, e := range big {
		ru, rv := uf.Find(e.U), uf.Find(e.V)
		if !present[ru] {
			present[ru] = true
			ids[ru] = next
			next++
		}
		if !present[rv] {
			present[rv] = true
			ids[rv] = next
			next++
		}
		ne := e
		ne.U, ne.V = ids[ru], ids[rv]
		remapped[i] = ne
	}

	sub, err := camereiniRecurse(remapped, next)
	if err != nil {
		return nil, err
	}
	return append(skeleton, sub...), nil
}
