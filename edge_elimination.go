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

// SolveEdgeElimination is the "EE-classic" variant: it pre-filters any
// upgraded-copy edge whose pre-upgrade weight already meets or exceeds
// the unconstrained MBST's bottleneck (it could never help), then
// dual-bound binary-searches the remaining unique weights, permanently
// shrinking the working edge set to everything at or below each newly
// discovered feasible bottleneck.
func SolveEdgeElimination(g *Graph, budget float64) (CBSTResult, error) {
	mbst, err := MinBottleneckSpanningTree(g)
	if err != nil {
		return CBSTResult{}, err
	}
	if mbst.Tree == nil {
		return noSolution(), nil
	}
	mbstBottleneck := mbst.Bottleneck

	working := eePrefilter(toEdgeValues(g.Edges), mbstBottleneck)
	weights := uniqueWeightsAtOrAbove(edgePtrList(working), mbstBottleneck)
	if len(weights) == 0 {
		return noSolution(), nil
	}

	var best *SpanningResult
	lo, hi := 0, len(weights)
	for lo < hi {
		a := lo + (hi-lo)/2
		b := hi - 1

		ra, err := eeFeasible(g.Nodes, working, weights[a], budget)
		if err != nil {
			return CBSTResult{}, err
		}
		if ra.Tree != nil {
			best = &ra
			working = filterLE(working, ra.Bottleneck)
			hi = a
			continue
		}

		rb, err := eeFeasible(g.Nodes, working, weights[b], budget)
		if err != nil {
			return CBSTResult{}, err
		}
		if rb.Tree != nil {
			best = &rb
			working = filterLE(working, rb.Bottleneck)
			lo = a + 1
			hi = b
			continue
		}
		lo = b + 1
	}
	if best == nil {
		return noSolution(), nil
	}
	return CBSTResult{Tree: best.Tree, Cost: best.Sum, Bottleneck: best.Bottleneck, Found: true}, nil
}

func eePrefilter(edges []Edge, mbstBottleneck float64) []Edge {
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.Upgraded && e.OrigWeight >= mbstBottleneck {
			continue
		}
		out = append(out, e)
	}
	return out
}

func eeFeasible(nodes []Node, edges []Edge, pivot, budget float64) (SpanningResult, error) {
	sub := toEdgePtrs(nodes, filterLE(edges, pivot))
	result, err := MinSumSpanningTree(sub, SumKeyCost)
	if err != nil {
		return SpanningResult{}, err
	}
	if result.Tree == nil || result.Sum > budget {
		return SpanningResult{Tree: nil, Sum: posInf, Bottleneck: posInf}, nil
	}
	return result, nil
}

// SolveEdgeEliminationFast is the "EE-fast" variant: it skips the
// MBST/MCST prelude and bisects directly over all unique weights,
// probing each pivot with the disconnected-aware min_sum_forest. A
// scratch holder collects the chain of superseded working graphs so
// the caller can drop them all at once after the search.
func SolveEdgeEliminationFast(g *Graph, budget float64) (CBSTResult, error) {
	weights := uniqueWeightsAtOrAbove(g.Edges, negInf)
	if len(weights) == 0 {
		return noSolution(), nil
	}

	trash := newGarbage()
	defer trash.clear()

	working := g.Clone()
	var best *CBSTResult
	lo, hi := 0, len(weights)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		pivot := weights[mid]

		probe := working.SubgraphLE(pivot)
		forest, err := MinSumSpanningForest(probe, SumKeyCost)
		if err != nil {
			return CBSTResult{}, err
		}

		connected := forest.Connectivity == Connected && len(forest.Forest) == 1
		within := connected && forest.Sums[0] <= budget

		if within {
			best = &CBSTResult{
				Tree:       forest.Forest[0],
				Cost:       forest.Sums[0],
				Bottleneck: forest.Bottlenecks[0],
				Found:      true,
			}
			trash.add(working)
			working = probe
			hi = mid - 1
			continue
		}

		trash.add(working)
		replacement := unionEdges(toEdgeValues(working.SubgraphGT(pivot).Edges), flattenForest(forest))
		working = toEdgePtrs(working.Nodes, replacement)
		lo = mid + 1
	}
	if best == nil {
		return noSolution(), nil
	}
	return *best, nil
}

func flattenForest(fr ForestResult) []Edge {
	var out []Edge
	for _, tree := range fr.Forest {
		out = append(out, tree...)
	}
	return out
}
