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

// SolveBerman reduces CBST to a sequence of feasibility tests on
// "edges with weight <= pivot", bisecting over the graph's sorted
// unique weight list (never over edge indices - see spec's note on
// why index bisection is unsound when weights repeat).
func SolveBerman(g *Graph, budget float64) (CBSTResult, error) {
	weights := uniqueWeightsAtOrAbove(g.Edges, negInf)
	if len(weights) == 0 {
		return noSolution(), nil
	}

	var best *SpanningResult
	lo, hi := 0, len(weights)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		pivot := weights[mid]
		result, err := bermanFeasible(g, pivot, budget)
		if err != nil {
			return CBSTResult{}, err
		}
		if result.Tree != nil {
			best = &result
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	if best == nil {
		return noSolution(), nil
	}
	return CBSTResult{Tree: best.Tree, Cost: best.Sum, Bottleneck: best.Bottleneck, Found: true}, nil
}

// bermanFeasible runs the check(pivot,budget) feasibility test of
// spec §4.7: a minimum-cost spanning tree restricted to weight <=
// pivot, feasible iff it exists and its cost fits the budget.
func bermanFeasible(g *Graph, pivot, budget float64) (SpanningResult, error) {
	sub := g.SubgraphLE(pivot)
	result, err := MinSumSpanningTree(sub, SumKeyCost)
	if err != nil {
		return SpanningResult{}, err
	}
	if result.Tree == nil || result.Sum > budget {
		return SpanningResult{Tree: nil, Sum: posInf, Bottleneck: posInf}, nil
	}
	return result, nil
}
