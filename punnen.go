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

// SolvePunnen narrows [B_low, B_high] - the bottleneck of the
// unconstrained MBST and of the minimum-cost spanning tree - by
// quickselect-median recursion over a shrinking working edge set, per
// spec §4.8.
func SolvePunnen(g *Graph, budget float64) (CBSTResult, error) {
	mbst, err := MinBottleneckSpanningTree(g)
	if err != nil {
		return CBSTResult{}, err
	}
	if mbst.Tree == nil {
		return noSolution(), nil
	}
	bLow := mbst.Bottleneck
	mbstCost := sumCost(mbst.Tree)
	if mbstCost <= budget {
		return CBSTResult{Tree: mbst.Tree, Cost: mbstCost, Bottleneck: bLow, Found: true}, nil
	}

	costResult, err := MinSumSpanningTree(g, SumKeyCost)
	if err != nil {
		return CBSTResult{}, err
	}
	if costResult.Tree == nil || costResult.Sum > budget {
		return noSolution(), nil
	}
	bHigh := costResult.Bottleneck

	leResult, err := MinSumSpanningTreeBudget(g.SubgraphLE(bLow), SumKeyCost, budget)
	if err != nil {
		return CBSTResult{}, err
	}
	if leResult.Tree != nil {
		return CBSTResult{Tree: leResult.Tree, Cost: leResult.Sum, Bottleneck: leResult.Bottleneck, Found: true}, nil
	}

	working := unionEdges(toEdgeValues(g.SubgraphGT(bLow).Edges), costResult.Tree)
	best := CBSTResult{Tree: costResult.Tree, Cost: costResult.Sum, Bottleneck: bHigh, Found: true}
	return punnenNarrow(g.Nodes, working, bLow, bHigh, best, budget)
}

func punnenNarrow(nodes []Node, working []Edge, bLow, bHigh float64, best CBSTResult, budget float64) (CBSTResult, error) {
	relevant := uniqueWeights(edgePtrList(working), bLow, bHigh)
	if len(relevant) <= 2 {
		return best, nil
	}

	work := make([]float64, len(relevant))
	copy(work, relevant)
	m, err := medianReals(work)
	if err != nil {
		return CBSTResult{}, err
	}

	subEdges := filterLE(working, m)
	sub := toEdgePtrs(nodes, subEdges)
	mcst, err := MinSumSpanningTree(sub, SumKeyCost)
	if err != nil {
		return CBSTResult{}, err
	}
	if mcst.Tree == nil {
		debugAssert(false, "punnen: subgraph disconnected after pre-bounding")
		return best, nil
	}

	if mcst.Sum > budget {
		newWorking := unionEdges(filterGT(working, m), mcst.Tree)
		return punnenNarrow(nodes, newWorking, m, bHigh, best, budget)
	}

	best = CBSTResult{Tree: mcst.Tree, Cost: mcst.Sum, Bottleneck: mcst.Bottleneck, Found: true}
	return punnenNarrow(nodes, mcst.Tree, bLow, m, best, budget)
}

func sumCost(edges []Edge) float64 {
	var sum float64
	for _, e := range edges {
		sum += e.Cost
	}
	return sum
}

func edgePtrList(edges []Edge) []*Edge {
	out := make([]*Edge, len(edges))
	for i := range edges {
		out[i] = &edges[i]
	}
	return out
}
