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

import "fmt"

// Algorithm selects which CBST search strategy SolveCBST/SolveCBSTU
// dispatch to.
type Algorithm int

const (
	AlgorithmBerman Algorithm = iota
	AlgorithmPunnen
	AlgorithmEdgeElimination
	// AlgorithmEdgeEliminationFast runs the MBST/MCST-prelude-free
	// bisection described in spec §4.9 ("EE-fast"). It is an additional
	// dispatch value alongside the three named in the CLI contract.
	AlgorithmEdgeEliminationFast
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmBerman:
		return "berman"
	case AlgorithmPunnen:
		return "punnen"
	case AlgorithmEdgeElimination:
		return "edge_elimination"
	case AlgorithmEdgeEliminationFast:
		return "edge_elimination_fast"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a CLI argument to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "berman":
		return AlgorithmBerman, nil
	case "punnen":
		return AlgorithmPunnen, nil
	case "edge_elimination":
		return AlgorithmEdgeElimination, nil
	case "edge_elimination_fast":
		return AlgorithmEdgeEliminationFast, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", s)
	}
}

// SolveMBST computes the minimum bottleneck spanning tree of g as
// given, in g's own orientation. Callers that solve on negated weights
// call g.InverseWeights() on a clone first and read the bottleneck back
// in original units through SpanningResult.OriginalBottleneck.
func SolveMBST(g *Graph) (SpanningResult, error) {
	return MinBottleneckSpanningTree(g)
}

// SolveCBST negates a clone of g's weights and runs the chosen
// algorithm, so the caller always passes weights in original units and
// budget/cost in the units the instance was loaded with.
func SolveCBST(g *Graph, budget float64, algo Algorithm) (CBSTResult, error) {
	working := cloneAndInvert(g)
	return dispatch(working, budget, algo)
}

// SolveCBSTU is SolveCBST plus the CBST-U edge duplication step: every
// edge becomes a zero-cost primary copy and an upgraded copy priced at
// its upgrade cost.
func SolveCBSTU(g *Graph, budget float64, algo Algorithm) (CBSTResult, error) {
	working := cloneAndInvert(g)
	working = working.DuplicateEdgesForUpgrades()
	return dispatch(working, budget, algo)
}

func cloneAndInvert(g *Graph) *Graph {
	edges := make([]*Edge, len(g.Edges))
	for i, e := range g.Edges {
		ce := *e
		edges[i] = &ce
	}
	working := &Graph{Nodes: g.Nodes, Edges: edges}
	working.InverseWeights()
	return working
}

func dispatch(g *Graph, budget float64, algo Algorithm) (CBSTResult, error) {
	switch algo {
	case AlgorithmBerman:
		return SolveBerman(g, budget)
	case AlgorithmPunnen:
		return SolvePunnen(g, budget)
	case AlgorithmEdgeElimination:
		return SolveEdgeElimination(g, budget)
	case AlgorithmEdgeEliminationFast:
		return SolveEdgeEliminationFast(g, budget)
	default:
		return CBSTResult{}, fmt.Errorf("unknown algorithm %v", algo)
	}
}
