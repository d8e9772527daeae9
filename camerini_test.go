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

import "testing"

var eightNodeEdgeList = []struct {
	u, v int
	w    float64
}{
	{0, 1, 1.0}, {0, 2, 2.0}, {0, 3, 3.0}, {0, 4, 4.0}, {0, 5, 5.0}, {0, 6, 6.0}, {0, 7, 7.0},
	{1, 2, 1.0}, {1, 3, 2.0}, {1, 4, 3.0}, {1, 5, 4.0}, {1, 6, 5.0}, {1, 7, 6.0},
	{2, 3, 1.0}, {2, 4, 2.0}, {2, 5, 3.0}, {2, 6, 4.0}, {2, 7, 5.0},
	{3, 4, 1.0}, {3, 5, 2.0}, {3, 6, 3.0}, {3, 7, 4.0},
	{4, 5, 1.0}, {4, 6, 2.0}, {4, 7, 3.0},
	{5, 6, 1.0}, {5, 7, 2.0},
	{6, 7, 1.0},
}

func buildEightNodeGraph(negate bool) *Graph {
	g := NewGraph(nodesRange(8))
	for _, e := range eightNodeEdgeList {
		w := e.w
		if negate {
			w = -w
		}
		g.AddEdge(NewEdge(e.u, e.v, WithWeight(w)))
	}
	return g
}

func TestMinBottleneckSpanningTreeAgreesWithKruskal(t *testing.T) {
	g := buildEightNodeGraph(false)
	kr, err := MinSumSpanningTree(g, SumKeyWeight)
	if err != nil {
		t.Fatalf("MinSumSpanningTree: %v", err)
	}
	cam, err := MinBottleneckSpanningTree(g)
	if err != nil {
		t.Fatalf("MinBottleneckSpanningTree: %v", err)
	}
	if cam.Tree == nil {
		t.Fatal("expected a spanning tree")
	}
	if !IsSpanningTree(8, cam.Tree) {
		t.Fatal("camerini result is not a spanning tree")
	}
	if cam.Bottleneck != kr.Bottleneck {
		t.Fatalf("camerini bottleneck = %v, kruskal bottleneck = %v", cam.Bottleneck, kr.Bottleneck)
	}
}

func TestMinBottleneckSpanningTreeNegativeWeights(t *testing.T) {
	g := buildEightNodeGraph(true)
	kr, err := MinSumSpanningTree(g, SumKeyWeight)
	if err != nil {
		t.Fatalf("MinSumSpanningTree: %v", err)
	}
	cam, err := MinBottleneckSpanningTree(g)
	if err != nil {
		t.Fatalf("MinBottleneckSpanningTree: %v", err)
	}
	if cam.Tree == nil {
		t.Fatal("expected a spanning tree")
	}
	if !IsSpanningTree(8, cam.Tree) {
		t.Fatal("camerini result is not a spanning tree")
	}
	if cam.Bottleneck != kr.Bottleneck {
		t.Fatalf("camerini bottleneck = %v, kruskal bottleneck = %v", cam.Bottleneck, kr.Bottleneck)
	}
	if cam.Bottleneck != -4.0 {
		t.Fatalf("bottleneck = %v, want -4.0", cam.Bottleneck)
	}
}

func TestMinBottleneckSpanningTreeSingleNode(t *testing.T) {
	g := NewGraph(nodesRange(1))
	result, err := MinBottleneckSpanningTree(g)
	if err != nil {
		t.Fatalf("MinBottleneckSpanningTree: %v", err)
	}
	if result.Tree != nil {
		t.Fatal("a single node has no edges, want nil tree")
	}
	if result.Bottleneck != 0 {
		t.Fatalf("bottleneck = %v, want 0", result.Bottleneck)
	}
}

func TestMinBottleneckSpanningTreeEmptyGraph(t *testing.T) {
	g := NewGraph(nil)
	result, err := MinBottleneckSpanningTree(g)
	if err != nil {
		t.Fatalf("MinBottleneckSpanningTree: %v", err)
	}
	if result.Tree != nil {
		t.Fatal("empty graph, want nil tree")
	}
}

func TestMinBottleneckSpanningTreeDisconnected(t *testing.T) {
	g := NewGraph(nodesRange(4))
	g.AddEdge(NewEdge(0, 1, WithWeight(1.0)))
	g.AddEdge(NewEdge(2, 3, WithWeight(1.0)))
	result, err := MinBottleneckSpanningTree(g)
	if err != nil {
		t.Fatalf("MinBottleneckSpanningTree: %v", err)
	}
	if result.Tree != nil {
		t.Fatal("expected Infeasible for a disconnected graph")
	}
}

func TestMinBottleneckSpanningTreeTwoNodes(t *testing.T) {
	g := NewGraph(nodesRange(2))
	g.AddEdge(NewEdge(0, 1, WithWeight(5.0)))
	result, err := MinBottleneckSpanningTree(g)
	if err != nil {
		t.Fatalf("MinBottleneckSpanningTree: %v", err)
	}
	if len(result.Tree) != 1 || result.Bottleneck != 5.0 {
		t.Fatalf("result = %+v, want a single edge with bottleneck 5.0", result)
	}
}
