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

import (
	"reflect"
	"testing"
)

func TestUniqueWeights(t *testing.T) {
	edges := []*Edge{}
	for _, w := range []float64{1.0, 3.0, 3.0, 5.0, 2.0} {
		e := NewEdge(0, 1, WithWeight(w))
		edges = append(edges, &e)
	}
	got := uniqueWeights(edges, 1.0, 5.0)
	want := []float64{2.0, 3.0, 5.0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("uniqueWeights = %v, want %v", got, want)
	}
}

func TestUniqueWeightsAtOrAbove(t *testing.T) {
	edges := []*Edge{}
	for _, w := range []float64{1.0, 3.0, 5.0} {
		e := NewEdge(0, 1, WithWeight(w))
		edges = append(edges, &e)
	}
	got := uniqueWeightsAtOrAbove(edges, 3.0)
	want := []float64{3.0, 5.0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("uniqueWeightsAtOrAbove = %v, want %v", got, want)
	}
}

func TestRelevantSlice(t *testing.T) {
	sorted := []float64{1.0, 2.0, 3.0, 4.0, 5.0}
	got := relevantSlice(sorted, 1.0, 4.0)
	want := []float64{2.0, 3.0, 4.0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("relevantSlice = %v, want %v", got, want)
	}
}

func TestUnionEdgesDedups(t *testing.T) {
	a := []Edge{NewEdge(0, 1, WithWeight(1.0))}
	b := []Edge{NewEdge(0, 1, WithWeight(1.0)), NewEdge(1, 2, WithWeight(2.0))}
	got := unionEdges(a, b)
	if len(got) != 2 {
		t.Fatalf("union size = %d, want 2", len(got))
	}
}

func TestUnionEdgesDedupsReversedEndpoints(t *testing.T) {
	a := []Edge{NewEdge(0, 1, WithWeight(1.0))}
	b := []Edge{NewEdge(1, 0, WithWeight(1.0))}
	got := unionEdges(a, b)
	if len(got) != 1 {
		t.Fatalf("union size = %d, want 1 (reversed endpoints are the same edge)", len(got))
	}
}

func TestDisjointEdges(t *testing.T) {
	a := []Edge{NewEdge(0, 1, WithWeight(1.0)), NewEdge(1, 2, WithWeight(2.0))}
	b := []Edge{NewEdge(0, 1, WithWeight(1.0))}
	got := disjointEdges(a, b)
	if len(got) != 1 || got[0].V != 2 {
		t.Fatalf("disjointEdges = %+v, want just the (1,2) edge", got)
	}
}

func TestFilterLEAndGT(t *testing.T) {
	edges := []Edge{
		NewEdge(0, 1, WithWeight(1.0)),
		NewEdge(1, 2, WithWeight(2.0)),
		NewEdge(2, 3, WithWeight(3.0)),
	}
	le := filterLE(edges, 2.0)
	gt := filterGT(edges, 2.0)
	if len(le) != 2 || len(gt) != 1 {
		t.Fatalf("filterLE=%d filterGT=%d, want 2 and 1", len(le), len(gt))
	}
}

func TestUpdateBottleneckMinAndMax(t *testing.T) {
	e := NewEdge(0, 1, WithWeight(3.0))
	if got := updateBottleneck(5.0, e, false); got != 3.0 {
		t.Fatalf("min-mode update = %v, want 3.0", got)
	}
	if got := updateBottleneck(1.0, e, true); got != 3.0 {
		t.Fatalf("max-mode update = %v, want 3.0", got)
	}
	if got := updateBottleneck(5.0, e, true); got != 5.0 {
		t.Fatalf("max-mode update = %v, want 5.0 (edge weight smaller than current)", got)
	}
}

func TestDuplicateEdgesForUpgrades(t *testing.T) {
	g := NewGraph(nodesRange(2))
	g.AddEdge(NewEdge(0, 1, WithWeight(10.0), WithUpgradedWeight(4.0), WithCost(3.0)))
	dup := g.DuplicateEdgesForUpgrades()
	if len(dup.Edges) != 2 {
		t.Fatalf("duplicated edge count = %d, want 2", len(dup.Edges))
	}
	primary, upgraded := dup.Edges[0], dup.Edges[1]
	if primary.Weight != 10.0 || primary.Cost != 0 || primary.Upgraded {
		t.Fatalf("primary copy = %+v", primary)
	}
	if upgraded.Weight != 4.0 || upgraded.Cost != 3.0 || !upgraded.Upgraded {
		t.Fatalf("upgraded copy = %+v", upgraded)
	}
	if upgraded.OrigWeight != 10.0 {
		t.Fatalf("upgraded.OrigWeight = %v, want 10.0", upgraded.OrigWeight)
	}
}
