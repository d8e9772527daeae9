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

func edgesFromWeights(ws []float64) []Edge {
	out := make([]Edge, len(ws))
	for i, w := range ws {
		out[i] = NewEdge(i, i+100, WithWeight(w))
	}
	return out
}

func TestMedianEdges(t *testing.T) {
	edges := edgesFromWeights([]float64{2.0, 1.0, 5.0, 4.0, 3.0})
	m, err := medianEdges(edges)
	if err != nil {
		t.Fatalf("medianEdges: %v", err)
	}
	if m.Weight != 3.0 {
		t.Fatalf("median weight = %v, want 3.0", m.Weight)
	}
}

func TestMedianEdgesWithDuplicate(t *testing.T) {
	edges := edgesFromWeights([]float64{1.0, 2.0, 3.0, 4.0, 5.0, 5.0})
	m, err := medianEdges(edges)
	if err != nil {
		t.Fatalf("medianEdges: %v", err)
	}
	if m.Weight != 3.0 {
		t.Fatalf("median weight = %v, want 3.0", m.Weight)
	}
}

func TestMedianReals(t *testing.T) {
	m, err := medianReals([]float64{2.0, 1.0, 5.0, 4.0, 3.0})
	if err != nil {
		t.Fatalf("medianReals: %v", err)
	}
	if m != 3.0 {
		t.Fatalf("median = %v, want 3.0", m)
	}
}

func TestMedianRealsEmpty(t *testing.T) {
	if _, err := medianReals(nil); err == nil {
		t.Fatal("medianReals(nil) = nil error, want errEmptySequence")
	}
}

func TestMedianEdgesEmpty(t *testing.T) {
	if _, err := medianEdges(nil); err == nil {
		t.Fatal("medianEdges(nil) = nil error, want errEmptySequence")
	}
}
