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

package cbstio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flxj/cbst"
)

const validJSON = `{
  "nodes": [
    {"id": 0, "x": 0, "y": 0},
    {"id": 1, "x": 1, "y": 0},
    {"id": 2, "x": 1, "y": 1}
  ],
  "links": [
    {"sourceId": 0, "targetId": 1, "k": 3.0, "kBar": 1.0, "c": 2.0},
    {"sourceId": 1, "targetId": 2, "k": 4.0, "kBar": 2.0, "c": 3.0}
  ]
}`

const validYAML = `
nodes:
  - id: 0
    x: 0
    y: 0
  - id: 1
    x: 1
    y: 0
links:
  - sourceId: 0
    targetId: 1
    k: 3.0
    kBar: 1.0
    c: 2.0
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "instance.json", validJSON)
	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.N() != 3 || len(g.Edges) != 2 {
		t.Fatalf("got %d nodes / %d edges, want 3/2", g.N(), len(g.Edges))
	}
	if g.Edges[0].Weight != 3.0 || g.Edges[0].UpgradedWeight != 1.0 || g.Edges[0].Cost != 2.0 {
		t.Fatalf("first edge = %+v", g.Edges[0])
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTemp(t, "instance.yaml", validYAML)
	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.N() != 2 || len(g.Edges) != 1 {
		t.Fatalf("got %d nodes / %d edges, want 2/1", g.N(), len(g.Edges))
	}
}

func TestLoadNegatedInvertsWeights(t *testing.T) {
	path := writeTemp(t, "instance.json", validJSON)
	g, err := LoadNegated(path)
	if err != nil {
		t.Fatalf("LoadNegated: %v", err)
	}
	if g.Edges[0].Weight != -3.0 || g.Edges[0].UpgradedWeight != -1.0 {
		t.Fatalf("first edge after negation = %+v", g.Edges[0])
	}
}

func TestLoadRejectsNonContiguousIDs(t *testing.T) {
	path := writeTemp(t, "instance.json", `{
		"nodes": [{"id": 0, "x": 0, "y": 0}, {"id": 2, "x": 0, "y": 0}],
		"links": []
	}`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for a non-contiguous id range")
	}
	if !cbst.IsInvalidInput(err) {
		t.Fatalf("err = %v, want an InvalidInput error", err)
	}
}

func TestLoadRejectsSelfLoopLink(t *testing.T) {
	path := writeTemp(t, "instance.json", `{
		"nodes": [{"id": 0, "x": 0, "y": 0}],
		"links": [{"sourceId": 0, "targetId": 0, "k": 1.0, "kBar": 1.0, "c": 0.0}]
	}`)
	_, err := Load(path)
	if err == nil || !cbst.IsInvalidInput(err) {
		t.Fatalf("err = %v, want an InvalidInput error for a self-loop link", err)
	}
}

func TestLoadRejectsNegativeCost(t *testing.T) {
	path := writeTemp(t, "instance.json", `{
		"nodes": [{"id": 0, "x": 0, "y": 0}, {"id": 1, "x": 0, "y": 0}],
		"links": [{"sourceId": 0, "targetId": 1, "k": 1.0, "kBar": 1.0, "c": -1.0}]
	}`)
	_, err := Load(path)
	if err == nil || !cbst.IsInvalidInput(err) {
		t.Fatalf("err = %v, want an InvalidInput error for negative cost", err)
	}
}

func TestLoadRejectsKBarAboveK(t *testing.T) {
	path := writeTemp(t, "instance.json", `{
		"nodes": [{"id": 0, "x": 0, "y": 0}, {"id": 1, "x": 0, "y": 0}],
		"links": [{"sourceId": 0, "targetId": 1, "k": 1.0, "kBar": 2.0, "c": 0.0}]
	}`)
	_, err := Load(path)
	if err == nil || !cbst.IsInvalidInput(err) {
		t.Fatalf("err = %v, want an InvalidInput error for kBar > k", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err == nil || !cbst.IsInvalidInput(err) {
		t.Fatalf("err = %v, want an InvalidInput error for a missing file", err)
	}
}
