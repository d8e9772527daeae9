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

// Package cbstio reads problem instances off disk and writes benchmark
// results back out, in the two formats spec.md §6 names: a JSON/YAML
// {nodes, links} document in, and a fixed-column CSV out.
package cbstio

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flxj/cbst"
)

// nodeDoc and linkDoc mirror the wire shapes of spec.md §6 exactly -
// short field names (k, kBar, c) because that is what the instance
// files on disk use, the same way graphlib.GraphInfo mirrors its own
// wire shape rather than the in-memory Graph/Edge types.
type nodeDoc struct {
	ID int     `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

type linkDoc struct {
	SourceID int     `json:"sourceId" yaml:"sourceId"`
	TargetID int     `json:"targetId" yaml:"targetId"`
	K        float64 `json:"k" yaml:"k"`
	KBar     float64 `json:"kBar" yaml:"kBar"`
	C        float64 `json:"c" yaml:"c"`
}

type instanceDoc struct {
	Nodes []nodeDoc `json:"nodes" yaml:"nodes"`
	Links []linkDoc `json:"links" yaml:"links"`
}

// Load reads the {nodes, links} document at path - JSON if it parses as
// valid JSON, YAML otherwise - validating node-id contiguity and the
// per-link constraints spec.md §6 lists, and returns the resulting
// graph with weights exactly as recorded on disk (no negation).
func Load(path string) (*cbst.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, cbst.NewInvalidInputError("reading %s: %v", path, err)
	}

	var doc instanceDoc
	if json.Valid(raw) {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, cbst.NewInvalidInputError("parsing %s as JSON: %v", path, err)
		}
	} else if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, cbst.NewInvalidInputError("parsing %s as YAML: %v", path, err)
	}

	return buildGraph(path, doc)
}

// LoadNegated is Load followed by InverseWeights, mirroring the
// original CLI's eager negation on the CBST-U entry path so downstream
// minimization primitives see correct-signed weights immediately.
func LoadNegated(path string) (*cbst.Graph, error) {
	g, err := Load(path)
	if err != nil {
		return nil, err
	}
	g.InverseWeights()
	return g, nil
}

func buildGraph(path string, doc instanceDoc) (*cbst.Graph, error) {
	n := len(doc.Nodes)
	seen := make([]bool, n)
	nodes := make([]cbst.Node, n)
	for _, nd := range doc.Nodes {
		if nd.ID < 0 || nd.ID >= n {
			return nil, cbst.NewInvalidInputError("%s: node id %d is not in the contiguous range [0,%d)", path, nd.ID, n)
		}
		if seen[nd.ID] {
			return nil, cbst.NewInvalidInputError("%s: duplicate node id %d", path, nd.ID)
		}
		seen[nd.ID] = true
		nodes[nd.ID] = cbst.NewNode(nd.ID, cbst.WithCoords(nd.X, nd.Y))
	}
	for i, ok := range seen {
		if !ok {
			return nil, cbst.NewInvalidInputError("%s: node id %d is missing from a contiguous [0,%d) range", path, i, n)
		}
	}

	g := cbst.NewGraph(nodes)
	for _, ld := range doc.Links {
		if ld.SourceID == ld.TargetID {
			return nil, cbst.NewInvalidInputError("%s: link %d->%d has equal endpoints", path, ld.SourceID, ld.TargetID)
		}
		if ld.SourceID < 0 || ld.SourceID >= n || ld.TargetID < 0 || ld.TargetID >= n {
			return nil, cbst.NewInvalidInputError("%s: link %d->%d references an out-of-range node", path, ld.SourceID, ld.TargetID)
		}
		if ld.C < 0 {
			return nil, cbst.NewInvalidInputError("%s: link %d->%d has negative upgrade cost %v", path, ld.SourceID, ld.TargetID, ld.C)
		}
		if ld.KBar > ld.K {
			return nil, cbst.NewInvalidInputError("%s: link %d->%d has kBar (%v) > k (%v)", path, ld.SourceID, ld.TargetID, ld.KBar, ld.K)
		}
		if _, err := g.AddEdge(cbst.NewEdge(ld.SourceID, ld.TargetID,
			cbst.WithWeight(ld.K),
			cbst.WithUpgradedWeight(ld.KBar),
			cbst.WithCost(ld.C),
		)); err != nil {
			return nil, cbst.NewInvalidInputError("%s: link %d->%d: %v", path, ld.SourceID, ld.TargetID, err)
		}
	}
	return g, nil
}
