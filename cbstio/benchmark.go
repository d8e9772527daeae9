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
	"encoding/csv"
	"io"
	"strconv"
)

// BenchmarkRow is one line of spec.md §6's CSV output: a single instance
// run through all three named solvers, with their agreed bottleneck and
// cost alongside the unconstrained MBST's for comparison.
type BenchmarkRow struct {
	Path           string
	Nodes          int
	Edges          int
	Budget         float64
	BermanMillis   float64
	PunnenMillis   float64
	EEMillis       float64
	Bottleneck     float64
	BottleneckMBST float64
	Cost           float64
	CostMBST       float64
	Upgrades       bool
}

var csvHeader = []string{
	"Path", "Nodes", "Edges", "Budget", "Berman", "Punnen", "EE",
	"Bottleneck", "Bottleneck_MBST", "Cost", "Cost_MBST", "Upgrades",
}

// WriteBenchmarkCSV writes rows to w with the exact header spec.md §6
// names. Millisecond timings are formatted to three decimals.
func WriteBenchmarkCSV(w io.Writer, rows []BenchmarkRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Path,
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Edges),
			strconv.FormatFloat(r.Budget, 'f', -1, 64),
			strconv.FormatFloat(r.BermanMillis, 'f', 3, 64),
			strconv.FormatFloat(r.PunnenMillis, 'f', 3, 64),
			strconv.FormatFloat(r.EEMillis, 'f', 3, 64),
			strconv.FormatFloat(r.Bottleneck, 'f', -1, 64),
			strconv.FormatFloat(r.BottleneckMBST, 'f', -1, 64),
			strconv.FormatFloat(r.Cost, 'f', -1, 64),
			strconv.FormatFloat(r.CostMBST, 'f', -1, 64),
			strconv.FormatBool(r.Upgrades),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
