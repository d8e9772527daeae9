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

// CBSTResult is the outcome of a CBST/CBST-U solve. Found is false iff
// no spanning tree satisfies the budget (spec's Infeasible kind,
// surfaced as a normal, non-error result) - in that case Tree, Cost
// and Bottleneck are the documented zero sentinels, not +Inf.
type CBSTResult struct {
	Tree       []Edge
	Cost       float64
	Bottleneck float64
	Found      bool
}

func noSolution() CBSTResult {
	return CBSTResult{Found: false}
}

// OriginalBottleneck undoes the weight negation SolveCBST/SolveCBSTU
// apply before searching, returning the bottleneck in the units the
// instance was loaded with.
func (r CBSTResult) OriginalBottleneck() float64 {
	if !r.Found {
		return 0
	}
	return -r.Bottleneck
}
