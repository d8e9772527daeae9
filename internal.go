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

import "math"

// fifo is a minimal growable queue used by the spanning-tree BFS check.
type fifo[K any] struct {
	elems []K
	head  int
}

func newFIFO[K any]() *fifo[K] {
	return &fifo[K]{}
}

func (f *fifo[K]) empty() bool {
	return f.head >= len(f.elems)
}

func (f *fifo[K]) push(k K) {
	f.elems = append(f.elems, k)
}

func (f *fifo[K]) pop() (K, bool) {
	var k K
	if f.empty() {
		return k, false
	}
	k = f.elems[f.head]
	f.head++
	return k, true
}

// posInf and negInf stand in for the Infeasible sentinels spec.md
// assigns to sum and bottleneck when no spanning tree exists.
const (
	posInf = math.MaxFloat64
	negInf = -math.MaxFloat64
)
