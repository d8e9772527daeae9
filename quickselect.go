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

import "math/rand"

// medianEdges returns the edge at sorted position floor((len-1)/2)
// under the total order (weight, u, v), reordering edges in place via
// quickselect. edges must be non-empty.
func medianEdges(edges []Edge) (Edge, error) {
	if len(edges) == 0 {
		return Edge{}, errEmptySequence
	}
	mid := (len(edges) - 1) / 2
	quickselectEdges(edges, 0, len(edges)-1, mid)
	return edges[mid], nil
}

func quickselectEdges(edges []Edge, left, right, k int) {
	for left < right {
		p := left + rand.Intn(right-left+1)
		edges[p], edges[right] = edges[right], edges[p]
		pivot := edges[right]
		store := left
		for i := left; i < right; i++ {
			if lessEdge(edges[i], pivot) {
				edges[i], edges[store] = edges[store], edges[i]
				store++
			}
		}
		edges[store], edges[right] = edges[right], edges[store]
		switch {
		case k == store:
			return
		case k < store:
			right = store - 1
		default:
			left = store + 1
		}
	}
}

// medianReals returns the value at sorted position floor((len-1)/2),
// reordering xs in place via quickselect. xs must be non-empty.
func medianReals(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, errEmptySequence
	}
	mid := (len(xs) - 1) / 2
	quickselectReals(xs, 0, len(xs)-1, mid)
	return xs[mid], nil
}

func quickselectReals(xs []float64, left, right, k int) {
	for left < right {
		p := left + rand.Intn(right-left+1)
		xs[p], xs[right] = xs[right], xs[p]
		pivot := xs[right]
		store := left
		for i := left; i < right; i++ {
			if xs[i] < pivot {
				xs[i], xs[store] = xs[store], xs[i]
				store++
			}
		}
		xs[store], xs[right] = xs[right], xs[store]
		switch {
		case k == store:
			return
		case k < store:
			right = store - 1
		default:
			left = store + 1
		}
	}
}
