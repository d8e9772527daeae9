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

// garbage parks the chain of intermediate working graphs EE-fast builds
// during bisection, so the caller can drop them all at once after the
// search completes instead of paying per-iteration deallocation cost in
// the hot loop.
type garbage struct {
	trash []*Graph
}

func newGarbage() *garbage {
	return &garbage{}
}

func (g *garbage) add(wg *Graph) {
	g.trash = append(g.trash, wg)
}

func (g *garbage) clear() {
	g.trash = nil
}

func (g *garbage) len() int {
	return len(g.trash)
}
