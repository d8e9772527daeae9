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

// Node is a graph vertex identified by a dense id in [0,n). Coordinates
// are carried for visualization only and never read by any solver.
type Node struct {
	ID int
	X  float64
	Y  float64
}

// NodeOption configures a Node built by NewNode.
type NodeOption func(*Node)

// WithCoords attaches visualization coordinates to a Node.
func WithCoords(x, y float64) NodeOption {
	return func(n *Node) {
		n.X = x
		n.Y = y
	}
}

// NewNode builds a Node with the given id, applying opts in order.
func NewNode(id int, opts ...NodeOption) Node {
	n := Node{ID: id}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}
