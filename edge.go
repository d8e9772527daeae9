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

// Edge is an undirected pair (U,V) carrying the weight/cost attributes
// CBST-U needs. OrigU/OrigV record the endpoints before Camerini's
// super-graph contraction remaps U/V to super-node indices; they are
// left equal to U/V for edges that have never been contracted.
type Edge struct {
	U, V           int
	Weight         float64
	UpgradedWeight float64
	Cost           float64
	Upgraded       bool
	OrigU, OrigV   int
	// OrigWeight is the pre-upgrade primary weight w. For a primary (not
	// upgraded) edge it equals Weight. Edge-Elimination's pre-filter
	// uses it to discard upgraded copies that can never improve on a
	// bottleneck already achieved at or below w.
	OrigWeight    float64
	hasOrigWeight bool
}

// EdgeOption configures an Edge built by NewEdge.
type EdgeOption func(*Edge)

// WithWeight sets the primary weight. Plain CBST graphs (no upgrades)
// should also set the same value via WithUpgradedWeight, or simply omit
// it - NewEdge defaults UpgradedWeight to Weight.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// WithUpgradedWeight sets the post-upgrade weight (must be <= Weight,
// or >= after weight inversion).
func WithUpgradedWeight(wBar float64) EdgeOption {
	return func(e *Edge) { e.UpgradedWeight = wBar }
}

// WithCost sets the upgrade cost.
func WithCost(c float64) EdgeOption {
	return func(e *Edge) { e.Cost = c }
}

// WithUpgraded marks the edge as the upgraded copy of an original edge.
func WithUpgraded(u bool) EdgeOption {
	return func(e *Edge) { e.Upgraded = u }
}

// WithOriginalEndpoints records the pre-contraction endpoints.
func WithOriginalEndpoints(u, v int) EdgeOption {
	return func(e *Edge) { e.OrigU, e.OrigV = u, v }
}

// WithOrigWeight records the pre-upgrade primary weight explicitly,
// overriding NewEdge's default of using Weight.
func WithOrigWeight(w float64) EdgeOption {
	return func(e *Edge) { e.OrigWeight = w; e.hasOrigWeight = true }
}

// NewEdge builds an Edge between u and v, applying opts in order. The
// upgraded weight defaults to the primary weight (the "no upgrade"
// case), and original endpoints default to (u,v).
func NewEdge(u, v int, opts ...EdgeOption) Edge {
	e := Edge{U: u, V: v, OrigU: u, OrigV: v}
	for _, opt := range opts {
		opt(&e)
	}
	if e.UpgradedWeight == 0 && !e.Upgraded {
		e.UpgradedWeight = e.Weight
	}
	if !e.hasOrigWeight {
		e.OrigWeight = e.Weight
	}
	return e
}

// key returns the sum value used by Kruskal for the given calculation
// mode: Weight or Cost.
func (e Edge) key(k SumKey) float64 {
	if k == SumKeyCost {
		return e.Cost
	}
	return e.Weight
}

// equalStructurally implements the (u,v,weight,upgradedWeight,cost)
// equality used by unionEdges, ignoring OrigU/OrigV and Upgraded - the
// same relaxation the original edge type's PartialEq impl uses.
func (e Edge) equalStructurally(o Edge) bool {
	return (e.U == o.U && e.V == o.V || e.U == o.V && e.V == o.U) &&
		e.Weight == o.Weight &&
		e.UpgradedWeight == o.UpgradedWeight &&
		e.Cost == o.Cost
}

// lessEdge implements the total order (weight, u, v) that every sort and
// quickselect comparison in this package uses, so ties never depend on
// an unstable or partial comparison.
func lessEdge(a, b Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.U != b.U {
		return a.U < b.U
	}
	return a.V < b.V
}

// lessEdgeKey is lessEdge but ordered by an arbitrary sum key (weight or
// cost) instead of weight, used by Kruskal's sort.
func lessEdgeKey(a, b Edge, k SumKey) bool {
	ka, kb := a.key(k), b.key(k)
	if ka != kb {
		return ka < kb
	}
	if a.U != b.U {
		return a.U < b.U
	}
	return a.V < b.V
}
