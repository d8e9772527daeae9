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

// Package cbst computes minimum bottleneck spanning trees (MBST) and
// constrained bottleneck spanning trees (CBST, with optional per-edge
// upgrades) on undirected weighted graphs.
//
// The package exposes a minimum-sum spanning tree engine (Kruskal),
// a linear-time minimum-bottleneck engine (Camerini), and three CBST
// solvers - Berman, Punnen and Edge-Elimination - that layer different
// search strategies over those two engines. SolveMBST, SolveCBST and
// SolveCBSTU are the published entry points; everything else is the
// shared substrate they're built from.
package cbst
