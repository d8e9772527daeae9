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

import "testing"

func TestUnionFind(t *testing.T) {
	uf, err := NewUnionFind(10)
	if err != nil {
		t.Fatalf("NewUnionFind: %v", err)
	}
	if uf.Count() != 10 {
		t.Fatalf("count = %d, want 10", uf.Count())
	}

	steps := []struct {
		a, b int
		want int
	}{
		{1, 2, 9},
		{1, 3, 8},
		{1, 4, 7},
		{1, 5, 6},
		{1, 6, 5},
		{1, 7, 4},
		{1, 8, 3},
		{1, 9, 2},
		{1, 0, 1},
	}
	for _, s := range steps {
		if uf.Connected(s.a, s.b) {
			t.Fatalf("Connected(%d,%d) = true before union", s.a, s.b)
		}
		uf.Union(s.a, s.b)
		if !uf.Connected(s.a, s.b) {
			t.Fatalf("Connected(%d,%d) = false after union", s.a, s.b)
		}
		if uf.Count() != s.want {
			t.Fatalf("count after union(%d,%d) = %d, want %d", s.a, s.b, uf.Count(), s.want)
		}
	}
}

func TestUnionFindPathCompression(t *testing.T) {
	uf, err := NewUnionFind(5)
	if err != nil {
		t.Fatalf("NewUnionFind: %v", err)
	}
	uf.Union(0, 1)
	uf.Union(1, 2)
	if uf.Find(0) != uf.Find(2) {
		t.Fatalf("Find(0)=%d, Find(2)=%d, want equal", uf.Find(0), uf.Find(2))
	}
}

func TestNewUnionFindNegativeSize(t *testing.T) {
	if _, err := NewUnionFind(-1); err == nil {
		t.Fatal("NewUnionFind(-1) = nil error, want errNegativeSize")
	}
}

func TestUnionFindUnionReturnsFalseWhenAlreadyConnected(t *testing.T) {
	uf, _ := NewUnionFind(3)
	if !uf.Union(0, 1) {
		t.Fatal("first union of 0,1 returned false")
	}
	if uf.Union(0, 1) {
		t.Fatal("second union of already-connected 0,1 returned true")
	}
}
