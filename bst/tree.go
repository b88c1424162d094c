// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bst

// Tree owns the root of an unbalanced tree and counts its values.
type Tree struct {
	root *Node
	size int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// From builds a tree by inserting values in order.
func From(values ...int) *Tree {
	t := New()
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Root returns the root node, nil when empty.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of values.
func (t *Tree) Len() int {
	return t.size
}

// Depth measures the current height of the tree.
func (t *Tree) Depth() int {
	return Depth(t.root)
}

// Insert adds value and reports whether it was new.
func (t *Tree) Insert(value int) bool {
	root, added := insert(t.root, value)
	t.root = root
	if added {
		t.size++
	}
	return added
}

// Delete removes value and reports whether it was present.
func (t *Tree) Delete(value int) bool {
	root, removed := deleteNode(t.root, nil, value)
	if !removed {
		return false
	}
	t.root = root
	t.size--
	return true
}

// Search returns the node holding value, or nil.
func (t *Tree) Search(value int) *Node {
	return Search(t.root, value)
}

// Contains reports whether value is present.
func (t *Tree) Contains(value int) bool {
	return Search(t.root, value) != nil
}

// InOrder returns the values in ascending order.
func (t *Tree) InOrder() []int {
	return InOrder(t.root)
}

// Clear releases all nodes.
func (t *Tree) Clear() {
	Release(t.root)
	t.root = nil
	t.size = 0
}
