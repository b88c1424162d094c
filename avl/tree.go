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

package avl

// Tree owns the root of an AVL tree and keeps track of its size.
// It is not safe for concurrent use.
type Tree struct {
	root *Node
	size int

	// OnRotate, when set, is called for every rebalance that rotates.
	OnRotate func(Rotation)
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

func (t *Tree) editor() editor {
	return editor{observe: t.OnRotate}
}

// Root returns the current root, nil for an empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of values in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Height returns the height of the tree, 0 when empty.
func (t *Tree) Height() int {
	return t.root.Depth()
}

// Insert adds value and reports whether it was not already present.
func (t *Tree) Insert(value int) bool {
	root, added := t.editor().insert(t.root, value)
	t.root = root
	if added {
		t.size++
	}
	return added
}

// Delete removes value and reports whether it was present.
func (t *Tree) Delete(value int) bool {
	root, removed := t.editor().deleteAt(t.root, nil, value)
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

// Contains reports whether value is in the tree.
func (t *Tree) Contains(value int) bool {
	return t.Search(value) != nil
}

// Min returns the node holding the smallest value, or nil.
func (t *Tree) Min() *Node {
	return Min(t.root)
}

// Max returns the node holding the biggest value, or nil.
func (t *Tree) Max() *Node {
	return Max(t.root)
}

// InOrder returns the values in ascending order.
func (t *Tree) InOrder() []int {
	return InOrder(t.root)
}

// Clear releases every node and empties the tree.
func (t *Tree) Clear() {
	Release(t.root)
	t.root = nil
	t.size = 0
}
