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

// Package bst is a binary search tree without any balancing. Its shape
// depends only on the order of insertions and deletions; sorted input
// degrades it into a list.
package bst

import "fmt"

// Node is a vertex of the tree. Each node exclusively owns its children.
type Node struct {
	Value int
	Left  *Node
	Right *Node
}

// NewNode creates a detached node holding value.
func NewNode(value int) *Node {
	return &Node{Value: value}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Bias selects which end of a subtree a leaf is popped from.
type Bias uint8

const (
	Smallest Bias = iota
	Biggest
)

// Search returns the node holding value, or nil.
func Search(node *Node, value int) *Node {
	if node == nil {
		return nil
	}
	if value < node.Value {
		return Search(node.Left, value)
	} else if value > node.Value {
		return Search(node.Right, value)
	}
	return node
}

// Insert adds value below root and returns the root, which only changes
// when the tree was empty. Duplicates are ignored.
func Insert(root *Node, value int) *Node {
	root, _ = insert(root, value)
	return root
}

func insert(root *Node, value int) (*Node, bool) {
	if root == nil {
		return NewNode(value), true
	}
	return root, insertNode(root, value)
}

func insertNode(current *Node, value int) bool {
	if value < current.Value {
		if current.Left == nil {
			current.Left = NewNode(value)
			return true
		}
		return insertNode(current.Left, value)
	} else if value > current.Value {
		if current.Right == nil {
			current.Right = NewNode(value)
			return true
		}
		return insertNode(current.Right, value)
	}
	return false
}

// Delete removes value and returns the root, which changes only when the
// root itself was deleted.
func Delete(root *Node, value int) *Node {
	root, _ = deleteNode(root, nil, value)
	return root
}

// deleteNode returns the node occupying n's position after the removal and
// whether anything was removed.
func deleteNode(n, parent *Node, value int) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	if value == n.Value {
		return replace(n, parent), true
	}

	var removed bool
	if value < n.Value {
		_, removed = deleteNode(n.Left, n, value)
	} else {
		_, removed = deleteNode(n.Right, n, value)
	}
	return n, removed
}

func replace(n, parent *Node) *Node {
	var repl *Node
	switch {
	case n.Left != nil:
		repl = popLeaf(n.Left, n, Biggest)
	case n.Right != nil:
		repl = popLeaf(n.Right, n, Smallest)
	}

	if repl != nil {
		repl.Left, repl.Right = n.Left, n.Right
	}

	relink(parent, n, repl)
	n.Left, n.Right = nil, nil
	return repl
}

// popLeaf detaches and returns the extreme node of the subtree at n in the
// bias direction. The extreme node's inner child takes its place.
func popLeaf(n, parent *Node, bias Bias) *Node {
	var next, inner *Node
	switch bias {
	case Smallest:
		next, inner = n.Left, n.Right
	case Biggest:
		next, inner = n.Right, n.Left
	default:
		panic(fmt.Sprintf("bst: invalid pop bias %d", bias))
	}

	if next != nil {
		return popLeaf(next, n, bias)
	}

	relink(parent, n, inner)
	n.Left, n.Right = nil, nil
	return n
}

func relink(parent, old, repl *Node) {
	if parent == nil {
		return
	}
	if parent.Left == old {
		parent.Left = repl
	} else {
		parent.Right = repl
	}
}

// Release detaches every node below root.
func Release(root *Node) {
	if root == nil {
		return
	}
	Release(root.Left)
	Release(root.Right)
	root.Left, root.Right = nil, nil
}

// Depth measures the height of the tree, 0 for an empty one.
func Depth(root *Node) int {
	if root == nil {
		return 0
	}
	return max(Depth(root.Left), Depth(root.Right)) + 1
}

// InOrder returns the values in ascending order.
func InOrder(root *Node) []int {
	var values []int
	inOrderTraversal(root, &values)
	return values
}

func inOrderTraversal(node *Node, values *[]int) {
	if node != nil {
		inOrderTraversal(node.Left, values)
		*values = append(*values, node.Value)
		inOrderTraversal(node.Right, values)
	}
}

// Min returns the node holding the smallest value, or nil.
func Min(root *Node) *Node {
	for root != nil && root.Left != nil {
		root = root.Left
	}
	return root
}

// Max returns the node holding the biggest value, or nil.
func Max(root *Node) *Node {
	for root != nil && root.Right != nil {
		root = root.Right
	}
	return root
}
