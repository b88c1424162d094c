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

// Node is a single vertex of an AVL tree. A node exclusively owns its
// children; no node is reachable from two places.
type Node struct {
	Value  int
	Height int // 1 + max(Left.Height, Right.Height), cached
	Left   *Node
	Right  *Node
}

// NewNode creates a detached node holding value with height 1.
func NewNode(value int) *Node {
	return &Node{Value: value, Height: 1}
}

// Depth returns the cached height of the subtree rooted at n, 0 for nil.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	return n.Height
}

// BalanceFactor returns height(right) - height(left). A nil node is balanced.
func (n *Node) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.Right.Depth() - n.Left.Depth()
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

func (n *Node) updateHeight() {
	n.Height = max(n.Left.Depth(), n.Right.Depth()) + 1
}

// Release detaches every node of the subtree rooted at root so that stale
// handles into the tree do not keep the rest of it reachable.
func Release(root *Node) {
	if root == nil {
		return
	}
	Release(root.Left)
	Release(root.Right)
	root.Left, root.Right = nil, nil
	root.Height = 0
}
