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

import "fmt"

// Side names a child slot of a node.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", s)
}

func (s Side) child(n *Node) *Node {
	switch s {
	case Left:
		return n.Left
	case Right:
		return n.Right
	}
	panic(fmt.Sprintf("avl: invalid side %d", s))
}

func (s Side) setChild(n, child *Node) {
	switch s {
	case Left:
		n.Left = child
	case Right:
		n.Right = child
	default:
		panic(fmt.Sprintf("avl: invalid side %d", s))
	}
}

func (s Side) opposite() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	}
	panic(fmt.Sprintf("avl: invalid side %d", s))
}

// Bias selects which end of a subtree a leaf is popped from.
type Bias uint8

const (
	// Smallest descends left.
	Smallest Bias = iota
	// Biggest descends right.
	Biggest
)

func (b Bias) side() Side {
	switch b {
	case Smallest:
		return Left
	case Biggest:
		return Right
	}
	panic(fmt.Sprintf("avl: invalid pop bias %d", b))
}

// Case is one of the four AVL imbalance shapes. The first letter is the
// heavy side of the pivot, the second the heavy side of its heavy child.
type Case uint8

const (
	RR Case = iota + 1
	RL
	LL
	LR
)

func (c Case) String() string {
	switch c {
	case RR:
		return "RR"
	case RL:
		return "RL"
	case LL:
		return "LL"
	case LR:
		return "LR"
	}
	return fmt.Sprintf("Case(%d)", c)
}

// heavy returns the side whose child is promoted into the pivot's place.
func (c Case) heavy() Side {
	switch c {
	case RR, RL:
		return Right
	case LL, LR:
		return Left
	}
	panic(fmt.Sprintf("avl: invalid rotation case %d", c))
}

// Rotation describes a rebalance that restructured the tree.
type Rotation struct {
	Pivot  int  // value of the node whose balance factor left {-1, 0, 1}
	Case   Case // imbalance shape that was resolved
	Factor int  // pivot balance factor before rotating
}

func (r Rotation) String() string {
	return fmt.Sprintf("%s rotation at %d (balance factor %d)", r.Case, r.Pivot, r.Factor)
}

// rotate promotes the child of n on side promote into n's position and
// returns it. The promoted node's inner subtree moves under n. Both heights
// are recomputed, demoted node first.
func rotate(n *Node, promote Side) *Node {
	inner := promote.opposite()
	pivot := promote.child(n)
	promote.setChild(n, inner.child(pivot))
	inner.setChild(pivot, n)

	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

// relink points whichever child slot of parent held old at repl. A nil
// parent means old was the root and the caller owns the rebinding.
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

// editor carries the optional rotation observer through the recursive
// mutations.
type editor struct {
	observe func(Rotation)
}

// rebalance restores the balance invariant at n, whose children are already
// balanced and whose height is current. When a rotation happens the promoted
// node is relinked into parent and returned; otherwise rebalance returns nil.
func (e editor) rebalance(n, parent *Node) *Node {
	factor := n.BalanceFactor()

	var c Case
	switch {
	case factor > 1:
		c = RR
		if n.Right.BalanceFactor() < 0 {
			c = RL
			n.Right = rotate(n.Right, Left)
		}
	case factor < -1:
		c = LL
		if n.Left.BalanceFactor() > 0 {
			c = LR
			n.Left = rotate(n.Left, Right)
		}
	default:
		return nil
	}

	promoted := rotate(n, c.heavy())
	relink(parent, n, promoted)

	if e.observe != nil {
		e.observe(Rotation{Pivot: n.Value, Case: c, Factor: factor})
	}
	return promoted
}

func (e editor) insert(root *Node, value int) (*Node, bool) {
	if root == nil {
		return NewNode(value), true
	}
	return e.insertAt(root, nil, value)
}

// insertAt places value below n and rebalances on the way back up. It
// returns the node now occupying n's position and whether a node was added.
func (e editor) insertAt(n, parent *Node, value int) (*Node, bool) {
	var side Side
	switch {
	case value < n.Value:
		side = Left
	case value > n.Value:
		side = Right
	default:
		return n, false
	}

	if child := side.child(n); child == nil {
		side.setChild(n, NewNode(value))
	} else if _, added := e.insertAt(child, n, value); !added {
		return n, false
	}

	n.updateHeight()
	if promoted := e.rebalance(n, parent); promoted != nil {
		return promoted, true
	}
	return n, true
}

// deleteAt removes value from the subtree at n. It returns the node now
// occupying n's position (nil when the subtree became empty) and whether a
// node was removed.
func (e editor) deleteAt(n, parent *Node, value int) (*Node, bool) {
	if n == nil {
		return nil, false
	}

	switch {
	case value < n.Value:
		if _, removed := e.deleteAt(n.Left, n, value); !removed {
			return n, false
		}
	case value > n.Value:
		if _, removed := e.deleteAt(n.Right, n, value); !removed {
			return n, false
		}
	default:
		n = e.replace(n, parent)
		if n == nil {
			return nil, true
		}
	}

	n.updateHeight()
	if promoted := e.rebalance(n, parent); promoted != nil {
		return promoted, true
	}
	return n, true
}

// replace unlinks n from parent and puts a leaf popped from one of its
// subtrees in its place. The left subtree donates its biggest value when
// present, otherwise the right subtree donates its smallest.
func (e editor) replace(n, parent *Node) *Node {
	var repl *Node
	switch {
	case n.Left != nil:
		repl = e.popLeaf(n.Left, n, Biggest)
	case n.Right != nil:
		repl = e.popLeaf(n.Right, n, Smallest)
	}

	// popLeaf has already relinked the donor slot of n, so neither child
	// of n is repl here.
	if repl != nil {
		repl.Left, repl.Right = n.Left, n.Right
	}

	relink(parent, n, repl)
	n.Left, n.Right = nil, nil
	return repl
}

// popLeaf follows bias down from n to the extreme node of the subtree,
// detaches it and returns it. The extreme node's inner child, if any, takes
// its slot. Nodes on the way back up get their heights recomputed and are
// rebalanced into their parents.
func (e editor) popLeaf(n, parent *Node, bias Bias) *Node {
	outer := bias.side()
	if next := outer.child(n); next != nil {
		leaf := e.popLeaf(next, n, bias)
		n.updateHeight()
		e.rebalance(n, parent)
		return leaf
	}

	relink(parent, n, outer.opposite().child(n))
	n.Left, n.Right = nil, nil
	n.Height = 1
	return n
}

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

// Insert adds value to the tree rooted at root and returns the new root.
// Inserting a value that is already present leaves the tree unchanged.
// Callers must rebind their root to the returned node.
func Insert(root *Node, value int) *Node {
	root, _ = editor{}.insert(root, value)
	return root
}

// Delete removes value from the tree rooted at root and returns the new
// root, nil once the tree is empty. Deleting an absent value is a no-op.
func Delete(root *Node, value int) *Node {
	root, _ = editor{}.deleteAt(root, nil, value)
	return root
}

// Min returns the node holding the smallest value, or nil.
func Min(root *Node) *Node {
	if root == nil {
		return nil
	}
	for root.Left != nil {
		root = root.Left
	}
	return root
}

// Max returns the node holding the biggest value, or nil.
func Max(root *Node) *Node {
	if root == nil {
		return nil
	}
	for root.Right != nil {
		root = root.Right
	}
	return root
}

// InOrder returns the values of the tree in ascending order.
func InOrder(root *Node) []int {
	var values []int
	walk(root, func(n *Node) { values = append(values, n.Value) })
	return values
}

// Len counts the nodes of the tree rooted at root.
func Len(root *Node) int {
	count := 0
	walk(root, func(*Node) { count++ })
	return count
}

func walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	walk(n.Left, fn)
	fn(n)
	walk(n.Right, fn)
}
