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

package scenarios

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/bst"
	"github.com/cybrota/arbor/render"
)

// Tree kinds understood by NewSession.
const (
	KindAVL = "avl"
	KindBST = "bst"
)

var errNotTracked = errors.New("balance factors are only tracked by avl trees")

// tree is the common surface of the two tree packages.
type tree interface {
	Insert(value int) bool
	Delete(value int) bool
	Contains(value int) bool
	Len() int
	InOrder() []int
	Clear()

	height() int
	balance(value int) (int, bool, error)
	validate() error
	render(from *int, style render.Style, annotate bool) string
	preorder() []int
}

type avlTree struct {
	*avl.Tree
}

func (t avlTree) height() int {
	return t.Height()
}

func (t avlTree) balance(value int) (int, bool, error) {
	n := t.Search(value)
	if n == nil {
		return 0, false, nil
	}
	return n.BalanceFactor(), true, nil
}

func (t avlTree) validate() error {
	if err := avl.Validate(t.Root()); err != nil {
		return err
	}
	if n := avl.Len(t.Root()); n != t.Len() {
		return fmt.Errorf("tree holds %d nodes but counts %d", n, t.Len())
	}
	return nil
}

func (t avlTree) render(from *int, style render.Style, annotate bool) string {
	root := t.Root()
	if from != nil {
		root = t.Search(*from)
	}
	return render.String(root, avl.Shape{Annotate: annotate}, style)
}

func (t avlTree) preorder() []int {
	var values []int
	var visit func(n *avl.Node)
	visit = func(n *avl.Node) {
		if n == nil {
			return
		}
		values = append(values, n.Value)
		visit(n.Left)
		visit(n.Right)
	}
	visit(t.Root())
	return values
}

type bstTree struct {
	*bst.Tree
}

func (t bstTree) height() int {
	return t.Depth()
}

func (t bstTree) balance(int) (int, bool, error) {
	return 0, false, errNotTracked
}

func (t bstTree) validate() error {
	values := t.InOrder()
	for i := 1; i < len(values); i++ {
		if values[i-1] >= values[i] {
			return fmt.Errorf("values out of order: %d before %d", values[i-1], values[i])
		}
	}
	if len(values) != t.Len() {
		return fmt.Errorf("tree holds %d nodes but counts %d", len(values), t.Len())
	}
	return nil
}

func (t bstTree) render(from *int, style render.Style, annotate bool) string {
	root := t.Root()
	if from != nil {
		root = t.Search(*from)
	}
	return render.String(root, bst.Shape{Annotate: annotate}, style)
}

func (t bstTree) preorder() []int {
	var values []int
	var visit func(n *bst.Node)
	visit = func(n *bst.Node) {
		if n == nil {
			return
		}
		values = append(values, n.Value)
		visit(n.Left)
		visit(n.Right)
	}
	visit(t.Root())
	return values
}

// Session applies commands to one tree and reports what happened.
type Session struct {
	kind string
	tree tree
	opts Options
	out  *strings.Builder

	// rotations made by the value currently being applied
	rotations []avl.Rotation
}

// NewSession creates an empty tree of the given kind.
func NewSession(kind string, opts Options) (*Session, error) {
	s := &Session{kind: kind, opts: opts.withDefaults(), out: &strings.Builder{}}

	switch kind {
	case KindAVL:
		t := avl.New()
		t.OnRotate = func(r avl.Rotation) {
			s.opts.Logger.Debug("rotation", "case", r.Case.String(), "pivot", r.Pivot, "factor", r.Factor)
			s.rotations = append(s.rotations, r)
		}
		s.tree = avlTree{t}
	case KindBST:
		s.tree = bstTree{bst.New()}
	default:
		return nil, fmt.Errorf("unknown tree kind %q (want %s or %s)", kind, KindAVL, KindBST)
	}
	return s, nil
}

// Kind returns the tree kind of the session.
func (s *Session) Kind() string {
	return s.kind
}

// Len returns the number of values in the tree.
func (s *Session) Len() int {
	return s.tree.Len()
}

// Values returns the values in ascending order.
func (s *Session) Values() []int {
	return s.tree.InOrder()
}

// Outline renders the whole tree with the session style.
func (s *Session) Outline() string {
	return s.Render(s.opts.Style)
}

func (s *Session) Render(style render.Style) string {
	return s.tree.render(nil, style, s.opts.Annotate)
}

// Fingerprint identifies the current shape of the tree. Two trees with the
// same fingerprint render identically.
func (s *Session) Fingerprint() string {
	values := s.tree.preorder()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return s.kind + ":" + strings.Join(parts, ",")
}

// Exec applies cmd and returns the text it produced along with the
// command's outcome: whether values were added, removed or found, or
// whether validation passed. Value-level misses are outcomes, not errors.
func (s *Session) Exec(cmd *Command) (string, bool, error) {
	s.out.Reset()
	ok, err := s.exec(cmd)
	s.opts.Logger.Debug("exec", "tree", s.kind, "command", cmd.FullName, "ok", ok, "size", s.tree.Len())
	return s.out.String(), ok, err
}

// flushRotations writes the rotations of the last applied value below its
// line.
func (s *Session) flushRotations() {
	for _, r := range s.rotations {
		fmt.Fprintf(s.out, "  %s\n", r)
	}
	s.rotations = s.rotations[:0]
}

func (s *Session) exec(cmd *Command) (bool, error) {
	values, err := cmd.Values()
	if err != nil {
		return false, err
	}

	switch cmd.Op {
	case "insert", "add":
		if len(values) == 0 {
			return false, fmt.Errorf("%s: expected at least one value", cmd.Op)
		}
		all := true
		for _, v := range values {
			if s.tree.Insert(v) {
				fmt.Fprintf(s.out, "inserted %d\n", v)
				s.flushRotations()
			} else {
				all = false
				fmt.Fprintf(s.out, "%d already present\n", v)
			}
		}
		return all, nil

	case "delete", "del", "remove":
		if len(values) == 0 {
			return false, fmt.Errorf("%s: expected at least one value", cmd.Op)
		}
		all := true
		for _, v := range values {
			if s.tree.Delete(v) {
				fmt.Fprintf(s.out, "deleted %d\n", v)
				s.flushRotations()
			} else {
				all = false
				fmt.Fprintf(s.out, "%d not found\n", v)
			}
		}
		return all, nil

	case "search", "find":
		if len(values) == 0 {
			return false, fmt.Errorf("%s: expected at least one value", cmd.Op)
		}
		all := true
		for _, v := range values {
			if !s.tree.Contains(v) {
				all = false
				fmt.Fprintf(s.out, "%d not found\n", v)
				continue
			}
			s.out.WriteString(s.tree.render(&v, s.opts.Style, s.opts.Annotate))
		}
		return all, nil

	case "print", "show":
		s.out.WriteString(s.Outline())
		return s.tree.Len() > 0, nil

	case "height":
		fmt.Fprintf(s.out, "height: %d\n", s.tree.height())
		return true, nil

	case "balance":
		if len(values) != 1 {
			return false, fmt.Errorf("%s: expected exactly one value", cmd.Op)
		}
		factor, found, err := s.tree.balance(values[0])
		if err != nil {
			return false, err
		}
		if !found {
			fmt.Fprintf(s.out, "%d not found\n", values[0])
			return false, nil
		}
		fmt.Fprintf(s.out, "balance factor of %d: %d\n", values[0], factor)
		return true, nil

	case "inorder", "values":
		parts := make([]string, 0, s.tree.Len())
		for _, v := range s.tree.InOrder() {
			parts = append(parts, strconv.Itoa(v))
		}
		fmt.Fprintf(s.out, "[%s]\n", strings.Join(parts, " "))
		return true, nil

	case "size", "len":
		fmt.Fprintf(s.out, "size: %d\n", s.tree.Len())
		return true, nil

	case "validate", "check":
		if err := s.tree.validate(); err != nil {
			fmt.Fprintf(s.out, "invalid: %v\n", err)
			return false, nil
		}
		s.out.WriteString("ok\n")
		return true, nil

	case "clear":
		s.tree.Clear()
		return true, nil
	}

	return false, fmt.Errorf("%w %q", ErrUnknownOp, cmd.Op)
}

// Ops lists the operations Exec understands, for help screens.
func Ops() []string {
	ops := []string{"insert", "delete", "search", "print", "height", "balance", "inorder", "size", "validate", "clear"}
	slices.Sort(ops)
	return ops
}
