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

import (
	"fmt"
	"strconv"
)

// Shape lets the render package walk the tree. Annotate adds
// the measured depth of each subtree to its label.
type Shape struct {
	Annotate bool
}

func (s Shape) Label(n *Node) string {
	if s.Annotate {
		return fmt.Sprintf("%d (d=%d)", n.Value, Depth(n))
	}
	return strconv.Itoa(n.Value)
}

func (Shape) Children(n *Node) (*Node, *Node) {
	return n.Left, n.Right
}
