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

package render

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	value       int
	left, right *node
}

type shape struct{}

func (shape) Label(n *node) string            { return strconv.Itoa(n.value) }
func (shape) Children(n *node) (*node, *node) { return n.left, n.right }

func leaf(v int) *node { return &node{value: v} }

func TestStringEmpty(t *testing.T) {
	assert.Equal(t, "", String[*node](nil, shape{}, Plain))
}

func TestStringSingleNode(t *testing.T) {
	assert.Equal(t, "7\n", String(leaf(7), shape{}, Plain))
}

func TestStringNested(t *testing.T) {
	root := &node{
		value: 10,
		left:  &node{value: 5, left: leaf(3), right: leaf(8)},
		right: &node{value: 15, right: leaf(20)},
	}

	expected := strings.Join([]string{
		"10",
		"|-> 5",
		"|   |-> 3",
		"|   ┗-> 8",
		"┗-> 15",
		"    |->",
		"    ┗-> 20",
		"",
	}, "\n")
	assert.Equal(t, expected, String(root, shape{}, Plain))
}

func TestStringDeepIndentHasNoCeiling(t *testing.T) {
	root := leaf(0)
	cur := root
	for i := 1; i < 400; i++ {
		cur.right = leaf(i)
		cur = cur.right
	}
	out := String(root, shape{}, Plain)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 1+2*399)
	assert.Equal(t, strings.Repeat("    ", 398)+"┗-> 399", lines[len(lines)-1])
}

func TestOutlineAppliesStyle(t *testing.T) {
	root := &node{value: 2, left: leaf(1)}
	style := Style{
		Label:     func(s string) string { return "<" + s + ">" },
		Connector: func(s string) string { return "[" + s + "]" },
	}

	var buf bytes.Buffer
	require.NoError(t, Outline(&buf, root, shape{}, style))
	assert.Equal(t, "<2>\n[|-> ]<1>\n[┗->]\n", buf.String())
}

func TestColoredKeepsText(t *testing.T) {
	root := &node{value: 2, left: leaf(1), right: leaf(3)}
	style := Colored()

	assert.Equal(t, "10", ansi.Strip(style.Label("10")))
	assert.Equal(t, LeftConnector, ansi.Strip(style.Connector(LeftConnector)))
	assert.Equal(t, String(root, shape{}, Plain), ansi.Strip(String(root, shape{}, style)))
}
