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

// Package render prints binary trees as indented outlines:
//
//	10
//	|-> 5
//	|   |-> 3
//	|   ┗-> 8
//	┗-> 15
//	    |->
//	    ┗-> 20
//
// A left child hangs off "|-> " and a right child off "┗-> ". A node with a
// single child still prints the empty connector of the missing one.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	LeftConnector  = "|-> "
	RightConnector = "┗-> "

	leftIndent  = "|   "
	rightIndent = "    "
)

// Shape exposes a binary tree to the printer. The zero value of N is the
// absent node.
type Shape[N comparable] interface {
	Label(n N) string
	Children(n N) (left, right N)
}

// Style decorates labels and connectors. Nil funcs leave text untouched.
type Style struct {
	Label     func(string) string
	Connector func(string) string
}

// Plain renders without any escape sequences.
var Plain = Style{}

// Colored returns a lipgloss style for terminals.
func Colored() Style {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	connector := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Label:     func(s string) string { return label.Render(s) },
		Connector: func(s string) string { return connector.Render(s) },
	}
}

func apply(fn func(string) string, s string) string {
	if fn == nil {
		return s
	}
	return fn(s)
}

type printer[N comparable] struct {
	b      strings.Builder
	shape  Shape[N]
	style  Style
	indent []string
}

func (p *printer[N]) padding() {
	for _, s := range p.indent {
		p.b.WriteString(apply(p.style.Connector, s))
	}
}

func (p *printer[N]) node(n N, connector string) {
	var zero N
	if connector != "" {
		p.b.WriteString(apply(p.style.Connector, connector))
	}
	p.b.WriteString(apply(p.style.Label, p.shape.Label(n)))
	p.b.WriteByte('\n')

	left, right := p.shape.Children(n)
	if left == zero && right == zero {
		return
	}
	p.child(left, LeftConnector, leftIndent)
	p.child(right, RightConnector, rightIndent)
}

func (p *printer[N]) child(n N, connector, indent string) {
	var zero N
	p.padding()
	if n == zero {
		p.b.WriteString(apply(p.style.Connector, strings.TrimRight(connector, " ")))
		p.b.WriteByte('\n')
		return
	}
	p.indent = append(p.indent, indent)
	p.node(n, connector)
	p.indent = p.indent[:len(p.indent)-1]
}

// String renders the tree rooted at root. An empty tree renders as "".
func String[N comparable](root N, shape Shape[N], style Style) string {
	var zero N
	if root == zero {
		return ""
	}
	p := &printer[N]{shape: shape, style: style}
	p.node(root, "")
	return p.b.String()
}

// Outline writes the rendering of root to w.
func Outline[N comparable](w io.Writer, root N, shape Shape[N], style Style) error {
	_, err := io.WriteString(w, String(root, shape, style))
	return err
}
