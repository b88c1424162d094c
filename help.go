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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Arbor %s**

Watch self-balancing search trees work. Arbor builds AVL and plain binary search
trees from your commands, prints their shape after every step and reports each
rotation the AVL tree performs to stay balanced.

Built with Go %s

# 1. Demonstrations
* **arbor avl** grows an AVL tree and forces every rotation case
* **arbor bst** grows an unbalanced tree and deletes inner nodes and the root
* **arbor ternary** runs the ternary search harness; the exit code is the number of failed cases
* **arbor ternary search 20 --values -28,-10,20** looks up a single value

# 2. Your own scenarios
* **arbor run --file steps.yaml** plays a YAML script
* **arbor scenarios** lists the built-in scenarios

A script names a tree and a list of steps:

    tree: avl
    steps:
      - {title: "Right-right", op: insert, values: [1, 2, 3], print: true}
      - {op: search, values: [2], expect: true}

Operations: insert, delete, search, print, height, balance, inorder, size, validate, clear

# 3. Tools
* **arbor explore** opens an interactive explorer; type operations like *insert 5 3 8; delete 3*
* **arbor stress** replays random inserts and deletes against a reference tree
* **arbor bench** compares arbor's trees with gods and google/btree
* **arbor settings** shows (and creates) ~/.arbor.yaml

# Please be aware
* Copy to clipboard in the explorer on Linux requires 'xclip' or 'xsel'

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
