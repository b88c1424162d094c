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

import (
	"errors"
	"fmt"
)

var (
	ErrOrder      = errors.New("avl: values out of order")
	ErrHeight     = errors.New("avl: cached height is stale")
	ErrUnbalanced = errors.New("avl: balance factor out of range")
)

// Validate walks the whole tree and checks the search-tree ordering, every
// cached height and every balance factor. It returns the first violation.
func Validate(root *Node) error {
	_, err := validate(root, nil, nil)
	return err
}

func validate(n *Node, lo, hi *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if (lo != nil && n.Value <= *lo) || (hi != nil && n.Value >= *hi) {
		return 0, fmt.Errorf("%w: %d", ErrOrder, n.Value)
	}

	lh, err := validate(n.Left, lo, &n.Value)
	if err != nil {
		return 0, err
	}
	rh, err := validate(n.Right, &n.Value, hi)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if n.Height != h {
		return 0, fmt.Errorf("%w: node %d caches %d, measured %d", ErrHeight, n.Value, n.Height, h)
	}
	if f := rh - lh; f < -1 || f > 1 {
		return 0, fmt.Errorf("%w: node %d has factor %d", ErrUnbalanced, n.Value, f)
	}
	return h, nil
}
