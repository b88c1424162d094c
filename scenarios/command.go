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
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ErrUnknownOp is returned for a command whose operation is not supported.
var ErrUnknownOp = errors.New("unknown operation")

// Command represents a parsed tree command with its parts
type Command struct {
	Parts    []string
	Op       string
	Args     []string
	FullName string
}

// NewCommand creates a new Command from command parts
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		Op:       strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// CommandOf builds a command from an operation and integer operands.
func CommandOf(op string, values ...int) *Command {
	parts := make([]string, 0, len(values)+1)
	parts = append(parts, op)
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return NewCommand(parts)
}

// HasArgs checks if command has at least n operands
func (c *Command) HasArgs(n int) bool {
	return len(c.Args) >= n
}

// Values parses every operand as an integer.
func (c *Command) Values() ([]int, error) {
	values := make([]int, 0, len(c.Args))
	for _, arg := range c.Args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: operand %q is not an integer", c.Op, arg)
		}
		values = append(values, v)
	}
	return values, nil
}

// ParseLine splits a typed line such as `insert 3 "4"; print` into
// commands. Empty segments are skipped.
func ParseLine(line string) ([]*Command, error) {
	var commands []*Command
	for _, segment := range strings.Split(line, ";") {
		parts, err := shellwords.Parse(segment)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", strings.TrimSpace(segment), err)
		}
		if len(parts) == 0 {
			continue
		}
		commands = append(commands, NewCommand(parts))
	}
	return commands, nil
}
