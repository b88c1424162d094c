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
	"io"
	"log/slog"

	"github.com/cybrota/arbor/render"
)

// Scenario defines the interface for a runnable demonstration
type Scenario interface {
	Name() string
	Description() string
	Priority() int // Lower number = listed first
	Run(w io.Writer, opts Options) (Report, error)
}

// Options control how scenarios print and log.
type Options struct {
	Style    render.Style
	Annotate bool // show heights and balance factors in outlines
	Logger   *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Report summarizes a scenario run.
type Report struct {
	Steps    int
	Failures int
}

// Passed reports whether every checked step succeeded.
func (r Report) Passed() bool {
	return r.Failures == 0
}
