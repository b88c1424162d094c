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
	"io"
	"sort"
)

// ErrUnknownScenario is returned when no scenario is registered under a name.
var ErrUnknownScenario = errors.New("unknown scenario")

// Manager keeps the registered scenarios
type Manager struct {
	scenarios []Scenario
}

// NewManager creates a new manager with the built-in scenarios
func NewManager() *Manager {
	manager := &Manager{}

	// Built-ins reproduce the three classic demonstrations
	manager.Register(AVLDemo())
	manager.Register(BSTDemo())
	manager.Register(NewTernaryHarness())

	return manager
}

// Register registers a scenario, replacing any scenario with the same name
func (m *Manager) Register(scenario Scenario) {
	for i, s := range m.scenarios {
		if s.Name() == scenario.Name() {
			m.scenarios[i] = scenario
			return
		}
	}
	m.scenarios = append(m.scenarios, scenario)
}

// Get returns the scenario registered under name
func (m *Manager) Get(name string) (Scenario, error) {
	for _, s := range m.scenarios {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownScenario, name)
}

// List returns the scenarios in priority order
func (m *Manager) List() []Scenario {
	list := make([]Scenario, len(m.scenarios))
	copy(list, m.scenarios)
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Priority() != list[j].Priority() {
			return list[i].Priority() < list[j].Priority()
		}
		return list[i].Name() < list[j].Name()
	})
	return list
}

// Run runs the named scenario
func (m *Manager) Run(name string, w io.Writer, opts Options) (Report, error) {
	scenario, err := m.Get(name)
	if err != nil {
		return Report{}, err
	}
	report, err := scenario.Run(w, opts)
	if err != nil {
		return report, fmt.Errorf("scenario %q failed: %w", name, err)
	}
	return report, nil
}
