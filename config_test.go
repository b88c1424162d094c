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
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromMissingFile(t *testing.T) {
	config, err := loadConfigFrom(filepath.Join(t.TempDir(), configFileName))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("stress:\n  iterations: 10\nrender:\n  color: false\n"), 0644))

	config, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 10, config.Stress.Iterations)
	assert.False(t, config.Render.Color)
	assert.Equal(t, 1000, config.Stress.MaxValue)
	assert.Equal(t, 30*time.Minute, config.CacheTTL())

	// the shared defaults are untouched
	assert.Equal(t, 5000, defaultConfig.Stress.Iterations)
}

func TestLoadConfigFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("stress: [\n"), 0644))

	config, err := loadConfigFrom(path)
	assert.Error(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestDisplaySettingsCreatesDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var buf bytes.Buffer
	require.NoError(t, displaySettings(&buf))
	assert.Contains(t, buf.String(), "(newly created)")
	assert.FileExists(t, filepath.Join(home, configFileName))

	buf.Reset()
	require.NoError(t, displaySettings(&buf))
	assert.NotContains(t, buf.String(), "newly created")
	assert.Contains(t, buf.String(), "iterations")
}
