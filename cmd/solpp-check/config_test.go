/*
 * Solpp - Semantic analysis for the Solidity++ smart contract language
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solpp-lang/solpp/sema"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), defaultConfigFileName)
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)
	return path
}

func TestLoadConfig(t *testing.T) {

	t.Parallel()

	t.Run("missing, optional", func(t *testing.T) {
		t.Parallel()

		config, err := LoadConfig(filepath.Join(t.TempDir(), defaultConfigFileName), false)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("missing, required", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), defaultConfigFileName), true)
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to read configuration")
	})

	t.Run("values", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
platformVersion: 0.7.0
color: false
watch: true
abiCoderV1: true
sources:
  build/Token.json: contracts/Token.sol
`)

		config, err := LoadConfig(path, true)
		require.NoError(t, err)
		assert.Equal(t,
			Config{
				PlatformVersion: "0.7.0",
				Color:           false,
				Watch:           true,
				// not given, so the default is kept
				Suggestions: true,
				ABICoderV1:  true,
				Sources: map[string]string{
					"build/Token.json": "contracts/Token.sol",
				},
			},
			config,
		)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "colour: false\n")

		_, err := LoadConfig(path, true)
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to parse configuration")
	})

	t.Run("invalid platform version", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "platformVersion: latest\n")

		_, err := LoadConfig(path, true)
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid configuration")
	})
}

func TestConfigSourcePath(t *testing.T) {

	t.Parallel()

	config := Config{
		Sources: map[string]string{
			"out/a.json": "src/a.sol",
		},
	}

	sourcePath, ok := config.SourcePath("out/a.json")
	require.True(t, ok)
	assert.Equal(t, "src/a.sol", sourcePath)

	sourcePath, ok = config.SourcePath("out/b.sol.json")
	require.True(t, ok)
	assert.Equal(t, "out/b.sol", sourcePath)

	_, ok = config.SourcePath("out/c.json")
	assert.False(t, ok)

	_, ok = config.SourcePath("out/d.ast")
	assert.False(t, ok)
}

func TestConfigCheckerConfig(t *testing.T) {

	t.Parallel()

	config := DefaultConfig()
	config.ABICoderV1 = true

	checkerConfig := config.CheckerConfig(sema.Tracer{})
	assert.True(t, checkerConfig.SuggestionsEnabled)
	assert.True(t, checkerConfig.ABICoderV1Default)
	assert.False(t, checkerConfig.ErrorShortCircuitingEnabled)
}
