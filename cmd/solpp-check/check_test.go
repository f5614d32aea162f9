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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(config Config) (r *runner, out *bytes.Buffer, log *bytes.Buffer) {
	out = &bytes.Buffer{}
	log = &bytes.Buffer{}
	config.Color = false
	r = newRunner(config, out, newLogger(log, false))
	return
}

func TestCheckFile(t *testing.T) {

	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		r, out, _ := newTestRunner(DefaultConfig())

		result, err := r.checkFile("testdata/valid.sol.json")
		require.NoError(t, err)
		assert.True(t, result.ok())
		assert.Equal(t, 0, result.warnings)
		assert.Empty(t, out.String())
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		r, out, _ := newTestRunner(DefaultConfig())

		result, err := r.checkFile("testdata/invalid.sol.json")
		require.NoError(t, err)
		assert.Equal(t, checkResult{errors: 1}, result)
		assert.Equal(t,
			"error: undeclared identifier `y`\n"+
				" --> testdata/invalid.sol:3:8\n"+
				"  |\n"+
				"3 |         y;\n"+
				"  |         ^ not found in this scope\n"+
				"\n",
			out.String(),
		)
	})

	t.Run("without source", func(t *testing.T) {
		t.Parallel()

		config := DefaultConfig()
		config.Sources = map[string]string{
			"testdata/invalid.sol.json": "testdata/missing.sol",
		}
		r, out, _ := newTestRunner(config)

		result, err := r.checkFile("testdata/invalid.sol.json")
		require.NoError(t, err)
		assert.Equal(t, 1, result.errors)
		// without source code, positions have no line and column
		assert.Equal(t,
			"error: undeclared identifier `y`\n"+
				" --> testdata/invalid.sol.json:0:0\n"+
				"  = not found in this scope\n"+
				"\n",
			out.String(),
		)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		r, _, _ := newTestRunner(DefaultConfig())

		_, err := r.checkFile("testdata/missing.sol.json")
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to read syntax tree")
	})

	t.Run("trace", func(t *testing.T) {
		t.Parallel()

		config := DefaultConfig()
		config.Trace = true
		r, _, log := newTestRunner(config)

		_, err := r.checkFile("testdata/valid.sol.json")
		require.NoError(t, err)
		assert.Contains(t, log.String(), "trace contract.C ")
		assert.Contains(t, log.String(), "trace source_unit ")
		assert.Contains(t, log.String(), "location=testdata/valid.sol")
	})
}

func TestCheckFiles(t *testing.T) {

	t.Parallel()

	r, _, log := newTestRunner(DefaultConfig())

	ok := r.checkFiles([]string{
		"testdata/valid.sol.json",
		"testdata/invalid.sol.json",
	})
	assert.False(t, ok)
	assert.Contains(t, log.String(), "ok testdata/valid.sol.json (0 warnings)")
	assert.Contains(t, log.String(), "==> testdata/invalid.sol.json: 1 errors, 0 warnings")
}
