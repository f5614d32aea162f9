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

package sema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solpp-lang/solpp/sema"
)

func TestPlatformVersionSupports(t *testing.T) {

	t.Parallel()

	type testCase struct {
		version  string
		feature  sema.Feature
		expected bool
	}

	testCases := []testCase{
		{"0.4.3", sema.FeatureStaticCall, false},
		{"0.5.0", sema.FeatureStaticCall, true},
		{"0.6.1", sema.FeatureCallSalt, false},
		{"0.6.2", sema.FeatureCallSalt, true},
		{"0.6.4", sema.FeatureImmutables, false},
		{"0.6.5", sema.FeatureImmutables, true},
		{"0.7.6", sema.FeatureAsyncAwait, false},
		{"0.8.0", sema.FeatureAsyncAwait, true},
		{"0.7.6", sema.FeatureABICoderV2Default, false},
		{"0.8.1", sema.FeatureABICoderV2Default, true},
	}

	for _, testCase := range testCases {
		name := testCase.version + " " + testCase.feature.Name()

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			version, err := sema.NewPlatformVersion(testCase.version)
			require.NoError(t, err)

			assert.Equal(t, testCase.expected, version.Supports(testCase.feature))
		})
	}
}

func TestNewPlatformVersionInvalid(t *testing.T) {

	t.Parallel()

	_, err := sema.NewPlatformVersion("not a version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid platform version")
}
