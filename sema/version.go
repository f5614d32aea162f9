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

package sema

import (
	"github.com/Masterminds/semver/v3"

	"github.com/solpp-lang/solpp/errors"
)

// Feature is a language feature whose availability depends on the target platform
type Feature uint8

const (
	FeatureAsyncAwait Feature = iota
	FeatureCallSalt
	FeatureStaticCall
	FeatureABICoderV2Default
	FeatureImmutables
)

func (f Feature) Name() string {
	switch f {
	case FeatureAsyncAwait:
		return "await expressions"
	case FeatureCallSalt:
		return "the salt call option"
	case FeatureStaticCall:
		return "staticcall"
	case FeatureABICoderV2Default:
		return "ABI coder v2 by default"
	case FeatureImmutables:
		return "immutable variables"
	}

	panic(errors.NewUnreachableError())
}

var featureConstraints = map[Feature]string{
	FeatureAsyncAwait:        ">= 0.8.0",
	FeatureCallSalt:          ">= 0.6.2",
	FeatureStaticCall:        ">= 0.5.0",
	FeatureABICoderV2Default: ">= 0.8.0",
	FeatureImmutables:        ">= 0.6.5",
}

const DefaultPlatformVersion = "0.8.0"

// PlatformVersion is the version of the target platform
type PlatformVersion struct {
	version     *semver.Version
	constraints map[Feature]*semver.Constraints
}

func NewPlatformVersion(version string) (*PlatformVersion, error) {
	parsed, err := semver.NewVersion(version)
	if err != nil {
		return nil, errors.NewDefaultUserError("invalid platform version %q: %w", version, err)
	}

	constraints := make(map[Feature]*semver.Constraints, len(featureConstraints))
	for feature, constraint := range featureConstraints {
		parsedConstraint, err := semver.NewConstraint(constraint)
		if err != nil {
			panic(errors.NewUnexpectedErrorFromCause(err))
		}
		constraints[feature] = parsedConstraint
	}

	return &PlatformVersion{
		version:     parsed,
		constraints: constraints,
	}, nil
}

func MustPlatformVersion(version string) *PlatformVersion {
	platformVersion, err := NewPlatformVersion(version)
	if err != nil {
		panic(err)
	}
	return platformVersion
}

func (v *PlatformVersion) String() string {
	return v.version.String()
}

// Supports reports whether the feature is available on the platform version
func (v *PlatformVersion) Supports(feature Feature) bool {
	constraint, ok := v.constraints[feature]
	if !ok {
		panic(errors.NewUnreachableError())
	}
	return constraint.Check(v.version)
}
