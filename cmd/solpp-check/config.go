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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/solpp-lang/solpp/sema"
)

const defaultConfigFileName = "solpp-check.yaml"

// Config is the configuration of the checker command,
// read from a YAML file and overridden by command line flags
type Config struct {
	// PlatformVersion is the version of the platform the contracts are checked against
	PlatformVersion string `yaml:"platformVersion"`
	Color           bool   `yaml:"color"`
	Watch           bool   `yaml:"watch"`
	// Suggestions enables "did you mean" suggestions for undeclared names
	Suggestions bool `yaml:"suggestions"`
	ABICoderV1  bool `yaml:"abiCoderV1"`
	Trace       bool `yaml:"trace"`
	// Sources maps syntax tree files to the source code files they were produced from.
	// Without an entry, the source of `x.sol.json` is `x.sol`.
	Sources map[string]string `yaml:"sources"`
}

func DefaultConfig() Config {
	return Config{
		PlatformVersion: sema.DefaultPlatformVersion,
		Color:           true,
		Suggestions:     true,
	}
}

// LoadConfig reads the configuration file at the given path.
// A missing file is only an error if the file is required,
// otherwise the default configuration is returned.
func LoadConfig(path string, required bool) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("failed to read configuration: %w", err)
	}

	err = yaml.UnmarshalWithOptions(data, &config, yaml.DisallowUnknownField())
	if err != nil {
		return config, fmt.Errorf(
			"failed to parse configuration %s:\n%s",
			path,
			yaml.FormatError(err, false, true),
		)
	}

	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("invalid configuration %s: %w", path, err)
	}

	return config, nil
}

func (c Config) Validate() error {
	_, err := sema.NewPlatformVersion(c.PlatformVersion)
	return err
}

// CheckerConfig returns the checker configuration
func (c Config) CheckerConfig(tracer sema.Tracer) *sema.Config {
	return &sema.Config{
		Tracer:             tracer,
		SuggestionsEnabled: c.Suggestions,
		ABICoderV1Default:  c.ABICoderV1,
	}
}

const syntaxTreeFileExtension = ".json"

// SourcePath returns the path of the source code
// the given syntax tree file was produced from, if any
func (c Config) SourcePath(syntaxTreePath string) (string, bool) {
	if sourcePath, ok := c.Sources[syntaxTreePath]; ok {
		return sourcePath, true
	}
	if !strings.HasSuffix(syntaxTreePath, syntaxTreeFileExtension) {
		return "", false
	}
	sourcePath := strings.TrimSuffix(syntaxTreePath, syntaxTreeFileExtension)
	if filepath.Ext(sourcePath) == "" {
		return "", false
	}
	return sourcePath, true
}
