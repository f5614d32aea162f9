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
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/solpp-lang/solpp/ast"
)

// ResolutionFailure is the reason a reference could not be resolved
type ResolutionFailure uint8

const (
	ResolutionFailureNone ResolutionFailure = iota
	ResolutionFailureNotFound
	ResolutionFailureAmbiguous
	ResolutionFailureNoMatch
)

// declarationCandidate is a declaration a reference may resolve to.
// Built-in functions and magic variables have no declaration.
type declarationCandidate struct {
	Declaration ast.Declaration
	Type        Type
}

// declarationResolution is the outcome of resolving a reference:
// either a single candidate, or a failure
type declarationResolution struct {
	Candidate      declarationCandidate
	Failure        ResolutionFailure
	CandidateCount int
}

func (r declarationResolution) ok() bool {
	return r.Failure == ResolutionFailureNone
}

// cleanOverloadedDeclarations removes candidates that are hidden by an earlier one.
//
// Candidates are ordered most derived first,
// so a function overriding a base function with the same parameter types
// hides the base function.
func cleanOverloadedDeclarations(candidates []declarationCandidate) []declarationCandidate {
	cleaned := make([]declarationCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		functionType, isFunction := candidate.Type.(*FunctionType)

		hidden := false
		for _, kept := range cleaned {
			if candidate.Declaration != nil && kept.Declaration == candidate.Declaration {
				hidden = true
				break
			}
			if !isFunction {
				continue
			}
			keptFunctionType, ok := kept.Type.(*FunctionType)
			if ok && keptFunctionType.HasEqualParameterTypes(functionType) {
				hidden = true
				break
			}
		}

		if !hidden {
			cleaned = append(cleaned, candidate)
		}
	}

	return cleaned
}

// resolveCandidates picks the single candidate the reference resolves to.
// Overloaded callees are disambiguated by the argument types recorded in the annotation.
func resolveCandidates(
	candidates []declarationCandidate,
	annotation *ExpressionAnnotation,
) declarationResolution {

	switch len(candidates) {
	case 0:
		return declarationResolution{
			Failure: ResolutionFailureNotFound,
		}
	case 1:
		return declarationResolution{
			Candidate:      candidates[0],
			CandidateCount: 1,
		}
	}

	cleaned := cleanOverloadedDeclarations(candidates)
	if len(cleaned) == 1 {
		return declarationResolution{
			Candidate:      cleaned[0],
			CandidateCount: 1,
		}
	}

	// Without arguments the overload set cannot be narrowed down

	if !annotation.IsCallee {
		return declarationResolution{
			Failure:        ResolutionFailureAmbiguous,
			CandidateCount: len(cleaned),
		}
	}

	var matching []declarationCandidate
	for _, candidate := range cleaned {
		functionType, ok := candidate.Type.(*FunctionType)
		if !ok {
			continue
		}
		if functionType.CanTakeArguments(annotation.ArgumentTypes, annotation.ArgumentNames) {
			matching = append(matching, candidate)
		}
	}

	switch len(matching) {
	case 0:
		return declarationResolution{
			Failure:        ResolutionFailureNoMatch,
			CandidateCount: len(cleaned),
		}
	case 1:
		return declarationResolution{
			Candidate:      matching[0],
			CandidateCount: 1,
		}
	default:
		return declarationResolution{
			Failure:        ResolutionFailureAmbiguous,
			CandidateCount: len(matching),
		}
	}
}

// reportResolutionFailure reports why the named reference could not be resolved
func (checker *Checker) reportResolutionFailure(
	name string,
	resolution declarationResolution,
	annotation *ExpressionAnnotation,
	hasPosition ast.HasPosition,
) {
	errorRange := ast.NewRangeFromPositioned(hasPosition)

	switch resolution.Failure {
	case ResolutionFailureNotFound:
		var suggestion string
		if checker.Config.SuggestionsEnabled {
			suggestion = closestName(name, checker.visibleNames())
		}
		checker.report(
			&NotDeclaredError{
				Name:       name,
				Suggestion: suggestion,
				Range:      errorRange,
			},
		)

	case ResolutionFailureAmbiguous:
		checker.report(
			&AmbiguousDeclarationError{
				Name:           name,
				CandidateCount: resolution.CandidateCount,
				Range:          errorRange,
			},
		)

	case ResolutionFailureNoMatch:
		checker.report(
			&NoMatchingDeclarationError{
				Name:          name,
				ArgumentTypes: annotation.ArgumentTypes,
				Range:         errorRange,
			},
		)
	}
}

// identifierCandidates returns the candidates the name binder attached to the identifier,
// or the built-in candidates if there are none
func (checker *Checker) identifierCandidates(identifier *ast.Identifier) []declarationCandidate {
	if len(identifier.Candidates) == 0 {
		return checker.magicCandidates(identifier.Name)
	}

	candidates := make([]declarationCandidate, 0, len(identifier.Candidates))
	for _, declaration := range identifier.Candidates {
		candidates = append(
			candidates,
			declarationCandidate{
				Declaration: declaration,
				Type:        checker.declarationValueType(declaration),
			},
		)
	}
	return candidates
}

// visibleNames returns the names a misspelled identifier may have meant
func (checker *Checker) visibleNames() []string {
	names := make([]string, 0, len(magicVariables))
	names = append(names, magicVariableNames...)

	if sourceUnit := checker.currentSourceUnit(); sourceUnit != nil {
		for _, node := range sourceUnit.Nodes {
			names = append(names, node.DeclarationIdentifier())
		}
	}

	if contract := checker.currentContract(); contract != nil {
		for _, base := range checker.Elaboration.linearized(contract) {
			for _, member := range base.Members {
				names = append(names, member.DeclarationIdentifier())
			}
		}
	}

	return names
}

// closestName finds the name with the smallest edit distance,
// unless all edits would replace the whole name
func closestName(name string, names []string) (closest string) {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	nameRunes := []rune(name)
	closestDistance := len(name)

	for _, candidate := range sorted {
		if candidate == "" || candidate == name {
			continue
		}
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)
		if distance < closestDistance && distance < len(candidate) {
			closest = candidate
			closestDistance = distance
		}
	}

	return
}
