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

type Config struct {
	Tracer Tracer
	// SuggestionsEnabled determines if suggestions are provided for undeclared names
	SuggestionsEnabled bool
	// ErrorShortCircuitingEnabled determines if checking stops after the first error
	ErrorShortCircuitingEnabled bool
	// ABICoderV1Default selects the old ABI encoder
	// on platform versions that do not default to the new one
	ABICoderV1Default bool
}
