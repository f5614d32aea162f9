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

package common

import (
	"fmt"
)

type LocationID string

// Location identifies a source unit
type Location interface {
	fmt.Stringer
	ID() LocationID
}

const StringLocationPrefix = "S"

// StringLocation is a location identified by a file name or other free-form string
type StringLocation string

var _ Location = StringLocation("")

func (l StringLocation) ID() LocationID {
	return LocationID(fmt.Sprintf("%s.%s", StringLocationPrefix, string(l)))
}

func (l StringLocation) String() string {
	return string(l)
}
