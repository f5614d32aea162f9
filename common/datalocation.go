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
	"github.com/solpp-lang/solpp/errors"
)

// DataLocation is where a reference-typed value lives
type DataLocation uint8

const (
	DataLocationUnspecified DataLocation = iota
	DataLocationStorage
	DataLocationMemory
	DataLocationCallData
)

func (l DataLocation) Name() string {
	switch l {
	case DataLocationUnspecified:
		return ""
	case DataLocationStorage:
		return "storage"
	case DataLocationMemory:
		return "memory"
	case DataLocationCallData:
		return "calldata"
	}

	panic(errors.NewUnreachableError())
}

func DataLocationFromName(name string) (DataLocation, bool) {
	switch name {
	case "", "default":
		return DataLocationUnspecified, true
	case "storage":
		return DataLocationStorage, true
	case "memory":
		return DataLocationMemory, true
	case "calldata":
		return DataLocationCallData, true
	}
	return DataLocationUnspecified, false
}
