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

package ast

// Inspect traverses the tree rooted at element in depth-first order.
// It calls f(element) first; if f returns true,
// Inspect is invoked recursively for each child of element.
func Inspect(element Element, f func(Element) bool) {
	if element == nil || !f(element) {
		return
	}
	element.Walk(func(child Element) {
		Inspect(child, f)
	})
}

// Preorder calls f for every element of the tree rooted at element,
// parents before children
func Preorder(element Element, f func(Element)) {
	Inspect(element, func(element Element) bool {
		f(element)
		return true
	})
}

// Children returns the direct children of element
func Children(element Element) []Element {
	var children []Element
	element.Walk(func(child Element) {
		children = append(children, child)
	})
	return children
}
