/*
 * SPL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scope

import (
	"fmt"

	"devt.de/krotik/spl/parser"
)

/*
NameFromASTNode returns a scope name from a given ASTNode.
*/
func NameFromASTNode(node *parser.ASTNode) string {
	return fmt.Sprintf("block: %v (%v)", node.Name, node.Token.PosString())
}

/*
GetBinding returns the binding of a given variable in a given scope.
*/
func GetBinding(vs parser.Scope, varName string) (*Binding, bool) {
	if s, ok := vs.(*varsScope); ok {
		return s.Binding(varName)
	}

	return nil, false
}

/*
SetBinding installs a given binding in a given scope enforcing the
rebinding rules of the language.
*/
func SetBinding(vs parser.Scope, varName string, binding *Binding) error {
	if s, ok := vs.(*varsScope); ok {
		return s.SetBinding(varName, binding)
	}

	return fmt.Errorf("Cannot set binding %v on scope %v", varName, vs)
}

/*
Snapshot returns copies of all bindings of a given scope re-tagged as
inherited bindings. Closure environments are built from these snapshots.
*/
func Snapshot(vs parser.Scope) map[string]*Binding {
	ret := make(map[string]*Binding)

	if s, ok := vs.(*varsScope); ok {
		for name, b := range s.storage {
			ret[name] = &Binding{ScopeInherited, b.Decl, false, b.Value}
		}
	}

	return ret
}

/*
CopyBindings returns plain copies of a given binding map. The self flag is
not carried over.
*/
func CopyBindings(bindings map[string]*Binding) map[string]*Binding {
	ret := make(map[string]*Binding)

	for name, b := range bindings {
		ret[name] = b.Copy()
	}

	return ret
}

/*
ToObject converts a given scope into a plain map of values.
*/
func ToObject(vs parser.Scope) map[string]interface{} {
	return vs.ToJSONObject()
}
