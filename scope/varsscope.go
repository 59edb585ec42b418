/*
 * SPL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package scope contains the variable scope implementation of SPL.

A scope models the environment of a single stack frame. Every name maps to
a binding which records how the name entered the frame (parameter, local
declaration or inheritance through closure capture), whether it was
declared mutable, whether it names the currently executing function and
its current value. The rebinding rules of the language are enforced when
a binding is written.
*/
package scope

import (
	"bytes"
	"fmt"
	"sort"

	"devt.de/krotik/common/stringutil"
	"devt.de/krotik/spl/parser"
)

/*
GlobalScope is the name of the global scope
*/
const GlobalScope = "GlobalScope"

/*
FuncPrefix is the prefix of function scopes
*/
const FuncPrefix = "func:"

/*
BindingScope classifies how a name entered the current frame.
*/
type BindingScope int

/*
Available binding scopes
*/
const (
	ScopeParam     BindingScope = iota // Name was bound as a call parameter
	ScopeLocal                         // Name was declared in the current frame
	ScopeInherited                     // Name was captured from the defining environment
)

/*
String returns a string representation of this binding scope.
*/
func (bs BindingScope) String() string {
	if bs == ScopeParam {
		return "param"
	} else if bs == ScopeLocal {
		return "local"
	}
	return "inherited"
}

/*
BindingDecl classifies the declaration kind of a binding.
*/
type BindingDecl int

/*
Available declaration kinds - DeclNone is used when a binding is installed
by a rebinding and keeps the effective mutability of the original binding
chain.
*/
const (
	DeclLet BindingDecl = iota
	DeclMut
	DeclNone
)

/*
String returns a string representation of this declaration kind.
*/
func (bd BindingDecl) String() string {
	if bd == DeclLet {
		return "let"
	} else if bd == DeclMut {
		return "mut"
	}
	return "none"
}

/*
Binding models a single name binding in a scope.
*/
type Binding struct {
	Scope  BindingScope // How the name entered the current frame
	Decl   BindingDecl  // Declaration kind of the binding
	IsSelf bool         // Flag if the binding refers to the currently executing function
	Value  interface{}  // Current value of the binding
}

/*
NewBinding creates a new Binding object instance.
*/
func NewBinding(scope BindingScope, decl BindingDecl, isSelf bool, value interface{}) *Binding {
	return &Binding{scope, decl, isSelf, value}
}

/*
Copy returns a copy of this binding. The self flag is not carried over.
*/
func (b *Binding) Copy() *Binding {
	return &Binding{b.Scope, b.Decl, false, b.Value}
}

/*
varsScope models a scope for variables in SPL.
*/
type varsScope struct {
	name    string              // Name of the scope
	storage map[string]*Binding // Storage for variable bindings
}

/*
NewScope creates a new variable scope.
*/
func NewScope(name string) parser.Scope {
	return &varsScope{name, make(map[string]*Binding)}
}

/*
NewScopeWithBindings creates a new variable scope from existing bindings.
The given bindings are owned by the new scope afterwards.
*/
func NewScopeWithBindings(name string, bindings map[string]*Binding) parser.Scope {
	if bindings == nil {
		bindings = make(map[string]*Binding)
	}
	return &varsScope{name, bindings}
}

/*
Name returns the name of this scope.
*/
func (s *varsScope) Name() string {
	return s.name
}

/*
Declare introduces a new local binding for a variable.
*/
func (s *varsScope) Declare(varName string, mutable bool, varValue interface{}) error {
	decl := DeclLet
	if mutable {
		decl = DeclMut
	}

	return s.writeBinding(varName, &Binding{ScopeLocal, decl, false, varValue})
}

/*
Assign rebinds an already known variable to a new value. The installed
binding keeps the scope classification of the current binding.
*/
func (s *varsScope) Assign(varName string, varValue interface{}) error {
	cur, ok := s.storage[varName]

	if !ok {
		return fmt.Errorf("Cannot assign unknown variable %v", varName)
	}

	return s.writeBinding(varName, &Binding{cur.Scope, DeclNone, false, varValue})
}

/*
writeBinding installs a given binding enforcing the rebinding rules of the
language.
*/
func (s *varsScope) writeBinding(varName string, binding *Binding) error {
	cur, ok := s.storage[varName]

	if !ok {
		s.storage[varName] = binding
		return nil
	}

	isDecl := binding.Decl == DeclLet || binding.Decl == DeclMut

	if cur.Scope == ScopeLocal {

		if isDecl {
			return fmt.Errorf("Re-declaration of %v inside local scope", varName)
		} else if cur.Decl == DeclLet {
			return fmt.Errorf("Cannot rebind non-mutable %v", varName)
		}

		s.storage[varName] = binding

	} else if cur.Scope == ScopeInherited {

		if cur.IsSelf {
			return fmt.Errorf("Re-binding of current function %v", varName)
		} else if isDecl {

			// A new declaration shadows the inherited binding in this frame

			s.storage[varName] = binding
		} else if cur.Decl == DeclLet {
			return fmt.Errorf("Cannot rebind non-mutable %v", varName)
		} else {
			s.storage[varName] = binding
		}

	} else {

		// Parameters are effectively immutable

		if isDecl {
			return fmt.Errorf("Re-declaration of param %v", varName)
		}

		return fmt.Errorf("Cannot rebind non-mutable %v", varName)
	}

	return nil
}

/*
SetBinding installs a given binding enforcing the rebinding rules of the
language.
*/
func (s *varsScope) SetBinding(varName string, binding *Binding) error {
	return s.writeBinding(varName, binding)
}

/*
Binding returns the binding of a given variable.
*/
func (s *varsScope) Binding(varName string) (*Binding, bool) {
	b, ok := s.storage[varName]
	return b, ok
}

/*
Names returns all variable names of this scope in sorted order.
*/
func (s *varsScope) Names() []string {
	names := make([]string, 0, len(s.storage))

	for name := range s.storage {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

/*
GetValue gets the current value of a variable.
*/
func (s *varsScope) GetValue(varName string) (interface{}, bool, error) {
	if b, ok := s.storage[varName]; ok {
		return b.Value, true, nil
	}

	return nil, false, nil
}

/*
String returns a string representation of this scope.
*/
func (s *varsScope) String() string {
	var buf bytes.Buffer

	buf.WriteString(s.name)
	buf.WriteString(" {\n")

	for _, name := range s.Names() {
		b := s.storage[name]

		buf.WriteString(stringutil.GenerateRollingString(" ", IndentationLevel))
		buf.WriteString(fmt.Sprintf("%s (%v/%v) = %v\n", name, b.Scope, b.Decl, b.Value))
	}

	buf.WriteString("}")

	return buf.String()
}

/*
IndentationLevel is the level of indentation which String uses
*/
const IndentationLevel = 4

/*
ToJSONObject returns this scope as a JSON object.
*/
func (s *varsScope) ToJSONObject() map[string]interface{} {
	ret := make(map[string]interface{})

	for name, b := range s.storage {
		ret[name] = b.Value
	}

	return ret
}
