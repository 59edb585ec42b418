/*
 * SPL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

/*
RuntimeProvider provides runtime components for a parse tree.
*/
type RuntimeProvider interface {

	/*
	   Runtime returns a runtime component for a given ASTNode.
	*/
	Runtime(node *ASTNode) Runtime
}

/*
Runtime provides the runtime for an ASTNode.
*/
type Runtime interface {

	/*
	   Validate this runtime component and all its child components.
	*/
	Validate() error

	/*
		Eval evaluate this runtime component. It gets passed the variable
		scope of the current stack frame.
	*/
	Eval(Scope) (interface{}, error)
}

/*
Scope models the variable environment of a single stack frame. Every name
is attached to a binding which records how the name entered the frame and
whether it may be rebound.
*/
type Scope interface {

	/*
	   Name returns the name of this scope.
	*/
	Name() string

	/*
		Declare introduces a new local binding for a variable. Mutable
		bindings can later be rebound with Assign. Returns an error if the
		binding rules forbid the declaration.
	*/
	Declare(varName string, mutable bool, varValue interface{}) error

	/*
		Assign rebinds an already known variable to a new value. Returns an
		error if the current binding is not mutable.
	*/
	Assign(varName string, varValue interface{}) error

	/*
	   GetValue gets the current value of a variable.
	*/
	GetValue(varName string) (interface{}, bool, error)

	/*
	   String returns a string representation of this scope.
	*/
	String() string

	/*
	   ToJSONObject returns this scope as a JSON object.
	*/
	ToJSONObject() map[string]interface{}
}
