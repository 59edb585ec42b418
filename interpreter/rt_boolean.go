/*
 * SPL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"devt.de/krotik/spl/parser"
)

// Boolean Operator Runtimes
// =========================

/*
andOpRuntime is the runtime component for the logical and operation. Both
operands are always evaluated.
*/
type andOpRuntime struct {
	*operatorRuntime
}

/*
andOpRuntimeInst returns a new runtime component instance.
*/
func andOpRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &andOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *andOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.boolOp(func(b1 bool, b2 bool) interface{} {
			return b1 && b2
		}, vs)
	}

	return res, err
}

/*
orOpRuntime is the runtime component for the logical or operation. Both
operands are always evaluated.
*/
type orOpRuntime struct {
	*operatorRuntime
}

/*
orOpRuntimeInst returns a new runtime component instance.
*/
func orOpRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &orOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *orOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.boolOp(func(b1 bool, b2 bool) interface{} {
			return b1 || b2
		}, vs)
	}

	return res, err
}

/*
notOpRuntime is the runtime component for the logical not operation.
*/
type notOpRuntime struct {
	*operatorRuntime
}

/*
notOpRuntimeInst returns a new runtime component instance.
*/
func notOpRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &notOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *notOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.boolVal(func(b bool) interface{} {
			return !b
		}, vs)
	}

	return res, err
}

// Equality Operator Runtimes
// ==========================

/*
equalOpRuntime is the runtime component for the equality operation.
*/
type equalOpRuntime struct {
	*operatorRuntime
}

/*
equalOpRuntimeInst returns a new runtime component instance.
*/
func equalOpRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &equalOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *equalOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.genOp(func(v1 interface{}, v2 interface{}) interface{} {
			return valueEquals(v1, v2)
		}, vs)
	}

	return res, err
}

/*
notequalOpRuntime is the runtime component for the inequality operation.
*/
type notequalOpRuntime struct {
	*operatorRuntime
}

/*
notequalOpRuntimeInst returns a new runtime component instance.
*/
func notequalOpRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &notequalOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *notequalOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.genOp(func(v1 interface{}, v2 interface{}) interface{} {
			return !valueEquals(v1, v2)
		}, vs)
	}

	return res, err
}
