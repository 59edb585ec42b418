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
	"devt.de/krotik/spl/util"
)

// Basic Arithmetic Operator Runtimes
// ==================================

type plusOpRuntime struct {
	*operatorRuntime
}

/*
plusOpRuntimeInst returns a new runtime component instance.
*/
func plusOpRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &plusOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *plusOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.numOp(func(n1 int64, n2 int64) interface{} {
			return n1 + n2
		}, vs)
	}

	return res, err
}

type minusOpRuntime struct {
	*operatorRuntime
}

/*
minusOpRuntimeInst returns a new runtime component instance.
*/
func minusOpRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &minusOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *minusOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.numOp(func(n1 int64, n2 int64) interface{} {
			return n1 - n2
		}, vs)
	}

	return res, err
}

type timesOpRuntime struct {
	*operatorRuntime
}

/*
timesOpRuntimeInst returns a new runtime component instance.
*/
func timesOpRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &timesOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *timesOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.numOp(func(n1 int64, n2 int64) interface{} {
			return n1 * n2
		}, vs)
	}

	return res, err
}

type divOpRuntime struct {
	*operatorRuntime
}

/*
divOpRuntimeInst returns a new runtime component instance.
*/
func divOpRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &divOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component. Division is integer division which
truncates toward zero.
*/
func (rt *divOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		var divErr error

		res, err = rt.numOp(func(n1 int64, n2 int64) interface{} {
			if n2 == 0 {
				divErr = rt.erp.NewRuntimeError(util.ErrRuntimeError,
					"Division by zero", rt.node)
				return nil
			}
			return n1 / n2
		}, vs)

		if err == nil && divErr != nil {
			res = nil
			err = divErr
		}
	}

	return res, err
}

// Comparison Operator Runtimes
// ============================

type lessOpRuntime struct {
	*operatorRuntime
}

/*
lessOpRuntimeInst returns a new runtime component instance.
*/
func lessOpRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &lessOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *lessOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.numOp(func(n1 int64, n2 int64) interface{} {
			return n1 < n2
		}, vs)
	}

	return res, err
}

type lessequalOpRuntime struct {
	*operatorRuntime
}

/*
lessequalOpRuntimeInst returns a new runtime component instance.
*/
func lessequalOpRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &lessequalOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *lessequalOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.numOp(func(n1 int64, n2 int64) interface{} {
			return n1 <= n2
		}, vs)
	}

	return res, err
}

type greaterOpRuntime struct {
	*operatorRuntime
}

/*
greaterOpRuntimeInst returns a new runtime component instance.
*/
func greaterOpRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &greaterOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *greaterOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.numOp(func(n1 int64, n2 int64) interface{} {
			return n1 > n2
		}, vs)
	}

	return res, err
}

type greaterequalOpRuntime struct {
	*operatorRuntime
}

/*
greaterequalOpRuntimeInst returns a new runtime component instance.
*/
func greaterequalOpRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &greaterequalOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *greaterequalOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.numOp(func(n1 int64, n2 int64) interface{} {
			return n1 >= n2
		}, vs)
	}

	return res, err
}
