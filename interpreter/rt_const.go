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

/*
trueRuntime is the runtime component for the true constant.
*/
type trueRuntime struct {
	*baseRuntime
}

/*
trueRuntimeInst returns a new runtime component instance.
*/
func trueRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &trueRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *trueRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)
	return true, err
}

/*
falseRuntime is the runtime component for the false constant.
*/
type falseRuntime struct {
	*baseRuntime
}

/*
falseRuntimeInst returns a new runtime component instance.
*/
func falseRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &falseRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *falseRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)
	return false, err
}

/*
nilRuntime is the runtime component for the nil constant.
*/
type nilRuntime struct {
	*baseRuntime
}

/*
nilRuntimeInst returns a new runtime component instance.
*/
func nilRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &nilRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *nilRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)
	return nil, err
}
