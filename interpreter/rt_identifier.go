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

/*
identifierRuntime is the runtime component for variable reads. Name lookup
only consults the environment of the current frame - outer names are made
visible through closure capture.
*/
type identifierRuntime struct {
	*baseRuntime
}

/*
identifierRuntimeInst returns a new runtime component instance.
*/
func identifierRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &identifierRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *identifierRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	val, ok, err := vs.GetValue(rt.node.Token.Val)

	if err == nil && !ok {
		err = rt.erp.NewRuntimeError(util.ErrUnknownVar, rt.node.Token.Val, rt.node)
	}

	if err != nil {
		return nil, err
	}

	return val, nil
}
