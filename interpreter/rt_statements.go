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
	"fmt"

	"devt.de/krotik/spl/parser"
	"devt.de/krotik/spl/util"
)

// Sequence Runtime
// ================

/*
seqRuntime is the runtime component for expression sequences. The value of
a sequence is the value of its second expression.
*/
type seqRuntime struct {
	*baseRuntime
}

/*
seqRuntimeInst returns a new runtime component instance.
*/
func seqRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &seqRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *seqRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		if _, err = rt.node.Children[0].Runtime.Eval(vs); err == nil {
			res, err = rt.node.Children[1].Runtime.Eval(vs)
		}
	}

	return res, err
}

// Condition statement
// ===================

/*
ifRuntime is the runtime component for the if expression. The condition is
evaluated first - then exactly one of the two branches.
*/
type ifRuntime struct {
	*baseRuntime
}

/*
ifRuntimeInst returns a new runtime component instance.
*/
func ifRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &ifRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *ifRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		var condRes interface{}

		if condRes, err = rt.node.Children[0].Runtime.Eval(vs); err == nil {
			condBool, ok := condRes.(bool)

			if !ok {
				return nil, rt.erp.NewRuntimeError(util.ErrNotABoolean,
					fmt.Sprintf("If condition must be a boolean - got %v", ToString(condRes)),
					rt.node.Children[0])
			}

			if condBool {
				return rt.node.Children[1].Runtime.Eval(vs)
			}

			return rt.node.Children[2].Runtime.Eval(vs)
		}
	}

	return nil, err
}

// Loop statement
// ==============

/*
whileRuntime is the runtime component for the while expression. The value
of the expression is the value of the last body evaluation or false if the
body never ran.
*/
type whileRuntime struct {
	*baseRuntime
}

/*
whileRuntimeInst returns a new runtime component instance.
*/
func whileRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &whileRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *whileRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{} = false

	_, err := rt.baseRuntime.Eval(vs)

	for err == nil {
		var condRes interface{}

		if condRes, err = rt.node.Children[0].Runtime.Eval(vs); err == nil {
			condBool, ok := condRes.(bool)

			if !ok {
				return nil, rt.erp.NewRuntimeError(util.ErrNotABoolean,
					fmt.Sprintf("While condition must be a boolean - got %v", ToString(condRes)),
					rt.node.Children[0])
			}

			if !condBool {
				break
			}

			res, err = rt.node.Children[1].Runtime.Eval(vs)
		}
	}

	if err != nil {
		return nil, err
	}

	return res, nil
}

// Print statement
// ===============

/*
printRuntime is the runtime component for the print operation which writes
the textual form of its operand followed by a newline to the output sink.
*/
type printRuntime struct {
	*baseRuntime
}

/*
printRuntimeInst returns a new runtime component instance.
*/
func printRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &printRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *printRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		var val interface{}

		if val, err = rt.node.Children[0].Runtime.Eval(vs); err == nil {
			fmt.Fprintln(rt.erp.Out, ToString(val))
		}
	}

	return nil, err
}
