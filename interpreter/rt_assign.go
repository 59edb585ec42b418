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
	"devt.de/krotik/spl/scope"
	"devt.de/krotik/spl/util"
)

/*
letRuntime is the runtime component for non-mutable declarations.
*/
type letRuntime struct {
	*baseRuntime
}

/*
letRuntimeInst returns a new runtime component instance.
*/
func letRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &letRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *letRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		var val interface{}

		if val, err = rt.node.Children[1].Runtime.Eval(vs); err == nil {

			if err = vs.Declare(rt.node.Children[0].Token.Val, false, val); err != nil {
				err = rt.erp.NewRuntimeError(util.ErrInvalidBinding, err.Error(), rt.node)
			}

			if err == nil {
				return val, nil
			}
		}
	}

	return nil, err
}

/*
mutRuntime is the runtime component for mutable declarations.
*/
type mutRuntime struct {
	*baseRuntime
}

/*
mutRuntimeInst returns a new runtime component instance.
*/
func mutRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &mutRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *mutRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		var val interface{}

		if val, err = rt.node.Children[1].Runtime.Eval(vs); err == nil {

			if err = vs.Declare(rt.node.Children[0].Token.Val, true, val); err != nil {
				err = rt.erp.NewRuntimeError(util.ErrInvalidBinding, err.Error(), rt.node)
			}

			if err == nil {
				return val, nil
			}
		}
	}

	return nil, err
}

/*
setRuntime is the runtime component for rebinding already known variables.
*/
type setRuntime struct {
	*baseRuntime
}

/*
setRuntimeInst returns a new runtime component instance.
*/
func setRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &setRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *setRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	name := rt.node.Children[0].Token.Val

	if _, ok := scope.GetBinding(vs, name); !ok {
		return nil, rt.erp.NewRuntimeError(util.ErrUnknownVar, name, rt.node)
	}

	var val interface{}

	if val, err = rt.node.Children[1].Runtime.Eval(vs); err != nil {
		return nil, err
	}

	if err = vs.Assign(name, val); err != nil {
		return nil, rt.erp.NewRuntimeError(util.ErrInvalidBinding, err.Error(), rt.node)
	}

	rt.propagate(name, val, vs)

	return val, nil
}

/*
propagate mirrors a write to a captured name upward along the chain of
frames which matches the closure's lexical chain. Propagation walks upward
as long as the rebound binding was inherited and the executing function's
lexical parent is the function of the frame below. Once a function has
escaped its lexical scope the chain diverges and no propagation occurs.
*/
func (rt *setRuntime) propagate(name string, val interface{}, vs parser.Scope) {
	binding, _ := scope.GetBinding(vs, name)

	fn := rt.erp.currentFunction()
	idx := len(rt.erp.stack) - 2

	for binding != nil && binding.Scope == scope.ScopeInherited &&
		fn != nil && idx >= 0 && fn.lexicalParent == rt.erp.stack[idx].function {

		parentBinding, ok := scope.GetBinding(rt.erp.stack[idx].vs, name)
		if !ok {
			break
		}

		parentBinding.Value = val

		binding = parentBinding
		fn = fn.lexicalParent
		idx--
	}
}
