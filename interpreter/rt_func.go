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
	"encoding/json"
	"fmt"

	"devt.de/krotik/spl/parser"
	"devt.de/krotik/spl/scope"
	"devt.de/krotik/spl/util"
)

/*
funcRuntime is the runtime component for function definitions. Evaluating
a definition produces a closure which snapshots every binding currently
visible in the frame.
*/
type funcRuntime struct {
	*baseRuntime
}

/*
funcRuntimeInst returns a new runtime component instance.
*/
func funcRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &funcRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *funcRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	name := rt.node.Children[0].Token.Val

	paramNodes := rt.node.Children[1].Children
	params := make([]string, 0, len(paramNodes))
	for _, p := range paramNodes {
		params = append(params, p.Token.Val)
	}

	fn := &function{name, params, rt.node, rt.node.Children[2],
		rt.erp.currentFunction(), scope.Snapshot(vs)}

	// The closure knows itself under its own name. The same binding object
	// is installed in the current frame.

	selfBinding := scope.NewBinding(scope.ScopeInherited, scope.DeclLet, false, fn)
	fn.env[name] = selfBinding

	if err = scope.SetBinding(vs, name, selfBinding); err != nil {
		return nil, rt.erp.NewRuntimeError(util.ErrInvalidBinding, err.Error(), rt.node)
	}

	return fn, nil
}

/*
function models a closure value. It carries the name of the originating
function definition, the remaining parameter list after any partial
application, the body, the lexical parent closure and a snapshot of the
defining environment.
*/
type function struct {
	name          string                    // Name of the function definition
	params        []string                  // Remaining unbound parameters
	declaration   *parser.ASTNode           // Function declaration node
	body          *parser.ASTNode           // Function body node
	lexicalParent *function                 // Closure which was executing at construction time
	env           map[string]*scope.Binding // Captured environment
}

/*
String returns a string representation of this function.
*/
func (f *function) String() string {
	if f.declaration != nil && f.declaration.Token != nil {
		return fmt.Sprintf("spl.function: %v (%v)", f.name, f.declaration.Token.PosString())
	}
	return fmt.Sprintf("spl.function: %v", f.name)
}

/*
MarshalJSON returns a string representation of this function - a function
cannot be JSON encoded.
*/
func (f *function) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

/*
callRuntime is the runtime component for function calls. Arguments are
evaluated left-to-right in the caller's frame. Calls with fewer arguments
than parameters produce a new closure via partial application.
*/
type callRuntime struct {
	*baseRuntime
}

/*
callRuntimeInst returns a new runtime component instance.
*/
func callRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &callRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *callRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	var fnVal interface{}

	if fnVal, err = rt.node.Children[0].Runtime.Eval(vs); err != nil {
		return nil, err
	}

	fn, ok := fnVal.(*function)
	if !ok {
		return nil, rt.erp.NewRuntimeError(util.ErrNotAFunction,
			fmt.Sprintf("Cannot call %v", ToString(fnVal)), rt.node.Children[0])
	}

	// Evaluate the arguments in the caller's frame

	args := make([]interface{}, 0, len(rt.node.Children)-1)

	for _, argNode := range rt.node.Children[1:] {
		var arg interface{}

		if arg, err = argNode.Runtime.Eval(vs); err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	if len(args) > len(fn.params) {
		return nil, rt.erp.NewRuntimeError(util.ErrTooManyArgs,
			fmt.Sprintf("Function %v takes %v arguments - called with %v",
				fn.name, len(fn.params), len(args)), rt.node)
	}

	if len(args) < len(fn.params) {

		// Not all parameters are available - build a new closure via
		// partial application

		partial := &function{fn.name, fn.params[len(args):], fn.declaration,
			fn.body, fn.lexicalParent, scope.CopyBindings(fn.env)}

		for i, arg := range args {
			partial.env[fn.params[i]] = scope.NewBinding(scope.ScopeParam,
				scope.DeclLet, false, arg)
		}

		return partial, nil
	}

	// All parameters are available - evaluate the function body in a new
	// frame

	env := scope.CopyBindings(fn.env)

	for i, arg := range args {
		env[fn.params[i]] = scope.NewBinding(scope.ScopeParam, scope.DeclLet, false, arg)
	}

	env[fn.name] = scope.NewBinding(scope.ScopeInherited, scope.DeclLet, true, fn)

	fvs := scope.NewScopeWithBindings(fmt.Sprintf("%v %v", scope.FuncPrefix, fn.name), env)

	rt.erp.pushFrame(&frame{fn, fvs})

	res, err := fn.body.Runtime.Eval(fvs)

	rt.erp.popFrame()

	return res, err
}
