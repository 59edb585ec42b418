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

// List Operator Runtimes
// ======================

/*
headRuntime is the runtime component for the head operation which returns
the first element of a non-empty list.
*/
type headRuntime struct {
	*operatorRuntime
}

/*
headRuntimeInst returns a new runtime component instance.
*/
func headRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &headRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *headRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.listOp(func(l []interface{}) (interface{}, error) {
			if len(l) == 0 {
				return nil, rt.erp.NewRuntimeError(util.ErrEmptyList,
					"Head of an empty list", rt.node)
			}
			return l[0], nil
		}, 0, vs)
	}

	return res, err
}

/*
tailRuntime is the runtime component for the tail operation which returns
all but the first element of a non-empty list as a fresh list.
*/
type tailRuntime struct {
	*operatorRuntime
}

/*
tailRuntimeInst returns a new runtime component instance.
*/
func tailRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &tailRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *tailRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.listOp(func(l []interface{}) (interface{}, error) {
			if len(l) == 0 {
				return nil, rt.erp.NewRuntimeError(util.ErrEmptyList,
					"Tail of an empty list", rt.node)
			}

			tail := make([]interface{}, len(l)-1)
			copy(tail, l[1:])

			return tail, nil
		}, 0, vs)
	}

	return res, err
}

/*
pushRuntime is the runtime component for the push operation which returns
a fresh list with a new first element. The list operand is not mutated.
*/
type pushRuntime struct {
	*operatorRuntime
}

/*
pushRuntimeInst returns a new runtime component instance.
*/
func pushRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &pushRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component. The list operand is evaluated before
the element operand.
*/
func (rt *pushRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		res, err = rt.listOp(func(l []interface{}) (interface{}, error) {
			head, herr := rt.node.Children[0].Runtime.Eval(vs)

			if herr != nil {
				return nil, herr
			}

			ret := make([]interface{}, 0, len(l)+1)
			ret = append(ret, head)
			ret = append(ret, l...)

			return ret, nil
		}, 1, vs)
	}

	return res, err
}

// Map Operator Runtimes
// =====================

/*
getRuntime is the runtime component for the get operation which looks up a
key in a map. The key must be present.
*/
type getRuntime struct {
	*operatorRuntime
}

/*
getRuntimeInst returns a new runtime component instance.
*/
func getRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &getRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *getRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	m, err := rt.mapOperand(vs)
	if err != nil {
		return nil, err
	}

	key, err := rt.keyOperand(vs)
	if err != nil {
		return nil, err
	}

	val, ok := m[key]
	if !ok {
		return nil, rt.erp.NewRuntimeError(util.ErrUnknownKey,
			ToString(key), rt.node.Children[1])
	}

	return val, nil
}

/*
mapOperand evaluates the first child as a map value.
*/
func (rt *getRuntime) mapOperand(vs parser.Scope) (map[interface{}]interface{}, error) {
	res, err := rt.node.Children[0].Runtime.Eval(vs)

	if err != nil {
		return nil, err
	}

	m, ok := res.(map[interface{}]interface{})
	if !ok {
		return nil, rt.erp.NewRuntimeError(util.ErrNotAMap,
			rt.errorDetailString(rt.node.Children[0].Token, res), rt.node.Children[0])
	}

	return m, nil
}

/*
keyOperand evaluates the second child as a literal key value.
*/
func (rt *getRuntime) keyOperand(vs parser.Scope) (interface{}, error) {
	key, err := rt.node.Children[1].Runtime.Eval(vs)

	if err != nil {
		return nil, err
	}

	if !isLiteralValue(key) {
		return nil, rt.erp.NewRuntimeError(util.ErrNotALiteral,
			ToString(key), rt.node.Children[1])
	}

	return key, nil
}

/*
putRuntime is the runtime component for the put operation which mutates a
map in place and returns it.
*/
type putRuntime struct {
	*getRuntime
}

/*
putRuntimeInst returns a new runtime component instance.
*/
func putRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &putRuntime{&getRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *putRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	m, err := rt.mapOperand(vs)
	if err != nil {
		return nil, err
	}

	key, err := rt.keyOperand(vs)
	if err != nil {
		return nil, err
	}

	val, err := rt.node.Children[2].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}

	m[key] = val

	return m, nil
}
