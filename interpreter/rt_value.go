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
	"bytes"
	"fmt"
	"reflect"
	"strconv"

	"devt.de/krotik/common/sortutil"
	"devt.de/krotik/spl/parser"
	"devt.de/krotik/spl/util"
)

/*
intValueRuntime is the runtime component for constant integer values.
*/
type intValueRuntime struct {
	*baseRuntime
	intValue int64 // Integer value
}

/*
intValueRuntimeInst returns a new runtime component instance.
*/
func intValueRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &intValueRuntime{newBaseRuntime(erp, node), 0}
}

/*
Validate this node and all its child nodes.
*/
func (rt *intValueRuntime) Validate() error {
	err := rt.baseRuntime.Validate()

	if err == nil {
		rt.intValue, err = strconv.ParseInt(rt.node.Token.Val, 10, 64)
	}

	return err
}

/*
Eval evaluate this runtime component.
*/
func (rt *intValueRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	return rt.intValue, err
}

/*
stringValueRuntime is the runtime component for constant string values.
*/
type stringValueRuntime struct {
	*baseRuntime
	strValue string // Unescaped string value
}

/*
stringValueRuntimeInst returns a new runtime component instance.
*/
func stringValueRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &stringValueRuntime{newBaseRuntime(erp, node), ""}
}

/*
Validate this node and all its child nodes.
*/
func (rt *stringValueRuntime) Validate() error {
	err := rt.baseRuntime.Validate()

	if err == nil {

		// The token value keeps escape sequences verbatim - they are
		// interpreted once when producing the runtime value

		s, serr := strconv.Unquote(fmt.Sprintf("\"%s\"", rt.node.Token.Val))

		if serr != nil {

			// Values which cannot be unquoted are used as they are

			s = rt.node.Token.Val
		}

		rt.strValue = s
	}

	return err
}

/*
Eval evaluate this runtime component.
*/
func (rt *stringValueRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	return rt.strValue, err
}

/*
listValueRuntime is the runtime component for list values.
*/
type listValueRuntime struct {
	*baseRuntime
}

/*
listValueRuntimeInst returns a new runtime component instance.
*/
func listValueRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &listValueRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *listValueRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	l := make([]interface{}, 0, len(rt.node.Children))

	if err == nil {
		for _, item := range rt.node.Children {
			if err == nil {
				var val interface{}
				if val, err = item.Runtime.Eval(vs); err == nil {
					l = append(l, val)
				}
			}
		}
	}

	return l, err
}

/*
mapValueRuntime is the runtime component for map values.
*/
type mapValueRuntime struct {
	*baseRuntime
}

/*
mapValueRuntimeInst returns a new runtime component instance.
*/
func mapValueRuntimeInst(erp *SPLRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &mapValueRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *mapValueRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	m := make(map[interface{}]interface{})

	if err == nil {
		for _, kvp := range rt.node.Children {
			var key, val interface{}

			if err == nil {
				if key, err = kvp.Children[0].Runtime.Eval(vs); err == nil {

					// Only literal values can be used as keys

					if !isLiteralValue(key) {
						err = rt.erp.NewRuntimeError(util.ErrNotALiteral,
							rt.errorDetail(kvp.Children[0], key), kvp.Children[0])

					} else if val, err = kvp.Children[1].Runtime.Eval(vs); err == nil {
						m[key] = val
					}
				}
			}
		}
	}

	return m, err
}

/*
errorDetail produces a detail string for errors of this runtime component.
*/
func (rt *mapValueRuntime) errorDetail(node *parser.ASTNode, val interface{}) string {
	if node.Token != nil && node.Token.Identifier {
		return fmt.Sprintf("%v=%v", node.Token.Val, ToString(val))
	}
	return ToString(val)
}

// Value helper functions
// ======================

/*
isLiteralValue checks if a given runtime value is a literal value. Only
literal values can be used as map keys.
*/
func isLiteralValue(v interface{}) bool {
	switch v.(type) {
	case int64:
		return true
	case bool:
		return true
	case string:
		return true
	}
	return false
}

/*
valueEquals checks if two runtime values are equal. Literal values are
compared by value - aggregate values and functions by identity. Two empty
lists always compare equal.
*/
func valueEquals(v1 interface{}, v2 interface{}) bool {

	switch val1 := v1.(type) {

	case []interface{}:
		if val2, ok := v2.([]interface{}); ok {
			return len(val1) == len(val2) &&
				(len(val1) == 0 ||
					reflect.ValueOf(val1).Pointer() == reflect.ValueOf(val2).Pointer())
		}
		return false

	case map[interface{}]interface{}:
		if val2, ok := v2.(map[interface{}]interface{}); ok {
			return reflect.ValueOf(val1).Pointer() == reflect.ValueOf(val2).Pointer()
		}
		return false

	case *function:
		val2, ok := v2.(*function)
		return ok && val1 == val2
	}

	return v1 == v2
}

/*
ToString returns a string representation of a runtime value. The textual
form of lists and maps is their prefix-notation source form - map entries
appear in sorted key order so the rendering is stable across invocations.
*/
func ToString(v interface{}) string {
	return stringifyValue(v, false)
}

/*
stringifyValue renders a runtime value. Strings are quoted when they appear
inside an aggregate value.
*/
func stringifyValue(v interface{}, quote bool) string {

	switch val := v.(type) {

	case nil:
		return "nil"

	case bool:
		if val {
			return "True"
		}
		return "False"

	case int64:
		return strconv.FormatInt(val, 10)

	case string:
		if quote {
			return fmt.Sprintf("\"%s\"", val)
		}
		return val

	case []interface{}:
		var buf bytes.Buffer

		buf.WriteString("[")
		for i, item := range val {
			buf.WriteString(stringifyValue(item, true))
			if i < len(val)-1 {
				buf.WriteString(" ")
			}
		}
		buf.WriteString("]")

		return buf.String()

	case map[interface{}]interface{}:
		var buf bytes.Buffer

		keys := make([]interface{}, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sortutil.InterfaceStrings(keys)

		buf.WriteString("{")
		for i, k := range keys {
			buf.WriteString(stringifyValue(k, true))
			buf.WriteString(":")
			buf.WriteString(stringifyValue(val[k], true))
			if i < len(keys)-1 {
				buf.WriteString(" ")
			}
		}
		buf.WriteString("}")

		return buf.String()

	case *function:
		return val.String()
	}

	return fmt.Sprint(v)
}
