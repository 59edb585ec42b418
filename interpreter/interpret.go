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
	"io"

	"devt.de/krotik/spl/parser"
	"devt.de/krotik/spl/scope"
)

/*
Interpret parses and evaluates a given source text against a fresh global
scope and returns the value of the top-level expression. Empty input
produces a nil value. When the verbose flag is set a human-readable
rendering of the AST is written to the output sink before evaluation.
The output sink is also the target of the print operation - a nil writer
selects stdout.
*/
func Interpret(name string, input string, verbose bool, out io.Writer) (interface{}, error) {
	erp := NewSPLRuntimeProvider(name, nil, out)

	ast, err := parser.ParseWithRuntime(name, input, erp)

	if err != nil || ast == nil {
		return nil, err
	}

	if err = ast.Runtime.Validate(); err != nil {
		return nil, err
	}

	if verbose {
		var pp string

		if pp, err = parser.PrettyPrint(ast); err != nil {
			return nil, err
		}

		fmt.Fprintln(erp.Out, pp)
	}

	return ast.Runtime.Eval(scope.NewScope(scope.GlobalScope))
}
