/*
 * SPL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package tool contains the commandline tooling of SPL.
*/
package tool

import (
	"io"
	"os"
)

/*
osArgs is a local copy of os.Args (used for unit tests)
*/
var osArgs = os.Args

/*
osStderr is a local copy of os.Stderr (used for unit tests)
*/
var osStderr io.Writer = os.Stderr

/*
CLIInputHandler is a handler object for CLI input.
*/
type CLIInputHandler interface {

	/*
	   CanHandle checks if a given string can be handled by this handler.
	*/
	CanHandle(s string) bool

	/*
	   Handle handles a given input string.
	*/
	Handle(ot OutputTerminal, input string)
}

/*
OutputTerminal is a generic output terminal which can write strings.
*/
type OutputTerminal interface {

	/*
	   WriteString write a string on this terminal.
	*/
	WriteString(s string)
}
