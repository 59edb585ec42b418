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
Package interpreter contains the evaluator of SPL. The evaluator walks the
AST with an explicit stack of call frames - each frame holds the currently
executing function and the variable scope of the call.
*/
package interpreter

import (
	"io"
	"os"

	"devt.de/krotik/spl/config"
	"devt.de/krotik/spl/parser"
	"devt.de/krotik/spl/util"
)

/*
splRuntimeNew is used to instantiate SPL runtime components.
*/
type splRuntimeNew func(*SPLRuntimeProvider, *parser.ASTNode) parser.Runtime

/*
providerMap contains the mapping of AST nodes to runtime components for SPL ASTs.
*/
var providerMap = map[string]splRuntimeNew{

	parser.NodeEOF: invalidRuntimeInst,

	// Value nodes

	parser.NodeINT:    intValueRuntimeInst,    // Integer constant
	parser.NodeTRUE:   trueRuntimeInst,        // True constant
	parser.NodeFALSE:  falseRuntimeInst,       // False constant
	parser.NodeSTRING: stringValueRuntimeInst, // String constant
	parser.NodeNIL:    nilRuntimeInst,         // Nil constant
	parser.NodeVAR:    identifierRuntimeInst,  // Identifier

	// Aggregate literals

	parser.NodeLIST: listValueRuntimeInst, // List value
	parser.NodeMAP:  mapValueRuntimeInst,  // Map value
	parser.NodeKVP:  voidRuntimeInst,      // Key-value pair

	// Binding forms

	parser.NodeLET: letRuntimeInst,
	parser.NodeMUT: mutRuntimeInst,
	parser.NodeSET: setRuntimeInst,

	// Control flow

	parser.NodeIF:    ifRuntimeInst,
	parser.NodeWHILE: whileRuntimeInst,
	parser.NodeSEQ:   seqRuntimeInst,

	// Unary operators

	parser.NodeNOT:   notOpRuntimeInst,
	parser.NodeHEAD:  headRuntimeInst,
	parser.NodeTAIL:  tailRuntimeInst,
	parser.NodePRINT: printRuntimeInst,

	// Binary operators

	parser.NodePLUS:  plusOpRuntimeInst,
	parser.NodeMINUS: minusOpRuntimeInst,
	parser.NodeTIMES: timesOpRuntimeInst,
	parser.NodeDIV:   divOpRuntimeInst,
	parser.NodeAND:   andOpRuntimeInst,
	parser.NodeOR:    orOpRuntimeInst,
	parser.NodeEQ:    equalOpRuntimeInst,
	parser.NodeNEQ:   notequalOpRuntimeInst,
	parser.NodeLT:    lessOpRuntimeInst,
	parser.NodeLEQ:   lessequalOpRuntimeInst,
	parser.NodeGT:    greaterOpRuntimeInst,
	parser.NodeGEQ:   greaterequalOpRuntimeInst,

	// Collection operators

	parser.NodePUSH: pushRuntimeInst,
	parser.NodeGET:  getRuntimeInst,
	parser.NodePUT:  putRuntimeInst,

	// Functions

	parser.NodeFUNC:   funcRuntimeInst,
	parser.NodePARAMS: voidRuntimeInst, // Function parameters
	parser.NodeCALL:   callRuntimeInst,
}

/*
frame models a single frame of the evaluator's call stack. It holds the
currently executing function (nil for the bottom frame) and the variable
scope of the call.
*/
type frame struct {
	function *function    // Currently executing function
	vs       parser.Scope // Frame environment
}

/*
SPLRuntimeProvider is the factory object producing runtime objects for SPL
ASTs. It also owns the evaluator state - the explicit stack of call frames.
*/
type SPLRuntimeProvider struct {
	Name   string      // Name to identify the input
	Logger util.Logger // Logger object for log messages
	Out    io.Writer   // Output writer of the print sink

	stack []*frame // Call stack - the bottom frame is never popped
}

/*
NewSPLRuntimeProvider returns a new instance of a SPL runtime provider.
*/
func NewSPLRuntimeProvider(name string, logger util.Logger, out io.Writer) *SPLRuntimeProvider {

	if logger == nil {

		// By default we just have a memory logger

		logger = util.NewMemoryLogger(config.Int(config.LogBufferSize))
	}

	if out == nil {

		// The print sink writes to stdout by default

		out = os.Stdout
	}

	return &SPLRuntimeProvider{name, logger, out, nil}
}

/*
Runtime returns a runtime component for a given ASTNode.
*/
func (erp *SPLRuntimeProvider) Runtime(node *parser.ASTNode) parser.Runtime {

	if instFunc, ok := providerMap[node.Name]; ok {
		return instFunc(erp, node)
	}

	return invalidRuntimeInst(erp, node)
}

/*
NewRuntimeError creates a new RuntimeError object.
*/
func (erp *SPLRuntimeProvider) NewRuntimeError(t error, d string, node *parser.ASTNode) error {
	return util.NewRuntimeError(erp.Name, t, d, node)
}

// Call stack
// ==========

/*
pushFrame pushes a new frame on the call stack.
*/
func (erp *SPLRuntimeProvider) pushFrame(f *frame) {
	erp.stack = append(erp.stack, f)
}

/*
popFrame removes the top frame from the call stack. The bottom frame is
never removed.
*/
func (erp *SPLRuntimeProvider) popFrame() {
	if len(erp.stack) > 1 {
		erp.stack = erp.stack[:len(erp.stack)-1]
	}
}

/*
currentFrame returns the top frame of the call stack.
*/
func (erp *SPLRuntimeProvider) currentFrame() *frame {
	if len(erp.stack) == 0 {
		return nil
	}
	return erp.stack[len(erp.stack)-1]
}

/*
currentFunction returns the currently executing function or nil if the
evaluator is at the top level.
*/
func (erp *SPLRuntimeProvider) currentFunction() *function {
	if f := erp.currentFrame(); f != nil {
		return f.function
	}
	return nil
}
