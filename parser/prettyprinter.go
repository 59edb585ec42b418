/*
 * SPL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"devt.de/krotik/common/errorutil"
	"devt.de/krotik/common/stringutil"
)

/*
IndentationLevel is the level of indentation which the pretty printer should use
*/
const IndentationLevel = 4

/*
Map of AST nodes corresponding to lexer tokens
*/
var prettyPrinterMap map[string]*template.Template

func init() {
	prettyPrinterMap = map[string]*template.Template{

		NodeINT:    template.Must(template.New(NodeINT).Parse("{{.val}}")),
		NodeTRUE:   template.Must(template.New(NodeTRUE).Parse("True")),
		NodeFALSE:  template.Must(template.New(NodeFALSE).Parse("False")),
		NodeNIL:    template.Must(template.New(NodeNIL).Parse("nil")),
		NodeSTRING: template.Must(template.New(NodeSTRING).Parse("\"{{.val}}\"")),
		// NodeVAR - Special case (handled in code)

		// Binding forms

		NodeLET + "_2": template.Must(template.New(NodeLET).Parse("(let {{.c1}} {{.c2}})")),
		NodeMUT + "_2": template.Must(template.New(NodeMUT).Parse("(mut {{.c1}} {{.c2}})")),
		NodeSET + "_2": template.Must(template.New(NodeSET).Parse("(set {{.c1}} {{.c2}})")),

		// Unary operators

		NodeNOT + "_1":   template.Must(template.New(NodeNOT).Parse("(! {{.c1}})")),
		NodeHEAD + "_1":  template.Must(template.New(NodeHEAD).Parse("(head {{.c1}})")),
		NodeTAIL + "_1":  template.Must(template.New(NodeTAIL).Parse("(tail {{.c1}})")),
		NodePRINT + "_1": template.Must(template.New(NodePRINT).Parse("(print {{.c1}})")),

		// Binary operators

		NodePLUS + "_2":  template.Must(template.New(NodePLUS).Parse("(+ {{.c1}} {{.c2}})")),
		NodeMINUS + "_2": template.Must(template.New(NodeMINUS).Parse("(- {{.c1}} {{.c2}})")),
		NodeTIMES + "_2": template.Must(template.New(NodeTIMES).Parse("(* {{.c1}} {{.c2}})")),
		NodeDIV + "_2":   template.Must(template.New(NodeDIV).Parse("(/ {{.c1}} {{.c2}})")),
		NodeAND + "_2":   template.Must(template.New(NodeAND).Parse("(&& {{.c1}} {{.c2}})")),
		NodeOR + "_2":    template.Must(template.New(NodeOR).Parse("(|| {{.c1}} {{.c2}})")),
		NodeEQ + "_2":    template.Must(template.New(NodeEQ).Parse("(== {{.c1}} {{.c2}})")),
		NodeNEQ + "_2":   template.Must(template.New(NodeNEQ).Parse("(!= {{.c1}} {{.c2}})")),
		NodeLT + "_2":    template.Must(template.New(NodeLT).Parse("(< {{.c1}} {{.c2}})")),
		NodeLEQ + "_2":   template.Must(template.New(NodeLEQ).Parse("(<= {{.c1}} {{.c2}})")),
		NodeGT + "_2":    template.Must(template.New(NodeGT).Parse("(> {{.c1}} {{.c2}})")),
		NodeGEQ + "_2":   template.Must(template.New(NodeGEQ).Parse("(>= {{.c1}} {{.c2}})")),

		// Collection operators

		NodePUSH + "_2": template.Must(template.New(NodePUSH).Parse("(push {{.c1}} {{.c2}})")),
		NodeGET + "_2":  template.Must(template.New(NodeGET).Parse("(get {{.c1}} {{.c2}})")),
		NodePUT + "_3":  template.Must(template.New(NodePUT).Parse("(put {{.c1}} {{.c2}} {{.c3}})")),

		// Key-value pairs

		NodeKVP + "_2": template.Must(template.New(NodeKVP).Parse("{{.c1}}:{{.c2}}")),

		// NodeLIST - Special case (handled in code)
		// NodeMAP - Special case (handled in code)
		// NodeSEQ - Special case (handled in code)
		// NodeIF - Special case (handled in code)
		// NodeWHILE - Special case (handled in code)
		// NodeFUNC - Special case (handled in code)
		// NodePARAMS - Special case (handled in code)
		// NodeCALL - Special case (handled in code)
	}
}

/*
PrettyPrint produces pretty printed code from a given AST. The output is
parseable source which produces a semantically identical AST.
*/
func PrettyPrint(ast *ASTNode) (string, error) {
	var visit func(ast *ASTNode) (string, error)

	visit = func(ast *ASTNode) (string, error) {
		var buf bytes.Buffer

		if ast == nil {
			return "", fmt.Errorf("Nil pointer in AST")
		}

		numChildren := len(ast.Children)

		tempKey := ast.Name
		tempParam := make(map[string]string)

		// First pretty print children

		if numChildren > 0 {
			for i, child := range ast.Children {
				res, err := visit(child)
				if err != nil {
					return "", err
				}

				tempParam[fmt.Sprint("c", i+1)] = res
			}

			tempKey += fmt.Sprint("_", len(tempParam))
		}

		// Handle special cases which cannot be expressed as a simple template

		if res, ok := ppSpecialBlocks(ast, tempParam, &buf); ok {
			return res, nil
		} else if res, ok := ppContainerBlocks(ast, tempParam, &buf); ok {
			return res, nil
		}

		if ast.Name == NodeVAR {
			return ast.Token.Val, nil
		}

		if ast.Token != nil {

			// Adding node value to template parameters

			tempParam["val"] = ast.Token.Val
		}

		// Retrieve the template

		temp, ok := prettyPrinterMap[tempKey]
		errorutil.AssertTrue(ok,
			fmt.Sprintf("Could not find template for %v (tempkey: %v)",
				ast.Name, tempKey))

		// Use the children as parameters for template

		errorutil.AssertOk(temp.Execute(&buf, tempParam))

		return buf.String(), nil
	}

	res, err := visit(ast)

	return strings.TrimSpace(res), err
}

/*
ppIndentBlock indents every line of a given block.
*/
func ppIndentBlock(block string) string {
	indentSpaces := stringutil.GenerateRollingString(" ", IndentationLevel)
	return indentSpaces + strings.Replace(block, "\n", "\n"+indentSpaces, -1)
}

/*
ppSpecialBlocks pretty prints block structures with indented bodies.
*/
func ppSpecialBlocks(ast *ASTNode, tempParam map[string]string, buf *bytes.Buffer) (string, bool) {

	if ast.Name == NodeSEQ {

		buf.WriteString(tempParam["c1"])
		buf.WriteString(";\n")
		buf.WriteString(tempParam["c2"])

		return buf.String(), true

	} else if ast.Name == NodeIF {

		buf.WriteString("(if ")
		buf.WriteString(tempParam["c1"])
		buf.WriteString("\n")
		buf.WriteString(ppIndentBlock(tempParam["c2"]))
		buf.WriteString("\n")
		buf.WriteString(ppIndentBlock(tempParam["c3"]))
		buf.WriteString("\n)")

		return buf.String(), true

	} else if ast.Name == NodeWHILE {

		buf.WriteString("(while ")
		buf.WriteString(tempParam["c1"])
		buf.WriteString("\n")
		buf.WriteString(ppIndentBlock(tempParam["c2"]))
		buf.WriteString("\n)")

		return buf.String(), true

	} else if ast.Name == NodeFUNC {

		buf.WriteString("(func ")
		buf.WriteString(tempParam["c1"])
		if tempParam["c2"] != "" {
			buf.WriteString(" ")
			buf.WriteString(tempParam["c2"])
		}
		buf.WriteString(":\n")
		buf.WriteString(ppIndentBlock(tempParam["c3"]))
		buf.WriteString("\n)")

		return buf.String(), true

	} else if ast.Name == NodePARAMS {

		for i := 0; i < len(ast.Children); i++ {
			buf.WriteString(tempParam[fmt.Sprint("c", i+1)])
			if i < len(ast.Children)-1 {
				buf.WriteString(" ")
			}
		}

		return buf.String(), true

	} else if ast.Name == NodeCALL {

		buf.WriteString("(call ")
		buf.WriteString(tempParam["c1"])

		for i := 1; i < len(ast.Children); i++ {
			buf.WriteString(" ")
			buf.WriteString(tempParam[fmt.Sprint("c", i+1)])
		}

		buf.WriteString(")")

		return buf.String(), true
	}

	return "", false
}

/*
ppContainerBlocks pretty prints container structures.
*/
func ppContainerBlocks(ast *ASTNode, tempParam map[string]string, buf *bytes.Buffer) (string, bool) {
	numChildren := len(ast.Children)

	if ast.Name == NodeLIST {

		buf.WriteString("[")

		for i := 0; i < numChildren; i++ {
			buf.WriteString(tempParam[fmt.Sprint("c", i+1)])
			if i < numChildren-1 {
				buf.WriteString(" ")
			}
		}

		buf.WriteString("]")

		return buf.String(), true

	} else if ast.Name == NodeMAP {
		multilineThreshold := 2

		if numChildren == 0 {
			return "{}", true
		}

		buf.WriteString("{")

		if numChildren > multilineThreshold {
			for i := 0; i < numChildren; i++ {
				buf.WriteString("\n")
				buf.WriteString(ppIndentBlock(tempParam[fmt.Sprint("c", i+1)]))
			}
			buf.WriteString("\n}")

		} else {

			for i := 0; i < numChildren; i++ {
				buf.WriteString(tempParam[fmt.Sprint("c", i+1)])
				if i < numChildren-1 {
					buf.WriteString(" ")
				}
			}
			buf.WriteString("}")
		}

		return buf.String(), true
	}

	return "", false
}
