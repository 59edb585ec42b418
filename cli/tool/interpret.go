/*
 * SPL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tool

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"devt.de/krotik/common/fileutil"
	"devt.de/krotik/common/termutil"
	"github.com/fatih/color"

	"devt.de/krotik/spl/config"
	"devt.de/krotik/spl/interpreter"
	"devt.de/krotik/spl/parser"
	"devt.de/krotik/spl/scope"
	"devt.de/krotik/spl/util"
)

/*
Color definitions for console output.
*/
var (
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
)

/*
CLIInterpreter is a commandline interpreter for SPL.
*/
type CLIInterpreter struct {
	GlobalVS        parser.Scope                    // Global variable scope
	RuntimeProvider *interpreter.SPLRuntimeProvider // Runtime provider of the interpreter

	// Customizations of output and input handling

	CustomHandler        CLIInputHandler
	CustomWelcomeMessage string
	CustomHelpString     string

	EntryFile string // Entry file for the program

	// Parameter these can either be set programmatically or via CLI args

	LogFile  *string // Logfile (blank for stdout)
	LogLevel *string // Log level string (Debug, Info, Error)
	ShowAST  *bool   // Flag if the AST should be shown before evaluation

	// User terminal

	Term termutil.ConsoleLineTerminal

	// Log output

	LogOut io.Writer
}

/*
NewCLIInterpreter creates a new commandline interpreter for SPL.
*/
func NewCLIInterpreter() *CLIInterpreter {
	return &CLIInterpreter{scope.NewScope(scope.GlobalScope), nil, nil, "", "",
		"", nil, nil, nil, nil, os.Stdout}
}

/*
ParseArgs parses the command line arguments. Call this after adding custom flags.
Returns true if the program should exit.
*/
func (i *CLIInterpreter) ParseArgs() bool {

	if i.LogFile != nil && i.LogLevel != nil && i.ShowAST != nil {
		return false
	}

	i.LogFile = flag.String("logfile", "", "Log to a file")
	i.LogLevel = flag.String("loglevel", "Info", "Logging level (Debug, Info, Error)")
	i.ShowAST = flag.Bool("ast", false, "Show the AST of the program before evaluation")
	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("Usage of %s run [options] [file]", osArgs[0]))
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
	}

	if len(osArgs) >= 2 {
		flag.CommandLine.Parse(osArgs[2:])

		if cargs := flag.Args(); len(cargs) > 0 {
			i.EntryFile = flag.Arg(0)
		}

		if *showHelp {
			flag.Usage()
		}

		return *showHelp
	}

	return false
}

/*
CreateRuntimeProvider creates the runtime provider of this interpreter. This
function expects LogFile and LogLevel to be set.
*/
func (i *CLIInterpreter) CreateRuntimeProvider(name string) error {
	var logger util.Logger
	var err error

	if i.RuntimeProvider != nil {
		return nil
	}

	// Check if we should log to a file

	if i.LogFile != nil && *i.LogFile != "" {
		var logWriter io.Writer

		logFileRollover := fileutil.SizeBasedRolloverCondition(1000000) // Each file can be up to a megabyte
		logWriter, err = fileutil.NewMultiFileBuffer(*i.LogFile, fileutil.ConsecutiveNumberIterator(10), logFileRollover)
		logger = util.NewBufferLogger(logWriter)

	} else {

		// Log to the console by default

		logger = util.NewStdOutLogger()
	}

	// Set the log level

	if err == nil {
		if i.LogLevel != nil && *i.LogLevel != "" {
			logger, err = util.NewLogLevelLogger(logger, *i.LogLevel)
		}

		if err == nil {

			// Create interpreter

			i.RuntimeProvider = interpreter.NewSPLRuntimeProvider(name, logger, i.LogOut)
		}
	}

	return err
}

/*
LoadInitialFile clears the global scope and reloads the initial file.
*/
func (i *CLIInterpreter) LoadInitialFile() error {
	var err error

	i.GlobalVS = scope.NewScope(scope.GlobalScope)

	if i.EntryFile != "" {
		var ast *parser.ASTNode
		var initFile []byte

		initFile, err = ioutil.ReadFile(i.EntryFile)

		if err == nil {
			if ast, err = parser.ParseWithRuntime(i.EntryFile, string(initFile), i.RuntimeProvider); err == nil && ast != nil {
				if err = ast.Runtime.Validate(); err == nil {

					if i.ShowAST != nil && *i.ShowAST {
						fmt.Fprint(i.LogOut, ast)
					}

					_, err = ast.Runtime.Eval(i.GlobalVS)
				}
			}
		}
	}

	return err
}

/*
CreateTerm creates a new console terminal for stdout.
*/
func (i *CLIInterpreter) CreateTerm() error {
	var err error

	if i.Term == nil {
		i.Term, err = termutil.NewConsoleLineTerminal(os.Stdout)
	}

	return err
}

/*
Interpret starts the SPL code interpreter. Starts an interactive console in
the current tty if the interactive flag is set.
*/
func (i *CLIInterpreter) Interpret(interactive bool) error {

	if i.ParseArgs() {
		return nil
	}

	err := i.CreateTerm()

	if interactive {
		fmt.Fprintln(i.LogOut, greenColor.Sprintf("SPL %v", config.ProductVersion))
	}

	// Create Runtime Provider

	if err == nil {

		if err = i.CreateRuntimeProvider("console"); err == nil {

			if interactive {
				if lll, ok := i.RuntimeProvider.Logger.(*util.LogLevelLogger); ok {
					fmt.Fprint(i.LogOut, fmt.Sprintf("Log level: %v - ", lll.Level()))
				}

				fmt.Fprintln(i.LogOut, fmt.Sprintf("Product version: %v", config.ProductVersion))

				if i.CustomWelcomeMessage != "" {
					fmt.Fprintln(i.LogOut, i.CustomWelcomeMessage)
				}
			}

			// Execute file if given

			if err = i.LoadInitialFile(); err == nil {

				// Drop into interactive shell

				if interactive {

					// Add history functionality without file persistence

					i.Term, err = termutil.AddHistoryMixin(i.Term, "",
						func(s string) bool {
							return i.isExitLine(s)
						})

					if err == nil {

						if err = i.Term.StartTerm(); err == nil {
							var line string

							defer i.Term.StopTerm()

							fmt.Fprintln(i.LogOut, "Type 'q' or 'quit' to exit the shell and '?' to get help")

							line, err = i.Term.NextLine()
							for err == nil && !i.isExitLine(line) {
								trimmedLine := strings.TrimSpace(line)

								i.HandleInput(i.Term, trimmedLine)

								line, err = i.Term.NextLine()
							}
						}
					}
				}
			}
		}
	}

	return err
}

/*
isExitLine returns if a given input line should exit the interpreter.
*/
func (i *CLIInterpreter) isExitLine(s string) bool {
	return s == "exit" || s == "q" || s == "quit" || s == "bye" || s == "\x04"
}

/*
HandleInput handles input to this interpreter. It parses a given input line
and outputs on the given output terminal.
*/
func (i *CLIInterpreter) HandleInput(ot OutputTerminal, line string) {

	// Process the entered line

	if line == "?" {

		// Show help

		ot.WriteString(fmt.Sprintf("SPL %v\n", config.ProductVersion))
		ot.WriteString(fmt.Sprint("\n"))
		ot.WriteString(fmt.Sprint("Console supports all normal SPL expressions and the following special commands:\n"))
		ot.WriteString(fmt.Sprint("\n"))
		ot.WriteString(fmt.Sprint("    @reload - Clear the interpreter and reload the initial file if it was given.\n"))
		ot.WriteString(fmt.Sprint("    @ast <expression> - Show the AST of an expression.\n"))
		if i.CustomHelpString != "" {
			ot.WriteString(i.CustomHelpString)
		}
		ot.WriteString(fmt.Sprint("\n"))

	} else if strings.HasPrefix(line, "@reload") {

		if err := i.LoadInitialFile(); err != nil {
			ot.WriteString(redColor.Sprintln(err.Error()))
		}
		ot.WriteString(fmt.Sprintln("Reloaded interpreter state"))

	} else if strings.HasPrefix(line, "@ast") {

		if ast, err := parser.Parse("console input", line[4:]); err == nil && ast != nil {
			ot.WriteString(fmt.Sprint(ast))
		} else if err != nil {
			ot.WriteString(redColor.Sprintln(err.Error()))
		}

	} else if i.CustomHandler != nil && i.CustomHandler.CanHandle(line) {
		i.CustomHandler.Handle(ot, line)

	} else {
		var ierr error
		var ast *parser.ASTNode
		var res interface{}

		if line != "" {
			if ast, ierr = parser.ParseWithRuntime("console input", line, i.RuntimeProvider); ierr == nil && ast != nil {

				if ierr = ast.Runtime.Validate(); ierr == nil {

					if res, ierr = ast.Runtime.Eval(i.GlobalVS); ierr == nil && res != nil {
						ot.WriteString(yellowColor.Sprintln(interpreter.ToString(res)))
					}
				}
			}

			if ierr != nil {
				ot.WriteString(redColor.Sprintln(ierr.Error()))
			}
		}
	}
}
