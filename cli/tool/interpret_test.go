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
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

/*
testTerminal is a test OutputTerminal collecting all output in a buffer.
*/
type testTerminal struct {
	buf bytes.Buffer
}

func (tt *testTerminal) WriteString(s string) {
	tt.buf.WriteString(s)
}

func newTestInterpreter() (*CLIInterpreter, error) {
	logFile := ""
	logLevel := "Info"
	showAST := false

	i := NewCLIInterpreter()
	i.LogFile = &logFile
	i.LogLevel = &logLevel
	i.ShowAST = &showAST

	err := i.CreateRuntimeProvider("test")

	return i, err
}

func TestHandleInput(t *testing.T) {

	i, err := newTestInterpreter()
	if err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	term := &testTerminal{}

	i.HandleInput(term, `(let x 20); (+ x 22)`)

	if !strings.Contains(term.buf.String(), "42") {
		t.Error("Unexpected output:", term.buf.String())
		return
	}

	// The global scope is kept between inputs

	term.buf.Reset()
	i.HandleInput(term, `x`)

	if !strings.Contains(term.buf.String(), "20") {
		t.Error("Unexpected output:", term.buf.String())
		return
	}

	// Errors are written to the terminal

	term.buf.Reset()
	i.HandleInput(term, `(let x`)

	if !strings.Contains(term.buf.String(), "Parse error") {
		t.Error("Unexpected output:", term.buf.String())
		return
	}

	term.buf.Reset()
	i.HandleInput(term, `(head [])`)

	if !strings.Contains(term.buf.String(), "List is empty") {
		t.Error("Unexpected output:", term.buf.String())
		return
	}

	// Special commands

	term.buf.Reset()
	i.HandleInput(term, "?")

	if !strings.Contains(term.buf.String(), "Console supports all normal SPL expressions") {
		t.Error("Unexpected output:", term.buf.String())
		return
	}

	term.buf.Reset()
	i.HandleInput(term, "@ast (+ 1 2)")

	if !strings.Contains(term.buf.String(), "plus") ||
		!strings.Contains(term.buf.String(), "int: 1") {
		t.Error("Unexpected output:", term.buf.String())
		return
	}
}

func TestLoadInitialFile(t *testing.T) {

	i, err := newTestInterpreter()
	if err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	tmpDir, err := ioutil.TempDir("", "spltest")
	if err != nil {
		t.Error("Unexpected error:", err)
		return
	}
	defer os.RemoveAll(tmpDir)

	entryFile := filepath.Join(tmpDir, "main.spl")
	ioutil.WriteFile(entryFile, []byte(`(mut counter 42)`), 0644)

	i.EntryFile = entryFile

	if err = i.LoadInitialFile(); err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	if v, ok, _ := i.GlobalVS.GetValue("counter"); !ok || v != int64(42) {
		t.Error("Unexpected scope content:", v, ok)
		return
	}

	// A reload resets the global scope

	term := &testTerminal{}
	i.HandleInput(term, "@reload")

	if !strings.Contains(term.buf.String(), "Reloaded interpreter state") {
		t.Error("Unexpected output:", term.buf.String())
		return
	}

	if v, ok, _ := i.GlobalVS.GetValue("counter"); !ok || v != int64(42) {
		t.Error("Unexpected scope content:", v, ok)
		return
	}
}

func TestExitLine(t *testing.T) {

	i := NewCLIInterpreter()

	for _, line := range []string{"exit", "q", "quit", "bye", "\x04"} {
		if !i.isExitLine(line) {
			t.Error("Line should exit:", line)
			return
		}
	}

	if i.isExitLine("foo") {
		t.Error("Line should not exit")
		return
	}
}
