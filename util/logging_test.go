/*
 * SPL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestMemoryLogger(t *testing.T) {

	ml := NewMemoryLogger(5)

	ml.LogDebug("test")
	ml.LogInfo("test")

	if ml.String() != `debug: test
test` {
		t.Error("Unexpected log:", ml.String())
		return
	}

	if res := ml.Slice(); len(res) != 2 {
		t.Error("Unexpected log:", res)
		return
	}

	ml.Reset()

	if ml.Size() != 0 {
		t.Error("Unexpected size:", ml.Size())
		return
	}
}

func TestLogLevelLogger(t *testing.T) {

	ml := NewMemoryLogger(5)

	ll, err := NewLogLevelLogger(ml, "info")
	if err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	if ll.Level() != Info {
		t.Error("Unexpected level:", ll.Level())
		return
	}

	ll.LogDebug("debug message")
	ll.LogInfo("info message")
	ll.LogError("error message")

	if ml.String() != `info message
error: error message` {
		t.Error("Unexpected log:", ml.String())
		return
	}

	if _, err := NewLogLevelLogger(ml, "foo"); err == nil ||
		err.Error() != "Invalid log level: foo" {
		t.Error("Unexpected error:", err)
		return
	}
}

func TestBufferLogger(t *testing.T) {

	var buf bytes.Buffer

	bl := NewBufferLogger(&buf)

	bl.LogDebug("a")
	bl.LogInfo("b")
	bl.LogError("c")

	if buf.String() != `debug: a
b
error: c
` {
		t.Error("Unexpected log:", buf.String())
		return
	}
}

func TestNullLogger(t *testing.T) {

	nl := NewNullLogger()

	nl.LogDebug("a")
	nl.LogInfo("b")
	nl.LogError("c")
}

func TestStdOutLogger(t *testing.T) {

	sl := NewStdOutLogger()

	var out []string

	sl.stdlog = func(v ...interface{}) {
		for _, e := range v {
			out = append(out, strings.TrimSpace(e.(string)))
		}
	}

	sl.LogInfo("test")

	if len(out) != 1 || out[0] != "test" {
		t.Error("Unexpected output:", out)
		return
	}
}
