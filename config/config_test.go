/*
 * SPL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"testing"
)

func TestConfig(t *testing.T) {

	if res := Int(LogBufferSize); res != 100 {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Str(FormatFileSuffix); res != "spl" {
		t.Error("Unexpected result:", res)
		return
	}

	origConfig := Config[LogBufferSize]
	defer func() {
		Config[LogBufferSize] = origConfig
	}()

	Config[LogBufferSize] = "42"

	if res := Int(LogBufferSize); res != 42 {
		t.Error("Unexpected result:", res)
		return
	}

	Config[LogBufferSize] = "true"

	if res := Bool(LogBufferSize); !res {
		t.Error("Unexpected result:", res)
		return
	}
}
