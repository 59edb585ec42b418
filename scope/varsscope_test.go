/*
 * SPL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scope

import (
	"fmt"
	"strings"
	"testing"
)

func TestVarsScopeBasics(t *testing.T) {

	vs := NewScope(GlobalScope)

	if vs.Name() != GlobalScope {
		t.Error("Unexpected name:", vs.Name())
		return
	}

	if err := vs.Declare("x", false, 1); err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	if err := vs.Declare("y", true, 2); err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	if v, ok, _ := vs.GetValue("x"); !ok || v != 1 {
		t.Error("Unexpected value:", v, ok)
		return
	}

	if v, ok, _ := vs.GetValue("z"); ok || v != nil {
		t.Error("Unexpected value:", v, ok)
		return
	}

	if res := fmt.Sprint(vs); res != `GlobalScope {
    x (local/let) = 1
    y (local/mut) = 2
}` {
		t.Error("Unexpected string representation:", res)
		return
	}

	if res := fmt.Sprint(vs.ToJSONObject()); res != "map[x:1 y:2]" {
		t.Error("Unexpected JSON object:", res)
		return
	}
}

func TestVarsScopeBindingRules(t *testing.T) {

	vs := NewScope(GlobalScope)

	// Local bindings

	vs.Declare("a", false, 1)
	vs.Declare("b", true, 2)

	if err := vs.Declare("a", false, 3); err == nil ||
		err.Error() != "Re-declaration of a inside local scope" {
		t.Error("Unexpected error:", err)
		return
	}

	if err := vs.Assign("a", 3); err == nil ||
		err.Error() != "Cannot rebind non-mutable a" {
		t.Error("Unexpected error:", err)
		return
	}

	if err := vs.Assign("b", 3); err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	if v, _, _ := vs.GetValue("b"); v != 3 {
		t.Error("Unexpected value:", v)
		return
	}

	// Once rebound the binding keeps its effective mutability

	if err := vs.Assign("b", 4); err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	if err := vs.Assign("c", 1); err == nil ||
		err.Error() != "Cannot assign unknown variable c" {
		t.Error("Unexpected error:", err)
		return
	}
}

func TestVarsScopeInheritedBindings(t *testing.T) {

	vs := NewScope("func: f")

	SetBinding(vs, "let1", NewBinding(ScopeInherited, DeclLet, false, 1))
	SetBinding(vs, "mut1", NewBinding(ScopeInherited, DeclMut, false, 2))
	SetBinding(vs, "self1", NewBinding(ScopeInherited, DeclLet, true, nil))

	// Inherited non-mutable bindings cannot be reassigned

	if err := vs.Assign("let1", 3); err == nil ||
		err.Error() != "Cannot rebind non-mutable let1" {
		t.Error("Unexpected error:", err)
		return
	}

	// Inherited mutable bindings can be reassigned and keep their scope

	if err := vs.Assign("mut1", 3); err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	if b, ok := GetBinding(vs, "mut1"); !ok || b.Scope != ScopeInherited || b.Decl != DeclNone {
		t.Error("Unexpected binding:", b, ok)
		return
	}

	// New declarations shadow inherited bindings

	if err := vs.Declare("let1", true, 4); err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	if b, _ := GetBinding(vs, "let1"); b.Scope != ScopeLocal || b.Decl != DeclMut {
		t.Error("Unexpected binding:", b)
		return
	}

	// The executing function cannot be rebound under its own name

	if err := vs.Assign("self1", 1); err == nil ||
		err.Error() != "Re-binding of current function self1" {
		t.Error("Unexpected error:", err)
		return
	}

	if err := vs.Declare("self1", false, 1); err == nil ||
		err.Error() != "Re-binding of current function self1" {
		t.Error("Unexpected error:", err)
		return
	}
}

func TestVarsScopeParamBindings(t *testing.T) {

	vs := NewScope("func: f")

	SetBinding(vs, "p", NewBinding(ScopeParam, DeclLet, false, 1))

	if err := vs.Declare("p", false, 2); err == nil ||
		err.Error() != "Re-declaration of param p" {
		t.Error("Unexpected error:", err)
		return
	}

	if err := vs.Declare("p", true, 2); err == nil ||
		err.Error() != "Re-declaration of param p" {
		t.Error("Unexpected error:", err)
		return
	}

	if err := vs.Assign("p", 2); err == nil ||
		err.Error() != "Cannot rebind non-mutable p" {
		t.Error("Unexpected error:", err)
		return
	}
}

func TestSnapshotAndCopy(t *testing.T) {

	vs := NewScope(GlobalScope)

	vs.Declare("x", false, 1)
	vs.Declare("y", true, 2)

	snapshot := Snapshot(vs)

	if len(snapshot) != 2 {
		t.Error("Unexpected snapshot:", snapshot)
		return
	}

	// Snapshot bindings are re-tagged as inherited and keep their
	// declaration kind

	if b := snapshot["x"]; b.Scope != ScopeInherited || b.Decl != DeclLet || b.Value != 1 {
		t.Error("Unexpected binding:", b)
		return
	}

	if b := snapshot["y"]; b.Scope != ScopeInherited || b.Decl != DeclMut || b.Value != 2 {
		t.Error("Unexpected binding:", b)
		return
	}

	// Snapshot bindings are copies - mutating them does not affect the
	// original scope

	snapshot["x"].Value = 42

	if v, _, _ := vs.GetValue("x"); v != 1 {
		t.Error("Unexpected value:", v)
		return
	}

	// CopyBindings resets the self flag

	orig := map[string]*Binding{
		"f": NewBinding(ScopeInherited, DeclLet, true, nil),
	}

	bindings := CopyBindings(orig)

	if b := bindings["f"]; b.IsSelf || b == orig["f"] {
		t.Error("Unexpected binding:", b)
		return
	}

	// Bindings built into a new scope are accessible through it

	vs2 := NewScopeWithBindings("func: f", bindings)

	if _, ok, _ := vs2.GetValue("f"); !ok {
		t.Error("Binding should be accessible")
		return
	}
}

func TestBindingStrings(t *testing.T) {

	if s := fmt.Sprint(ScopeParam, ScopeLocal, ScopeInherited); s != "param local inherited" {
		t.Error("Unexpected result:", s)
		return
	}

	if s := fmt.Sprint(DeclLet, DeclMut, DeclNone); s != "let mut none" {
		t.Error("Unexpected result:", s)
		return
	}

	// Helper functions are robust against foreign scope implementations

	if _, ok := GetBinding(nil, "x"); ok {
		t.Error("Unexpected result")
		return
	}

	if err := SetBinding(nil, "x", NewBinding(ScopeLocal, DeclLet, false, 1)); err == nil ||
		!strings.Contains(err.Error(), "Cannot set binding") {
		t.Error("Unexpected result:", err)
		return
	}
}
