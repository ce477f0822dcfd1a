package main

import (
	"fmt"
	"sort"
	"strings"
)

const (
	voidType   = "void"
	intType    = "int"
	floatType  = "float"
	stringType = "string"
	boolType   = "bool"
	autoType   = "auto"
)

func isParamType(s string) bool {
	switch s {
	case intType, floatType, stringType, boolType, autoType:
		return true
	}
	return false
}

func isReturnType(s string) bool {
	switch s {
	case voidType, intType, floatType, stringType, boolType:
		return true
	}
	return false
}

// Signature describes a declared function: its name, return type, and
// parameters in declaration order. Frozen once registered.
type Signature struct {
	Name   string
	Ret    string
	Params []string
	Types  map[string]string
}

func newSignature(name string) *Signature {
	return &Signature{Name: name, Ret: voidType, Types: make(map[string]string)}
}

func (sig *Signature) addParam(name, typ string) {
	sig.Params = append(sig.Params, name)
	sig.Types[name] = typ
}

// String renders the signature header used in diagnostics, e.g.
// foo(int, bool)->void.
func (sig *Signature) String() string {
	types := make([]string, len(sig.Params))
	for i, name := range sig.Params {
		types[i] = sig.Types[name]
	}
	return fmt.Sprintf("%s(%s)->%s", sig.Name, strings.Join(types, ", "), sig.Ret)
}

// compileEnv is the per-compilation collection of declared signatures, with
// a name to return-type shortcut kept alongside for call-site lookups.
type compileEnv struct {
	signatures map[string]*Signature
	returns    map[string]string
}

func newCompileEnv() *compileEnv {
	return &compileEnv{
		signatures: make(map[string]*Signature),
		returns:    make(map[string]string),
	}
}

// register enters sig, overwriting any earlier registration under the same
// name.
func (env *compileEnv) register(sig *Signature) {
	env.signatures[sig.Name] = sig
	env.returns[sig.Name] = sig.Ret
}

func (env *compileEnv) defined(name string) bool {
	_, ok := env.signatures[name]
	return ok
}

// resolve looks name up directly, then retries once under the implicit
// leading namespace. The returned signature carries the name it was found
// under.
func (env *compileEnv) resolve(name string) (*Signature, bool) {
	if sig, ok := env.signatures[name]; ok {
		return sig, true
	}
	if sig, ok := env.signatures["::"+name]; ok {
		return sig, true
	}
	return nil, false
}

func (env *compileEnv) names() []string {
	names := make([]string, 0, len(env.signatures))
	for name := range env.signatures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
