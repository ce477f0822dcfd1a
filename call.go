package main

import (
	"fmt"
	"strings"
)

// processCall handles the two call statement forms:
//
//	NAME ( args... ) ;
//	DEST = NAME ( args... ) ;
//
// A bare call returns into register 0; an assigning call returns into the
// destination variable's register, whose type must match the callee's
// declared return type.
func (c *Compiler) processCall(i int, sc *scope) (int, error) {
	j := i
	var destReg uint
	destName := ""
	if c.text(i+1) == "=" {
		destName = c.text(i)
		if !sc.defined(destName) {
			return 0, c.fault(i, "undefined name as call destination: %s", destName)
		}
		reg, err := sc.registerOf(destName)
		if err != nil {
			return 0, c.fault(i, "%v", err)
		}
		destReg = reg
		j = i + 2
	}

	callName := c.text(j)
	sig, ok := c.env.resolve(callName)
	if !ok {
		return 0, c.fault(j, "call to undeclared function: %s", callName)
	}
	if c.text(j+1) != "(" {
		return 0, c.fault(j+1, "missing tokens after callable name: %s", callName)
	}
	j += 2

	type argument struct {
		reg uint
		typ string
	}
	var args []argument
	for c.text(j) != ")" {
		if j >= len(c.toks) {
			return 0, c.fault(j, "unfinished call to %s", sig)
		}
		if len(args) > 0 {
			if c.text(j) != "," {
				return 0, c.fault(j, "expected , between arguments of %s", sig)
			}
			j++
		}
		name := c.text(j)
		if !sc.defined(name) {
			return 0, c.fault(j, "undeclared identifier as call argument: %s", name)
		}
		reg, err := sc.registerOf(name)
		if err != nil {
			return 0, c.fault(j, "%v", err)
		}
		args = append(args, argument{reg: reg, typ: sc.typeOf(name)})
		j++
	}
	j++

	if len(args) != len(sig.Params) {
		return 0, c.fault(j-1, "invalid number of arguments in call to %s: expected %d, got %d", sig, len(sig.Params), len(args))
	}
	for k, arg := range args {
		want := sig.Types[sig.Params[k]]
		if want != autoType && want != arg.typ {
			return 0, c.fault(j-1, "mismatched argument %d in call to %s: expected %s, got %s", k, sig, want, arg.typ)
		}
	}
	if destName != "" {
		if destType := sc.typeOf(destName); destType != c.env.returns[sig.Name] {
			return 0, c.fault(i, "mismatched types: cannot assign %s result of %s to %s variable %s", sig.Ret, sig, destType, destName)
		}
	}

	if len(args) == 0 {
		c.asm.opf("frame 0")
	} else {
		params := make([]string, len(args))
		for k, arg := range args {
			params[k] = fmt.Sprintf("(param %d %d)", k, arg.reg)
		}
		c.asm.opf("frame ^[%s]", strings.Join(params, " "))
	}
	c.asm.opf("call %d %s", destReg, sig.Name)

	return j - i, nil
}
