package main

import "strings"

// processBlock consumes statements starting at start until the matching }
// (which it consumes, decrementing the brace balance) or the end of the
// stream. Returns the token count consumed. The caller owns the scope: one
// is created per function body and per nested { } region.
func (c *Compiler) processBlock(start int, sc *scope) (int, error) {
	fn := sc.fn
	i := start
	for i < len(c.toks) {
		tok := c.toks[i]
		var (
			n   int
			err error
		)
		switch tok.Text {
		case "\n", ";":
			n = 1

		case "}":
			fn.beginBalance--
			return i - start + 1, nil

		case "{":
			// any freestanding { opens a child scope
			fn.beginBalance++
			n, err = c.processBlock(i+1, sc.child())
			n++

		case "var":
			n, err = c.declareVariable(i, sc)

		case "return":
			n, err = c.processReturn(i, sc)

		case "asm":
			n, err = c.processAsm(i)

		case "break":
			if fn.loopEnd == "" {
				return 0, c.fault(i, "break outside of a loop")
			}
			c.asm.opf("jump %s", fn.loopEnd)
			n = 1

		case "if":
			n, err = c.processIf(i, sc)

		case "while":
			n, err = c.processWhile(i, sc)

		default:
			n, err = c.processCall(i, sc)
		}
		if err != nil {
			return 0, err
		}
		i += n
	}
	return i - start, nil
}

// declareVariable handles `var TYPE NAME [= VALUE] ;`. The register is the
// next free one along the scope chain, and its .name: binding is emitted
// before the initializer.
func (c *Compiler) declareVariable(i int, sc *scope) (int, error) {
	typ := c.text(i + 1)
	name := c.text(i + 2)
	if !isValidName(name) {
		return 0, c.fault(i+2, "invalid name for variable: %s", name)
	}

	reg := uint(sc.size() + 1)
	c.asm.opf(".name: %d %s", reg, name)

	j := i + 3
	var value string
	if c.text(j) == "=" {
		value = c.text(j + 1)
		if value == "" {
			return 0, c.fault(j+1, "missing initialiser for variable %s", name)
		}
		j += 2
	} else {
		switch typ {
		case intType:
			value = "0"
		case stringType:
			value = "''"
		case floatType:
			value = "0.0"
		case boolType:
			value = "false"
		case autoType:
			return 0, c.fault(i+1, "unable to deduce type of %s: auto variable without initialiser", name)
		default:
			return 0, c.fault(i+1, "unknown type: %s", typ)
		}
	}

	if c.text(j) != ";" {
		return 0, c.fault(j, "expected ; after declaration of %s", name)
	}
	j++

	declType := typ
	if sc.defined(value) {
		srcType := sc.typeOf(value)
		if srcType != declType {
			if declType != autoType {
				return 0, c.fault(i+1, "mismatched types: cannot initialise %s variable %s from %s value %s", declType, name, srcType, value)
			}
			declType = srcType
		}
		srcReg, err := sc.registerOf(value)
		if err != nil {
			return 0, c.fault(j-2, "%v", err)
		}
		c.asm.opf("copy %d %d", reg, srcReg)
	} else {
		if declType == autoType {
			switch {
			case isNum(value, true):
				declType = intType
			case value[0] == '"' || value[0] == '\'':
				declType = stringType
			case value == "true" || value == "false":
				declType = boolType
			default:
				return 0, c.fault(j-2, "unable to deduce type of %s from value: %s", name, value)
			}
		}
		switch declType {
		case intType:
			c.asm.opf("istore %d %s", reg, value)
		case stringType:
			c.asm.opf("strstore %d %s", reg, value)
		case floatType:
			c.asm.opf("fstore %d %s", reg, value)
		case boolType:
			switch value {
			case "false", "0":
				c.asm.opf("not (not (istore %d 0))", reg)
			case "true", "1":
				c.asm.opf("not (istore %d 0)", reg)
			default:
				return 0, c.fault(j-2, "invalid bool literal: %s", value)
			}
		default:
			return 0, c.fault(i+1, "unknown type: %s", declType)
		}
	}

	sc.insert(name, reg, declType, value)
	return j - i, nil
}

// processReturn handles `return [VALUE] ;`, leaving the value in register 0
// and ending the frame.
func (c *Compiler) processReturn(i int, sc *scope) (int, error) {
	fn := sc.fn
	fn.hasReturned = true

	j := i + 1
	if c.text(j) == ";" {
		if fn.sig.Ret != voidType {
			return 0, c.fault(j, "bare return in function %s returning %s", fn.sig, fn.sig.Ret)
		}
		j++
	} else {
		value := c.text(j)
		switch {
		case isNum(value, true):
			if fn.sig.Ret != intType {
				return 0, c.fault(j, "mismatched return: %s literal in function %s", intType, fn.sig)
			}
			if value == "0" {
				c.asm.opf("izero 0")
			} else {
				c.asm.opf("istore 0 %s", value)
			}
		case sc.defined(value):
			reg, err := sc.registerOf(value)
			if err != nil {
				return 0, c.fault(j, "%v", err)
			}
			if reg != 0 {
				if typ := sc.typeOf(value); typ != fn.sig.Ret {
					return 0, c.fault(j, "mismatched return: %s value %s in function %s", typ, value, fn.sig)
				}
				c.asm.opf("move 0 %d", reg)
			}
		default:
			return 0, c.fault(j, "invalid return value: %s", value)
		}
		j++
		if c.text(j) != ";" {
			return 0, c.fault(j, "expected ; after return")
		}
		j++
	}

	c.asm.opf("end")
	return j - i, nil
}

// processAsm passes the tokens between asm and the terminating ; through as
// a single verbatim instruction line.
func (c *Compiler) processAsm(i int) (int, error) {
	var parts []string
	j := i + 1
	for ; c.text(j) != ";"; j++ {
		if j >= len(c.toks) {
			return 0, c.fault(j, "unfinished asm statement")
		}
		parts = append(parts, c.toks[j].Text)
	}
	c.asm.opf("%s", strings.Join(parts, " "))
	return j - i + 1, nil
}

// condition validates the name an if or while branches on and resolves its
// register.
func (c *Compiler) condition(i int, sc *scope, stmt string) (uint, error) {
	name := c.text(i)
	if !isValidName(name) {
		return 0, c.fault(i, "invalid name in %s condition: %s", stmt, name)
	}
	if !sc.defined(name) {
		return 0, c.fault(i, "undefined name in %s condition: %s", stmt, name)
	}
	reg, err := sc.registerOf(name)
	if err != nil {
		return 0, c.fault(i, "%v", err)
	}
	return reg, nil
}

// processIf handles `if NAME { body }`: a fall-through branch over the body
// to a freshly minted label. There is no else.
func (c *Compiler) processIf(i int, sc *scope) (int, error) {
	fn := sc.fn

	reg, err := c.condition(i+1, sc, "if")
	if err != nil {
		return 0, err
	}
	label := fn.ifLabel()
	c.asm.opf("branch %d +1 %s", reg, label)

	if c.text(i+2) != "{" {
		return 0, c.fault(i+2, "expected { after if condition")
	}
	fn.beginBalance++
	n, err := c.processBlock(i+3, sc.child())
	if err != nil {
		return 0, err
	}
	c.asm.opf(".mark: %s", label)

	return 3 + n, nil
}

// processWhile handles `while NAME { body }`. The current loop labels are
// saved around the body so break always targets the nearest loop.
func (c *Compiler) processWhile(i int, sc *scope) (int, error) {
	fn := sc.fn

	reg, err := c.condition(i+1, sc, "while")
	if err != nil {
		return 0, err
	}
	begin, end := fn.whileLabels()
	savedBegin, savedEnd := fn.loopBegin, fn.loopEnd
	fn.loopBegin, fn.loopEnd = begin, end

	c.asm.opf(".mark: %s", begin)
	c.asm.opf("branch %d +1 %s", reg, end)

	if c.text(i+2) != "{" {
		return 0, c.fault(i+2, "expected { after while condition")
	}
	fn.beginBalance++
	n, err := c.processBlock(i+3, sc.child())
	if err != nil {
		return 0, err
	}

	c.asm.opf("jump %s", begin)
	c.asm.opf(".mark: %s", end)
	fn.loopBegin, fn.loopEnd = savedBegin, savedEnd

	return 3 + n, nil
}
