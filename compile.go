package main

import (
	"context"
	"io"
)

// Compiler drives the whole pipeline for one source file: lex, reduce, then
// a single recursive descent pass that emits assembly into an in-memory
// sink. Configure with options via New.
type Compiler struct {
	src     io.Reader
	srcName string
	out     io.Writer

	logf  func(mess string, args ...interface{})
	warnf func(mess string, args ...interface{})

	env  *compileEnv
	toks []Token
	asm  asmEmitter
}

// Tokens exposes the reduced token stream, which is what InvalidSyntax
// indices refer to.
func (c *Compiler) Tokens() []Token { return c.toks }

// SourceName names the compiled input for diagnostics.
func (c *Compiler) SourceName() string { return c.srcName }

func (c *Compiler) run(ctx context.Context) error {
	toks, err := lex(c.src)
	if err != nil {
		return err
	}
	c.toks = reduce(toks)
	c.logf("lexed %v tokens, %v after reduction", len(toks), len(c.toks))

	if err := c.compile(ctx); err != nil {
		return err
	}
	if !c.env.defined("main") {
		c.warnf("no main function defined")
	}
	c.logf("emitted %v bytes of assembly for %v functions", c.asm.len(), len(c.env.signatures))

	if c.out != nil {
		return c.asm.flush(c.out)
	}
	return nil
}

// compile walks the reduced stream at the top level, where only function
// declarations, namespaces and bare newlines are legal.
func (c *Compiler) compile(ctx context.Context) error {
	for i := 0; i < len(c.toks); {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch tok := c.toks[i]; tok.Text {
		case "function":
			n, err := c.declareFunction(i, "")
			if err != nil {
				return err
			}
			i += n
		case "namespace":
			n, err := c.declareNamespace(i, "")
			if err != nil {
				return err
			}
			i += n
		case "\n":
			i++
		default:
			return c.fault(i, "unexpected token at top level: %s", tok.Text)
		}
	}
	return nil
}

// text returns the token text at i, or the empty string past the end so
// expectation checks fail naturally.
func (c *Compiler) text(i int) string {
	if i < len(c.toks) {
		return c.toks[i].Text
	}
	return ""
}

func (c *Compiler) fault(i int, format string, args ...interface{}) error {
	if i >= len(c.toks) {
		i = len(c.toks) - 1
	}
	if i < 0 {
		i = 0
	}
	return invalidSyntax(i, format, args...)
}

// declareFunction parses one function declaration starting at the function
// keyword, registers its signature, and compiles the body unless the
// declaration is a forward one. Returns the token count consumed.
func (c *Compiler) declareFunction(i int, prefix string) (int, error) {
	j := i + 1

	name := c.text(j)
	if !isValidName(name) {
		return 0, c.fault(j, "invalid function name: %s", name)
	}
	if prefix != "" {
		name = prefix + "::" + name
	}
	j++

	if c.text(j) != "(" {
		return 0, c.fault(j, "missing parameter list in declaration of %s", name)
	}
	j++

	sig := newSignature(name)
	for c.text(j) != ")" {
		if j >= len(c.toks) {
			return 0, c.fault(j, "unfinished parameter list in declaration of %s", name)
		}
		if len(sig.Params) > 0 {
			if c.text(j) != "," {
				return 0, c.fault(j, "expected , between parameters of %s", name)
			}
			j++
		}
		typ := c.text(j)
		if !isParamType(typ) {
			return 0, c.fault(j, "invalid parameter type: %s", typ)
		}
		j++
		param := c.text(j)
		if !isValidName(param) {
			return 0, c.fault(j, "invalid name for parameter: %s", param)
		}
		sig.addParam(param, typ)
		j++
	}
	j++

	if c.text(j) == "-" && c.text(j+1) == ">" {
		j += 2
		ret := c.text(j)
		if !isReturnType(ret) {
			return 0, c.fault(j, "invalid return type: %s", ret)
		}
		sig.Ret = ret
		j++
	}

	c.env.register(sig)

	if c.text(j) == ";" {
		// forward declaration, no body
		return j - i + 1, nil
	}
	if c.text(j) != "{" {
		return 0, c.fault(j, "expected { or ; after head of %s", sig)
	}

	c.logf("compiling function %v", sig)
	fn := newFuncEnv(sig)
	fn.beginBalance++
	c.asm.directivef(".function: %s", sig.Name)
	for k, param := range sig.Params {
		reg := uint(k + 1)
		c.asm.opf(".name: %d %s", reg, param)
		c.asm.opf("arg %d %d", reg, k)
		fn.root.insert(param, reg, sig.Types[param], "")
	}

	n, err := c.processBlock(j+1, fn.root)
	if err != nil {
		return 0, err
	}
	j += 1 + n

	if !fn.hasReturned {
		if sig.Ret != voidType {
			return 0, c.fault(j-1, "function %s does not return a value", sig)
		}
		c.asm.opf("end")
	}
	c.asm.directivef(".end")

	return j - i, nil
}

// declareNamespace processes a namespace block, qualifying every function
// declared inside with the namespace prefix. Prefixes compose across
// nesting.
func (c *Compiler) declareNamespace(i int, prefix string) (int, error) {
	j := i + 1

	name := c.text(j)
	if !isValidName(name) {
		return 0, c.fault(j, "invalid namespace name: %s", name)
	}
	if prefix != "" {
		name = prefix + "::" + name
	}
	j++

	if c.text(j) != "{" {
		return 0, c.fault(j, "expected { after namespace %s", name)
	}
	j++

	for j < len(c.toks) {
		switch tok := c.toks[j]; tok.Text {
		case "function":
			n, err := c.declareFunction(j, name)
			if err != nil {
				return 0, err
			}
			j += n
		case "namespace":
			n, err := c.declareNamespace(j, name)
			if err != nil {
				return 0, err
			}
			j += n
		case "\n":
			j++
		case "}":
			return j - i + 1, nil
		default:
			return 0, c.fault(j, "unexpected token in namespace %s: %s", name, tok.Text)
		}
	}
	return 0, c.fault(j, "missing } closing namespace %s", name)
}
