package main

import (
	"context"
	"io"

	"pjac/internal/panicerr"
)

// New creates a Compiler over the given options.
func New(opts ...Option) *Compiler {
	c := &Compiler{env: newCompileEnv()}
	defaultOptions.apply(c)
	Options(opts...).apply(c)
	return c
}

// Run executes the whole pipeline: lex, reduce, compile, and -- only on full
// success -- flush the generated assembly to the configured output. Internal
// panics come back as errors rather than crashing the caller.
func (c *Compiler) Run(ctx context.Context) error {
	return panicerr.Recover("compile", func() error {
		return c.run(ctx)
	})
}

// NamedReader attaches a name to a reader; WithSource picks it up for
// diagnostics.
func NamedReader(name string, r io.Reader) io.Reader { return readerName{r, name} }

type readerName struct {
	io.Reader
	name string
}

func (nr readerName) Name() string { return nr.name }
