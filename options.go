package main

import (
	"fmt"
	"io"

	"pjac/internal/flushio"
)

type Option interface{ apply(c *Compiler) }

var defaultOptions = Options(
	withLogfn(func(string, ...interface{}) {}),
	withWarnfn(func(string, ...interface{}) {}),
)

func WithSource(r io.Reader) Option { return sourceOption{r} }
func WithOutput(w io.Writer) Option { return outputOption{w} }
func WithTee(w io.Writer) Option    { return teeOption{w} }

func WithLogf(logfn func(mess string, args ...interface{})) Option   { return withLogfn(logfn) }
func WithWarnf(warnfn func(mess string, args ...interface{})) Option { return withWarnfn(warnfn) }

func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(c *Compiler) {}

type options []Option

func (opts options) apply(c *Compiler) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(c)
		}
	}
}

type withLogfn func(mess string, args ...interface{})
type withWarnfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(c *Compiler)   { c.logf = logfn }
func (warnfn withWarnfn) apply(c *Compiler) { c.warnf = warnfn }

type sourceOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }

func (o sourceOption) apply(c *Compiler) {
	c.src = o.Reader
	c.srcName = nameOf(o.Reader)
}

func (o outputOption) apply(c *Compiler) {
	c.out = o.Writer
}

func (o teeOption) apply(c *Compiler) {
	if c.out == nil {
		c.out = o.Writer
		return
	}
	c.out = flushio.WriteFlushers(
		flushio.NewWriteFlusher(c.out),
		flushio.NewWriteFlusher(o.Writer),
	)
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
