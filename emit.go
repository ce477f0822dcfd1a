package main

import (
	"bytes"
	"fmt"
	"io"

	"pjac/internal/flushio"
)

// asmEmitter is an append-only sink for generated assembly. Function frame
// directives sit in column zero; body instructions are indented four spaces.
// Nothing reaches the output writer until flush, so a fault part way through
// leaves no partial output behind.
type asmEmitter struct {
	buf bytes.Buffer
}

func (e *asmEmitter) directivef(format string, args ...interface{}) {
	fmt.Fprintf(&e.buf, format, args...)
	e.buf.WriteByte('\n')
}

func (e *asmEmitter) opf(format string, args ...interface{}) {
	e.buf.WriteString("    ")
	fmt.Fprintf(&e.buf, format, args...)
	e.buf.WriteByte('\n')
}

func (e *asmEmitter) len() int { return e.buf.Len() }

func (e *asmEmitter) flush(w io.Writer) error {
	wf := flushio.NewWriteFlusher(w)
	if _, err := wf.Write(e.buf.Bytes()); err != nil {
		return err
	}
	return wf.Flush()
}
