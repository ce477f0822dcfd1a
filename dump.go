package main

import (
	"fmt"
	"io"
)

// envDumper renders the signature table after a compilation, one rendered
// header per declared function.
type envDumper struct {
	env *compileEnv
	out io.Writer
}

func (dump envDumper) dump() {
	fmt.Fprintf(dump.out, "# Signatures\n")
	for _, name := range dump.env.names() {
		fmt.Fprintf(dump.out, "  %v\n", dump.env.signatures[name])
	}
}
