package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io/ioutil"
	"os"

	"pjac/internal/logio"
	"pjac/internal/srcfile"
)

func main() {
	var (
		output string
		trace  bool
		dump   bool
		show   bool
	)
	flag.StringVar(&output, "o", "", "output file path (defaults to <input>.asm)")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "print declared signatures after compilation")
	flag.BoolVar(&show, "S", false, "also print the generated assembly to stdout")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	input := flag.Arg(0)
	if input == "" {
		log.Errorf("fatal: no input file")
		return
	}
	src, err := srcfile.Load(input)
	if err != nil {
		log.Errorf("fatal: could not open file: %v", err)
		return
	}
	if output == "" {
		output = input + ".asm"
	}

	var asm bytes.Buffer
	opts := []Option{
		WithSource(src.Reader()),
		WithOutput(&asm),
		WithWarnf(log.Leveledf("WARN")),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	if show {
		opts = append(opts, WithTee(os.Stdout))
	}

	pc := New(opts...)
	if err := pc.Run(context.Background()); err != nil {
		report(&log, pc, src, err)
		return
	}

	if dump {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		defer envDumper{env: pc.env, out: lw}.dump()
	}

	if err := ioutil.WriteFile(output, asm.Bytes(), 0644); err != nil {
		log.Errorf("fatal: could not write file: %v", err)
	}
}

// report pretty-prints a compile fault, lifting the offending token index to
// a source position and quoting the neighboring lines.
func report(log *logio.Logger, pc *Compiler, src *srcfile.File, err error) {
	var is InvalidSyntax
	if !errors.As(err, &is) {
		log.Errorf("%+v", err)
		return
	}

	line, column := 1, 1
	if toks := pc.Tokens(); len(toks) > 0 {
		i := is.TokenIndex
		if i >= len(toks) {
			i = len(toks) - 1
		}
		line, column = toks[i].Line, toks[i].Column+1
	}
	log.Errorf("%s:%d:%d: %s", src.Name, line, column, is.Message)

	log.Printf("note", "source context: %s:%d", src.Name, line)
	for n := line - 1; n <= line+1; n++ {
		text, ok := src.Line(n)
		if !ok {
			continue
		}
		if n == line {
			log.Printf("", "->  %s", text)
		} else {
			log.Printf("", "    %s", text)
		}
	}
}
