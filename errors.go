package main

import "fmt"

// InvalidSyntax is the one fault kind the pipeline raises. It carries the
// index of the offending token in the reduced stream; the driver lifts that
// to a source position.
type InvalidSyntax struct {
	TokenIndex int
	Message    string
}

func (e InvalidSyntax) Error() string { return e.Message }

func invalidSyntax(index int, format string, args ...interface{}) error {
	return InvalidSyntax{TokenIndex: index, Message: fmt.Sprintf(format, args...)}
}
