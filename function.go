package main

import "fmt"

// funcEnv is the per-function code generation state: the signature being
// compiled, its root scope, the return flag, the count of unmatched braces,
// and the monotonic counters that mint if/while labels. loopBegin/loopEnd
// name the nearest enclosing loop's labels and are saved and restored around
// nested loops.
type funcEnv struct {
	name string
	sig  *Signature
	root *scope

	hasReturned  bool
	beginBalance int

	ifs    int
	whiles int

	loopBegin string
	loopEnd   string
}

func newFuncEnv(sig *Signature) *funcEnv {
	fn := &funcEnv{name: sig.Name, sig: sig}
	fn.root = newScope(nil, fn)
	return fn
}

func (fn *funcEnv) ifLabel() string {
	label := fmt.Sprintf("__%s_if_%d", fn.name, fn.ifs)
	fn.ifs++
	return label
}

// whileLabels mints the begin/end label pair from a single fresh counter
// read, advancing by two so labels of nested loops stay distinct.
func (fn *funcEnv) whileLabels() (begin, end string) {
	k := fn.whiles
	fn.whiles += 2
	begin = fmt.Sprintf("__%s_begin_while_%d", fn.name, k)
	end = fmt.Sprintf("__%s_end_while_%d", fn.name, k+1)
	return begin, end
}
