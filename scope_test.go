package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeChain(t *testing.T) {
	sig := newSignature("f")
	fn := newFuncEnv(sig)
	root := fn.root

	root.insert("a", 1, intType, "0")
	root.insert("b", 2, stringType, "''")

	child := root.child()
	child.insert("c", 3, boolType, "false")

	assert.True(t, child.defined("a"), "outer name visible from child")
	assert.True(t, child.defined("c"))
	assert.False(t, root.defined("c"), "inner name invisible from parent")

	reg, err := child.registerOf("a")
	require.NoError(t, err)
	assert.Equal(t, uint(1), reg)

	_, err = root.registerOf("nope")
	assert.Error(t, err)

	assert.Equal(t, intType, child.typeOf("a"))
	assert.Equal(t, boolType, child.typeOf("c"))
	assert.Equal(t, "", root.typeOf("c"))

	assert.Equal(t, 2, root.size())
	assert.Equal(t, 3, child.size())

	assert.Equal(t, []string{"c", "a", "b"}, child.names())
	assert.True(t, child.fn == fn, "child keeps the function back-link")
}

func TestScopeShadowing(t *testing.T) {
	fn := newFuncEnv(newSignature("f"))
	root := fn.root
	root.insert("x", 1, intType, "0")

	child := root.child()
	child.insert("x", 2, stringType, "''")

	reg, err := child.registerOf("x")
	require.NoError(t, err)
	assert.Equal(t, uint(2), reg, "local insertion shadows the outer name")
	assert.Equal(t, stringType, child.typeOf("x"))

	reg, err = root.registerOf("x")
	require.NoError(t, err)
	assert.Equal(t, uint(1), reg, "outer binding intact")
}

func TestSignatureString(t *testing.T) {
	sig := newSignature("foo")
	assert.Equal(t, "foo()->void", sig.String())

	sig.addParam("a", intType)
	sig.addParam("b", boolType)
	sig.Ret = stringType
	assert.Equal(t, "foo(int, bool)->string", sig.String())
}

func TestCompileEnv(t *testing.T) {
	env := newCompileEnv()

	sig := newSignature("f")
	sig.Ret = intType
	env.register(sig)

	assert.True(t, env.defined("f"))
	assert.Equal(t, intType, env.returns["f"])

	got, ok := env.resolve("f")
	require.True(t, ok)
	assert.True(t, got == sig)

	// re-registration overwrites
	redecl := newSignature("f")
	redecl.addParam("a", intType)
	env.register(redecl)
	got, _ = env.resolve("f")
	assert.True(t, got == redecl)

	// implicit leading-namespace retry
	rooted := newSignature("::g")
	env.register(rooted)
	got, ok = env.resolve("g")
	require.True(t, ok)
	assert.True(t, got == rooted)

	_, ok = env.resolve("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"::g", "f"}, env.names())
}

func TestFuncEnvLabels(t *testing.T) {
	fn := newFuncEnv(newSignature("f"))

	assert.Equal(t, "__f_if_0", fn.ifLabel())
	assert.Equal(t, "__f_if_1", fn.ifLabel())

	begin, end := fn.whileLabels()
	assert.Equal(t, "__f_begin_while_0", begin)
	assert.Equal(t, "__f_end_while_1", end)

	// a nested loop minted before the outer one closes stays distinct
	begin, end = fn.whileLabels()
	assert.Equal(t, "__f_begin_while_2", begin)
	assert.Equal(t, "__f_end_while_3", end)
}
