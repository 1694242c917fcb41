package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanema/minire/src/lerrors"
)

func TestSessionEval(t *testing.T) {
	t.Parallel()
	evalTests := []struct {
		line, out string
	}{
		{`search cat concatenate`, "(3, 6) \"cat\"\n"},
		{`search "a b" "xa b"`, "(1, 4) \"a b\"\n"},
		{`search \w+ wwx`, "(0, 2) \"ww\"\n"},
		{`search x abc`, "nil\n"},
		{`search nil abc`, "nil\n"},
		{`search a 42`, "nil\n"},
		{`match ab abc`, "(0, 2) \"ab\"\n"},
		{`match ab xab`, "nil\n"},
		{`findall a+ aaab`, "[\"aaa\"]\n"},
		{`findall . ab`, "[\"a\", \"b\"]\n"},
		{`findall z ab`, "[]\n"},
		{`findall nil ab`, "[]\n"},
		{`range c a-e`, "true\n"},
		{`range f a-e`, "false\n"},
		{`range - -`, "false\n"},
		{`span "(2, 5)" 3`, "(5, 8)\n"},
		{"", ""},
		{"   ", ""},
	}
	for _, test := range evalTests {
		var out bytes.Buffer
		require.NoError(t, NewSession(&out, false).Eval(test.line), test.line)
		assert.Equal(t, test.out, out.String(), test.line)
	}
}

func TestSessionEvalErrors(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	session := NewSession(&out, false)

	err := session.Eval("frobnicate a b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")

	err = session.Eval("search a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search expects 2 arguments, got 1")

	err = session.Eval(`search "a`)
	require.ErrorIs(t, err, ErrUnfinishedString)

	var lerr *lerrors.Error
	require.ErrorAs(t, session.Eval("range ab abc"), &lerr)
	assert.Equal(t, lerrors.ArgumentErr, lerr.Kind)
	require.ErrorAs(t, session.Eval("span 3 3"), &lerr)
	require.ErrorAs(t, session.Eval(`span "(1, 2)" x`), &lerr)
	assert.Equal(t, 2, lerr.Pos)
	require.ErrorAs(t, session.Eval(`span "(1, 2" 1`), &lerr)
	assert.Equal(t, lerrors.SpanErr, lerr.Kind)

	assert.Empty(t, out.String())
}

func TestSessionFeed(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	session := NewSession(&out, false)

	pending, err := session.Feed(`search cat \`)
	require.NoError(t, err)
	assert.True(t, pending)
	assert.True(t, session.Pending())

	pending, err = session.Feed(`concatenate`)
	require.NoError(t, err)
	assert.False(t, pending)
	assert.False(t, session.Pending())
	assert.Equal(t, "(3, 6) \"cat\"\n", out.String())

	_, _ = session.Feed(`search \`)
	session.Reset()
	assert.False(t, session.Pending())
}

func TestSessionHelp(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	require.NoError(t, NewSession(&out, false).Eval("help"))
	assert.Equal(t, Help+"\n", out.String())
}

func TestTokenize(t *testing.T) {
	t.Parallel()
	tokens, err := tokenize(`search "a\tb" nil 12 -3 +5 [a-z] \w`)
	require.NoError(t, err)
	assert.Equal(t, []any{"search", "a\tb", nil, 12, -3, "+5", "[a-z]", `\w`}, tokens)

	tokens, err = tokenize(`"say \"hi\""`)
	require.NoError(t, err)
	assert.Equal(t, []any{`say "hi"`}, tokens)

	_, err = tokenize(`"open`)
	require.ErrorIs(t, err, ErrUnfinishedString)
	_, err = tokenize(`"\q"`)
	require.Error(t, err)
}
