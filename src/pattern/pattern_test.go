package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	t.Parallel()
	searchTests := []struct {
		pat, str string
		result   *Match
	}{
		{"cat", "concatenate", &Match{Span: Span{3, 6}, Subs: "cat"}},
		{"a", "b", nil},
		{"", "abc", nil},
		{"a", "", nil},
		{"a.c", "abc", &Match{Span: Span{0, 3}, Subs: "abc"}},
		{"a.c", "a\nc", nil},
		{"h.llo", "say hello", &Match{Span: Span{4, 9}, Subs: "hello"}},
		{`\w\w`, "-ab", &Match{Span: Span{1, 3}, Subs: "ab"}},
		{`\W`, "ab!", &Match{Span: Span{2, 3}, Subs: "!"}},
		{`\w`, "é1", &Match{Span: Span{1, 2}, Subs: "1"}},
		{`\d`, "x", &Match{Span: Span{0, 1}, Subs: "x"}},
		{"[0-9]", "a1", &Match{Span: Span{1, 2}, Subs: "1"}},
		{"[xyz]", "abcz", &Match{Span: Span{3, 4}, Subs: "z"}},
		{"[a-c]x", "axbx", &Match{Span: Span{0, 2}, Subs: "ax"}},
		{"a+", "aaab", &Match{Span: Span{0, 3}, Subs: "aaa"}},
		{"a+b", "caaab", &Match{Span: Span{1, 5}, Subs: "aaab"}},
		{"a+", "ab", &Match{Span: Span{0, 1}, Subs: "a"}},
		{"ab", "aab", &Match{Span: Span{1, 3}, Subs: "ab"}},
		{"aab", "aaab", &Match{Span: Span{1, 4}, Subs: "aab"}},
		{"é", "café", &Match{Span: Span{3, 4}, Subs: "é"}},
		// + repeats the raw character before it
		{`\w+`, "wwx", &Match{Span: Span{0, 2}, Subs: "ww"}},
		{`\w+`, "ab", &Match{Span: Span{0, 1}, Subs: "a"}},
		// repetition running into the end of the subject does not match
		{"a+", "aa", nil},
		{"a+", "baa", nil},
		// malformed items
		{"[a-]", "a", nil},
		{"[-a]", "a", nil},
		{"[abc", "abc", nil},
		{`\`, "a", nil},
		{"+", "a", nil},
		{"b+", "b", nil},
	}

	for i, test := range searchTests {
		assert.Equal(t, test.result, Search(test.pat, test.str), "[%v] search(%q, %q)", i, test.pat, test.str)
	}
}

func TestSearchLiteralSubstring(t *testing.T) {
	t.Parallel()
	subjects := []string{"", "a", "aaab", "abcabcab", "mississippi", "concatenate", "xyzzy"}
	for _, src := range subjects {
		runes := []rune(src)
		for i := range runes {
			for j := i + 1; j <= len(runes); j++ {
				pat := string(runes[i:j])
				m := Search(pat, src)
				require.NotNil(t, m, "search(%q, %q)", pat, src)
				assert.Equal(t, pat, m.Subs)
				assert.Equal(t, pat, string(runes[m.Span.Start:m.Span.End]))
			}
		}
	}
	assert.Nil(t, Search("ssx", "mississippi"))
	assert.Nil(t, Search("abcd", "abcabcab"))
}

func TestAnchored(t *testing.T) {
	t.Parallel()
	anchoredTests := []struct {
		pat, str string
		result   *Match
	}{
		{"ab", "abc", &Match{Span: Span{0, 2}, Subs: "ab"}},
		{"ab", "xab", nil},
		{"abc", "ab", &Match{Span: Span{0, 2}, Subs: "ab"}},
		{"a", "", nil},
		{"", "a", nil},
		{"a+", "aaab", &Match{Span: Span{0, 3}, Subs: "aaa"}},
		{"a+", "aaa", nil},
		{"a+", "a", &Match{Span: Span{0, 1}, Subs: "a"}},
		{"[a-c]x", "bx", &Match{Span: Span{0, 2}, Subs: "bx"}},
		{".", "\n", nil},
		{`\W\w`, "-a-", &Match{Span: Span{0, 2}, Subs: "-a"}},
		{"[a-", "abc", nil},
	}

	for i, test := range anchoredTests {
		assert.Equal(t, test.result, Anchored(test.pat, test.str), "[%v] match(%q, %q)", i, test.pat, test.str)
	}
}

func TestFindAll(t *testing.T) {
	t.Parallel()
	findAllTests := []struct {
		pat, str string
		results  []string
	}{
		{"a+", "aaab", []string{"aaa"}},
		{".", "ab", []string{"a", "b"}},
		{"cat", "concatenate cat", []string{"cat", "cat"}},
		{"aa", "aaaa", []string{"aa", "aa", "aa"}},
		{`\w`, "a b", []string{"a", "b"}},
		{"b+", "abbbcbb", []string{"bbb"}},
		{"[a-c]", "xaybzc", []string{"a", "b", "c"}},
		{"x", "abc", []string{}},
		{"", "abc", []string{}},
		{"a", "", []string{}},
	}

	for i, test := range findAllTests {
		assert.Equal(t, test.results, FindAll(test.pat, test.str), "[%v] findall(%q, %q)", i, test.pat, test.str)
	}
}

func TestFindAllMatches(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []*Match{
		{Span: Span{3, 6}, Subs: "cat"},
		{Span: Span{12, 15}, Subs: "cat"},
	}, FindAllMatches("cat", "concatenate cat"))
	assert.Equal(t, []*Match{
		{Span: Span{0, 2}, Subs: "aa"},
		{Span: Span{1, 3}, Subs: "aa"},
	}, FindAllMatches("aa", "aaa"))
}

func TestFindAllSpansAreDistinct(t *testing.T) {
	t.Parallel()
	tests := []struct{ pat, str string }{
		{".", "hello world"},
		{"l+", "hello wllld"},
		{`\w`, "a1 b2 c3"},
		{"o", "foo boo"},
		{"[a-z]", "aBcDe"},
	}
	for _, test := range tests {
		runes := []rune(test.str)
		spans := map[Span]bool{}
		for _, m := range FindAllMatches(test.pat, test.str) {
			assert.False(t, spans[m.Span], "findall(%q, %q) repeated %v", test.pat, test.str, m.Span)
			spans[m.Span] = true
			assert.Equal(t, string(runes[m.Span.Start:m.Span.End]), m.Subs)
			assert.True(t, 0 <= m.Span.Start && m.Span.Start <= m.Span.End && m.Span.End <= len(runes))
		}
	}
}

func TestInRange(t *testing.T) {
	t.Parallel()
	rangeTests := []struct {
		ch   rune
		body string
		res  bool
	}{
		{'c', "a-e", true},
		{'f', "a-e", false},
		{'a', "a-e", true},
		{'e', "a-e", true},
		{'x', "xyz", true},
		{'q', "xyz", false},
		{'b', "xa-cz", true},
		{'x', "xa-cz", false},
		{'5', "0-9a-z", true},
		{'q', "0-9a-z", false},
		{'a', "z-a", false},
		{'a', "-a", false},
		{'a', "a-", false},
		{'-', "-", false},
		{'a', "", false},
	}
	for _, test := range rangeTests {
		assert.Equal(t, test.res, InRange(test.ch, test.body), "parse_range(%q, %q)", test.ch, test.body)
	}
}

func TestMatchString(t *testing.T) {
	t.Parallel()
	m := Search("cat", "concatenate")
	require.NotNil(t, m)
	assert.Equal(t, `(3, 6) "cat"`, m.String())
}
