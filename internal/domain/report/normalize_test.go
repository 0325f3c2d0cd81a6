package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnswer(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"absent value", nil, ""},
		{"plain string", "Sandt", "Sandt"},
		{"list of strings", []any{"a", "b"}, "a, b"},
		{"list with number", []any{"a", float64(2)}, "a, 2"},
		{"embedded newlines", "line1\r\nline2\nline3", "line1. line2. line3"},
		{"stringified list", "['a', 'b']", "a, b"},
		{"stringified list double quotes", `["a", "b"]`, "a, b"},
		{"stringified list of numbers", "[1, 2]", "1, 2"},
		{"empty stringified list", "[]", ""},
		{"malformed stringified list", "[a, 'b]", "a, b"},
		{"number", float64(3), "3"},
		{"fractional number", 2.5, "2.5"},
		{"boolean", true, "true"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, NormalizeAnswer(c.in))
		})
	}
}

func TestNormalizeAnswerIdempotent(t *testing.T) {
	inputs := []any{
		nil,
		"Sandt",
		[]any{"a", "b"},
		"line1\nline2",
		"['a', 'b']",
		"[a, 'b]",
		"a, b",
		float64(7),
	}
	for _, in := range inputs {
		once := NormalizeAnswer(in)
		assert.Equal(t, once, NormalizeAnswer(once), "normalize(normalize(%v))", in)
	}
}

func TestParseListLiteral(t *testing.T) {
	cases := []struct {
		in   string
		want []string
		ok   bool
	}{
		{"['a', 'b']", []string{"a", "b"}, true},
		{`["a, b", 'c']`, []string{"a, b", "c"}, true},
		{"[1, 2.5, True, None]", []string{"1", "2.5", "True", "None"}, true},
		{"['a',]", []string{"a"}, true},
		{"[]", []string{}, true},
		{"[a, 'b']", nil, false},     // bare name is not a literal
		{"['a' 'b']", nil, false},    // missing comma
		{"['unterminated]", nil, false},
	}
	for _, c := range cases {
		got, ok := parseListLiteral(c.in)
		assert.Equal(t, c.ok, ok, "parseListLiteral(%q) ok", c.in)
		if c.ok {
			assert.Equal(t, c.want, got, "parseListLiteral(%q)", c.in)
		}
	}
}
