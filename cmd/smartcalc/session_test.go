package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/smartcalc"
)

func transcript(t *testing.T, lines ...string) string {
	t.Helper()
	color.NoColor = true
	var out bytes.Buffer
	s := newSession(smartcalc.NewEngine(), &out, "%g")
	require.NoError(t, s.run(scanLines(strings.NewReader(strings.Join(lines, "\n")))))
	return out.String()
}

func TestSessionEval(t *testing.T) {
	got := transcript(t,
		"3 + 4",
		"",
		"ans",
		"x = 10",
		"x * 2",
		"5 - - - 3",
	)
	assert.Equal(t, "7\n7\n20\n2\n", got)
}

func TestSessionErrors(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"y + 1", "Unknown variable\n"},
		{"a = y", "Unknown variable\n"},
		{"a1 = 5", "Invalid identifier\n"},
		{"a = 1 + ", "Invalid assignment\n"},
		{"a = b = 1", "Invalid assignment\n"},
		{"(1 + 2", "Invalid expression\n"},
		{"5 -*3", "Invalid expression\n"},
		{"1 / 0", "Division by zero\n"},
		{"(-1)^0.5", "Undefined result\n"},
		{"/nope", "Unknown command\n"},
	}
	for _, c := range cases {
		t.Run(c.line, func(t *testing.T) {
			assert.Equal(t, c.want, transcript(t, c.line))
		})
	}
}

func TestSessionCommands(t *testing.T) {
	got := transcript(t,
		"b = 2",
		"a = 1",
		"/vars",
		"/con (a + b) * 3",
		"/clear",
		"/vars",
		"a",
		"/exit",
		"1 + 1",
	)
	want := "a = 1\nans = 1\nb = 2\n" +
		"a b + 3 *\n" +
		"Unknown variable\n" +
		"Bye!\n"
	assert.Equal(t, want, got)
}

func TestSessionHelp(t *testing.T) {
	got := transcript(t, "/help")
	assert.Contains(t, got, "/exit")
	assert.Contains(t, got, "ans")
}

func TestSessionDetail(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	s := newSession(smartcalc.NewEngine(), &out, "%g")
	s.detail = true
	s.handle("1 +* 2")
	assert.Equal(t, "Invalid expression: 1: invalid operator sequence \"+*\"\n", out.String())
}

func TestScanLines(t *testing.T) {
	next := scanLines(strings.NewReader("a\nb\n"))
	for _, want := range []string{"a", "b"} {
		got, err := next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := next()
	assert.ErrorIs(t, err, io.EOF)
}
