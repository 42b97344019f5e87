package smartcalc

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpn converts src to postfix and renders it with spaces.
func rpn(src string, vars *Store) (string, error) {
	toks, err := tokenize(src, vars, 64)
	if err != nil {
		return "", err
	}
	toks, err = normalize(toks, 64)
	if err != nil {
		return "", err
	}
	toks, err = postfix(toks)
	if err != nil {
		return "", err
	}
	s := make([]string, len(toks))
	for i, tok := range toks {
		s[i] = tok.text
	}
	return strings.Join(s, " "), nil
}

func TestOpTableComplete(t *testing.T) {
	for _, r := range Operators {
		op := lookupOp(string(r))
		if op == nil {
			t.Errorf("no operator for %c", r)
			continue
		}
		if op.prec < 1 {
			t.Errorf("operator %c has precedence %d", r, op.prec)
		}
		if op.apply == nil {
			t.Errorf("operator %c has no evaluation rule", r)
		}
	}
	if lookupOp("=") != nil {
		t.Errorf("= must not be an operator")
	}
}

func TestOpIdentities(t *testing.T) {
	for _, s := range []string{"+", "-"} {
		id := lookupOp(s).leading(64)
		if assert.NotNil(t, id, "%s should lead", s) {
			assert.Zero(t, id.Sign())
		}
	}
	for _, s := range []string{"*", "/", "^"} {
		assert.Nil(t, lookupOp(s).leading(64), "%s should not lead", s)
	}
}

func TestPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"add", "1+2", "1 2 +"},
		{"add3", "1+2+3", "1 2 + 3 +"},
		{"sub3", "8-4-2", "8 4 - 2 -"},
		{"div3", "8/4/2", "8 4 / 2 /"},
		{"pow3", "2^3^2", "2 3 2 ^ ^"},
		{"prec", "2+3*4", "2 3 4 * +"},
		{"prec-desc", "2*3+4", "2 3 * 4 +"},
		{"paren", "(2+3)*4", "2 3 + 4 *"},
		{"nested", "((1))", "1"},
		{"asc", "1+2*3^4", "1 2 3 4 ^ * +"},
		{"desc", "1^2*3+4", "1 2 ^ 3 * 4 +"},
		{"mixed", "3+4*2/(1-5)^2^3", "3 4 2 * 1 5 - 2 3 ^ ^ / +"},
		{"lead-neg", "-5", "0 5 -"},
		{"lead-plus", "+5", "0 5 +"},
		{"lead-neg-mul", "-2*3", "0 2 3 * -"},
		{"paren-neg", "2*(-3)", "2 0 3 - *"},
		{"folded", "5--3", "5 3 +"},
		{"var", "x*2", "x 2 *"},
	}
	vars := NewStore(64)
	vars.Set("x", big.NewFloat(10))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := rpn(c.src, vars)
			require.NoError(t, err, c.src)
			assert.Equal(t, c.want, got, c.src)
		})
	}
}

func TestPostfixBrackets(t *testing.T) {
	cases := []struct {
		src   string
		col   int
		left  string
		right string
	}{
		{"(1+2", 0, "(", ""},
		{"1+2)", 3, "", ")"},
		{")", 0, "", ")"},
		{"(", 0, "(", ""},
		{"((1)", 0, "(", ""},
		{"(1))", 3, "", ")"},
		{"1+(2*(3)", 2, "(", ""},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			_, err := rpn(c.src, NewStore(64))
			var berr *BracketError
			require.True(t, errors.As(err, &berr), "want *BracketError, got %#v", err)
			assert.Equal(t, c.col, berr.Pos())
			assert.Equal(t, c.left, berr.Left)
			assert.Equal(t, c.right, berr.Right)
		})
	}
}

func TestPostfixUndeclared(t *testing.T) {
	cases := []struct {
		src  string
		name string
		col  int
	}{
		{"y", "y", 0},
		{"y+1", "y", 0},
		{"1+y", "y", 2},
		{"(y)", "y", 1},
		{"x+yz", "yz", 2},
		{"X", "X", 0},
	}
	vars := NewStore(64)
	vars.Set("x", big.NewFloat(1))
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			_, err := rpn(c.src, vars)
			var nerr *NameError
			require.True(t, errors.As(err, &nerr), "want *NameError, got %#v", err)
			assert.Equal(t, c.name, nerr.Name)
			assert.Equal(t, c.col, nerr.Pos())
			assert.Contains(t, nerr.Error(), "undefined variable")
		})
	}
}

func TestNormalizeLeadingOperator(t *testing.T) {
	for _, src := range []string{"*2", "/2", "^2", "1+(*2)"} {
		_, err := rpn(src, NewStore(64))
		var oerr *OperandError
		assert.True(t, errors.As(err, &oerr), "%q: want *OperandError, got %#v", src, err)
	}
}
