package smartcalc

import (
	"math/big"
	"strings"
)

// Operators contains the bytes which form operator runs.
const Operators = "+-*/^"

// operator is the static description of a binary operator.
type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int
	// right indicates right-associativity.
	right bool
	// unary is whether the operator may appear with no left operand, in
	// which case identity stands in for it.
	unary    bool
	identity int64
	// apply sets z to a op b. z never aliases a or b.
	apply func(z, a, b *big.Float) error
}

// moreBinding reports whether an operator already on the side stack must be
// emitted before next is pushed.
func (p *operator) moreBinding(next *operator) bool {
	if p.prec != next.prec {
		return p.prec > next.prec
	}
	return !next.right
}

// leading returns the implicit left operand for a leading use of the
// operator at precision prec, or nil if the operator cannot lead.
func (p *operator) leading(prec uint) *big.Float {
	if !p.unary {
		return nil
	}
	return new(big.Float).SetPrec(prec).SetInt64(p.identity)
}

var operators = map[string]*operator{
	"+": {prec: 2, unary: true, apply: func(z, a, b *big.Float) error {
		z.Add(a, b)
		return nil
	}},
	"-": {prec: 2, unary: true, apply: func(z, a, b *big.Float) error {
		z.Sub(a, b)
		return nil
	}},
	"*": {prec: 3, apply: func(z, a, b *big.Float) error {
		z.Mul(a, b)
		return nil
	}},
	"/": {prec: 3, apply: quo},
	"^": {prec: 4, right: true, apply: pow},
}

// lookupOp gets the operator for a token string. The result is nil if there
// is no such operator.
func lookupOp(text string) *operator {
	return operators[text]
}

// ResolveSigns folds a run of adjacent operators into the single operator it
// stands for. A run of one operator is returned unchanged. Longer runs must
// consist only of + and -, and fold to - if the number of - is odd and to +
// otherwise. Other runs are an *OperatorSequenceError.
func ResolveSigns(run string) (string, error) {
	if len(run) == 1 {
		return run, nil
	}
	if strings.Trim(run, "+-") != "" {
		return "", &OperatorSequenceError{Run: run}
	}
	if strings.Count(run, "-")%2 == 1 {
		return "-", nil
	}
	return "+", nil
}
