package smartcalc

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/edwingeng/deque"
	"github.com/zephyrtronium/bigfloat"
)

// operand is a value on the evaluation stack along with the position of the
// token that produced it.
type operand struct {
	v   *big.Float
	pos int
}

// evalPostfix evaluates postfix tokens with an operand stack. Every value is
// computed at prec.
func evalPostfix(toks []lexToken, prec uint) (*big.Float, error) {
	// stack holds operands; the back is the top.
	stack := deque.NewDeque()
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			stack.PushBack(operand{v: new(big.Float).SetPrec(prec).Set(tok.num), pos: tok.pos})
		case tokenOp:
			op := lookupOp(tok.text)
			if op == nil {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			if stack.Len() < 2 {
				return nil, &OperandError{Col: tok.pos, Operator: tok.text}
			}
			b := stack.PopBack().(operand)
			a := stack.PopBack().(operand)
			r := new(big.Float).SetPrec(prec)
			if err := apply(tok, op, r, a.v, b.v); err != nil {
				return nil, err
			}
			stack.PushBack(operand{v: r, pos: a.pos})
		default:
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
		}
	}
	switch stack.Len() {
	case 0:
		return nil, &EmptyExpressionError{}
	case 1:
		return stack.PopBack().(operand).v, nil
	default:
		// Two operands with nothing to combine them, e.g. 2(3). Report the
		// second, since the first is fine on its own.
		stack.PopFront()
		return nil, &OperatorMissingError{Col: stack.Front().(operand).pos}
	}
}

// apply sets z to a op b. Arithmetic failures, including NaN panics from
// math/big, are returned as a *DomainError positioned at tok.
func apply(tok lexToken, op *operator, z, a, b *big.Float) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(big.ErrNaN); !ok {
			panic(r)
		}
		err = &DomainError{X: b, Func: tok.text, Col: tok.pos}
	}()
	if err := op.apply(z, a, b); err != nil {
		var d *DomainError
		if errors.As(err, &d) {
			d.Func, d.Col = tok.text, tok.pos
		}
		return err
	}
	return nil
}

func quo(z, a, b *big.Float) error {
	if b.Sign() == 0 {
		return &DomainError{X: b}
	}
	z.Quo(a, b)
	return nil
}

// pow sets z to a^b. Integer exponents are computed exactly by repeated
// squaring and allow any base; other exponents need a positive base.
func pow(z, a, b *big.Float) error {
	if b.IsInt() {
		if n, acc := b.Int64(); acc == big.Exact && n != math.MinInt64 {
			return powInt(z, a, n)
		}
	}
	if b.IsInf() {
		return &DomainError{X: b}
	}
	switch a.Sign() {
	case -1:
		return &DomainError{X: a}
	case 0:
		if b.Sign() < 0 {
			return &DomainError{X: a}
		}
		z.SetInt64(0)
		return nil
	}
	if a.IsInf() {
		return &DomainError{X: a}
	}
	z.Set(bigfloat.Pow(new(big.Float).SetPrec(z.Prec()), a, b))
	return nil
}

func powInt(z, a *big.Float, n int64) error {
	neg := n < 0
	if neg {
		n = -n
	}
	x := new(big.Float).SetPrec(z.Prec()).Set(a)
	r := new(big.Float).SetPrec(z.Prec()).SetInt64(1)
	for n > 0 {
		if n&1 != 0 {
			r.Mul(r, x)
		}
		n >>= 1
		if n > 0 {
			x.Mul(x, x)
		}
	}
	if neg {
		if r.Sign() == 0 {
			return &DomainError{X: a}
		}
		r.Quo(new(big.Float).SetInt64(1), r)
	}
	z.Set(r)
	return nil
}

// NameError is an error from a lookup for a variable that has never been
// assigned. It implements InputError.
type NameError struct {
	// Col is the position of the name.
	Col int
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "undefined variable: "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// DomainError is an error returned when an operator is applied to operands
// outside its domain, such as division by zero or a fractional power of a
// negative number. It implements InputError.
type DomainError struct {
	// X is the out-of-domain operand.
	X *big.Float
	// Func is the operator.
	Func string
	// Col is the position of the operator.
	Col int
}

func (err *DomainError) Error() string {
	if err.Func == "/" && err.X.Sign() == 0 {
		return errpos(err.Col, "division by zero")
	}
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return errpos(err.Col, r)
}

func (err *DomainError) Pos() int {
	return err.Col
}
