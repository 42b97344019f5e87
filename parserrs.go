package smartcalc

import "strconv"

// OperatorSequenceError is an error indicating a run of adjacent operators
// that cannot be folded into a single sign, e.g. "-*". It implements
// InputError.
type OperatorSequenceError struct {
	// Col is the position of the first operator in the run.
	Col int
	// Run is the full operator run.
	Run string
}

func (err *OperatorSequenceError) Error() string {
	return errpos(err.Col, "invalid operator sequence "+strconv.Quote(err.Run))
}

func (err *OperatorSequenceError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token that has no entry
// in the operator table. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator without enough operands,
// including a leading operator that cannot act as a sign. It implements
// InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was missing operands.
	Operator string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operand for "+strconv.Quote(err.Operator))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket, or empty if a close bracket had no match.
	Left string
	// Right is the closing bracket, or empty if an open bracket was never
	// closed.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// IdentifierError is an error indicating an assignment target that is not a
// purely alphabetic name. It implements InputError.
type IdentifierError struct {
	// Col is the position of the start of the target.
	Col int
	// Name is the source text of the target.
	Name string
}

func (err *IdentifierError) Error() string {
	return errpos(err.Col, "invalid identifier "+strconv.Quote(err.Name))
}

func (err *IdentifierError) Pos() int {
	return err.Col
}

// AssignmentError is an error indicating an assignment with the wrong shape:
// more than one =, no name before it, or no expression after it. It
// implements InputError.
type AssignmentError struct {
	// Col is the position of the offending = sign.
	Col int
	// Reason describes what is wrong with the assignment.
	Reason string
}

func (err *AssignmentError) Error() string {
	return errpos(err.Col, "invalid assignment: "+err.Reason)
}

func (err *AssignmentError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating that there was nothing to
// evaluate, e.g. an empty input or "()".
type EmptyExpressionError struct {
	// Col is the position at which an expression was expected.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// OperatorMissingError is an error indicating two operands with no operator
// between them, e.g. "2(3)". It implements InputError.
type OperatorMissingError struct {
	// Col is the position of the operand that was left over.
	Col int
}

func (err *OperatorMissingError) Error() string {
	return errpos(err.Col, "missing operator")
}

func (err *OperatorMissingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset in the sanitized input of the token that
	// caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorSequenceError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*IdentifierError)(nil)
	_ InputError = (*AssignmentError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*OperatorMissingError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*DomainError)(nil)
)
