package smartcalc

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// num is the value of a number token.
	num *big.Float
	// named indicates a number token that was substituted for a variable. Its
	// text is the variable name.
	named bool
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

// name reports whether the token was written as a variable name, whether or
// not the variable was defined.
func (t lexToken) name() bool {
	return t.kind == tokenIdent || t.named
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a number literal or a substituted variable.
	tokenNum
	// tokenIdent is a variable name with no value.
	tokenIdent
	// tokenOp is an operator, after sign folding.
	tokenOp
	// tokenAssign is the = sign.
	tokenAssign
	// tokenOpen is an open bracket.
	tokenOpen
	// tokenClose is a close bracket.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	case tokenAssign:
		return "Assign"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// recognizer matches one kind of token at the start of its input and
// returns the length of the match, or 0 for no match.
type recognizer struct {
	kind tokenKind
	scan func(s string) int
}

// recognizers are tried in order at each position. The first match wins.
var recognizers = []recognizer{
	{tokenNum, scanNum},
	{tokenIdent, scanIdent},
	{tokenOp, scanOps},
	{tokenAssign, scanByte('=')},
	{tokenOpen, scanByte('(')},
	{tokenClose, scanByte(')')},
}

// tokenize splits whitespace-free src into tokens. Names defined in vars are
// replaced by number tokens holding their values; others stay identifiers so
// that the converter can report them by name. Numbers are parsed at prec.
func tokenize(src string, vars *Store, prec uint) ([]lexToken, error) {
	var toks []lexToken
	pos := 0
	for pos < len(src) {
		rest := src[pos:]
		var tok lexToken
		for _, r := range recognizers {
			n := r.scan(rest)
			if n == 0 {
				continue
			}
			tok = lexToken{text: rest[:n], kind: r.kind, pos: pos}
			break
		}
		n := len(tok.text)
		switch tok.kind {
		case tokenNone:
			_, sz := utf8.DecodeRuneInString(rest)
			return nil, &LexError{Text: rest[:sz], Col: pos}
		case tokenNum:
			v, _, err := new(big.Float).SetPrec(prec).Parse(tok.text, 10)
			if err != nil {
				return nil, &LexError{Text: tok.text, Kind: "number", Col: pos}
			}
			tok.num = v
		case tokenIdent:
			if v := vars.Lookup(tok.text); v != nil {
				tok.kind = tokenNum
				tok.num = v
				tok.named = true
			}
		case tokenOp:
			op, err := ResolveSigns(tok.text)
			if err != nil {
				return nil, &OperatorSequenceError{Col: pos, Run: tok.text}
			}
			tok.text = op
		}
		toks = append(toks, tok)
		pos += n
	}
	return toks, nil
}

func scanDigits(s string) int {
	n := 0
	for n < len(s) && '0' <= s[n] && s[n] <= '9' {
		n++
	}
	return n
}

// scanNum matches an integer or decimal literal: 12, 1.5, 1., or .5.
func scanNum(s string) int {
	n := scanDigits(s)
	if n < len(s) && s[n] == '.' {
		frac := scanDigits(s[n+1:])
		if n == 0 && frac == 0 {
			// A lone dot is not a number.
			return 0
		}
		n += 1 + frac
	}
	return n
}

func scanIdent(s string) int {
	n := 0
	for n < len(s) {
		r, sz := utf8.DecodeRuneInString(s[n:])
		if !unicode.IsLetter(r) {
			break
		}
		n += sz
	}
	return n
}

func scanOps(s string) int {
	n := 0
	for n < len(s) && strings.IndexByte(Operators, s[n]) >= 0 {
		n++
	}
	return n
}

func scanByte(c byte) func(string) int {
	return func(s string) int {
		if len(s) > 0 && s[0] == c {
			return 1
		}
		return 0
	}
}

// LexError indicates input that does not start any token. It implements
// InputError.
type LexError struct {
	// Text is the unrecognized character, or the token that failed to
	// convert.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if no token kind matched.
	Kind string
	// Col is the byte offset of Text in the input.
	Col int
}

func (err *LexError) Error() string {
	pos := "offset " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
