package smartcalc

import (
	"log/slog"
	"math/big"
	"strings"
	"unicode"
)

// Engine evaluates expressions and remembers variables between them. It is
// not safe to use an Engine concurrently; give each session its own.
type Engine struct {
	vars *Store
	prec uint
	log  *slog.Logger
}

// Option is an option used when creating an engine.
type Option interface {
	engineOption()
}

type (
	varopt struct {
		name string
		val  *big.Float
	}
	varsopt map[string]*big.Float
	precopt uint
	logopt  struct {
		l *slog.Logger
	}
)

func (varopt) engineOption()  {}
func (varsopt) engineOption() {}
func (precopt) engineOption() {}
func (logopt) engineOption()  {}

// SetVar sets the value of a variable in the engine.
func SetVar(name string, val *big.Float) Option {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the engine.
func SetVars(vars map[string]*big.Float) Option {
	return varsopt(vars)
}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) Option {
	return precopt(prec)
}

// Logger sets the logger which receives a debug trace of each evaluation.
func Logger(l *slog.Logger) Option {
	return logopt{l}
}

// NewEngine creates an engine with no variables. If no precision is given,
// the default is 64.
func NewEngine(opts ...Option) *Engine {
	e := Engine{prec: 64, log: slog.New(slog.DiscardHandler)}
	// Precision applies to variables, so find it first. Loop backward so we
	// apply the last one.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			e.prec = uint(p)
			break
		}
	}
	e.vars = NewStore(e.prec)
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			e.vars.Set(opt.name, opt.val)
		case varsopt:
			for k, v := range opt {
				e.vars.Set(k, v)
			}
		case precopt:
			// Already done. Do nothing.
		case logopt:
			if opt.l != nil {
				e.log = opt.l
			}
		default:
			panic("smartcalc: unknown option type")
		}
	}
	return &e
}

// Eval evaluates one expression or assignment. Whitespace is removed first,
// so "5 - - 3" is read as "5--3". On success the result is stored as ans
// and, for an assignment "name = expr", also as name. On failure no
// variable changes.
func (e *Engine) Eval(src string) (*big.Float, error) {
	src = Sanitize(src)
	name, toks, err := e.compile(src)
	if err != nil {
		e.log.Debug("compile failed", slog.String("src", src), slog.Any("err", err))
		return nil, err
	}
	r, err := evalPostfix(toks, e.prec)
	if err != nil {
		e.log.Debug("evaluation failed", slog.String("src", src), slog.Any("err", err))
		return nil, err
	}
	e.vars.Set(Ans, r)
	if name != "" {
		e.vars.Set(name, r)
	}
	e.log.Debug("evaluated",
		slog.String("src", src),
		slog.String("result", r.Text('g', 10)),
		slog.String("assign", name),
	)
	return r, nil
}

// Convert returns the postfix form of an expression as space-separated
// tokens, without evaluating it. An assignment target is dropped. Variable
// names that are defined appear by name.
func (e *Engine) Convert(src string) (string, error) {
	src = Sanitize(src)
	_, toks, err := e.compile(src)
	if err != nil {
		return "", err
	}
	s := make([]string, len(toks))
	for i, tok := range toks {
		s[i] = tok.text
	}
	return strings.Join(s, " "), nil
}

// compile runs src through every stage before evaluation and returns the
// assignment target, if any, and the postfix tokens.
func (e *Engine) compile(src string) (string, []lexToken, error) {
	toks, err := tokenize(src, e.vars, e.prec)
	if err != nil {
		return "", nil, err
	}
	name, toks, err := splitAssignment(src, toks)
	if err != nil {
		return "", nil, err
	}
	toks, err = normalize(toks, e.prec)
	if err != nil {
		return "", nil, err
	}
	e.log.Debug("tokenized", slog.String("src", src), slog.Any("tokens", toks))
	toks, err = postfix(toks)
	if err != nil {
		return "", nil, err
	}
	e.log.Debug("converted", slog.String("src", src), slog.Any("postfix", toks))
	return name, toks, nil
}

// Lookup returns a copy of the value of a variable, or nil if it is not
// defined.
func (e *Engine) Lookup(name string) *big.Float {
	return e.vars.Lookup(name)
}

// Set sets the value of a variable. Returns e for chaining.
func (e *Engine) Set(name string, value *big.Float) *Engine {
	e.vars.Set(name, value)
	return e
}

// Names returns the names of all defined variables in sorted order.
func (e *Engine) Names() []string {
	return e.vars.Names()
}

// Clear forgets every variable, including ans.
func (e *Engine) Clear() {
	e.vars.Clear()
	e.log.Debug("variables cleared")
}

// Prec returns the precision to which values are computed.
func (e *Engine) Prec() uint {
	return e.prec
}

// Clone creates an engine with a copy of e's variables. Evaluations in
// either engine do not affect the other.
func (e *Engine) Clone() *Engine {
	return &Engine{vars: e.vars.Clone(), prec: e.prec, log: e.log}
}

// Sanitize removes all whitespace from a line of input.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
