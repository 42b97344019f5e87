package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/zephyrtronium/smartcalc"
)

const helpText = `Evaluates expressions with + - * / ^ and parentheses.
Runs of + and - fold into one sign, so 5 - - 3 is 8.
name = expr stores a result; the last result is always in ans.
Variable names are letters only.

Commands:
/help        show this text
/vars        list variables
/con expr    show expr in postfix form
/clear       forget all variables
/exit        quit`

// session reads one line at a time and either runs a command or evaluates
// the line.
type session struct {
	eng  *smartcalc.Engine
	out  io.Writer
	verb string
	errc *color.Color
	// detail appends the full error to each error message.
	detail bool
	// exited is set once a line asks to exit.
	exited bool
}

func newSession(eng *smartcalc.Engine, out io.Writer, verb string) *session {
	return &session{
		eng:  eng,
		out:  out,
		verb: verb + "\n",
		errc: color.New(color.FgRed),
	}
}

// run handles lines from next until it returns io.EOF or a line asks to
// exit.
func (s *session) run(next func() (string, error)) error {
	for {
		line, err := next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if s.handle(line) {
			s.exited = true
			return nil
		}
	}
}

// handle handles one line of input. The result is true if the session
// should end.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case strings.HasPrefix(line, "/"):
		return s.command(line[1:])
	}
	r, err := s.eng.Eval(line)
	if err != nil {
		s.fail(err, strings.Contains(line, "="))
		return false
	}
	if !strings.Contains(line, "=") {
		fmt.Fprintf(s.out, s.verb, r)
	}
	return false
}

func (s *session) command(line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	switch name {
	case "exit":
		fmt.Fprintln(s.out, "Bye!")
		return true
	case "help":
		fmt.Fprintln(s.out, helpText)
	case "clear":
		s.eng.Clear()
	case "vars":
		for _, k := range s.eng.Names() {
			fmt.Fprintf(s.out, "%s = "+s.verb, k, s.eng.Lookup(k))
		}
	case "con":
		p, err := s.eng.Convert(arg)
		if err != nil {
			s.fail(err, false)
			return false
		}
		fmt.Fprintln(s.out, p)
	default:
		s.errc.Fprintln(s.out, "Unknown command")
	}
	return false
}

// fail prints the user-facing message for err.
func (s *session) fail(err error, assign bool) {
	msg := message(err, assign)
	if s.detail {
		msg += ": " + err.Error()
	}
	s.errc.Fprintln(s.out, msg)
}

func message(err error, assign bool) string {
	var (
		name  *smartcalc.NameError
		ident *smartcalc.IdentifierError
		dom   *smartcalc.DomainError
	)
	switch {
	case errors.As(err, &name):
		return "Unknown variable"
	case errors.As(err, &ident):
		return "Invalid identifier"
	case errors.As(err, &dom):
		if dom.Func == "/" {
			return "Division by zero"
		}
		return "Undefined result"
	case assign:
		return "Invalid assignment"
	default:
		return "Invalid expression"
	}
}
