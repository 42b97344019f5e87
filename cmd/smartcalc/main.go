package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/zephyrtronium/smartcalc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		with         [][2]string
		verbose      bool
		prec         int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.IntVar(&prec, "p", 64, "precision of calculations in bits")
	flag.BoolVar(&verbose, "v", false, "log each evaluation to stderr and show error details")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	opts := []smartcalc.Option{smartcalc.Prec(uint(prec))}
	if verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, smartcalc.Logger(slog.New(h)))
	}
	defs, err := definitions(with, uint(prec))
	if err != nil {
		log.Fatal(err)
	}
	opts = append(opts, defs...)

	s := newSession(smartcalc.NewEngine(opts...), os.Stdout, verb)
	s.detail = verbose
	srcs, done, err := sources(inname, flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	defer done()
	for _, next := range srcs {
		if err := s.run(next); err != nil {
			log.Fatal(err)
		}
		if s.exited {
			break
		}
	}
}

// definitions evaluates each name=value pair from -given into an option
// setting that variable.
func definitions(with [][2]string, prec uint) ([]smartcalc.Option, error) {
	var opts []smartcalc.Option
	for _, d := range with {
		nm := d[0]
		vl := d[1]
		if !smartcalc.ValidName(nm) {
			return nil, fmt.Errorf("setting %q: variable names must be letters only", nm)
		}
		r, err := smartcalc.NewEngine(smartcalc.Prec(prec)).Eval(vl)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", nm, err)
		}
		opts = append(opts, smartcalc.SetVar(nm, r))
	}
	return opts, nil
}

// sources lists the line sources to run in order: the input file if one is
// named, or stdin if there are no args, followed by the args themselves.
func sources(inname string, args []string) (srcs []func() (string, error), done func(), err error) {
	done = func() {}
	if inname != "" || len(args) == 0 {
		var next func() (string, error)
		next, done, err = input(inname)
		if err != nil {
			return nil, nil, err
		}
		srcs = append(srcs, next)
	}
	if len(args) > 0 {
		srcs = append(srcs, argLines(args))
	}
	return srcs, done, nil
}

func argLines(args []string) func() (string, error) {
	return func() (string, error) {
		if len(args) == 0 {
			return "", io.EOF
		}
		line := args[0]
		args = args[1:]
		return line, nil
	}
}

// input opens the source of lines: the named file, or stdin. An interactive
// terminal gets line editing.
func input(inname string) (next func() (string, error), done func(), err error) {
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			return nil, nil, err
		}
		return scanLines(f), func() { f.Close() }, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return scanLines(os.Stdin), func() {}, nil
	}
	rl, err := readline.New("> ")
	if err != nil {
		return nil, nil, err
	}
	next = func() (string, error) {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return line, err
	}
	return next, func() { rl.Close() }, nil
}

func scanLines(r io.Reader) func() (string, error) {
	sc := bufio.NewScanner(r)
	return func() (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
}
