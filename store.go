package smartcalc

import (
	"math/big"
	"sort"
)

// Ans is the name under which the engine records the result of every
// successful evaluation.
const Ans = "ans"

// Store maps variable names to their values. Names are case-sensitive. Values
// are copied in and out, so callers never share a *big.Float with the store.
// It is not safe to use a Store concurrently.
type Store struct {
	names map[string]*big.Float
	prec  uint
}

// NewStore creates an empty store which keeps values at the given precision.
func NewStore(prec uint) *Store {
	return &Store{names: make(map[string]*big.Float), prec: prec}
}

// Set sets the value of a variable.
func (s *Store) Set(name string, value *big.Float) {
	s.names[name] = new(big.Float).SetPrec(s.prec).Set(value)
}

// Lookup returns a copy of the value of a variable. If there is no such
// variable, then the result is nil.
func (s *Store) Lookup(name string) *big.Float {
	v := s.names[name]
	if v == nil {
		return nil
	}
	return new(big.Float).Copy(v)
}

// Has reports whether a variable is defined.
func (s *Store) Has(name string) bool {
	return s.names[name] != nil
}

// Names returns the defined variable names in sorted order.
func (s *Store) Names() []string {
	r := make([]string, 0, len(s.names))
	for k := range s.names {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// Len returns the number of defined variables.
func (s *Store) Len() int {
	return len(s.names)
}

// Clear removes every variable, including ans.
func (s *Store) Clear() {
	s.names = make(map[string]*big.Float)
}

// Clone creates an independent copy of the store.
func (s *Store) Clone() *Store {
	n := &Store{names: make(map[string]*big.Float, len(s.names)), prec: s.prec}
	for k, v := range s.names {
		// Stored values are never modified in place, so sharing is fine.
		n.names[k] = v
	}
	return n
}
