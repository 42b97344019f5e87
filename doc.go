// Package smartcalc implements an arbitrary-precision infix calculator with
// variables.
//
// An expression is a sequence of numbers, variable names, the operators
// + - * / ^ and parentheses. ^ is exponentiation and binds tightest, from
// the right, so "2^3^2" is 512. Runs of + and - fold into a single sign:
// "5---3" is 2, while "5-*3" is an error. A sign at the start of an
// expression or just inside a parenthesis has an implicit zero before it.
//
// "name = expr" evaluates expr and stores it under name. Every successful
// evaluation is also stored as ans:
//
//	e := smartcalc.NewEngine()
//	e.Eval("x = 10")
//	e.Eval("x * 2") // 20
//	e.Eval("ans + 1") // 21
//
package smartcalc
