package smartcalc

// splitAssignment detects an assignment "name = expr" in toks. If there is
// no = sign, the result is an empty name and toks unchanged. Otherwise the
// result is the target name and the tokens of expr. src is the input toks
// were scanned from, used to report the left side of a bad target.
func splitAssignment(src string, toks []lexToken) (string, []lexToken, error) {
	k := -1
	for i, tok := range toks {
		if tok.kind != tokenAssign {
			continue
		}
		if k >= 0 {
			return "", nil, &AssignmentError{Col: tok.pos, Reason: "more than one ="}
		}
		k = i
	}
	if k < 0 {
		return "", toks, nil
	}
	eq := toks[k]
	switch {
	case k == 0:
		return "", nil, &AssignmentError{Col: eq.pos, Reason: "no name before ="}
	case k == len(toks)-1:
		return "", nil, &AssignmentError{Col: eq.pos, Reason: "no expression after ="}
	}
	lhs := toks[:k]
	if len(lhs) == 1 {
		if !lhs[0].name() || !ValidName(lhs[0].text) {
			return "", nil, &IdentifierError{Col: lhs[0].pos, Name: lhs[0].text}
		}
		return lhs[0].text, toks[k+1:], nil
	}
	// Several terms that would read as one word without the lexer's split,
	// e.g. a1, are a bad name rather than a bad assignment.
	for _, tok := range lhs {
		if tok.kind != tokenNum && tok.kind != tokenIdent {
			return "", nil, &AssignmentError{Col: eq.pos, Reason: "left side is not a name"}
		}
	}
	return "", nil, &IdentifierError{Col: lhs[0].pos, Name: src[lhs[0].pos:eq.pos]}
}

// ValidName reports whether s can name a variable: one or more letters and
// nothing else.
func ValidName(s string) bool {
	return s != "" && scanIdent(s) == len(s)
}
