package smartcalc

import (
	"github.com/edwingeng/deque"
)

// normalize gives leading signs their implicit left operand. A sign is
// leading at the start of the expression and directly after an open
// bracket, so "-5" becomes "0-5" and "2*(-3)" becomes "2*(0-3)". A leading
// operator with no identity, like "*", is an *OperandError.
func normalize(toks []lexToken, prec uint) ([]lexToken, error) {
	out := make([]lexToken, 0, len(toks)+1)
	lead := true
	for _, tok := range toks {
		if lead && tok.kind == tokenOp {
			id := lookupOp(tok.text).leading(prec)
			if id == nil {
				return nil, &OperandError{Col: tok.pos, Operator: tok.text}
			}
			out = append(out, lexToken{text: id.Text('g', -1), kind: tokenNum, pos: tok.pos, num: id})
		}
		out = append(out, tok)
		lead = tok.kind == tokenOpen
	}
	return out, nil
}

// postfix reorders infix tokens into postfix order using Dijkstra's
// shunting-yard algorithm. Any identifier still in the input names a
// variable that was never defined.
func postfix(toks []lexToken) ([]lexToken, error) {
	out := make([]lexToken, 0, len(toks))
	// side holds operators and open brackets; the back is the top.
	side := deque.NewDeque()
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenIdent:
			return nil, &NameError{Col: tok.pos, Name: tok.text}
		case tokenOp:
			op := lookupOp(tok.text)
			if op == nil {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			for !side.Empty() {
				top := side.Back().(lexToken)
				if top.kind != tokenOp || !lookupOp(top.text).moreBinding(op) {
					break
				}
				out = append(out, side.PopBack().(lexToken))
			}
			side.PushBack(tok)
		case tokenOpen:
			side.PushBack(tok)
		case tokenClose:
			for {
				if side.Empty() {
					return nil, &BracketError{Col: tok.pos, Right: tok.text}
				}
				top := side.PopBack().(lexToken)
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		default:
			// = only reaches here if assignment splitting was skipped.
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
		}
	}
	for !side.Empty() {
		top := side.PopBack().(lexToken)
		if top.kind == tokenOpen {
			return nil, &BracketError{Col: top.pos, Left: top.text}
		}
		out = append(out, top)
	}
	return out, nil
}
