package regex

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

const (
	concatOp = '.'
	unionOp  = '|'
	starOp   = '*'
	lparen   = '('
	rparen   = ')'
)

// every character of a pattern is exactly one token
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Literal", Pattern: `[0-9A-Za-z]`},
	{Name: "Union", Pattern: `\|`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Concat", Pattern: `\.`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})

// scan checks that re only consists of literals and grammar symbols.
func scan(re string) error {
	lex, err := patternLexer.LexString("", re)
	if err != nil {
		return newParseError(0, "failed to tokenize", err)
	}

	_, err = lexer.ConsumeAll(lex)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) && lexErr.Pos.Offset < len(re) {
			return newParseError(lexErr.Pos.Offset, fmt.Sprintf("unsupported character %q", re[lexErr.Pos.Offset]), nil)
		}
		return newParseError(0, "failed to tokenize", err)
	}
	return nil
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// a, ) and * end an operand
func endsOperand(c byte) bool {
	return isAlnum(c) || c == rparen || c == starOp
}

// a and ( start an operand
func startsOperand(c byte) bool {
	return isAlnum(c) || c == lparen
}

func precedence(op byte) int {
	switch op {
	case unionOp:
		return 1
	case concatOp:
		return 2
	case starOp:
		return 3
	}
	return 0
}

// Preprocess makes concatenation explicit, e.g. "(a|b)c" becomes "(a|b).c".
// The result may be at most maxLen bytes long.
func Preprocess(re string, maxLen int) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultLimits().MaxExpandedLen
	}

	out := make([]byte, 0, 2*len(re))
	for i := 0; i < len(re); i++ {
		out = append(out, re[i])
		if i+1 < len(re) && endsOperand(re[i]) && startsOperand(re[i+1]) {
			out = append(out, concatOp)
		}

		if len(out) > maxLen {
			return "", newParseError(i, "expanded pattern too long", &CapacityError{Resource: "expanded pattern length", Limit: maxLen})
		}
	}
	return string(out), nil
}

// ToPostfix converts a preprocessed infix pattern to postfix using the
// shunting-yard algorithm. The result may be at most maxLen bytes long.
func ToPostfix(infix string, maxLen int) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultLimits().MaxPostfixLen
	}

	out := make([]byte, 0, len(infix))
	emit := func(c byte, i int) error {
		if len(out) >= maxLen {
			return newParseError(i, "postfix pattern too long", &CapacityError{Resource: "postfix pattern length", Limit: maxLen})
		}
		out = append(out, c)
		return nil
	}

	// positions into infix, so unmatched '(' can be reported where it is
	var ops []int
	for i := 0; i < len(infix); i++ {
		c := infix[i]
		switch {
		case isAlnum(c):
			if err := emit(c, i); err != nil {
				return "", err
			}
		case c == lparen:
			ops = append(ops, i)
		case c == rparen:
			for len(ops) > 0 && infix[ops[len(ops)-1]] != lparen {
				if err := emit(infix[ops[len(ops)-1]], i); err != nil {
					return "", err
				}
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return "", newParseError(i, "unmatched ')'", nil)
			}
			// pop off '('
			ops = ops[:len(ops)-1]
		default:
			prec := precedence(c)
			if prec == 0 {
				return "", newParseError(i, fmt.Sprintf("unexpected character %q", c), nil)
			}
			for len(ops) > 0 && precedence(infix[ops[len(ops)-1]]) >= prec {
				if err := emit(infix[ops[len(ops)-1]], i); err != nil {
					return "", err
				}
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, i)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if infix[top] == lparen {
			return "", newParseError(top, "unmatched '('", nil)
		}
		if err := emit(infix[top], len(infix)); err != nil {
			return "", err
		}
		ops = ops[:len(ops)-1]
	}
	return string(out), nil
}
