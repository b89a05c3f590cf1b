package stacks

import (
	"fmt"
	"strconv"
	"strings"
)

// IsValid reports whether every bracket in s is closed by the same type in
// the correct order.
func IsValid(s string) bool {
	pairs := map[rune]rune{')': '(', ']': '[', '}': '{'}
	stack := make([]rune, 0, len(s))
	for _, c := range s {
		open, closing := pairs[c]
		if !closing {
			stack = append(stack, c)
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1] != open {
			return false
		}
		stack = stack[:len(stack)-1]
	}

	return len(stack) == 0
}

// EvalRPN evaluates an arithmetic expression in Reverse Polish Notation.
// Division truncates toward zero. Malformed input (unknown tokens, missing
// operands, division by zero, leftover operands) yields ErrMalformedExpression.
func EvalRPN(tokens []string) (int, error) {
	stack := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		switch tok {
		case "+", "-", "*", "/":
			if len(stack) < 2 {
				return 0, fmt.Errorf("%w: operator %q at %d lacks operands", ErrMalformedExpression, tok, i)
			}
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			var v int
			switch tok {
			case "+":
				v = a + b
			case "-":
				v = a - b
			case "*":
				v = a * b
			case "/":
				if b == 0 {
					return 0, fmt.Errorf("%w: division by zero at %d", ErrMalformedExpression, i)
				}
				v = a / b
			}
			stack = append(stack, v)
		default:
			n, err := strconv.Atoi(tok)
			if err != nil {
				return 0, fmt.Errorf("%w: token %q at %d", ErrMalformedExpression, tok, i)
			}
			stack = append(stack, n)
		}
	}
	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: %d values left on the stack", ErrMalformedExpression, len(stack))
	}

	return stack[0], nil
}

// DecodeString expands k[encoded] groups, which may nest: "3[a2[c]]" -> "accaccacc".
func DecodeString(s string) string {
	type frame struct {
		prefix strings.Builder
		repeat int
	}
	stack := []*frame{{}}
	k := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			k = k*10 + int(c-'0')
		case c == '[':
			stack = append(stack, &frame{repeat: k})
			k = 0
		case c == ']':
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1].prefix.WriteString(strings.Repeat(top.prefix.String(), top.repeat))
		default:
			stack[len(stack)-1].prefix.WriteByte(c)
		}
	}

	return stack[0].prefix.String()
}

// AsteroidCollision returns the asteroids left after all collisions.
// Positive values move right, negative left; on collision the smaller one
// explodes, equal sizes both explode.
func AsteroidCollision(asteroids []int) []int {
	stack := make([]int, 0, len(asteroids))
	for _, a := range asteroids {
		alive := true
		for alive && a < 0 && len(stack) > 0 && stack[len(stack)-1] > 0 {
			top := stack[len(stack)-1]
			switch {
			case top < -a:
				stack = stack[:len(stack)-1]
			case top == -a:
				stack = stack[:len(stack)-1]
				alive = false
			default:
				alive = false
			}
		}
		if alive {
			stack = append(stack, a)
		}
	}

	return stack
}
