package il

import (
	"log"
	"strconv"
	"strings"
)

// hexPrefix marks hexadecimal literals, IEC 61131-3 style.
const hexPrefix = "16#"

// isDigits reports whether the token is entirely decimal digits.
func isDigits(token string) bool {
	if len(token) == 0 {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isIdent reports whether the token has the shape of a register name.
func isIdent(token string) bool {
	for n, r := range token {
		alpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		digit := r >= '0' && r <= '9'
		if !alpha && !(digit && n > 0) {
			return false
		}
	}
	return len(token) > 0
}

// parseLiteral parses a numeric literal: a decimal integer, or
// hexadecimal digits behind the 16# prefix. The result is masked to a
// 32-bit machine word.
func parseLiteral(token string) (value uint32, err error) {
	digits := token
	base := 10
	if strings.HasPrefix(token, hexPrefix) {
		digits = token[len(hexPrefix):]
		base = 16
	} else if !isDigits(token) {
		err = ErrExpressionUnknown(token)
		return
	}

	v64, perr := strconv.ParseUint(digits, base, 64)
	if perr != nil {
		err = ErrExpressionUnknown(token)
		return
	}

	value = uint32(v64)
	return
}

// Evaluate resolves an operand token to a 32-bit value: a decimal
// literal, a 16# hexadecimal literal, or the current value of a named
// register (flags read as 0/1). Evaluation has no side effects.
//
// With Lenient set, an unresolvable token is logged and evaluates to 0
// instead of failing.
func (m *Machine) Evaluate(token string) (value uint32, err error) {
	value, err = m.evaluate(token)
	if err != nil && m.Lenient {
		log.Printf("il: %v", err)
		value = 0
		err = nil
	}
	return
}

func (m *Machine) evaluate(token string) (value uint32, err error) {
	if isDigits(token) || strings.HasPrefix(token, hexPrefix) {
		return parseLiteral(token)
	}

	val, ok := m.Register[token]
	if !ok {
		if isIdent(token) {
			err = ErrRegisterUndefined(token)
		} else {
			err = ErrExpressionUnknown(token)
		}
		return
	}

	value = val.AsWord()
	return
}
