// Package strutil parses numeric text for the widefix packages.
package strutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	delim = '.'

	// MinBase and MaxBase bound the radix accepted by ParseRadix.
	MinBase = 2
	MaxBase = 36
)

var (
	// ErrEmptyInput is returned for strings without any digits.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidDigit is the kind of every positional parsing error.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrInvalidBase is returned for a radix outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("invalid base")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func (pe posError) Unwrap() error {
	return ErrInvalidDigit
}

// Pos returns the 1-based position of the offending symbol, if err carries one.
func Pos(err error) (int, bool) {
	var pe *posError
	if !errors.As(err, &pe) {
		return 0, false
	}
	return pe.pos, true
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// Parse parses a decimal string like `"-0012.50e3"`.
// It returns the significant digits without leading and trailing zeros and
// an exponent e, so that the value is digits * 10^e.
// An empty digits string means zero.
func Parse(s string) (neg bool, digits string, e int32, err error) {
	s, offset, neg := PrepareString(s)
	if len(s) == 0 {
		return false, "", 0, ErrEmptyInput
	}
	digits, e, err = doParse(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		err = fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	return neg, digits, e, err
}

// ParseRadix validates a signed integer literal in the given base.
// Unlike Parse it accepts neither quotes nor spaces, matching strconv.ParseInt.
// The returned digits have no leading zeros; an empty string means zero.
func ParseRadix(s string, base int) (neg bool, digits string, err error) {
	if base < MinBase || base > MaxBase {
		return false, "", fmt.Errorf("%w %d", ErrInvalidBase, base)
	}
	offset := 0
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return false, "", ErrEmptyInput
	}
	start := -1
	for i, r := range s {
		if d := digitValue(r); d < 0 || d >= base {
			return false, "", newPosError(fmt.Sprintf("unexpected symbol %q", r), i+offset+1)
		}
		if start == -1 && r != '0' {
			start = i
		}
	}
	if start == -1 {
		return neg, "", nil
	}
	return neg, s[start:], nil
}

func digitValue(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'z':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'Z':
		return int(r-'A') + 10
	default:
		return -1
	}
}

// doParse parses given decimal string.
// returns a string without leading and trailing zeros, and an exponent
func doParse(s string) (result string, e int32, err error) {
	result, delimPos, e, err := removeLeadingZeros(s)
	if err != nil {
		return "", 0, err
	}
	result, eFromDelim := removeTrailingZerosString(result, delimPos)
	return result, e + eFromDelim, nil
}

// PrepareString cleans the string from ",-,+ symbols, and spaces.
func PrepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return "", 0, false
	}
	if s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

func removeLeadingZeros(s string) (result string, delimPos int, e int32, err error) {
	var b strings.Builder
	delimPos, firstNonZeroPos := -1, -1
	seenDigit := false
outer:
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			seenDigit = true
			if b.Len() == 0 {
				if r == '0' { // trim leading zeros
					continue
				}
				firstNonZeroPos = i
			}
			b.WriteRune(r)
		case r == 'e' || r == 'E':
			if !seenDigit {
				return "", 0, 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
			}
			parsed, err := strconv.ParseInt(s[i+1:], 10, 32)
			if err != nil {
				return "", 0, 0, newPosError("error parsing exponent: "+err.Error(), i+1)
			}
			e = int32(parsed)
			break outer
		case r == delim:
			if delimPos != -1 {
				return "", 0, 0, newPosError("unexpected delimeter", i)
			}
			delimPos = i
		default:
			return "", 0, 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if !seenDigit {
		return "", 0, 0, newPosError("no digits", 0)
	}
	if firstNonZeroPos == -1 { // a zero-only string
		return "", 0, 0, nil
	}

	result = b.String()

	// move delimPos to the beginning of the trimmed string
	if delimPos >= 0 {
		if delimPos < firstNonZeroPos {
			firstNonZeroPos--
		}
		delimPos -= firstNonZeroPos
	} else { // if there is no delim, add one at the end of the string 123 --> 123.
		delimPos = len(result)
	}

	return result, delimPos, e, nil
}

func removeTrailingZerosString(s string, delimPos int) (result string, e int32) {
	for {
		l := len(s)
		if l == 0 || s[l-1] != '0' {
			break
		}
		s = s[:l-1]
	}
	return s, int32(delimPos - len(s))
}
