package buffer

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidChar is matched (via errors.Is) by every InvalidCharError.
var ErrInvalidChar = errors.New("invalid character for text")

// InvalidCharError reports a character that has no display width and so
// cannot live in a line. Tab is the only control character allowed.
type InvalidCharError struct {
	Char rune
}

func (e *InvalidCharError) Error() string {
	if e.Char == utf8.RuneError {
		return "invalid UTF-8 in text"
	}
	return fmt.Sprintf("invalid character for text is included: %q", e.Char)
}

// Is lets errors.Is(err, ErrInvalidChar) match.
func (e *InvalidCharError) Is(target error) bool {
	return target == ErrInvalidChar
}

// CheckChar returns an *InvalidCharError if r cannot be stored in a line.
func CheckChar(r rune) error {
	if r == '\t' {
		return nil
	}
	if _, ok := charWidth(r); !ok {
		return &InvalidCharError{Char: r}
	}
	return nil
}

// CheckText validates every character of s with CheckChar. Invalid UTF-8
// is rejected as well.
func CheckText(s string) error {
	if !utf8.ValidString(s) {
		return &InvalidCharError{Char: utf8.RuneError}
	}
	for _, r := range s {
		if err := CheckChar(r); err != nil {
			return err
		}
	}
	return nil
}
