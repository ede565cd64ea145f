// Package grammar implements the low-level RFC 3261 byte classes and
// scanners used by the header and URI parsers.
//
// All scanners operate on borrowed sub-slices of the caller's buffer and
// return the remaining input alongside the consumed span. Nothing here
// allocates or copies value bytes.
package grammar

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"
)

// Error is a grammar-level parse error.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrExpectedToken  Error = "expected token characters"
	ErrExpectedDigit  Error = "expected digits"
	ErrExpectedByte   Error = "expected byte"
	ErrUnclosedQuote  Error = "unclosed quoted string"
	ErrMalformedInput Error = "malformed input"
)

// IsTokenChar reports whether c belongs to the RFC 3261 "token" class.
func IsTokenChar(c byte) bool {
	return IsAlphanum(c) ||
		c == '-' || c == '.' || c == '!' || c == '%' || c == '*' ||
		c == '_' || c == '+' || c == '`' || c == '\'' || c == '~'
}

// IsWordChar reports whether c belongs to the RFC 3261 "word" class
// (used by Call-ID and tags).
func IsWordChar(c byte) bool {
	return IsTokenChar(c) ||
		c == '(' || c == ')' || c == '<' || c == '>' || c == ':' ||
		c == '\\' || c == '"' || c == '/' || c == '[' || c == ']' ||
		c == '?' || c == '{' || c == '}'
}

func IsAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

func IsAlphanum(c byte) bool { return IsAlpha(c) || IsDigit(c) }

// IsWSP reports whether c is a space or horizontal tab.
func IsWSP(c byte) bool { return c == ' ' || c == '\t' }

// IsHostChar reports whether c may appear in a hostname or IP literal.
func IsHostChar(c byte) bool {
	return IsAlphanum(c) || c == '-' || c == '.' || c == '[' || c == ']' || c == ':'
}

// IsCRLF reports whether s starts with a CRLF line terminator.
func IsCRLF(s []byte) bool {
	return len(s) >= 2 && s[0] == '\r' && s[1] == '\n'
}

// TakeWhile consumes the longest prefix of s satisfying pred.
func TakeWhile(s []byte, pred func(byte) bool) (val, rest []byte) {
	i := 0
	for i < len(s) && pred(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// TakeWhile1 consumes the longest prefix of s satisfying pred
// and fails if the prefix is empty.
func TakeWhile1(s []byte, pred func(byte) bool, sentinel Error) (val, rest []byte, err error) {
	val, rest = TakeWhile(s, pred)
	if len(val) == 0 {
		if len(s) == 0 {
			return nil, nil, errtrace.Wrap(ErrEmptyInput)
		}
		return nil, nil, errtrace.Wrap(sentinel)
	}
	return val, rest, nil
}

// SkipSP consumes any run of spaces and horizontal tabs.
func SkipSP(s []byte) []byte {
	_, rest := TakeWhile(s, IsWSP)
	return rest
}

// SkipLWS consumes linear whitespace: runs of SP/HTAB plus CRLF folds
// (a CRLF immediately followed by SP or HTAB). A CRLF that is not a fold
// terminates the header line and is left unconsumed.
func SkipLWS(s []byte) []byte {
	for {
		s = SkipSP(s)
		if IsCRLF(s) && len(s) > 2 && IsWSP(s[2]) {
			s = s[3:]
			continue
		}
		return s
	}
}

// TakeByte consumes the expected byte c from the start of s.
func TakeByte(s []byte, c byte) (rest []byte, err error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}
	if s[0] != c {
		return nil, errtrace.Wrap(ErrExpectedByte)
	}
	return s[1:], nil
}

// SWSByte consumes optional linear whitespace, the expected byte c and
// optional trailing linear whitespace (the RFC 3261 HCOLON/COMMA/SEMI shape).
func SWSByte(s []byte, c byte) (rest []byte, err error) {
	rest, err = TakeByte(SkipLWS(s), c)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return SkipLWS(rest), nil
}

// TakeQuoted consumes an RFC 3261 quoted-string from the start of s.
// It returns the content between the quotes (with escape sequences kept
// as written) and the remaining input after the closing quote.
func TakeQuoted(s []byte) (content, rest []byte, err error) {
	rest, err = TakeByte(s, '"')
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			i++
		case '"':
			return rest[:i], rest[i+1:], nil
		case '\r', '\n':
			return nil, nil, errtrace.Wrap(ErrUnclosedQuote)
		}
	}
	return nil, nil, errtrace.Wrap(ErrUnclosedQuote)
}

// IndexCRLF returns the index of the first CRLF in s, or len(s) if none.
func IndexCRLF(s []byte) int {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '\r' && s[i+1] == '\n' {
			return i
		}
	}
	return len(s)
}
