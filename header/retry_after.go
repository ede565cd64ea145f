package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// parseRetryAfterValue consumes 'delta-seconds [LWS comment]' producing
// TagSeconds and an optional TagComment (the text between the parens).
// Parameters like ";duration=3600" are left to the generic-parameter pass.
func parseRetryAfterValue(s []byte) (Value, []byte, error) {
	seconds, rest, err := grammar.TakeWhile1(s, grammar.IsDigit, grammar.ErrExpectedDigit)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	var tags *Tags
	tags = tags.set(TagSeconds, seconds)

	if next := grammar.SkipLWS(rest); len(next) > 0 && next[0] == '(' {
		var comment []byte
		comment, rest, err = takeComment(next)
		if err != nil {
			return Value{}, nil, errtrace.Wrap(err)
		}
		tags = tags.set(TagComment, comment)
	}

	val, err := newValue(s[:len(s)-len(rest)], RetryAfterValue, tags, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}

// takeComment consumes a parenthesized comment, honoring nesting and
// backslash escapes, and returns the content between the outer parens.
func takeComment(s []byte) (content, rest []byte, err error) {
	rest, err = grammar.TakeByte(s, '(')
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	depth := 1
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return rest[:i], rest[i+1:], nil
			}
		case '\r', '\n':
			return nil, nil, errtrace.Wrap(grammar.ErrMalformedInput)
		}
	}
	return nil, nil, errtrace.Wrap(grammar.ErrMalformedInput)
}
