package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// parseWarningValue consumes 'warn-code SP warn-agent SP warn-text' and
// produces TagWarnCode, TagWarnAgent and TagWarnText. The warn-text tag
// holds the content between the quotes.
func parseWarningValue(s []byte) (Value, []byte, error) {
	code, rest, err := grammar.TakeWhile1(s, grammar.IsDigit, grammar.ErrExpectedDigit)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}

	agent, rest, err := grammar.TakeWhile1(grammar.SkipLWS(rest), func(c byte) bool {
		return grammar.IsHostChar(c)
	}, grammar.ErrMalformedInput)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}

	text, rest, err := grammar.TakeQuoted(grammar.SkipLWS(rest))
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}

	var tags *Tags
	tags = tags.set(TagWarnCode, code)
	tags = tags.set(TagWarnAgent, agent)
	tags = tags.set(TagWarnText, text)

	val, err := newValue(s[:len(s)-len(rest)], WarningValue, tags, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}
