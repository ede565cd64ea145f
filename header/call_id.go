package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// parseCallIDValue consumes 'word ["@" word]' and produces TagID plus an
// optional TagHost. In-Reply-To shares the grammar.
func parseCallIDValue(s []byte) (Value, []byte, error) {
	id, rest, err := grammar.TakeWhile1(s, grammar.IsWordChar, grammar.ErrExpectedToken)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	var tags *Tags
	tags = tags.set(TagID, id)

	if len(rest) > 0 && rest[0] == '@' {
		var host []byte
		host, rest, err = grammar.TakeWhile1(rest[1:], grammar.IsWordChar, grammar.ErrExpectedToken)
		if err != nil {
			return Value{}, nil, errtrace.Wrap(err)
		}
		tags = tags.set(TagHost, host)
	}

	val, err := newValue(s[:len(s)-len(rest)], CallIDValue, tags, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}
