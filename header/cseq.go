package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// parseCSeqValue consumes "1*DIGIT LWS Method" and produces TagNumber and
// TagMethod.
func parseCSeqValue(s []byte) (Value, []byte, error) {
	num, rest, err := grammar.TakeWhile1(s, grammar.IsDigit, grammar.ErrExpectedDigit)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}

	method, rest, err := grammar.TakeWhile1(grammar.SkipLWS(rest), grammar.IsTokenChar, grammar.ErrExpectedToken)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}

	var tags *Tags
	tags = tags.set(TagNumber, num)
	tags = tags.set(TagMethod, method)

	val, err := newValue(s[:len(s)-len(rest)], CSeqValue, tags, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}
