package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// takeDecimal consumes "1*DIGIT [ '.' *DIGIT ]".
func takeDecimal(s []byte) (num, rest []byte, err error) {
	_, rest, err = grammar.TakeWhile1(s, grammar.IsDigit, grammar.ErrExpectedDigit)
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	if len(rest) > 0 && rest[0] == '.' {
		_, rest = grammar.TakeWhile(rest[1:], grammar.IsDigit)
	}
	return s[:len(s)-len(rest)], rest, nil
}

// parseTimestampValue consumes 'time-val [LWS delay]' producing TagTimeVal
// and an optional TagDelay.
func parseTimestampValue(s []byte) (Value, []byte, error) {
	timeVal, rest, err := takeDecimal(s)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	var tags *Tags
	tags = tags.set(TagTimeVal, timeVal)

	if next := grammar.SkipLWS(rest); len(next) > 0 && grammar.IsDigit(next[0]) {
		var delay []byte
		delay, rest, err = takeDecimal(next)
		if err != nil {
			return Value{}, nil, errtrace.Wrap(err)
		}
		tags = tags.set(TagDelay, delay)
	}

	val, err := newValue(s[:len(s)-len(rest)], TimestampValue, tags, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}
