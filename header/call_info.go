package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// parseCallInfoValue consumes "<absoluteURI>" and exposes the URI between
// the angle brackets as TagPureValue. Alert-Info and Error-Info share the
// grammar; their per-value parameters (";purpose=icon" etc.) are left to
// the generic-parameter pass.
func parseCallInfoValue(s []byte) (Value, []byte, error) {
	rest, err := grammar.TakeByte(s, '<')
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	u, rest, err := takeURI(rest)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	rest, err = grammar.TakeByte(rest, '>')
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}

	var tags *Tags
	tags = tags.set(TagPureValue, u)

	val, err := newValue(s[:len(s)-len(rest)], CallInfoValue, tags, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}
