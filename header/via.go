package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// parseViaValue consumes one via-parm: "SIP/2.0/UDP host[:port]". It
// produces TagProtocolName, TagProtocolVersion, TagProtocolTransport,
// TagHost and an optional TagPort. The transport accepts any token so
// RFC 3261 "other-transport" values parse unchanged. Via parameters
// (";branch=..." etc.) are left to the generic-parameter pass and the
// comma loop handles multiple hops.
func parseViaValue(s []byte) (Value, []byte, error) {
	proto, rest, err := grammar.TakeWhile1(s, grammar.IsTokenChar, grammar.ErrExpectedToken)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	rest, err = grammar.SWSByte(rest, '/')
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	version, rest, err := grammar.TakeWhile1(rest, grammar.IsTokenChar, grammar.ErrExpectedToken)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	rest, err = grammar.SWSByte(rest, '/')
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	transport, rest, err := grammar.TakeWhile1(rest, grammar.IsTokenChar, grammar.ErrExpectedToken)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}

	var tags *Tags
	tags = tags.set(TagProtocolName, proto)
	tags = tags.set(TagProtocolVersion, version)
	tags = tags.set(TagProtocolTransport, transport)

	tags, rest, err = takeSentBy(grammar.SkipLWS(rest), tags)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}

	val, err := newValue(s[:len(s)-len(rest)], ViaValue, tags, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}

// takeSentBy consumes "host [":" port]" setting TagHost and TagPort.
// An IPv6 literal's host tag excludes the brackets.
func takeSentBy(s []byte, tags *Tags) (*Tags, []byte, error) {
	if len(s) > 0 && s[0] == '[' {
		rest := s[1:]
		host, rest, err := grammar.TakeWhile1(rest, func(c byte) bool {
			return grammar.IsHostChar(c) && c != '[' && c != ']'
		}, grammar.ErrMalformedInput)
		if err != nil {
			return nil, nil, errtrace.Wrap(err)
		}
		rest, err = grammar.TakeByte(rest, ']')
		if err != nil {
			return nil, nil, errtrace.Wrap(err)
		}
		tags = tags.set(TagHost, host)
		return errtrace.Wrap3(takePort(rest, tags))
	}

	host, rest, err := grammar.TakeWhile1(s, func(c byte) bool {
		return grammar.IsAlphanum(c) || c == '-' || c == '.'
	}, grammar.ErrMalformedInput)
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	tags = tags.set(TagHost, host)
	return errtrace.Wrap3(takePort(rest, tags))
}

func takePort(s []byte, tags *Tags) (*Tags, []byte, error) {
	if len(s) == 0 || s[0] != ':' {
		return tags, s, nil
	}
	port, rest, err := grammar.TakeWhile1(s[1:], grammar.IsDigit, grammar.ErrExpectedDigit)
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	return tags.set(TagPort, port), rest, nil
}
