package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// Value grammars for the shapes without structured sub-fields. Every grammar
// shares the valueParser signature: consume a prefix, return the Value and
// the remaining input. Grammars are deliberately permissive and greedy; the
// terminator whitelist in takeValue is the backstop against trailing garbage.

func isTokenSlashChar(c byte) bool {
	return grammar.IsTokenChar(c) || c == '/'
}

// parseTokenValue consumes a run of token characters. The '/' is allowed so
// media-type values like "application/sdp" parse as one token.
func parseTokenValue(s []byte) (Value, []byte, error) {
	raw, rest, err := grammar.TakeWhile1(s, isTokenSlashChar, grammar.ErrExpectedToken)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	val, err := newValue(raw, TokenValue, nil, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}

// parseDigitValue consumes a run of decimal digits.
func parseDigitValue(s []byte) (Value, []byte, error) {
	raw, rest, err := grammar.TakeWhile1(s, grammar.IsDigit, grammar.ErrExpectedDigit)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	val, err := newValue(raw, DigitValue, nil, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}

// parseFreeText consumes everything up to the line terminator, leaving
// trailing whitespace for the terminator check.
func parseFreeText(s []byte, vtype ValueType) (Value, []byte, error) {
	i := grammar.IndexCRLF(s)
	for i > 0 && grammar.IsWSP(s[i-1]) {
		i--
	}
	val, err := newValue(s[:i], vtype, nil, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, s[i:], nil
}

// parseTextValue handles free-text headers like Subject and Organization.
func parseTextValue(s []byte) (Value, []byte, error) {
	return parseFreeText(s, TextValue)
}

// parseDateValue consumes an RFC 1123 date string. The date contains a
// comma ("Fri, 25 Dec ..."), so it must run to the terminator instead of
// joining the comma-repetition loop.
func parseDateValue(s []byte) (Value, []byte, error) {
	return parseFreeText(s, DateValue)
}

// parseUserAgentValue handles the product/comment runs of User-Agent and
// Server.
func parseUserAgentValue(s []byte) (Value, []byte, error) {
	return parseFreeText(s, UserAgentValue)
}

// parseExtensionValue is the fallback grammar for unrecognized headers:
// any byte run up to the next terminator.
func parseExtensionValue(s []byte) (Value, []byte, error) {
	return parseFreeText(s, ExtensionValue)
}

// parseQuotedValue consumes a quoted string; the content between the quotes
// is exposed as TagPureValue while the raw span keeps the quotes.
func parseQuotedValue(s []byte) (Value, []byte, error) {
	content, rest, err := grammar.TakeQuoted(s)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	var tags *Tags
	tags = tags.set(TagPureValue, content)
	val, err := newValue(s[:len(s)-len(rest)], QuotedValue, tags, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}

// parseVersionValue consumes "major[.minor]" as in MIME-Version.
func parseVersionValue(s []byte) (Value, []byte, error) {
	major, rest, err := grammar.TakeWhile1(s, grammar.IsDigit, grammar.ErrExpectedDigit)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	var tags *Tags
	tags = tags.set(TagMajor, major)

	if len(rest) > 0 && rest[0] == '.' {
		var minor []byte
		minor, rest, err = grammar.TakeWhile1(rest[1:], grammar.IsDigit, grammar.ErrExpectedDigit)
		if err != nil {
			return Value{}, nil, errtrace.Wrap(err)
		}
		tags = tags.set(TagMinor, minor)
	}

	val, err := newValue(s[:len(s)-len(rest)], VersionValue, tags, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}

// parseAbsoluteURIValue consumes a bare absolute URI run and exposes it as
// TagAbsoluteURI.
func parseAbsoluteURIValue(s []byte) (Value, []byte, error) {
	u, rest, err := takeURI(s)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	var tags *Tags
	tags = tags.set(TagAbsoluteURI, u)
	val, err := newValue(u, AbsoluteURIValue, tags, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}

// isURIChar reports whether c may appear in a bare absolute URI.
func isURIChar(c byte) bool {
	return c > ' ' && c < 0x7f && c != ',' && c != ';' && c != '<' && c != '>' && c != '"'
}

// takeURI consumes a run of absolute-URI characters.
func takeURI(s []byte) (u, rest []byte, err error) {
	return errtrace.Wrap3(grammar.TakeWhile1(s, isURIChar, grammar.ErrMalformedInput))
}
