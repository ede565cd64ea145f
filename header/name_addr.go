package header

import (
	"bytes"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/uri"
)

// parseNameAddrValue consumes the Contact/From/To/Record-Route/Route shape:
// "*", "[display-name] <uri>" or a bare addr-spec. It produces TagStar,
// TagDisplayName and TagAbsoluteURI as applicable and attaches a parsed
// SIP URI view when the address uses the sip or sips scheme.
//
// Header parameters (";tag=...") follow the addr-spec and are left to the
// generic-parameter pass; in the bare form this is exactly why the URI run
// stops at the first semicolon.
func parseNameAddrValue(s []byte) (Value, []byte, error) {
	if len(s) > 0 && s[0] == '*' {
		var tags *Tags
		tags = tags.set(TagStar, s[:1])
		val, err := newValue(s[:1], NameAddrValue, tags, nil)
		if err != nil {
			return Value{}, nil, errtrace.Wrap(err)
		}
		return val, s[1:], nil
	}

	var tags *Tags
	rest := s

	if len(rest) > 0 && rest[0] == '"' {
		content, r, err := grammar.TakeQuoted(rest)
		if err != nil {
			return Value{}, nil, errtrace.Wrap(err)
		}
		tags = tags.set(TagDisplayName, content)
		rest = grammar.SkipLWS(r)
		return errtrace.Wrap3(finishNameAddr(s, rest, tags))
	}

	if i := laquotIndex(rest); i >= 0 {
		display := rest[:i]
		for len(display) > 0 && grammar.IsWSP(display[len(display)-1]) {
			display = display[:len(display)-1]
		}
		if len(display) > 0 {
			tags = tags.set(TagDisplayName, display)
		}
		return errtrace.Wrap3(finishNameAddr(s, rest[i:], tags))
	}

	// bare addr-spec
	u, rest, err := takeURI(rest)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	tags = tags.set(TagAbsoluteURI, u)
	sipURI, err := parseSIPURI(u)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	val, err := newValue(s[:len(s)-len(rest)], NameAddrValue, tags, sipURI)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}

// finishNameAddr consumes "<uri>" at the start of rest; s is the start of
// the whole value span.
func finishNameAddr(s, rest []byte, tags *Tags) (Value, []byte, error) {
	rest, err := grammar.TakeByte(rest, '<')
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}

	// inside the brackets the URI may carry its own ';' and ',' parts
	end := bytes.IndexByte(rest, '>')
	if end < 0 || end > grammar.IndexCRLF(rest) {
		return Value{}, nil, errtrace.Wrap(grammar.ErrMalformedInput)
	}
	u := rest[:end]
	rest = rest[end+1:]

	tags = tags.set(TagAbsoluteURI, u)
	sipURI, err := parseSIPURI(u)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	val, err := newValue(s[:len(s)-len(rest)], NameAddrValue, tags, sipURI)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}

// laquotIndex locates a '<' within the current value occurrence,
// or -1 for the bare addr-spec form.
func laquotIndex(s []byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			return i
		case ',', ';', '\r', '\n':
			return -1
		}
	}
	return -1
}

var (
	sipScheme  = []byte("sip:")
	sipsScheme = []byte("sips:")
)

// parseSIPURI parses u into a borrowed SIP URI view when it uses the sip
// or sips scheme; other schemes yield no view and no error.
func parseSIPURI(u []byte) (*uri.SIP, error) {
	if !hasFoldPrefix(u, sipScheme) && !hasFoldPrefix(u, sipsScheme) {
		return nil, nil
	}
	return errtrace.Wrap2(uri.Parse(u))
}

func hasFoldPrefix(s, prefix []byte) bool {
	return len(s) >= len(prefix) && bytes.EqualFold(s[:len(prefix)], prefix)
}
