package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// parseAuthenticationInfoValue consumes one ainfo pair like
// 'nextnonce="47364c23432..."' producing TagAinfoType and TagAinfoValue
// (without quotes). The comma loop in Parse handles repeated ainfo pairs.
func parseAuthenticationInfoValue(s []byte) (Value, []byte, error) {
	name, rest, err := grammar.TakeWhile1(s, grammar.IsTokenChar, grammar.ErrExpectedToken)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	aval, rest, err := takeAuthParamValue(rest)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}

	var tags *Tags
	tags = tags.set(TagAinfoType, name)
	tags = tags.set(TagAinfoValue, aval)

	val, err := newValue(s[:len(s)-len(rest)], AuthenticationInfoValue, tags, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}

// digestParamTags maps a lowercase digest parameter name to its tag kind.
// Unknown auth-params are consumed but produce no tag; they stay visible
// through the raw value span.
var digestParamTags = map[string]TagKind{
	"username":  TagUsername,
	"realm":     TagRealm,
	"domain":    TagDomain,
	"nonce":     TagNonce,
	"uri":       TagDigestURI,
	"response":  TagDResponse,
	"algorithm": TagAlgorithm,
	"cnonce":    TagCNonce,
	"opaque":    TagOpaque,
	"stale":     TagStale,
	"qop":       TagQopValue,
	"nc":        TagNonceCount,
}

// parseDigestCredentialsValue consumes an entire credentials/challenge
// value: an auth scheme followed by comma-separated auth-params. The commas
// belong to the credentials grammar, so the value never joins the header
// comma-repetition loop. Quoted parameter values are tagged without their
// quotes.
func parseDigestCredentialsValue(s []byte) (Value, []byte, error) {
	schema, rest, err := grammar.TakeWhile1(s, grammar.IsTokenChar, grammar.ErrExpectedToken)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	var tags *Tags
	tags = tags.set(TagAuthSchema, schema)

	rest = grammar.SkipLWS(rest)
	for {
		var name, aval []byte
		name, rest, err = grammar.TakeWhile1(rest, grammar.IsTokenChar, grammar.ErrExpectedToken)
		if err != nil {
			return Value{}, nil, errtrace.Wrap(err)
		}
		aval, rest, err = takeAuthParamValue(rest)
		if err != nil {
			return Value{}, nil, errtrace.Wrap(err)
		}
		if kind, ok := digestParamTags[util.LCaseBytes(name)]; ok {
			tags = tags.set(kind, aval)
		}

		// another auth-param only if a comma is followed by "token ="
		next := grammar.SkipLWS(rest)
		if len(next) == 0 || next[0] != ',' {
			break
		}
		after := grammar.SkipLWS(next[1:])
		tok, r := grammar.TakeWhile(after, grammar.IsTokenChar)
		if r = grammar.SkipLWS(r); len(tok) == 0 || len(r) == 0 || r[0] != '=' {
			break
		}
		rest = after
	}

	val, err := newValue(s[:len(s)-len(rest)], DigestCredentialsValue, tags, nil)
	if err != nil {
		return Value{}, nil, errtrace.Wrap(err)
	}
	return val, rest, nil
}

// takeAuthParamValue consumes '=' and a token or quoted-string value,
// returning the value without quotes.
func takeAuthParamValue(s []byte) (val, rest []byte, err error) {
	rest, err = grammar.SWSByte(s, '=')
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	if len(rest) > 0 && rest[0] == '"' {
		return errtrace.Wrap3(grammar.TakeQuoted(rest))
	}
	return errtrace.Wrap3(grammar.TakeWhile1(rest, isURIChar, grammar.ErrExpectedToken))
}
