package header

import (
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/uri"
)

// ValueType discriminates the shape of a parsed header value.
// The set is closed: every RFC 3261 header maps to one of these shapes and
// unrecognized headers fall back to [ExtensionValue].
type ValueType uint8

const (
	// EmptyValue is a header with an empty value. No tags.
	EmptyValue ValueType = iota
	// TokenValue is a simple run of token characters (plus '/' for
	// media-type headers). No tags.
	TokenValue
	// DigitValue is a run of decimal digits. No tags.
	DigitValue
	// AbsoluteURIValue carries TagAbsoluteURI.
	AbsoluteURIValue
	// QuotedValue carries TagPureValue (the content between the quotes).
	QuotedValue
	// AuthenticationInfoValue carries TagAinfoType and TagAinfoValue.
	AuthenticationInfoValue
	// CSeqValue carries TagNumber and TagMethod.
	CSeqValue
	// DateValue is an RFC 1123 date string. No tags.
	DateValue
	// TextValue is free UTF-8 text up to the line terminator. No tags.
	TextValue
	// VersionValue carries TagMajor and optionally TagMinor.
	VersionValue
	// DigestCredentialsValue carries TagAuthSchema plus the digest
	// parameter tags (TagUsername, TagRealm, TagNonce, ...).
	DigestCredentialsValue
	// CallIDValue carries TagID and optionally TagHost.
	CallIDValue
	// CallInfoValue carries TagPureValue (the URI between '<' and '>').
	CallInfoValue
	// NameAddrValue is the Contact/From/To/Route family shape and carries
	// TagStar, TagDisplayName and TagAbsoluteURI, each optional.
	NameAddrValue
	// TimestampValue carries TagTimeVal and optionally TagDelay.
	TimestampValue
	// RetryAfterValue carries TagSeconds and optionally TagComment.
	RetryAfterValue
	// UserAgentValue is a product/comment run up to the line terminator.
	// No tags.
	UserAgentValue
	// ViaValue carries TagProtocolName, TagProtocolVersion,
	// TagProtocolTransport, TagHost and optionally TagPort.
	ViaValue
	// WarningValue carries TagWarnCode, TagWarnAgent and TagWarnText.
	WarningValue
	// ExtensionValue is the permissive fallback for unrecognized headers:
	// any byte run up to the next terminator. No tags.
	ExtensionValue
)

var valueTypeNames = [...]string{
	EmptyValue:              "empty",
	TokenValue:              "token",
	DigitValue:              "digit",
	AbsoluteURIValue:        "absolute-uri",
	QuotedValue:             "quoted",
	AuthenticationInfoValue: "authentication-info",
	CSeqValue:               "cseq",
	DateValue:               "date",
	TextValue:               "text",
	VersionValue:            "version",
	DigestCredentialsValue:  "digest-credentials",
	CallIDValue:             "call-id",
	CallInfoValue:           "call-info",
	NameAddrValue:           "name-addr",
	TimestampValue:          "timestamp",
	RetryAfterValue:         "retry-after",
	UserAgentValue:          "user-agent",
	ViaValue:                "via",
	WarningValue:            "warning",
	ExtensionValue:          "extension",
}

func (t ValueType) String() string {
	if int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}
	return "unknown"
}

// ErrNotUTF8 is returned when a value span is not valid UTF-8.
const ErrNotUTF8 errorutil.Error = "value is not valid UTF-8"

// Value is one parsed header value occurrence.
// Raw is a strict sub-slice of the buffer passed to [Parse] covering exactly
// the bytes the value grammar consumed, excluding any trailing parameters.
// A Value is built once during parsing and must not be mutated afterwards.
type Value struct {
	// Raw is the borrowed value span, always valid UTF-8.
	Raw []byte
	// Type is the shape discriminant.
	Type ValueType
	// Tags holds the named sub-fields for shapes that declare them,
	// nil otherwise.
	Tags *Tags
	// URI is the parsed SIP URI view when the grammar extracted one,
	// nil otherwise.
	URI *uri.SIP
}

// newValue builds a Value over the raw span consumed by a value grammar.
// The span must decode as valid UTF-8; otherwise no Value is produced and
// the whole header-line parse aborts.
func newValue(raw []byte, vtype ValueType, tags *Tags, u *uri.SIP) (Value, error) {
	if !utf8.Valid(raw) {
		return Value{}, errtrace.Wrap(errorutil.NewWrapperError(ErrNotUTF8, "%q", raw))
	}
	return Value{Raw: raw, Type: vtype, Tags: tags, URI: u}, nil
}

var emptyRaw = []byte{}

func emptyValue() Value {
	return Value{Raw: emptyRaw, Type: EmptyValue}
}

// String returns a copy of the value bytes.
func (v Value) String() string { return string(v.Raw) }

// Tag looks up a named sub-field on the value's tag map.
func (v Value) Tag(kind TagKind) (val []byte, ok bool) {
	return v.Tags.Get(kind)
}
