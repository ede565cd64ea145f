package header

import (
	"iter"
	"slices"
)

// TagKind identifies a named sub-field extracted from a header value by its
// value grammar. The declaration order below is the total order used when
// iterating a [Tags] map; it is stable and part of the API.
type TagKind uint8

const (
	TagPureValue TagKind = iota
	TagAinfoType
	TagAinfoValue
	TagAbsoluteURI
	// digest credentials (Authorization, WWW-Authenticate, ...)
	TagAuthSchema
	TagUsername
	TagDomain
	TagRealm
	TagNonce
	TagDigestURI
	TagDResponse
	TagAlgorithm
	TagCNonce
	TagOpaque
	TagStale
	TagQopValue
	TagNonceCount

	TagNumber
	TagMethod
	TagID
	TagHost
	TagPort
	TagStar
	TagDisplayName
	TagSeconds
	TagComment
	TagMajor
	TagMinor
	TagTimeVal
	TagDelay

	TagProtocolName
	TagProtocolVersion
	TagProtocolTransport

	TagWarnCode
	TagWarnAgent
	TagWarnText
)

var tagKindNames = [...]string{
	TagPureValue:         "pure-value",
	TagAinfoType:         "ainfo-type",
	TagAinfoValue:        "ainfo-value",
	TagAbsoluteURI:       "absolute-uri",
	TagAuthSchema:        "auth-schema",
	TagUsername:          "username",
	TagDomain:            "domain",
	TagRealm:             "realm",
	TagNonce:             "nonce",
	TagDigestURI:         "digest-uri",
	TagDResponse:         "dresponse",
	TagAlgorithm:         "algorithm",
	TagCNonce:            "cnonce",
	TagOpaque:            "opaque",
	TagStale:             "stale",
	TagQopValue:          "qop-value",
	TagNonceCount:        "nonce-count",
	TagNumber:            "number",
	TagMethod:            "method",
	TagID:                "id",
	TagHost:              "host",
	TagPort:              "port",
	TagStar:              "star",
	TagDisplayName:       "display-name",
	TagSeconds:           "seconds",
	TagComment:           "comment",
	TagMajor:             "major",
	TagMinor:             "minor",
	TagTimeVal:           "time-val",
	TagDelay:             "delay",
	TagProtocolName:      "protocol-name",
	TagProtocolVersion:   "protocol-version",
	TagProtocolTransport: "protocol-transport",
	TagWarnCode:          "warn-code",
	TagWarnAgent:         "warn-agent",
	TagWarnText:          "warn-text",
}

func (k TagKind) String() string {
	if int(k) < len(tagKindNames) {
		return tagKindNames[k]
	}
	return "unknown"
}

type tagEntry struct {
	kind TagKind
	val  []byte
}

// Tags maps a [TagKind] to a borrowed byte span.
// Keys are unique and iteration follows the TagKind declaration order
// regardless of insertion order. A Tags map is built once by a value grammar
// and never mutated afterwards.
type Tags struct {
	entries []tagEntry
}

func cmpTagEntry(e tagEntry, kind TagKind) int {
	return int(e.kind) - int(kind)
}

// set inserts or replaces the span for kind, keeping entries sorted.
func (t *Tags) set(kind TagKind, val []byte) *Tags {
	if t == nil {
		t = &Tags{}
	}
	i, found := slices.BinarySearchFunc(t.entries, kind, cmpTagEntry)
	if found {
		t.entries[i].val = val
		return t
	}
	t.entries = slices.Insert(t.entries, i, tagEntry{kind, val})
	return t
}

// Get returns the span associated with kind.
func (t *Tags) Get(kind TagKind) (val []byte, ok bool) {
	if t == nil {
		return nil, false
	}
	i, found := slices.BinarySearchFunc(t.entries, kind, cmpTagEntry)
	if !found {
		return nil, false
	}
	return t.entries[i].val, true
}

// Has reports whether kind is present.
func (t *Tags) Has(kind TagKind) bool {
	_, ok := t.Get(kind)
	return ok
}

// Len returns the number of tags.
func (t *Tags) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// All iterates the tags in TagKind order.
func (t *Tags) All() iter.Seq2[TagKind, []byte] {
	return func(yield func(TagKind, []byte) bool) {
		if t == nil {
			return
		}
		for _, e := range t.entries {
			if !yield(e.kind, e.val) {
				return
			}
		}
	}
}

// Equal reports whether two tag maps hold the same kinds with equal spans.
func (t *Tags) Equal(other *Tags) bool {
	if t.Len() != other.Len() {
		return false
	}
	if t == nil || other == nil {
		return true
	}
	return slices.EqualFunc(t.entries, other.entries, func(e1, e2 tagEntry) bool {
		return e1.kind == e2.kind && string(e1.val) == string(e2.val)
	})
}
