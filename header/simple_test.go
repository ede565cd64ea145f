package header

import (
	"errors"
	"testing"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

func TestParseQuotedValue(t *testing.T) {
	t.Parallel()

	val, rest, err := parseQuotedValue([]byte("\"display text\"\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if got := string(val.Raw); got != "\"display text\"" {
		t.Errorf("raw = %q, want the quotes kept", got)
	}
	if val.Type != QuotedValue {
		t.Errorf("type = %v, want %v", val.Type, QuotedValue)
	}
	pure, _ := val.Tag(TagPureValue)
	if got := string(pure); got != "display text" {
		t.Errorf("pure-value tag = %q, want the quotes stripped", got)
	}
	if got := string(rest); got != "\r\n" {
		t.Errorf("rest = %q, want %q", got, "\r\n")
	}

	if _, _, err := parseQuotedValue([]byte("\"unclosed\r\n")); !errors.Is(err, grammar.ErrUnclosedQuote) {
		t.Errorf("error = %v, want %v", err, grammar.ErrUnclosedQuote)
	}
}

func TestParseAbsoluteURIValue(t *testing.T) {
	t.Parallel()

	val, rest, err := parseAbsoluteURIValue([]byte("http://www.example.com/sounds/moo.wav\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if val.Type != AbsoluteURIValue {
		t.Errorf("type = %v, want %v", val.Type, AbsoluteURIValue)
	}
	u, _ := val.Tag(TagAbsoluteURI)
	if got := string(u); got != "http://www.example.com/sounds/moo.wav" {
		t.Errorf("absolute-uri tag = %q", got)
	}
	if got := string(rest); got != "\r\n" {
		t.Errorf("rest = %q, want %q", got, "\r\n")
	}
}

func TestParseVersionValueMajorOnly(t *testing.T) {
	t.Parallel()

	val, rest, err := parseVersionValue([]byte("2\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	major, _ := val.Tag(TagMajor)
	if got := string(major); got != "2" {
		t.Errorf("major tag = %q, want %q", got, "2")
	}
	if val.Tags.Has(TagMinor) {
		t.Error("minor tag present, want absent")
	}
	if got := string(rest); got != "\r\n" {
		t.Errorf("rest = %q, want %q", got, "\r\n")
	}
}

func TestTakeComment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		content string
		rest    string
		err     error
	}{
		{"flat", "(a comment)x", "a comment", "x", nil},
		{"nested", "(outer (inner) tail)x", "outer (inner) tail", "x", nil},
		{"escaped paren", `(a \) b)x`, `a \) b`, "x", nil},
		{"unclosed", "(oops", "", "", grammar.ErrMalformedInput},
		{"crlf inside", "(oops\r\n)", "", "", grammar.ErrMalformedInput},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			content, rest, err := takeComment([]byte(c.input))
			if c.err != nil {
				if !errors.Is(err, c.err) {
					t.Fatalf("error = %v, want %v", err, c.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if got := string(content); got != c.content {
				t.Errorf("content = %q, want %q", got, c.content)
			}
			if got := string(rest); got != c.rest {
				t.Errorf("rest = %q, want %q", got, c.rest)
			}
		})
	}
}

func TestLaquotIndex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  int
	}{
		{"Alice <sip:a@b>", 6},
		{"<sip:a@b>", 0},
		{"sip:a@b;tag=1 <not-here>", -1},
		{"sip:a@b, <not-here>", -1},
		{"sip:a@b", -1},
	}
	for _, c := range cases {
		if got := laquotIndex([]byte(c.input)); got != c.want {
			t.Errorf("laquotIndex(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestFindParserUnknownFallsBack(t *testing.T) {
	t.Parallel()

	kind, parse := findParser([]byte("X-Unknown"))
	if kind != RFCUnknown {
		t.Errorf("kind = %v, want %v", kind, RFCUnknown)
	}
	val, rest, err := parse([]byte("free form; anything\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if val.Type != ExtensionValue {
		t.Errorf("type = %v, want %v", val.Type, ExtensionValue)
	}
	if got := string(val.Raw); got != "free form; anything" {
		t.Errorf("raw = %q, want %q", got, "free form; anything")
	}
	if got := string(rest); got != "\r\n" {
		t.Errorf("rest = %q, want %q", got, "\r\n")
	}
}
