package uri_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/internal/util"
	"github.com/ghettovoice/sipmsg/uri"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  uri.SIP
	}{
		{
			name:  "host only",
			input: "sip:atlanta.com",
			want:  uri.SIP{Host: []byte("atlanta.com")},
		},
		{
			name:  "user and host",
			input: "sip:alice@atlanta.com",
			want: uri.SIP{
				User: []byte("alice"),
				Host: []byte("atlanta.com"),
			},
		},
		{
			name:  "sips with password and port",
			input: "sips:alice:secret@atlanta.com:5061",
			want: uri.SIP{
				User:     []byte("alice"),
				Password: []byte("secret"),
				Host:     []byte("atlanta.com"),
				Port:     []byte("5061"),
				Secured:  true,
			},
		},
		{
			name:  "scheme is case-insensitive",
			input: "SIP:bob@biloxi.com",
			want: uri.SIP{
				User: []byte("bob"),
				Host: []byte("biloxi.com"),
			},
		},
		{
			name:  "ipv4 host",
			input: "sip:192.0.2.4:5060",
			want: uri.SIP{
				Host: []byte("192.0.2.4"),
				Port: []byte("5060"),
			},
		},
		{
			name:  "ipv6 host keeps no brackets",
			input: "sip:alice@[2001:db8::10]:5060",
			want: uri.SIP{
				User: []byte("alice"),
				Host: []byte("2001:db8::10"),
				Port: []byte("5060"),
			},
		},
		{
			name:  "params",
			input: "sip:alice@atlanta.com;transport=tcp;lr",
			want: uri.SIP{
				User:   []byte("alice"),
				Host:   []byte("atlanta.com"),
				Params: []byte("transport=tcp;lr"),
			},
		},
		{
			name:  "params and headers",
			input: "sip:alice@atlanta.com;maddr=239.255.255.1?subject=project&priority=urgent",
			want: uri.SIP{
				User:    []byte("alice"),
				Host:    []byte("atlanta.com"),
				Params:  []byte("maddr=239.255.255.1"),
				Headers: []byte("subject=project&priority=urgent"),
			},
		},
		{
			name:  "headers without params",
			input: "sip:bob@biloxi.com?Replaces=12345",
			want: uri.SIP{
				User:    []byte("bob"),
				Host:    []byte("biloxi.com"),
				Headers: []byte("Replaces=12345"),
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.Parse([]byte(c.input))
			if err != nil {
				t.Fatalf("Parse(%q) error: %+v", c.input, err)
			}
			if diff := cmp.Diff(&c.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", c.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"unknown scheme", "tel:+1-212-555-0101", uri.ErrInvalidScheme},
		{"missing colon", "sip", uri.ErrInvalidScheme},
		{"empty host", "sip:;lr", uri.ErrInvalidHost},
		{"unclosed ipv6", "sip:[2001:db8::10", uri.ErrInvalidHost},
		{"bad port", "sip:atlanta.com:x", uri.ErrInvalidPort},
		{"trailing bytes", "sip:atlanta.com x", uri.ErrInvalidHost},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := uri.Parse([]byte(c.input))
			if !errors.Is(err, c.err) {
				t.Errorf("Parse(%q) error = %v, want %v", c.input, err, c.err)
			}
		})
	}
}

func TestSIPParam(t *testing.T) {
	t.Parallel()

	u := util.Must2(uri.Parse([]byte("sip:alice@atlanta.com;transport=TCP;lr;maddr=239.255.255.1")))

	val, ok := u.Param("Transport")
	if !ok || string(val) != "TCP" {
		t.Errorf("Param(Transport) = %q, %v, want %q, true", val, ok, "TCP")
	}
	val, ok = u.Param("lr")
	if !ok || val != nil {
		t.Errorf("Param(lr) = %q, %v, want nil flag param", val, ok)
	}
	if _, ok := u.Param("ttl"); ok {
		t.Error("Param(ttl) found, want absent")
	}
	if _, ok := (*uri.SIP)(nil).Param("x"); ok {
		t.Error("nil receiver Param found, want absent")
	}
}

func TestSIPString(t *testing.T) {
	t.Parallel()

	cases := []string{
		"sip:atlanta.com",
		"sip:alice@atlanta.com",
		"sips:alice:secret@atlanta.com:5061",
		"sip:alice@[2001:db8::10]:5060;transport=tcp",
		"sip:bob@biloxi.com;lr?Replaces=12345",
	}
	for _, c := range cases {
		u := util.Must2(uri.Parse([]byte(c)))
		if got := u.String(); got != c {
			t.Errorf("String() = %q, want %q", got, c)
		}
	}
}

func TestSIPZeroCopy(t *testing.T) {
	t.Parallel()

	buf := []byte("sip:alice@atlanta.com")
	u := util.Must2(uri.Parse(buf))

	buf[4] = 'm'
	if got := string(u.User); got != "mlice" {
		t.Errorf("User after buffer mutation = %q, want %q", got, "mlice")
	}
}
