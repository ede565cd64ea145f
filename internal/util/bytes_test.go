package util_test

import (
	"testing"

	"github.com/ghettovoice/sipmsg/internal/util"
)

func TestEqFoldASCII(t *testing.T) {
	t.Parallel()

	cases := []struct {
		b    string
		s    string
		want bool
	}{
		{"Content-Length", "content-length", true},
		{"VIA", "via", true},
		{"via", "via", true},
		{"", "", true},
		{"via", "vi", false},
		{"via", "vip", false},
	}
	for _, c := range cases {
		if got := util.EqFoldASCII([]byte(c.b), c.s); got != c.want {
			t.Errorf("EqFoldASCII(%q, %q) = %v, want %v", c.b, c.s, got, c.want)
		}
	}
}

func TestLCaseBytes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"Content-Length", "content-length"},
		{"already-lower", "already-lower"},
		{"MIXED-case", "mixed-case"},
		{"", ""},
	}
	for _, c := range cases {
		if got := util.LCaseBytes([]byte(c.input)); got != c.want {
			t.Errorf("LCaseBytes(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
