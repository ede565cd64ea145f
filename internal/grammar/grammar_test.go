package grammar_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

func TestIsTokenChar(t *testing.T) {
	t.Parallel()

	for _, c := range []byte("abcXYZ019-.!%*_+`'~") {
		if !grammar.IsTokenChar(c) {
			t.Errorf("IsTokenChar(%q) = false, want true", c)
		}
	}
	for _, c := range []byte(" \t:;,<>@\"/\\()[]{}?=\r\n") {
		if grammar.IsTokenChar(c) {
			t.Errorf("IsTokenChar(%q) = true, want false", c)
		}
	}
}

func TestIsWordChar(t *testing.T) {
	t.Parallel()

	for _, c := range []byte("abc019()<>:\\\"/[]?{}-.!%*_+`'~") {
		if !grammar.IsWordChar(c) {
			t.Errorf("IsWordChar(%q) = false, want true", c)
		}
	}
	for _, c := range []byte(" \t@,;=\r\n") {
		if grammar.IsWordChar(c) {
			t.Errorf("IsWordChar(%q) = true, want false", c)
		}
	}
}

func TestTakeWhile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		val   string
		rest  string
	}{
		{"consumes prefix", "abc123;x", "abc123", ";x"},
		{"empty match", ";x", "", ";x"},
		{"whole input", "abc", "abc", ""},
		{"empty input", "", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			val, rest := grammar.TakeWhile([]byte(c.input), grammar.IsTokenChar)
			if got := string(val); got != c.val {
				t.Errorf("val = %q, want %q", got, c.val)
			}
			if got := string(rest); got != c.rest {
				t.Errorf("rest = %q, want %q", got, c.rest)
			}
		})
	}
}

func TestTakeWhile1(t *testing.T) {
	t.Parallel()

	t.Run("non-empty prefix", func(t *testing.T) {
		t.Parallel()

		val, rest, err := grammar.TakeWhile1([]byte("42 x"), grammar.IsDigit, grammar.ErrExpectedDigit)
		if err != nil {
			t.Fatalf("unexpected error: %+v", err)
		}
		if diff := cmp.Diff("42", string(val)); diff != "" {
			t.Errorf("val mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(" x", string(rest)); diff != "" {
			t.Errorf("rest mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty prefix", func(t *testing.T) {
		t.Parallel()

		_, _, err := grammar.TakeWhile1([]byte("x42"), grammar.IsDigit, grammar.ErrExpectedDigit)
		if !errors.Is(err, grammar.ErrExpectedDigit) {
			t.Errorf("error = %v, want %v", err, grammar.ErrExpectedDigit)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		_, _, err := grammar.TakeWhile1(nil, grammar.IsDigit, grammar.ErrExpectedDigit)
		if !errors.Is(err, grammar.ErrEmptyInput) {
			t.Errorf("error = %v, want %v", err, grammar.ErrEmptyInput)
		}
	})
}

func TestSkipLWS(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		rest  string
	}{
		{"spaces and tabs", "  \t x", "x"},
		{"crlf fold", " \r\n x", "x"},
		{"crlf fold with tab", "\r\n\ty", "y"},
		{"bare crlf stops", "  \r\nx", "\r\nx"},
		{"no whitespace", "x", "x"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := string(grammar.SkipLWS([]byte(c.input))); got != c.rest {
				t.Errorf("SkipLWS(%q) = %q, want %q", c.input, got, c.rest)
			}
		})
	}
}

func TestSWSByte(t *testing.T) {
	t.Parallel()

	t.Run("whitespace around byte", func(t *testing.T) {
		t.Parallel()

		rest, err := grammar.SWSByte([]byte("  :  v"), ':')
		if err != nil {
			t.Fatalf("unexpected error: %+v", err)
		}
		if got := string(rest); got != "v" {
			t.Errorf("rest = %q, want %q", got, "v")
		}
	})

	t.Run("fold before byte", func(t *testing.T) {
		t.Parallel()

		rest, err := grammar.SWSByte([]byte("\r\n ,x"), ',')
		if err != nil {
			t.Fatalf("unexpected error: %+v", err)
		}
		if got := string(rest); got != "x" {
			t.Errorf("rest = %q, want %q", got, "x")
		}
	})

	t.Run("wrong byte", func(t *testing.T) {
		t.Parallel()

		_, err := grammar.SWSByte([]byte(" ;x"), ',')
		if !errors.Is(err, grammar.ErrExpectedByte) {
			t.Errorf("error = %v, want %v", err, grammar.ErrExpectedByte)
		}
	})
}

func TestTakeQuoted(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		content string
		rest    string
		err     error
	}{
		{"simple", `"hello" x`, "hello", " x", nil},
		{"empty", `""x`, "", "x", nil},
		{"escaped quote", `"a\"b"x`, `a\"b`, "x", nil},
		{"escaped backslash", `"a\\"x`, `a\\`, "x", nil},
		{"unclosed", `"abc`, "", "", grammar.ErrUnclosedQuote},
		{"crlf inside", "\"ab\r\n\"", "", "", grammar.ErrUnclosedQuote},
		{"no quote", `abc`, "", "", grammar.ErrExpectedByte},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			content, rest, err := grammar.TakeQuoted([]byte(c.input))
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

func TestIndexCRLF(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  int
	}{
		{"abc\r\ndef", 3},
		{"\r\n", 0},
		{"abc", 3},
		{"", 0},
		{"a\rb\nc", 5},
	}
	for _, c := range cases {
		if got := grammar.IndexCRLF([]byte(c.input)); got != c.want {
			t.Errorf("IndexCRLF(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}
