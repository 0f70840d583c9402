package grammar_test

import (
	"testing"

	"github.com/ghettovoice/gouri/internal/grammar"
)

func TestCharClasses(t *testing.T) {
	t.Parallel()

	for c := byte('a'); c <= 'z'; c++ {
		if !grammar.IsAlphaChar(c) || !grammar.IsSchemeChar(c) || !grammar.IsUnreservedChar(c) || !grammar.IsLabelChar(c) {
			t.Errorf("letter %q missing from alpha/scheme/unreserved/label classes", c)
		}
	}
	for c := byte('0'); c <= '9'; c++ {
		if !grammar.IsDigitChar(c) || !grammar.IsHexChar(c) || !grammar.IsSchemeChar(c) {
			t.Errorf("digit %q missing from digit/hex/scheme classes", c)
		}
	}
	for _, c := range []byte("!$&'()*+,;=") {
		if !grammar.IsSubDelimChar(c) || !grammar.IsLabelChar(c) {
			t.Errorf("sub-delim %q missing from sub-delim/label classes", c)
		}
	}
	for _, c := range []byte("-_~") {
		if !grammar.IsUnreservedChar(c) || !grammar.IsLabelChar(c) {
			t.Errorf("unreserved %q missing from unreserved/label classes", c)
		}
	}

	if grammar.IsLabelChar('.') {
		t.Error("the label separator '.' must not be a label char")
	}
	if !grammar.IsUnreservedChar('.') {
		t.Error("'.' must be unreserved")
	}
	for _, c := range []byte(":/?#[]@ %\"<>") {
		if grammar.IsLabelChar(c) || grammar.IsUnreservedChar(c) || grammar.IsSubDelimChar(c) {
			t.Errorf("%q must stay outside the unreserved/sub-delim/label classes", c)
		}
	}
	for _, c := range []byte("gG \x00") {
		if grammar.IsHexChar(c) {
			t.Errorf("%q must not be a hex char", c)
		}
	}
}

func TestCtlIndex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  int
	}{
		{"", -1},
		{"scheme://host/path", -1},
		{"with space", -1},
		{"a\x00b", 1},
		{"\x1f", 0},
		{"abc\x7f", 3},
		{"tab\tinside", 3},
	}

	for _, c := range cases {
		if got := grammar.CtlIndex(c.input); got != c.want {
			t.Errorf("grammar.CtlIndex(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestHasNonASCIIChar(t *testing.T) {
	t.Parallel()

	if grammar.HasNonASCIIChar("example.org") {
		t.Error("grammar.HasNonASCIIChar(ascii) = true, want false")
	}
	if !grammar.HasNonASCIIChar("bücher.example") {
		t.Error("grammar.HasNonASCIIChar(idn) = false, want true")
	}
	if !grammar.HasNonASCIIChar([]byte{0x80}) {
		t.Error("grammar.HasNonASCIIChar(0x80) = false, want true")
	}
}
