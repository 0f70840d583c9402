package gouri_test

import (
	"strings"
	"testing"

	"github.com/ghettovoice/gouri"
)

func TestIsScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scheme string
		want   bool
	}{
		{"", true},
		{"http", true},
		{"HTTP", true},
		{"a+b.c-d", true},
		{"0scheme", false},
		{"+scheme", false},
		{"sch eme", false},
		{"sch:eme", false},
	}

	for _, c := range cases {
		if got := gouri.IsScheme(c.scheme); got != c.want {
			t.Errorf("gouri.IsScheme(%q) = %v, want %v", c.scheme, got, c.want)
		}
	}
}

func TestIsPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		port string
		want bool
	}{
		{"", true},
		{"0", true},
		{"81", true},
		{"65535", true},
		{"065535", true},
		{"65536", false},
		{"999999", false},
		{"toto", false},
		{"-1", false},
		{"8 0", false},
	}

	for _, c := range cases {
		if got := gouri.IsPort(c.port); got != c.want {
			t.Errorf("gouri.IsPort(%q) = %v, want %v", c.port, got, c.want)
		}
	}
}

func TestIsHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		host string
		want bool
	}{
		{"empty", "", true},
		{"registered name", "example.org", true},
		{"trailing dot", "example.org.", true},
		{"sub-delims", "ex!ample$.org", true},
		{"pct-encoded", "ex%41mple.org", true},
		{"truncated pct-encoding", "ex%4", false},
		{"ipv4", "127.0.0.1", true},
		{"ipv6 literal", "[2001:db8::1]", true},
		{"ipv6 without brackets", "2001:db8::1", false},
		{"ipv4 in brackets", "[127.0.0.1]", false},
		{"ipvfuture", "[v7.fe:be]", true},
		{"ipvfuture reserved v4", "[v4.1.2.3.4]", false},
		{"ipvfuture reserved v6", "[v6.0:1]", false},
		{"zone on link-local", "[fe80::a%25en1]", true},
		{"zone on global unicast", "[2001:db8::%25en1]", false},
		{"zone with space", "[fe80::a%25en%201]", false},
		{"unterminated literal", "[fe80::1", false},
		{"at sign", "ex@mple.org", false},
		{"127 labels", strings.Repeat("a.", 126) + "a", true},
		{"128 labels", strings.Repeat("a.", 127) + "a", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := gouri.IsHost(c.host); got != c.want {
				t.Errorf("gouri.IsHost(%q) = %v, want %v", c.host, got, c.want)
			}
		})
	}
}
