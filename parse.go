package gouri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// shortcuts maps the degenerate references whose decomposition is fixed.
var shortcuts = map[string]Components{
	"":   {},
	"#":  {flags: hasFragment},
	"?":  {flags: hasQuery},
	"?#": {flags: hasQuery | hasFragment},
	"/":  {path: "/"},
	"//": {flags: hasHost},
}

// Parse parses a URI reference from the given input src (string or []byte)
// into its components.
//
// Parsing is a single pass over the input: the position of the first
// structural delimiter selects the RFC 3986 path variant, the authority is
// tokenized into userinfo, host and port, and the host and port are
// validated. Component contents are not percent-decoded and scheme-specific
// rules are not enforced.
//
// On failure the returned error wraps one of [ErrInvalidCharacters],
// [ErrInvalidScheme], [ErrInvalidPath], [ErrInvalidHost], [ErrInvalidPort]
// or [ErrMissingIDNSupport], and the components are zero.
func Parse[T ~string | ~[]byte](src T) (Components, error) {
	s := string(src)
	if c, ok := shortcuts[s]; ok {
		return c, nil
	}
	if grammar.CtlIndex(s) >= 0 {
		return Components{}, errtrace.Wrap(newInvalidCharactersErr(s))
	}

	switch {
	case s[0] == '#':
		return Components{fragment: s[1:], flags: hasFragment}, nil
	case s[0] == '?':
		c := Components{flags: hasQuery}
		q, frag, hasFrag := strings.Cut(s[1:], "#")
		c.query = q
		if hasFrag {
			c.fragment = frag
			c.flags |= hasFragment
		}
		return c, nil
	case strings.HasPrefix(s, "//"):
		return errtrace.Wrap2(parseAuthority(s[2:], Components{}))
	case s[0] == '/' || !strings.Contains(s, ":"):
		return parsePathOnly(s, Components{}), nil
	default:
		return errtrace.Wrap2(parseAfterColon(s))
	}
}

// MustParse is like [Parse] but panics on a malformed input.
func MustParse[T ~string | ~[]byte](src T) Components {
	return util.Must2(Parse(src))
}

// parsePathOnly splits s into path, query and fragment and merges them into c.
func parsePathOnly(s string, c Components) Components {
	rest, frag, hasFrag := strings.Cut(s, "#")
	path, query, hasQ := strings.Cut(rest, "?")
	c.path = path
	if hasQ {
		c.query = query
		c.flags |= hasQuery
	}
	if hasFrag {
		c.fragment = frag
		c.flags |= hasFragment
	}
	return c
}

// parseAfterColon handles inputs containing a colon with no leading slash:
// either a scheme-qualified reference or a relative path whose first
// segment is constrained by the path-noscheme rule.
func parseAfterColon(s string) (Components, error) {
	head, tail, _ := strings.Cut(s, ":")
	if head == "" {
		return Components{}, errtrace.Wrap(newInvalidSchemeErr(s))
	}
	if !grammar.IsScheme(head) {
		if strings.Contains(head, "/") {
			// the colon sits past the first segment, plain relative path
			return parsePathOnly(s, Components{}), nil
		}
		if strings.HasPrefix(tail, "//") {
			return Components{}, errtrace.Wrap(newInvalidSchemeErr(head))
		}
		return Components{}, errtrace.Wrap(newInvalidPathErr(s))
	}

	c := Components{scheme: head, flags: hasScheme}
	switch {
	case tail == "":
		return c, nil
	case tail == "//":
		c.flags |= hasHost
		return c, nil
	case strings.HasPrefix(tail, "//"):
		return errtrace.Wrap2(parseAuthority(tail[2:], c))
	default:
		return parsePathOnly(tail, c), nil
	}
}
