package gouri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/util"
)

const (
	hasScheme uint8 = 1 << iota
	hasUser
	hasPass
	hasHost
	hasPort
	hasQuery
	hasFragment
)

// Components is a URI decomposed into the eight RFC 3986 components:
// scheme, user, pass, host, port, path, query and fragment.
//
// Every component except the path is optional, and an absent component is
// distinct from a present-but-empty one: "//example.org?" carries an empty
// query while "//example.org" carries none. Optional accessors return the
// value together with a presence flag.
//
// A Components value is immutable: it is produced by [Parse] or by the
// With* setters, which copy. The zero value is the empty relative reference.
type Components struct {
	scheme   string
	user     string
	pass     string
	host     string
	path     string
	query    string
	fragment string
	port     uint16
	flags    uint8
}

// Scheme returns the scheme and whether it is present.
func (c Components) Scheme() (string, bool) { return c.scheme, c.flags&hasScheme != 0 }

// User returns the userinfo user part and whether it is present.
func (c Components) User() (string, bool) { return c.user, c.flags&hasUser != 0 }

// Pass returns the userinfo pass part and whether it is present.
// The pass component is parsed but never rendered back (RFC 3986 Section 7.5).
func (c Components) Pass() (string, bool) { return c.pass, c.flags&hasPass != 0 }

// Host returns the host and whether it is present. A present empty host
// means the URI carries an empty authority, as in "//".
func (c Components) Host() (string, bool) { return c.host, c.flags&hasHost != 0 }

// Port returns the port and whether it is present.
func (c Components) Port() (uint16, bool) { return c.port, c.flags&hasPort != 0 }

// Path returns the path. The path is always present and may be empty.
func (c Components) Path() string { return c.path }

// Query returns the query and whether it is present.
func (c Components) Query() (string, bool) { return c.query, c.flags&hasQuery != 0 }

// Fragment returns the fragment and whether it is present.
func (c Components) Fragment() (string, bool) { return c.fragment, c.flags&hasFragment != 0 }

// WithScheme returns a copy of c with the scheme set.
func (c Components) WithScheme(scheme string) Components {
	c.scheme = scheme
	c.flags |= hasScheme
	return c
}

// WithUser returns a copy of c with the user set and no pass.
func (c Components) WithUser(user string) Components {
	c.user = user
	c.pass = ""
	c.flags = c.flags&^hasPass | hasUser
	return c
}

// WithUserPassword returns a copy of c with both userinfo parts set.
func (c Components) WithUserPassword(user, pass string) Components {
	c.user = user
	c.pass = pass
	c.flags |= hasUser | hasPass
	return c
}

// WithHost returns a copy of c with the host set. IP-literal hosts keep
// their enclosing brackets, as produced by [Parse].
func (c Components) WithHost(host string) Components {
	c.host = host
	c.flags |= hasHost
	return c
}

// WithPort returns a copy of c with the port set.
func (c Components) WithPort(port uint16) Components {
	c.port = port
	c.flags |= hasPort
	return c
}

// WithPath returns a copy of c with the path set.
func (c Components) WithPath(path string) Components {
	c.path = path
	return c
}

// WithQuery returns a copy of c with the query set.
func (c Components) WithQuery(query string) Components {
	c.query = query
	c.flags |= hasQuery
	return c
}

// WithFragment returns a copy of c with the fragment set.
func (c Components) WithFragment(fragment string) Components {
	c.fragment = fragment
	c.flags |= hasFragment
	return c
}

// Equal compares this value with another for component-wise syntactic
// equality. Scheme and host compare case-insensitively, everything else
// byte for byte, and presence flags must match.
func (c Components) Equal(val any) bool {
	var other Components
	switch v := val.(type) {
	case Components:
		other = v
	case *Components:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	return c.flags == other.flags &&
		util.EqFold(c.scheme, other.scheme) &&
		c.user == other.user &&
		c.pass == other.pass &&
		util.EqFold(c.host, other.host) &&
		c.port == other.port &&
		c.path == other.path &&
		c.query == other.query &&
		c.fragment == other.fragment
}

// IsZero reports whether c is the empty relative reference.
func (c Components) IsZero() bool { return c == Components{} }

// Format implements fmt.Formatter for custom formatting of the components.
func (c Components) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, c.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(c.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, c.String())
			return
		}

		type hideMethods Components
		type Components hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Components(c))
		return
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (c Components) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Components) UnmarshalText(text []byte) error {
	c1, err := Parse(text)
	if err != nil {
		*c = Components{}
		return errtrace.Wrap(err)
	}
	*c = c1
	return nil
}
