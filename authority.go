package gouri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// parseAuthority parses s as an authority followed by an optional path,
// query and fragment, merging the result into c. The leading "//" has
// already been consumed by the caller.
func parseAuthority(s string, c Components) (Components, error) {
	rest, frag, hasFrag := strings.Cut(s, "#")
	rest, query, hasQ := strings.Cut(rest, "?")
	authority := rest
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		authority, c.path = rest[:i], rest[i:]
	}
	if hasQ {
		c.query = query
		c.flags |= hasQuery
	}
	if hasFrag {
		c.fragment = frag
		c.flags |= hasFragment
	}

	c.flags |= hasHost
	if authority == "" {
		return c, nil
	}

	hostport := authority
	if i := strings.IndexByte(authority, '@'); i >= 0 {
		user, pass, hasP := strings.Cut(authority[:i], ":")
		hostport = authority[i+1:]
		c.user = user
		c.flags |= hasUser
		if hasP {
			c.pass = pass
			c.flags |= hasPass
		}
	}

	host, portStr, err := splitHostPort(hostport)
	if err != nil {
		return Components{}, errtrace.Wrap(err)
	}
	if err := checkHost(host); err != nil {
		return Components{}, errtrace.Wrap(err)
	}
	c.host = host
	if portStr != "" {
		port, ok := grammar.ParsePort(portStr)
		if !ok {
			return Components{}, errtrace.Wrap(newInvalidPortErr(portStr))
		}
		c.port = port
		c.flags |= hasPort
	}
	return c, nil
}

// splitHostPort tokenizes "host[:port]", keeping the brackets of an
// IP-literal host. A bracketed host must start the token and may only be
// followed by ":port".
func splitHostPort(hostport string) (host, port string, err error) {
	i := strings.IndexByte(hostport, '[')
	if i < 0 {
		host, port, _ = strings.Cut(hostport, ":")
		return host, port, nil
	}
	if i != 0 {
		return "", "", errtrace.Wrap(newInvalidHostErr(hostport))
	}
	j := strings.IndexByte(hostport, ']')
	if j < 0 {
		return "", "", errtrace.Wrap(newInvalidHostErr(hostport))
	}
	host = hostport[:j+1]
	rest := hostport[j+1:]
	if rest == "" {
		return host, "", nil
	}
	if rest[0] != ':' {
		return "", "", errtrace.Wrap(newInvalidHostErr(hostport))
	}
	return host, rest[1:], nil
}
