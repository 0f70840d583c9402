package gouri

import (
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// Build composes the URI string from the given components. It is the inverse
// of [Parse] for every component except pass, which is never emitted
// (RFC 3986 Section 7.5). Component validity is the caller's responsibility:
// Build does not re-validate.
func Build(c Components) string {
	return c.String()
}

// RenderTo writes the URI composed from the components to the provided writer.
func (c Components) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if c.flags&hasScheme != 0 {
		cw.Fprint(c.scheme, ":")
	}
	if c.flags&hasHost != 0 {
		cw.WriteString("//")
		if c.flags&hasUser != 0 {
			cw.Fprint(c.user, "@")
		}
		cw.WriteString(c.host)
		if c.flags&hasPort != 0 {
			cw.Fprint(":", strconv.FormatUint(uint64(c.port), 10))
		}
	}
	cw.WriteString(c.path)
	if c.flags&hasQuery != 0 {
		cw.Fprint("?", c.query)
	}
	if c.flags&hasFragment != 0 {
		cw.Fprint("#", c.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the composed URI string.
func (c Components) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	c.RenderTo(sb) //nolint:errcheck
	return sb.String()
}
