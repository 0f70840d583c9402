package gouri

import (
	"sync/atomic"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/idn"
	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
)

type converterBox struct {
	conv idn.Converter
}

var idnConv atomic.Pointer[converterBox]

func init() {
	idnConv.Store(&converterBox{conv: idn.Default()})
}

// SetIDNConverter replaces the process-wide IDN converter consulted for
// non-ASCII hosts. Passing nil removes IDN support: hosts that require IDN
// mapping then fail with [ErrMissingIDNSupport].
func SetIDNConverter(conv idn.Converter) {
	idnConv.Store(&converterBox{conv: conv})
}

// checkHost validates a host candidate. An empty host is valid: it stands
// for an empty authority. Bracketed hosts must hold an IP-literal, anything
// else must be an IPv4 address, a registered name, or map cleanly through
// the IDN converter.
func checkHost(host string) error {
	if host == "" {
		return nil
	}
	if host[0] == '[' || host[len(host)-1] == ']' {
		if host[0] == '[' && host[len(host)-1] == ']' && grammar.IsIPLiteral(host[1:len(host)-1]) {
			return nil
		}
		return errtrace.Wrap(newInvalidHostErr(host))
	}
	if grammar.IsIPv4(host) || grammar.IsRegName(host) {
		return nil
	}
	if !grammar.HasNonASCIIChar(host) {
		return errtrace.Wrap(newInvalidHostErr(host))
	}

	conv := idnConv.Load().conv
	if conv == nil {
		logger().Warn("host requires idn mapping but no converter is set", "host", host)
		return errtrace.Wrap(newMissingIDNSupportErr(host))
	}
	logger().Debug("host requires idn mapping", "host", host)
	if res := conv.ToASCII(host); res.Errors != 0 {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "host %q: idn: %s", host, res.Errors))
	}
	return nil
}

// IsHost reports whether s is a valid URI host: an empty host, a bracketed
// IP-literal, an IPv4 address, a registered name, or an IDN host accepted by
// the configured converter.
func IsHost[T ~string | ~[]byte](s T) bool {
	return checkHost(string(s)) == nil
}
