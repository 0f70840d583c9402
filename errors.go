package gouri

import "github.com/ghettovoice/gouri/internal/errorutil"

// Error is a parse failure kind. Every failure returned by [Parse] wraps one
// of the Err* sentinels below together with the offending input, so callers
// match the kind with [errors.Is] and still see the payload in the message.
type Error string

func (e Error) Error() string { return string(e) }

// Syntax marks all Error values as syntax failures.
func (Error) Syntax() bool { return true }

const (
	// ErrInvalidCharacters is returned when the input contains a byte in
	// U+0000..U+001F or U+007F.
	ErrInvalidCharacters Error = "invalid characters in uri"
	// ErrInvalidScheme is returned when the scheme candidate is empty or
	// contains illegal characters.
	ErrInvalidScheme Error = "invalid uri scheme"
	// ErrInvalidPath is returned when a relative path's first segment
	// contains a colon before any slash.
	ErrInvalidPath Error = "invalid uri path"
	// ErrInvalidHost is returned when the host fails all host-shape checks.
	ErrInvalidHost Error = "invalid uri host"
	// ErrInvalidPort is returned when the port is non-numeric or out of range.
	ErrInvalidPort Error = "invalid uri port"
	// ErrMissingIDNSupport is returned when the host requires IDN processing
	// but no converter is configured. It is distinct from [ErrInvalidHost] so
	// callers can diagnose configuration.
	ErrMissingIDNSupport Error = "idn support is not available"
)

func newInvalidCharactersErr(s string) error {
	return errorutil.NewWrapperError(ErrInvalidCharacters, "%q", s) //errtrace:skip
}

func newInvalidSchemeErr(s string) error {
	return errorutil.NewWrapperError(ErrInvalidScheme, "%q", s) //errtrace:skip
}

func newInvalidPathErr(s string) error {
	return errorutil.NewWrapperError(ErrInvalidPath, "%q", s) //errtrace:skip
}

func newInvalidHostErr(s string) error {
	return errorutil.NewWrapperError(ErrInvalidHost, "%q", s) //errtrace:skip
}

func newInvalidPortErr(s string) error {
	return errorutil.NewWrapperError(ErrInvalidPort, "%q", s) //errtrace:skip
}

func newMissingIDNSupportErr(s string) error {
	return errorutil.NewWrapperError(ErrMissingIDNSupport, "%q", s) //errtrace:skip
}
