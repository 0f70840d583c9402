package gouri

import "github.com/ghettovoice/gouri/internal/grammar"

// IsScheme reports whether s is a syntactically valid scheme:
// empty or ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ). Case is not inspected
// beyond the ALPHA classes and never normalized.
func IsScheme[T ~string | ~[]byte](s T) bool {
	return grammar.IsScheme(s)
}

// IsPort reports whether s is a syntactically valid port: empty (an absent
// port) or decimal digits with a value in 0..65535.
func IsPort[T ~string | ~[]byte](s T) bool {
	return grammar.IsPort(s)
}
