// Package idn provides the internationalized domain name capability consumed
// by the URI parser. Host validation needs a single operation: UTS #46
// non-transitional ToASCII with per-error reporting. The capability is an
// interface so the parser core stays testable without the mapping tables and
// so a missing converter is a configuration condition, not a crash.
package idn

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// Errors is a bitmask of UTS #46 processing errors.
type Errors uint32

const (
	// EmptyLabel is set when a domain or label is empty.
	EmptyLabel Errors = 1 << iota
	// LabelTooLong is set when a label exceeds 63 octets in its ACE form.
	LabelTooLong
	// DomainTooLong is set when the domain exceeds 253 octets in its ACE form.
	DomainTooLong
	// LeadingHyphen is set when a label starts with a hyphen-minus.
	LeadingHyphen
	// TrailingHyphen is set when a label ends with a hyphen-minus.
	TrailingHyphen
	// Hyphen34 is set when a label contains hyphen-minus in the third and
	// fourth positions without being a valid ACE label.
	Hyphen34
	// LeadingCombiningMark is set when a label starts with a combining mark.
	LeadingCombiningMark
	// Disallowed is set when a label contains a disallowed code point.
	Disallowed
	// Punycode is set when an ACE label does not decode as Punycode.
	Punycode
	// LabelHasDot is set when a decoded label contains a full stop.
	LabelHasDot
	// InvalidACE is set when an ACE label decodes to an invalid form.
	InvalidACE
	// BiDi is set when a label violates the BiDi rule (RFC 5893).
	BiDi
	// ContextJ is set when a label violates a CONTEXTJ rule (RFC 5892).
	ContextJ
)

var errorNames = [...]string{
	"empty-label",
	"label-too-long",
	"domain-too-long",
	"leading-hyphen",
	"trailing-hyphen",
	"hyphen-3-4",
	"leading-combining-mark",
	"disallowed",
	"punycode",
	"label-has-dot",
	"invalid-ace",
	"bidi",
	"contextj",
}

// Has reports whether all bits of flag are set.
func (e Errors) Has(flag Errors) bool { return e&flag == flag }

// String lists the set error bits.
func (e Errors) String() string {
	if e == 0 {
		return "ok"
	}
	var sb strings.Builder
	for i, name := range errorNames {
		if e&(1<<i) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(name)
	}
	return sb.String()
}

// Result is the outcome of a ToASCII conversion.
// Zero Errors means the domain was accepted.
type Result struct {
	ASCII  string
	Errors Errors
}

// Converter maps a Unicode domain to its ASCII (Punycode) form.
//
// Implementations must be safe for concurrent use.
type Converter interface {
	ToASCII(domain string) Result
}

// Default returns a Converter backed by a non-transitional UTS #46 lookup
// profile from golang.org/x/net/idna.
func Default() Converter { return defaultConverter{} }

var lookup = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.BidiRule(),
	idna.CheckHyphens(true),
	idna.CheckJoiners(true),
	idna.StrictDomainName(true),
	idna.ValidateLabels(true),
	idna.VerifyDNSLength(true),
)

type defaultConverter struct{}

func (defaultConverter) ToASCII(domain string) Result {
	ascii, err := lookup.ToASCII(domain)
	if err == nil {
		return Result{ASCII: ascii}
	}
	return Result{ASCII: ascii, Errors: classify(domain, ascii)}
}

// classify recovers individual UTS #46 error bits from a rejected domain.
// The idna profile reports a single opaque error, so the conditions that can
// be recomputed locally are, and anything else degrades to Disallowed. The
// exact bits matter less than the contract that a rejected domain yields a
// non-zero mask.
func classify(domain, ascii string) Errors {
	var e Errors

	checked := ascii
	if checked == "" {
		checked = domain
	}
	if noRoot := strings.TrimSuffix(checked, "."); len(noRoot) > 253 {
		e |= DomainTooLong
	}

	for label := range strings.SplitSeq(strings.TrimSuffix(checked, "."), ".") {
		switch {
		case label == "":
			e |= EmptyLabel
		case len(label) > 63:
			e |= LabelTooLong
		}
		if label == "" {
			continue
		}
		if label[0] == '-' {
			e |= LeadingHyphen
		}
		if label[len(label)-1] == '-' {
			e |= TrailingHyphen
		}
		if len(label) >= 4 && label[2] == '-' && label[3] == '-' && !strings.HasPrefix(label, "xn--") {
			e |= Hyphen34
		}
		if r, _ := utf8.DecodeRuneInString(label); unicode.Is(unicode.M, r) {
			e |= LeadingCombiningMark
		}
	}

	if e == 0 {
		e = Disallowed
	}
	return e
}
