package tknormalizer

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which validation rule an input URL failed.
type ErrorKind int

const (
	// KindMalformedURL covers inputs that fail the structural grammar,
	// including hosts with invalid label structure.
	KindMalformedURL ErrorKind = iota
	// KindUnsupportedScheme covers explicit schemes other than http and https.
	KindUnsupportedScheme
	// KindDisallowedHost covers localhost and loopback, private and
	// link-local address literals.
	KindDisallowedHost
	// KindUnresolvableRootDomain covers hosts whose labels never reach a
	// known public-suffix boundary.
	KindUnresolvableRootDomain
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedURL:
		return "malformed URL"
	case KindUnsupportedScheme:
		return "unsupported scheme"
	case KindDisallowedHost:
		return "disallowed host"
	case KindUnresolvableRootDomain:
		return "unresolvable root domain"
	}
	return "unknown"
}

// InvalidURLError is the single error type returned for any rejected input.
// The Kind field tells callers which rule failed; Unwrap exposes the
// underlying cause for diagnostics.
type InvalidURLError struct {
	Kind  ErrorKind
	URL   string
	cause error
}

func (e *InvalidURLError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid URL (%s) %q: %v", e.Kind, e.URL, e.cause)
	}
	return fmt.Sprintf("invalid URL (%s) %q", e.Kind, e.URL)
}

func (e *InvalidURLError) Unwrap() error {
	return e.cause
}

func invalidURL(kind ErrorKind, url string, cause error) error {
	return &InvalidURLError{Kind: kind, URL: url, cause: cause}
}

// IsInvalidURL reports whether err is an InvalidURLError.
func IsInvalidURL(err error) bool {
	var invalidErr *InvalidURLError
	return errors.As(err, &invalidErr)
}

// KindOf returns the ErrorKind carried by err, if err is an InvalidURLError.
func KindOf(err error) (ErrorKind, bool) {
	var invalidErr *InvalidURLError
	if errors.As(err, &invalidErr) {
		return invalidErr.Kind, true
	}
	return 0, false
}
