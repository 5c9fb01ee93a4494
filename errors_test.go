package tknormalizer

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestInvalidURLError(t *testing.T) {
	cause := errors.New("host is localhost")
	err := invalidURL(KindDisallowedHost, "http://localhost/", cause)

	var invalidErr *InvalidURLError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("errors.As failed on %T", err)
	}
	if invalidErr.Kind != KindDisallowedHost {
		t.Errorf("Kind = %v, expected %v", invalidErr.Kind, KindDisallowedHost)
	}
	if invalidErr.URL != "http://localhost/" {
		t.Errorf("URL = %q", invalidErr.URL)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should reach the wrapped cause")
	}

	msg := err.Error()
	for _, fragment := range []string{"disallowed host", "http://localhost/", "host is localhost"} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("error message %q is missing %q", msg, fragment)
		}
	}

	// Wrapping preserves the kind
	wrapped := fmt.Errorf("normalize: %w", err)
	if kind, ok := KindOf(wrapped); !ok || kind != KindDisallowedHost {
		t.Errorf("KindOf(wrapped) = %v, %t", kind, ok)
	}
	if !IsInvalidURL(wrapped) {
		t.Errorf("IsInvalidURL(wrapped) = false")
	}
}

func TestKindOfForeignError(t *testing.T) {
	if IsInvalidURL(errors.New("plain")) {
		t.Errorf("IsInvalidURL on a plain error should be false")
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Errorf("KindOf on a plain error should report false")
	}
	if _, ok := KindOf(nil); ok {
		t.Errorf("KindOf(nil) should report false")
	}
}

type errorKindStringTest struct {
	kind     ErrorKind
	expected string
}

var errorKindStringTests = []errorKindStringTest{
	{kind: KindMalformedURL, expected: "malformed URL"},
	{kind: KindUnsupportedScheme, expected: "unsupported scheme"},
	{kind: KindDisallowedHost, expected: "disallowed host"},
	{kind: KindUnresolvableRootDomain, expected: "unresolvable root domain"},
	{kind: ErrorKind(99), expected: "unknown"},
}

func TestErrorKindString(t *testing.T) {
	for _, test := range errorKindStringTests {
		if s := test.kind.String(); s != test.expected {
			t.Errorf("ErrorKind(%d).String() = %q, expected %q", test.kind, s, test.expected)
		}
	}
}
