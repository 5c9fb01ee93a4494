package tknormalizer

import (
	"testing"
)

type rootDomainTest struct {
	host         string
	expected     string
	hasError     bool
	expectedKind ErrorKind
}

var rootDomainTests = []rootDomainTest{
	{host: "example.com", expected: "example.com"},
	{host: "a.b.c.example.com", expected: "example.com"},
	// Multi-part suffixes; a fixed two-label rule would get these wrong
	{host: "blog.example.co.uk", expected: "example.co.uk"},
	{host: "example.co.uk", expected: "example.co.uk"},
	{host: "foo.ac.uk", expected: "foo.ac.uk"},
	// Wildcard rule *.ck: any label under ck extends the suffix
	{host: "foo.bar.ck", expected: "foo.bar.ck"},
	{host: "a.foo.bar.ck", expected: "foo.bar.ck"},
	// Exception rule !www.ck: www.ck itself is registrable
	{host: "www.ck", expected: "www.ck"},
	{host: "sub.www.ck", expected: "www.ck"},
	// Internationalised suffixes
	{host: "пример.рф", expected: "пример.рф"},
	{host: "xn--e1afmkfd.xn--p1ai", expected: "xn--e1afmkfd.xn--p1ai"},
	// Unknown suffix
	{host: "no-suffix.internal", hasError: true, expectedKind: KindUnresolvableRootDomain},
	{host: "host", hasError: true, expectedKind: KindUnresolvableRootDomain},
	// Bare suffixes have no registrable part
	{host: "com", hasError: true, expectedKind: KindUnresolvableRootDomain},
	{host: "co.uk", hasError: true, expectedKind: KindUnresolvableRootDomain},
	{host: "uk", hasError: true, expectedKind: KindUnresolvableRootDomain},
}

func TestRootDomain(t *testing.T) {
	normalizer := newTestNormalizer(t, Params{})
	for _, test := range rootDomainTests {
		root, err := normalizer.rootDomain(test.host, test.host)
		if test.hasError {
			if err == nil {
				t.Errorf("rootDomain(%q) expected error, got %q", test.host, root)
				continue
			}
			if kind, ok := KindOf(err); !ok || kind != test.expectedKind {
				t.Errorf("rootDomain(%q) error kind = %v, expected %v", test.host, kind, test.expectedKind)
			}
			continue
		}
		if err != nil {
			t.Errorf("rootDomain(%q) unexpected error: %v", test.host, err)
			continue
		}
		if root != test.expected {
			t.Errorf("rootDomain(%q) = %q, expected %q", test.host, root, test.expected)
		}
	}
}

// PRIVATE section rules apply only when opted in.
func TestRootDomainPrivateSuffixes(t *testing.T) {
	publicOnly := newTestNormalizer(t, Params{})
	withPrivate := newTestNormalizer(t, Params{IncludePrivateSuffixes: true})

	if root, err := publicOnly.rootDomain("myblog.blogspot.com", "myblog.blogspot.com"); err != nil || root != "blogspot.com" {
		t.Errorf("public-only rootDomain(myblog.blogspot.com) = %q, %v; expected blogspot.com", root, err)
	}
	if root, err := withPrivate.rootDomain("myblog.blogspot.com", "myblog.blogspot.com"); err != nil || root != "myblog.blogspot.com" {
		t.Errorf("private-aware rootDomain(myblog.blogspot.com) = %q, %v; expected myblog.blogspot.com", root, err)
	}
	if _, err := withPrivate.rootDomain("blogspot.com", "blogspot.com"); err == nil {
		t.Errorf("private-aware rootDomain(blogspot.com) expected bare suffix error")
	}
}
