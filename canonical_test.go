package tknormalizer

import "testing"

type stripWWWTest struct {
	host     string
	expected string
}

var stripWWWTests = []stripWWWTest{
	{host: "www.example.com", expected: "example.com"},
	{host: "www.www.example.com", expected: "www.example.com"},
	{host: "example.com", expected: "example.com"},
	{host: "wwwexample.com", expected: "wwwexample.com"},
	{host: "www.ck", expected: "ck"},
}

func TestStripWWW(t *testing.T) {
	for _, test := range stripWWWTests {
		if host := stripWWW(test.host); host != test.expected {
			t.Errorf("stripWWW(%q) = %q, expected %q", test.host, host, test.expected)
		}
	}
}

type removeTrailingSlashTest struct {
	path     string
	expected string
}

var removeTrailingSlashTests = []removeTrailingSlashTest{
	{path: "", expected: ""},
	{path: "/", expected: ""},
	{path: "///", expected: ""},
	{path: "/a/b/", expected: "/a/b"},
	{path: "/a/b", expected: "/a/b"},
}

func TestRemoveTrailingSlash(t *testing.T) {
	for _, test := range removeTrailingSlashTests {
		if path := removeTrailingSlash(test.path); path != test.expected {
			t.Errorf("removeTrailingSlash(%q) = %q, expected %q", test.path, path, test.expected)
		}
	}
}

type pathUnescapeTest struct {
	path     string
	expected string
}

var pathUnescapeTests = []pathUnescapeTest{
	{path: "/plain", expected: "/plain"},
	{path: "/a%20b", expected: "/a b"},
	{path: "/%7euser", expected: "/~user"},
	// Decoded delimiters are re-encoded so the path re-parses as a path
	{path: "/a%23b", expected: "/a%23b"},
	{path: "/a%3fb", expected: "/a%3Fb"},
	// Undecodable sequences stay untouched
	{path: "/bad%zz", expected: "/bad%zz"},
	{path: "/trailing%2", expected: "/trailing%2"},
}

func TestPathUnescape(t *testing.T) {
	for _, test := range pathUnescapeTests {
		if path := pathUnescape(test.path); path != test.expected {
			t.Errorf("pathUnescape(%q) = %q, expected %q", test.path, path, test.expected)
		}
	}
}

type isDefaultPortTest struct {
	scheme    string
	port      string
	isDefault bool
}

var isDefaultPortTests = []isDefaultPortTest{
	{scheme: "http", port: "80", isDefault: true},
	{scheme: "https", port: "443", isDefault: true},
	{scheme: "", port: "80", isDefault: true},
	{scheme: "http", port: "443", isDefault: false},
	{scheme: "https", port: "80", isDefault: false},
	{scheme: "http", port: "8080", isDefault: false},
}

func TestIsDefaultPort(t *testing.T) {
	for _, test := range isDefaultPortTests {
		if isDefault := isDefaultPort(test.scheme, test.port); isDefault != test.isDefault {
			t.Errorf("isDefaultPort(%q, %q) = %t, expected %t", test.scheme, test.port, isDefault, test.isDefault)
		}
	}
}
