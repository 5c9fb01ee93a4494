package tknormalizer

import (
	"testing"
)

type getSchemeEndIndexTest struct {
	url      string
	expected int
}

var getSchemeEndIndexTests = []getSchemeEndIndexTest{
	{url: "https://example.com", expected: 8},
	{url: "http://example.com", expected: 7},
	{url: "ftp://example.com", expected: 6},
	{url: "//example.com", expected: 2},
	{url: `\\example.com`, expected: 2},
	{url: "git+ssh://example.com", expected: 10},
	{url: "example.com", expected: -1},
	{url: "http:/example.com", expected: -1},
	{url: "1http://example.com", expected: -1},
	{url: "", expected: -1},
}

func TestGetSchemeEndIndex(t *testing.T) {
	for _, test := range getSchemeEndIndexTests {
		if idx := getSchemeEndIndex(test.url); idx != test.expected {
			t.Errorf("getSchemeEndIndex(%q) = %d, expected %d", test.url, idx, test.expected)
		}
	}
}

type indexLastByteBeforeTest struct {
	s        string
	b        byte
	expected int
}

var indexLastByteBeforeTests = []indexLastByteBeforeTest{
	{s: "user@example.com", b: '@', expected: 4},
	{s: "user:p@ss@example.com", b: '@', expected: 9},
	{s: "user@example.com/a@b", b: '@', expected: 4},
	{s: "example.com/a@b", b: '@', expected: -1},
	{s: "example.com", b: '@', expected: -1},
}

func TestIndexLastByteBefore(t *testing.T) {
	for _, test := range indexLastByteBeforeTests {
		if idx := indexLastByteBefore(test.s, test.b, invalidUserInfoCharsSet); idx != test.expected {
			t.Errorf("indexLastByteBefore(%q, %q) = %d, expected %d", test.s, test.b, idx, test.expected)
		}
	}
}

type fastTrimTest struct {
	s        string
	mode     trimMode
	expected string
}

var fastTrimTests = []fastTrimTest{
	{s: "  example.com  ", mode: trimBoth, expected: "example.com"},
	{s: "\t\r\nexample.com\t\r\n", mode: trimBoth, expected: "example.com"},
	{s: "\u200bexample.com\ufeff", mode: trimBoth, expected: "example.com"},
	{s: "  example.com  ", mode: trimLeft, expected: "example.com  "},
	{s: "  example.com", mode: trimLeft, expected: "example.com"},
	{s: "  example.com  ", mode: trimRight, expected: "  example.com"},
	{s: "example.com  ", mode: trimRight, expected: "example.com"},
	{s: "example.com", mode: trimBoth, expected: "example.com"},
	{s: "   ", mode: trimBoth, expected: ""},
	{s: "", mode: trimBoth, expected: ""},
}

func TestFastTrim(t *testing.T) {
	for _, test := range fastTrimTests {
		if trimmed := fastTrim(test.s, whitespaceRuneSlice, test.mode); trimmed != test.expected {
			t.Errorf("fastTrim(%q, mode %d) = %q, expected %q", test.s, test.mode, trimmed, test.expected)
		}
	}
}

type foldLabelSeparatorsTest struct {
	s        string
	expected string
}

var foldLabelSeparatorsTests = []foldLabelSeparatorsTest{
	{s: "example.com", expected: "example.com"},
	{s: "example。com", expected: "example.com"},
	{s: "example．com", expected: "example.com"},
	{s: "example｡com", expected: "example.com"},
	{s: "a。b．c｡d.e", expected: "a.b.c.d.e"},
	{s: "пример.рф", expected: "пример.рф"},
	{s: "", expected: ""},
}

func TestFoldLabelSeparators(t *testing.T) {
	for _, test := range foldLabelSeparatorsTests {
		if folded := foldLabelSeparators(test.s); folded != test.expected {
			t.Errorf("foldLabelSeparators(%q) = %q, expected %q", test.s, folded, test.expected)
		}
	}
}

type formatAsPunycodeTest struct {
	s        string
	expected string
}

var formatAsPunycodeTests = []formatAsPunycodeTest{
	{s: "example.com", expected: "example.com"},
	{s: "пример.рф", expected: "xn--e1afmkfd.xn--p1ai"},
	{s: "xn--e1afmkfd.xn--p1ai", expected: "xn--e1afmkfd.xn--p1ai"},
	{s: "食狮.com.cn", expected: "xn--85x722f.com.cn"},
}

func TestFormatAsPunycode(t *testing.T) {
	for _, test := range formatAsPunycodeTests {
		if puny := formatAsPunycode(test.s); puny != test.expected {
			t.Errorf("formatAsPunycode(%q) = %q, expected %q", test.s, puny, test.expected)
		}
	}
}

func TestRuneBinarySearch(t *testing.T) {
	for _, r := range labelSeparators {
		if !runeBinarySearch(r, labelSeparatorsRuneSlice) {
			t.Errorf("runeBinarySearch(%q) = false, expected true", r)
		}
	}
	for _, r := range "ab:/-" {
		if runeBinarySearch(r, labelSeparatorsRuneSlice) {
			t.Errorf("runeBinarySearch(%q) = true, expected false", r)
		}
	}
	if runeBinarySearch('a', runeSlice{}) {
		t.Errorf("runeBinarySearch on empty slice should be false")
	}
}

func TestReverse(t *testing.T) {
	labels := []string{"com", "example", "www"}
	reverse(labels)
	if labels[0] != "www" || labels[1] != "example" || labels[2] != "com" {
		t.Errorf("reverse gave %v", labels)
	}
	var empty []string
	reverse(empty)
	if len(empty) != 0 {
		t.Errorf("reverse of empty slice gave %v", empty)
	}
}
