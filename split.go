package tknormalizer

import (
	"errors"
	"strconv"
	"strings"
)

const largestPortNumber int = 65535

// components is the transient decomposition of a raw URL, produced and
// consumed within a single Normalize call.
type components struct {
	scheme   string // without "://"
	userInfo string
	host     string
	port     string
	path     string // includes leading slash, still percent-encoded
	query    string // without "?"
	fragment string // without "#"
	ipv6     bool   // host is a bracketed IPv6 literal
}

// splitURL decomposes s into scheme, userinfo, host, port, path, query and
// fragment. It performs structural checks on the authority component only;
// scheme and host policy checks belong to the validator.
func splitURL(s string) (components, error) {
	var c components

	netloc := s
	if schemeEndIndex := getSchemeEndIndex(netloc); schemeEndIndex != -1 {
		rawScheme := netloc[0:schemeEndIndex]
		if colonIdx := strings.IndexByte(rawScheme, ':'); colonIdx != -1 {
			c.scheme = rawScheme[0:colonIdx]
		}
		netloc = netloc[schemeEndIndex:]
	}

	// Extract URL userinfo
	if atIdx := indexLastByteBefore(netloc, '@', invalidUserInfoCharsSet); atIdx != -1 {
		c.userInfo = netloc[0:atIdx]
		netloc = netloc[atIdx+1:]
	}

	// Find square brackets (if any) and host end index
	openingSquareBracketIdx := -1
	closingSquareBracketIdx := -1
	hostEndIdx := -1

	for i, r := range []byte(netloc) {
		if r == '[' {
			// Check for opening square bracket
			if i > 0 {
				// Reject if opening square bracket is not first character of hostname
				return c, errors.New("opening square bracket is not first character of hostname")
			}
			openingSquareBracketIdx = i
		}
		if r == ']' {
			// Check for closing square bracket
			closingSquareBracketIdx = i
		}

		if openingSquareBracketIdx == -1 {
			if closingSquareBracketIdx != -1 {
				// Reject if closing square bracket present but no opening square bracket
				return c, errors.New("closing square bracket present but no opening square bracket")
			}
			if endOfHostDelimitersSet.contains(r) {
				// If no square brackets
				// Check for endOfHostDelimitersSet
				hostEndIdx = i
				break
			}
		} else if closingSquareBracketIdx > openingSquareBracketIdx && endOfHostWithPortDelimitersSet.contains(r) {
			// If opening + closing square bracket are present in correct order
			// check for endOfHostWithPortDelimitersSet
			hostEndIdx = i
			break
		}

		if i == len(netloc)-1 && closingSquareBracketIdx < openingSquareBracketIdx {
			// Reject if end of netloc reached but incomplete square bracket pair
			return c, errors.New("incomplete square bracket pair")
		}
	}

	if closingSquareBracketIdx == len(netloc)-1 {
		hostEndIdx = -1
	} else if closingSquareBracketIdx != -1 {
		hostEndIdx = closingSquareBracketIdx + 1
	}

	if closingSquareBracketIdx > openingSquareBracketIdx {
		if !isIPv6(netloc[1:closingSquareBracketIdx]) {
			// Have square brackets but invalid IPv6 address => host is invalid
			return c, errors.New("invalid IPv6 address")
		}
		c.ipv6 = true
	}

	var afterHost string
	// Separate URL host from subcomponents thereafter
	if hostEndIdx != -1 {
		afterHost = netloc[hostEndIdx:]
		netloc = netloc[0:hostEndIdx]
	}
	c.host = netloc
	if len(c.host) == 0 {
		return c, errors.New("empty host")
	}
	if c.ipv6 && len(afterHost) != 0 && afterHost[0] != ':' && !endOfHostWithPortDelimitersSet.contains(afterHost[0]) {
		return c, errors.New("invalid trailing characters after IPv6 address")
	}

	// Extract port, path, query and fragment, if any
	if len(afterHost) != 0 {
		pathStartIndex := indexAnyASCII(afterHost, endOfHostWithPortDelimitersSet)
		if afterHost[0] == ':' {
			var maybePort string
			if pathStartIndex == -1 {
				maybePort = afterHost[1:]
			} else {
				maybePort = afterHost[1:pathStartIndex]
			}
			if port, err := strconv.Atoi(maybePort); err == nil && 0 <= port && port <= largestPortNumber {
				c.port = maybePort
			} else {
				return c, errors.New("invalid port")
			}
		}
		if pathStartIndex != -1 && pathStartIndex != len(afterHost) {
			rest := afterHost[pathStartIndex:]
			if fragmentIdx := strings.IndexByte(rest, '#'); fragmentIdx != -1 {
				c.fragment = rest[fragmentIdx+1:]
				rest = rest[0:fragmentIdx]
			}
			if queryIdx := strings.IndexByte(rest, '?'); queryIdx != -1 {
				c.query = rest[queryIdx+1:]
				rest = rest[0:queryIdx]
			}
			c.path = rest
		}
	}

	return c, nil
}
