package tknormalizer

import (
	"fmt"
	"regexp"
	"strings"
)

// Fast-reject bounds, checked before any pattern matching.
const (
	maxURLLength  = 8192
	maxHostLength = 255
)

// Structural patterns, compiled once at load time and read-only thereafter.
// Go's regexp package guarantees linear-time matching (RE2), so these are
// safe against adversarial input by construction; repetition is still
// bounded to DNS label limits.
//
// The grammar deliberately accepts underscores and trailing hyphens in
// labels: both occur in hostnames seen in the wild.
var (
	// hostLabel matches one non-final hostname label, internationalised
	// labels included.
	hostLabel = `[a-z0-9_\x{00a1}-\x{ffff}][a-z0-9_\x{00a1}-\x{ffff}-]{0,62}`

	// tldLabel matches the final label; at least two characters.
	tldLabel = `[a-z0-9\x{00a1}-\x{ffff}][a-z0-9\x{00a1}-\x{ffff}-]{1,62}`

	hostPattern = regexp.MustCompile(`^(?:` + hostLabel + `\.)+` + tldLabel + `$`)

	userInfoPattern = regexp.MustCompile(`^[a-z0-9._%+-]+(?::[^\s@]*)?$`)
)

// defaultTrackingParams is the removal set of query parameter names added by
// marketing and analytics tooling. Keys beginning with any prefix in
// trackingParamPrefixes are removed as well.
var defaultTrackingParams = map[string]struct{}{
	"gclid":     {},
	"fbclid":    {},
	"dclid":     {},
	"_ga":       {},
	"_gid":      {},
	"_fbp":      {},
	"_hjid":     {},
	"msclkid":   {},
	"aff_id":    {},
	"affid":     {},
	"referrer":  {},
	"adgroupid": {},
	"srsltid":   {},
}

var trackingParamPrefixes = []string{"utm_"}

// validateURL checks scheme and host policy for the already-split URL.
// Rules are applied in order and the first violation wins: supported
// scheme, then host allowlist policy, then structural grammar.
func validateURL(rawURL string, c components) error {
	switch c.scheme {
	case "", "http", "https":
	default:
		return invalidURL(KindUnsupportedScheme, rawURL,
			fmt.Errorf("only http(s) URLs are allowed, received scheme %q", c.scheme))
	}

	host := c.host

	if c.ipv6 {
		if isDisallowedIP(host[1 : len(host)-1]) {
			return invalidURL(KindDisallowedHost, rawURL,
				fmt.Errorf("IPv6 address %q is loopback, private or link-local", host))
		}
		return nil
	}

	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return invalidURL(KindDisallowedHost, rawURL, fmt.Errorf("host %q is localhost", host))
	}

	// Ensure first byte is numeric before expensive isIPv4()
	if numericSet.contains(host[0]) && isIPv4(host) {
		if isDisallowedIP(host) {
			return invalidURL(KindDisallowedHost, rawURL,
				fmt.Errorf("IPv4 address %q is loopback, private or link-local", host))
		}
		return nil
	}

	if len(host) > maxHostLength {
		return invalidURL(KindMalformedURL, rawURL,
			fmt.Errorf("host exceeds %d bytes", maxHostLength))
	}

	if c.userInfo != "" && !userInfoPattern.MatchString(c.userInfo) {
		return invalidURL(KindMalformedURL, rawURL,
			fmt.Errorf("userinfo %q failed structural grammar", c.userInfo))
	}

	if !hostPattern.MatchString(host) {
		return invalidURL(KindMalformedURL, rawURL,
			fmt.Errorf("host %q failed structural grammar", host))
	}

	return nil
}
