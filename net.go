package tknormalizer

import (
	"net/netip"
	"strings"
	"unicode/utf8"
)

// IP address lengths (bytes).
const (
	ipv4Len = 4
	ipv6Len = 16
)

// Bigger than we need, not too big to worry about overflow
const big = 0xFFFFFF

// Decimal to integer.
// Returns number, characters consumed, success.
func dtoi(s string) (n int, i int, ok bool) {
	n = 0
	for i = 0; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n >= big {
			return big, i, false
		}
	}
	if i == 0 {
		return 0, 0, false
	}
	return n, i, true
}

// Hexadecimal to integer.
// Returns number, characters consumed, success.
func xtoi(s string) (n int, i int, ok bool) {
	n = 0
	for i = 0; i < len(s); i++ {
		if '0' <= s[i] && s[i] <= '9' {
			n *= 16
			n += int(s[i] - '0')
		} else if 'a' <= s[i] && s[i] <= 'f' {
			n *= 16
			n += int(s[i]-'a') + 10
		} else if 'A' <= s[i] && s[i] <= 'F' {
			n *= 16
			n += int(s[i]-'A') + 10
		} else {
			break
		}
		if n >= big {
			return 0, i, false
		}
	}
	if i == 0 {
		return 0, i, false
	}
	return n, i, true
}

// isIPv4 returns true if s is a literal IPv4 address
func isIPv4(s string) bool {
	for i := 0; i < ipv4Len; i++ {
		if len(s) == 0 {
			// Missing octets.
			return false
		}
		if i > 0 {
			r, size := utf8.DecodeRuneInString(s)
			if strings.IndexRune(labelSeparators, r) == -1 {
				return false
			}
			s = s[size:]
		}
		n, c, ok := dtoi(s)
		if !ok || n > 0xFF {
			return false
		}
		if c > 1 && s[0] == '0' {
			// Reject non-zero components with leading zeroes.
			return false
		}
		s = s[c:]
	}
	if len(s) != 0 {
		return false
	}
	return true
}

// isIPv6 returns true if s is a literal IPv6 address as described in RFC 4291
// and RFC 5952.
func isIPv6(s string) bool {
	ellipsis := -1 // position of ellipsis in ip

	// Might have leading ellipsis
	if len(s) >= 2 && s[0] == ':' && s[1] == ':' {
		ellipsis = 0
		s = s[2:]
		// Might be only ellipsis
		if len(s) == 0 {
			return true
		}
	}

	// Loop, parsing hex numbers followed by colon.
	i := 0
	for i < ipv6Len {
		// Hex number.
		n, c, ok := xtoi(s)
		if !ok || n > 0xFFFF {
			return false
		}

		// If followed by any separator in labelSeparators, might be in trailing IPv4.
		if c < len(s) && strings.IndexRune(labelSeparators, []rune(s[c:])[0]) != -1 {
			if ellipsis < 0 && i != ipv6Len-ipv4Len {
				// Not the right place.
				return false
			}
			if i+ipv4Len > ipv6Len {
				// Not enough room.
				return false
			}
			if !isIPv4(s) {
				return false
			}
			s = ""
			i += ipv4Len
			break
		}

		// Save this 16-bit chunk.
		i += 2

		// Stop at end of string.
		s = s[c:]
		if len(s) == 0 {
			break
		}

		// Otherwise must be followed by colon and more.
		if s[0] != ':' || len(s) == 1 {
			return false
		}
		s = s[1:]

		// Look for ellipsis.
		if s[0] == ':' {
			if ellipsis >= 0 { // already have one
				return false
			}
			ellipsis = i
			s = s[1:]
			if len(s) == 0 { // can be at end
				break
			}
		}
	}

	// Must have used entire string.
	if len(s) != 0 {
		return false
	}

	// If didn't parse enough, expand ellipsis.
	if i < ipv6Len {
		if ellipsis < 0 {
			return false
		}
	} else if ellipsis >= 0 {
		// Ellipsis must represent at least one 0 group.
		return false
	}
	return true
}

// isDisallowedIP reports whether the literal IP address s belongs to an
// address range that never identifies a public web resource: loopback,
// RFC 1918 private, link-local, unique-local, unspecified or multicast.
func isDisallowedIP(s string) bool {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		// Literals accepted by isIPv4/isIPv6 parse here as well; a
		// failure means a dotted quad with internationalised label
		// separators, so retry with those folded away.
		addr, err = netip.ParseAddr(foldLabelSeparators(s))
		if err != nil {
			return true
		}
	}
	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsUnspecified() ||
		addr.IsMulticast()
}
