package tknormalizer

import (
	"net/url"
	"strings"
)

// stripWWW removes a single leading "www." label from host. Only one level
// is stripped; "www.www.example.com" keeps its inner prefix.
func stripWWW(host string) string {
	if strings.HasPrefix(host, "www.") {
		return host[4:]
	}
	return host
}

// removeTrailingSlash strips trailing slashes from path, so "/" and ""
// both canonicalize to no path segment at all.
func removeTrailingSlash(path string) string {
	return strings.TrimRight(path, "/")
}

// pathUnescape percent-decodes path. Undecodable input is kept as-is.
// The "#" and "?" delimiters stay percent-encoded, so the rendered path
// re-parses as a path rather than sprouting a fragment or query.
func pathUnescape(path string) string {
	decoded, err := url.PathUnescape(path)
	if err != nil {
		return path
	}
	decoded = strings.ReplaceAll(decoded, "#", "%23")
	return strings.ReplaceAll(decoded, "?", "%3F")
}

// isDefaultPort reports whether port is the default for scheme. An empty
// scheme counts as http, matching the implicit scheme given to schemeless
// input.
func isDefaultPort(scheme, port string) bool {
	switch scheme {
	case "https":
		return port == "443"
	default:
		return port == "80"
	}
}
