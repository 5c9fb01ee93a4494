package tknormalizer

import (
	"net/url"
	"sort"
	"strings"
)

// QueryParam is one decoded key/value pair from the query component.
//
// HasValue distinguishes a bare key ("key") from a key with an empty value
// ("key="); the two forms never collapse into each other.
type QueryParam struct {
	Key      string
	Value    string
	HasValue bool
}

// parseQueryParams splits query on "&" and percent-decodes each pair.
// Blank pairs are dropped, blank values are kept.
func parseQueryParams(query string) []QueryParam {
	if query == "" {
		return nil
	}
	var params []QueryParam
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		var p QueryParam
		if eqIdx := strings.IndexByte(pair, '='); eqIdx != -1 {
			p = QueryParam{Key: queryUnescape(pair[0:eqIdx]), Value: queryUnescape(pair[eqIdx+1:]), HasValue: true}
		} else {
			p = QueryParam{Key: queryUnescape(pair)}
		}
		params = append(params, p)
	}
	return params
}

// queryUnescape percent-decodes s, treating "+" as space. Undecodable
// input is kept as-is rather than rejected; the subsequent re-encode
// makes the output well-formed either way.
func queryUnescape(s string) string {
	if decoded, err := url.QueryUnescape(s); err == nil {
		return decoded
	}
	return s
}

// isTrackingParam reports whether key belongs to the removal set:
// an exact name match or a removal prefix match.
func (n *Normalizer) isTrackingParam(key string) bool {
	if _, ok := n.trackingParams[key]; ok {
		return true
	}
	for _, prefix := range trackingParamPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// removeTrackingParams filters out pairs whose key is in the removal set,
// preserving the order of the remaining pairs.
func (n *Normalizer) removeTrackingParams(params []QueryParam) []QueryParam {
	filtered := make([]QueryParam, 0, len(params))
	for _, p := range params {
		if !n.isTrackingParam(p.Key) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// sortQueryParams orders pairs ascending by key, then by value for equal
// keys. The sort is stable, so pairs equal on both stay in original order.
func sortQueryParams(params []QueryParam) {
	sort.SliceStable(params, func(i, j int) bool {
		if params[i].Key != params[j].Key {
			return params[i].Key < params[j].Key
		}
		return params[i].Value < params[j].Value
	})
}

// dedupeQueryParams removes exact duplicate pairs, keeping the first
// occurrence of each.
func dedupeQueryParams(params []QueryParam) []QueryParam {
	seen := make(map[QueryParam]struct{}, len(params))
	unique := make([]QueryParam, 0, len(params))
	for _, p := range params {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}

// encodeQueryParams renders pairs as "key=value" joined by "&", with keys
// and values consistently percent-encoded.
func encodeQueryParams(params []QueryParam) string {
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		if p.HasValue {
			sb.WriteByte('=')
			sb.WriteString(url.QueryEscape(p.Value))
		}
	}
	return sb.String()
}
