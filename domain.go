package tknormalizer

import (
	"fmt"
	"strings"
)

// rootDomain derives the registrable domain of host by walking its labels
// from the right against the public-suffix trie: the longest matching
// suffix rule wins, and exactly one more label to the left forms the
// registrable domain. A fixed label count would get multi-part suffixes
// such as co.uk wrong, which is why the trie is consulted label by label.
func (n *Normalizer) rootDomain(rawURL, host string) (string, error) {
	labels := strings.Split(host, ".")
	numLabels := len(labels)
	node := n.tldTrie
	suffixStart := numLabels // index of the leftmost label inside the suffix

	for i := numLabels - 1; i >= 0; i-- {
		label := labels[i]
		if _, ok := node.matches.Get("*"); ok {
			// Wildcard rule: label is part of the suffix unless an
			// exception rule excludes it, e.g. !www.ck
			if _, ok := node.matches.Get("!" + label); !ok {
				suffixStart = i
			}
			break
		}
		child, ok := node.matches.Get(label)
		if !ok {
			break
		}
		suffixStart = i
		if child.matches.Len() == 0 {
			// label is at a leaf node (no children); suffix cannot grow
			break
		}
		node = child
	}

	if suffixStart == numLabels {
		return "", invalidURL(KindUnresolvableRootDomain, rawURL,
			fmt.Errorf("host %q has no recognised public suffix", host))
	}
	if suffixStart == 0 {
		return "", invalidURL(KindUnresolvableRootDomain, rawURL,
			fmt.Errorf("host %q is a bare public suffix", host))
	}
	return strings.Join(labels[suffixStart-1:], "."), nil
}
