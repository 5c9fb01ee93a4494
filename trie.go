package tknormalizer

import (
	"strings"

	"github.com/tidwall/hashmap"
)

// trie is a node of the compressed trie
// used to store Public Suffix List TLDs.
type trie struct {
	matches     hashmap.Map[string, *trie]
	end         bool
	hasChildren bool
}

// nestedDict stores a slice of keys in the trie, by traversing the trie using the keys as a "path",
// creating new tries for keys that do not exist yet.
//
// If a new path overlaps an existing path, flag the previous path's trie node as end = true.
func nestedDict(dic *trie, keys []string) {
	// credits: https://stackoverflow.com/questions/13687924 and https://github.com/jophy/fasttld
	var end bool
	var dicBk *trie

	keysExceptLast := keys[0 : len(keys)-1]
	lenKeys := len(keys)

	for _, key := range keysExceptLast {
		dicBk = dic
		if _, ok := dic.matches.Get(key); !ok {
			var m hashmap.Map[string, *trie]
			dic.matches.Set(key, &trie{hasChildren: true, matches: m})
		}
		temp, _ := dic.matches.Get(key)
		dic = temp
		if dic.matches.Len() == 0 && !dic.hasChildren {
			end = true
			dic = dicBk
			var m hashmap.Map[string, *trie]
			dic.matches.Set(keys[lenKeys-2], &trie{end: true, matches: m})
			var m2 hashmap.Map[string, *trie]
			temp, _ := dic.matches.Get(keys[lenKeys-2])
			temp.matches.Set(keys[lenKeys-1], &trie{matches: m2})
		}
	}
	if !end {
		var m hashmap.Map[string, *trie]
		dic.matches.Set(keys[lenKeys-1], &trie{matches: m})
	}
}

// trieConstruct constructs a compressed trie to store Public Suffix List TLDs split at "." in reverse-order.
//
// For example: "us.gov.pl" will be stored in the order {"pl", "gov", "us"}.
func trieConstruct(suffixList []string) *trie {
	var m hashmap.Map[string, *trie]
	tldTrie := &trie{matches: m}

	for _, suffix := range suffixList {
		if strings.ContainsRune(suffix, '.') {
			sp := strings.Split(suffix, ".")
			reverse(sp)
			nestedDict(tldTrie, sp)
		} else {
			var m hashmap.Map[string, *trie]
			tldTrie.matches.Set(suffix, &trie{end: true, matches: m})
		}
	}

	tldTrie.matches.Scan(func(key string, value *trie) bool {
		if value.matches.Len() == 0 && value.end {
			var m hashmap.Map[string, *trie]
			tldTrie.matches.Set(key, &trie{matches: m})
		}
		return true
	})

	return tldTrie
}
