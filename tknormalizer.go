// Package tknormalizer canonicalizes HTTP(S) URL strings into a
// deterministic normalized form, so that semantically-equivalent URLs
// compare and hash identically.
//
// This module is a port of the Python tk_normalizer module, with the root
// domain derived from a Public Suffix List compressed trie instead of a
// fixed label count.
//
// Normalization is intentionally lossy: scheme, "www." prefix, fragment
// and tracking query parameters are all discarded, and the whole URL is
// lowercased, path included.
package tknormalizer

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
)

// Params configures a Normalizer.
type Params struct {
	// SuffixListPath points at a local Public Suffix List file. When empty
	// or unreadable, the snapshot bundled with the library is used.
	SuffixListPath string

	// IncludePrivateSuffixes extends the registrable-domain boundary with
	// PRIVATE section rules (e.g. blogspot.com).
	IncludePrivateSuffixes bool

	// ExtraTrackingParams names additional query parameter keys to remove
	// on top of the built-in removal set.
	ExtraTrackingParams []string

	// ConvertToPunycode folds internationalised hosts to their punycode
	// form, so normalized output is ASCII-only.
	ConvertToPunycode bool

	// LogErrors makes Normalize log rejected inputs before returning the
	// error.
	LogErrors bool

	// Logger receives rejection logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Fs abstracts file access for the suffix list. Defaults to the OS
	// filesystem.
	Fs afero.Fs
}

// Normalizer canonicalizes URLs. All of its state is built once by New and
// read-only thereafter, so a single Normalizer is safe for concurrent use
// from multiple goroutines without locking.
type Normalizer struct {
	tldTrie        *trie
	trackingParams map[string]struct{}
	suffixListPath string
	fs             afero.Fs
	toPunycode     bool
	logErrors      bool
	logger         *slog.Logger
}

// New creates a Normalizer using the Public Suffix List at
// p.SuffixListPath, falling back to the bundled snapshot.
func New(p Params) (*Normalizer, error) {
	n := &Normalizer{
		suffixListPath: p.SuffixListPath,
		toPunycode:     p.ConvertToPunycode,
		logErrors:      p.LogErrors,
		logger:         p.Logger,
		fs:             p.Fs,
	}
	if n.logger == nil {
		n.logger = slog.Default()
	}
	if n.fs == nil {
		n.fs = afero.NewOsFs()
	}

	var suffixLists suffixes
	if p.SuffixListPath != "" {
		var err error
		suffixLists, err = getSuffixList(n.fs, p.SuffixListPath)
		if err != nil {
			n.logger.Warn("falling back to bundled public suffix list",
				"path", p.SuffixListPath, "error", err)
			suffixLists = getBundledSuffixList()
		}
	} else {
		suffixLists = getBundledSuffixList()
	}

	suffixList := suffixLists.publicSuffixes
	if p.IncludePrivateSuffixes {
		suffixList = suffixLists.allSuffixes
	}
	if len(suffixList) == 0 {
		return nil, errors.New("public suffix list contains no rules")
	}
	n.tldTrie = trieConstruct(suffixList)

	if len(p.ExtraTrackingParams) == 0 {
		n.trackingParams = defaultTrackingParams
	} else {
		n.trackingParams = make(map[string]struct{}, len(defaultTrackingParams)+len(p.ExtraTrackingParams))
		for name := range defaultTrackingParams {
			n.trackingParams[name] = struct{}{}
		}
		for _, name := range p.ExtraTrackingParams {
			n.trackingParams[strings.ToLower(name)] = struct{}{}
		}
	}

	return n, nil
}

// UpdateSuffixList refreshes the Public Suffix List file at the configured
// path from the upstream mirrors. It does not rebuild running Normalizers;
// construct a new one to pick up the refreshed rules.
func (n *Normalizer) UpdateSuffixList() error {
	if n.suffixListPath == "" {
		return errors.New("no suffix list path configured")
	}
	file, err := n.fs.Create(n.suffixListPath)
	if err != nil {
		return err
	}
	defer file.Close()
	return update(file, publicSuffixListSources)
}

// Normalize canonicalizes rawURL and derives the parent and root forms
// plus their digests. It is a pure function of its input: no I/O, bounded
// time, and an *InvalidURLError (never a partial Result) on rejection.
func (n *Normalizer) Normalize(rawURL string) (*Result, error) {
	result, err := n.normalize(rawURL)
	if err != nil && n.logErrors {
		n.logger.Warn("url rejected", "url", rawURL, "error", err)
	}
	return result, err
}

func (n *Normalizer) normalize(rawURL string) (*Result, error) {
	trimmed := fastTrim(rawURL, whitespaceRuneSlice, trimBoth)
	if trimmed == "" {
		return nil, invalidURL(KindMalformedURL, rawURL, errors.New("empty input"))
	}
	if len(trimmed) > maxURLLength {
		return nil, invalidURL(KindMalformedURL, trimmed[0:64]+"...",
			fmt.Errorf("input exceeds %d bytes", maxURLLength))
	}

	// The whole URL is lowercased up front, path and query values
	// included, to match the original tk_normalizer equivalence classes.
	lowered := strings.ToLower(trimmed)

	c, err := splitURL(lowered)
	if err != nil {
		return nil, invalidURL(KindMalformedURL, trimmed, err)
	}
	c.host = foldLabelSeparators(c.host)
	if n.toPunycode && !c.ipv6 {
		punycode := formatAsPunycode(c.host)
		if punycode == "" {
			return nil, invalidURL(KindMalformedURL, trimmed,
				fmt.Errorf("host %q cannot be converted to punycode", c.host))
		}
		c.host = punycode
	}

	if err := validateURL(trimmed, c); err != nil {
		return nil, err
	}

	host := stripWWW(c.host)
	if c.port != "" && !isDefaultPort(c.scheme, c.port) {
		host = host + ":" + c.port
	}
	path := removeTrailingSlash(pathUnescape(c.path))

	params := parseQueryParams(c.query)
	params = n.removeTrackingParams(params)
	sortQueryParams(params)
	params = dedupeQueryParams(params)
	queryString := encodeQueryParams(params)

	normalized := host + path
	if queryString != "" {
		normalized = normalized + "?" + queryString
	}
	parent := host + path

	var root string
	if c.ipv6 || (numericSet.contains(c.host[0]) && isIPv4(c.host)) {
		// IP literals have no registrable domain; the address itself is
		// the root.
		root = c.host
	} else {
		root, err = n.rootDomain(trimmed, stripWWW(c.host))
		if err != nil {
			return nil, err
		}
	}

	return &Result{
		NormalizedURL:           normalized,
		ParentNormalizedURL:     parent,
		RootNormalizedURL:       root,
		QueryString:             queryString,
		Path:                    path,
		NormalizedURLHash:       hashString(normalized),
		ParentNormalizedURLHash: hashString(parent),
		RootNormalizedURLHash:   hashString(root),
		OriginalURL:             trimmed,
	}, nil
}
