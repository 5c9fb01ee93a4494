package tknormalizer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	_ "embed"

	"github.com/spf13/afero"
	"golang.org/x/net/idna"
)

//go:embed data/public_suffix_list.dat
var bundledSuffixListData []byte

var publicSuffixListSources = []string{
	"https://publicsuffix.org/list/public_suffix_list.dat",
	"https://raw.githubusercontent.com/publicsuffix/list/master/public_suffix_list.dat",
}

// suffixes holds the rules parsed from a Public Suffix List file.
//
// publicSuffixes: ICANN domains. Example: com, net, org etc.
//
// privateSuffixes: PRIVATE domains. Example: blogspot.co.uk, appspot.com etc.
//
// allSuffixes: Both ICANN and PRIVATE domains.
type suffixes struct {
	publicSuffixes  []string
	privateSuffixes []string
	allSuffixes     []string
}

// parseSuffixList reads Public Suffix List rules from r, keeping both the
// punycode and (when different) original Unicode form of each rule.
func parseSuffixList(r io.Reader) suffixes {
	var s suffixes
	fileScanner := bufio.NewScanner(r)
	fileScanner.Split(bufio.ScanLines)
	isPrivateSuffix := false
	for fileScanner.Scan() {
		line := strings.TrimSpace(fileScanner.Text())
		if "// ===BEGIN PRIVATE DOMAINS===" == line {
			isPrivateSuffix = true
		}
		if len(line) == 0 || strings.HasPrefix(line, "//") {
			continue
		}
		suffix, err := idna.ToASCII(line)
		if err != nil {
			// skip line if unable to convert to ascii
			continue
		}
		if isPrivateSuffix {
			s.privateSuffixes = append(s.privateSuffixes, suffix)
			if suffix != line {
				// add non-punycode version if it is different from punycode version
				s.privateSuffixes = append(s.privateSuffixes, line)
			}
		} else {
			s.publicSuffixes = append(s.publicSuffixes, suffix)
			if suffix != line {
				// add non-punycode version if it is different from punycode version
				s.publicSuffixes = append(s.publicSuffixes, line)
			}
		}
		s.allSuffixes = append(s.allSuffixes, suffix)
		if suffix != line {
			// add non-punycode version if it is different from punycode version
			s.allSuffixes = append(s.allSuffixes, line)
		}
	}
	return s
}

// getSuffixList retrieves Public Suffix List rules from the file at cacheFilePath.
func getSuffixList(fs afero.Fs, cacheFilePath string) (suffixes, error) {
	fd, err := fs.Open(cacheFilePath)
	if err != nil {
		return suffixes{}, err
	}
	defer fd.Close()
	return parseSuffixList(fd), nil
}

// getBundledSuffixList retrieves Public Suffix List rules from the snapshot
// embedded in the binary.
func getBundledSuffixList() suffixes {
	return parseSuffixList(bytes.NewReader(bundledSuffixListData))
}

// downloadFile downloads file from url as byte slice
func downloadFile(url string) ([]byte, error) {
	// Make HTTP GET request
	var bodyBytes []byte
	resp, err := http.Get(url)
	if err != nil {
		return bodyBytes, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		bodyBytes, err = io.ReadAll(resp.Body)
	} else {
		err = errors.New("Download failed, HTTP status code : " + fmt.Sprint(resp.StatusCode))
	}
	return bodyBytes, err
}

// update writes the newest Public Suffix List it can fetch from
// publicSuffixListSources to file.
func update(file afero.File, publicSuffixListSources []string) error {
	for _, publicSuffixListSource := range publicSuffixListSources {
		// Write GET request body to local file
		bodyBytes, err := downloadFile(publicSuffixListSource)
		if err != nil {
			continue
		}
		file.Seek(0, 0)
		file.Write(bodyBytes)
		return nil
	}
	return errors.New("failed to fetch any Public Suffix List from all mirrors")
}
