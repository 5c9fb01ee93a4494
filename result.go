package tknormalizer

// Result is the immutable output of a successful normalization. It is
// created once per input and never mutated afterwards.
type Result struct {
	NormalizedURL           string
	ParentNormalizedURL     string
	RootNormalizedURL       string
	QueryString             string
	Path                    string
	NormalizedURLHash       string
	ParentNormalizedURLHash string
	RootNormalizedURLHash   string
	OriginalURL             string
}

// resultFieldNames lists the mapping keys in a stable order.
var resultFieldNames = []string{
	"normalized_url",
	"parent_normalized_url",
	"root_normalized_url",
	"query_string",
	"path",
	"normalized_url_hash",
	"parent_normalized_url_hash",
	"root_normalized_url_hash",
	"original_url",
}

// Field looks up a single field by its mapping name.
func (r *Result) Field(name string) (string, bool) {
	switch name {
	case "normalized_url":
		return r.NormalizedURL, true
	case "parent_normalized_url":
		return r.ParentNormalizedURL, true
	case "root_normalized_url":
		return r.RootNormalizedURL, true
	case "query_string":
		return r.QueryString, true
	case "path":
		return r.Path, true
	case "normalized_url_hash":
		return r.NormalizedURLHash, true
	case "parent_normalized_url_hash":
		return r.ParentNormalizedURLHash, true
	case "root_normalized_url_hash":
		return r.RootNormalizedURLHash, true
	case "original_url":
		return r.OriginalURL, true
	}
	return "", false
}

// Fields returns the available mapping names in a stable order.
func (r *Result) Fields() []string {
	names := make([]string, len(resultFieldNames))
	copy(names, resultFieldNames)
	return names
}

// ToMap returns a name-to-value snapshot of all fields.
func (r *Result) ToMap() map[string]string {
	m := make(map[string]string, len(resultFieldNames))
	for _, name := range resultFieldNames {
		value, _ := r.Field(name)
		m[name] = value
	}
	return m
}

// String returns the canonical string form, which is the normalized URL.
func (r *Result) String() string {
	return r.NormalizedURL
}
