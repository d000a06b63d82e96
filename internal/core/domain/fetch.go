package domain

// FetchKind classifies how a catalog entry is retrieved.
type FetchKind int

const (
	// PlainFetch retrieves a static URL verified by a content hash.
	PlainFetch FetchKind = iota
	// SourceControlFetch retrieves a git repository at a pinned revision.
	SourceControlFetch
)

// String returns a human-readable name for the fetch kind.
func (k FetchKind) String() string {
	switch k {
	case PlainFetch:
		return "fetch"
	case SourceControlFetch:
		return "git"
	default:
		return "unknown"
	}
}

// FetchDescriptor is one emitted catalog record: everything a downstream
// build needs to retrieve and verify a single dependency artifact.
type FetchDescriptor struct {
	// Name is the cache file name. It is unique within a catalog and doubles
	// as the deduplication key.
	Name string

	Kind FetchKind

	// URL is the download location. For SourceControlFetch the "git+" scheme
	// prefix is already stripped.
	URL string

	// SHA1 is the content hash for PlainFetch descriptors.
	SHA1 string

	// Rev and SHA256 are set for SourceControlFetch descriptors: the pinned
	// revision and the content hash of the fetched tree.
	Rev    string
	SHA256 string
}
