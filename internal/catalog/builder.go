// Package catalog turns lockfile entries into an ordered, deduplicated
// sequence of fetch descriptors.
package catalog

import (
	"go.trai.ch/yarnix/internal/core/domain"
	"go.trai.ch/zerr"
)

// Build derives the fetch catalog from the lockfile. Entries and their alias
// keys are visited in file order; the first occurrence of a cache name wins
// and later duplicates are dropped without a descriptor or a warning.
//
// A source-control entry reaching emission without a reconciled sha256 means
// the reconciler was skipped or failed silently; that is a defect, not a
// supported state, and Build fails on it.
func Build(lock *domain.Lockfile) ([]domain.FetchDescriptor, error) {
	seen := make(map[string]struct{})
	var descriptors []domain.FetchDescriptor

	for _, entry := range lock.Entries() {
		if entry.Resolved == "" {
			// Local or workspace dependency, nothing to fetch.
			continue
		}
		url, token := domain.SplitResolved(entry.Resolved)

		for _, key := range entry.Keys {
			desc := classify(entry, key, url, token)
			if _, dup := seen[desc.Name]; dup {
				continue
			}
			if desc.Kind == domain.SourceControlFetch && desc.SHA256 == "" {
				err := zerr.With(domain.ErrMissingSHA256, "key", key)
				return nil, zerr.With(err, "url", url)
			}
			seen[desc.Name] = struct{}{}
			descriptors = append(descriptors, desc)
		}
	}

	return descriptors, nil
}

// classify derives the descriptor for one alias key of one entry. The cache
// name carries the key's scope as a prefix so scopes that share a basename
// never collide.
func classify(entry *domain.Entry, key, url, token string) domain.FetchDescriptor {
	namespace := domain.Namespace(key)
	base := domain.BaseName(url)

	if domain.IsGitURL(url) {
		return domain.FetchDescriptor{
			Name:   namespace + base + "-" + token,
			Kind:   domain.SourceControlFetch,
			URL:    domain.StripGitScheme(url),
			Rev:    token,
			SHA256: entry.Sha256,
		}
	}

	return domain.FetchDescriptor{
		Name: namespace + base,
		Kind: domain.PlainFetch,
		URL:  url,
		SHA1: token,
	}
}
