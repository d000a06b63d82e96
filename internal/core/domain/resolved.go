package domain

import (
	"path"
	"strings"
)

// SplitResolved splits a composite "<url>#<token>" resolved field into its
// URL and token parts. The split point is the LAST '#' because URLs may
// themselves contain '#'. When no separator is present the whole string is
// the URL and the token is empty.
func SplitResolved(resolved string) (url, token string) {
	idx := strings.LastIndex(resolved, "#")
	if idx < 0 {
		return resolved, ""
	}
	return resolved[:idx], resolved[idx+1:]
}

// IsGitURL reports whether a resolved URL points at a source-control
// repository: either the "git+https://" scheme or a path ending in ".git".
func IsGitURL(url string) bool {
	if strings.HasPrefix(url, "git+https://") {
		return true
	}
	return strings.HasSuffix(pathPortion(url), ".git")
}

// StripGitScheme removes the "git+" prefix yarn uses to mark git resolutions,
// leaving a URL git itself understands.
func StripGitScheme(url string) string {
	return strings.TrimPrefix(url, "git+")
}

// BaseName returns the final path segment of a package URL, ignoring any
// query string. Used as the cache file name component.
func BaseName(url string) string {
	return path.Base(pathPortion(url))
}

// Namespace derives the scope prefix for a lockfile alias key. A key like
// "@scope/pkg@^1.0.0" yields "@scope-"; unscoped keys yield "". The prefix
// keeps cache names from colliding across scopes that share a basename.
func Namespace(key string) string {
	if !strings.HasPrefix(key, "@") {
		return ""
	}
	slash := strings.Index(key, "/")
	if slash < 0 {
		return ""
	}
	return key[:slash] + "-"
}

func pathPortion(url string) string {
	if q := strings.Index(url, "?"); q >= 0 {
		url = url[:q]
	}
	return url
}
