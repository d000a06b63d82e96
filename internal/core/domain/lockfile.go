// Package domain contains the core types shared by the reconciler and the
// catalog builder.
package domain

// Field is a scalar lockfile field that yarnix does not interpret itself.
// Preserving unknown fields keeps serialization lossless for lockfiles
// written by other tools.
type Field struct {
	Name  string
	Value string
}

// Dependency is one entry of a nested dependencies block, in file order.
type Dependency struct {
	Name  string
	Range string
}

// Entry is one dependency resolution record of a yarn v1 lockfile.
// A single entry may satisfy several "name@range" alias keys; yarn serializes
// those comma-joined on one header line.
type Entry struct {
	// Keys are the alias keys in header order (e.g. "@scope/pkg@^1.0.0").
	Keys []string

	// Version is the exact resolved version.
	Version string

	// Resolved is the composite "<url>#<token>" source field. Empty for
	// entries that resolve to a local or workspace path.
	Resolved string

	// Integrity is the subresource-integrity string, when present.
	Integrity string

	// Sha256 is the content hash of the fetched source tree. It is only
	// populated for source-control-hosted entries, by the reconciler.
	Sha256 string

	Dependencies         []Dependency
	OptionalDependencies []Dependency

	// Extra holds scalar fields yarnix does not interpret, in file order.
	Extra []Field
}

// Lockfile is the in-memory form of a yarn v1 lockfile. Entries keep the
// insertion order of the original file; both the reconciler and the catalog
// builder depend on that order being stable.
type Lockfile struct {
	entries []*Entry
}

// NewLockfile creates an empty lockfile.
func NewLockfile() *Lockfile {
	return &Lockfile{}
}

// Add appends an entry, preserving insertion order.
func (l *Lockfile) Add(e *Entry) {
	l.entries = append(l.entries, e)
}

// Entries returns the entries in file order. The slice is shared, not
// copied: the reconciler mutates entries in place through it.
func (l *Lockfile) Entries() []*Entry {
	return l.entries
}

// Len returns the number of entries.
func (l *Lockfile) Len() int {
	return len(l.entries)
}

// Equal reports deep structural equality with another lockfile, including
// entry order.
func (l *Lockfile) Equal(other *Lockfile) bool {
	if other == nil || len(l.entries) != len(other.entries) {
		return false
	}
	for i, e := range l.entries {
		if !e.Equal(other.entries[i]) {
			return false
		}
	}
	return true
}

// Equal reports deep structural equality with another entry.
func (e *Entry) Equal(other *Entry) bool {
	if other == nil {
		return false
	}
	if e.Version != other.Version ||
		e.Resolved != other.Resolved ||
		e.Integrity != other.Integrity ||
		e.Sha256 != other.Sha256 {
		return false
	}
	if !equalStrings(e.Keys, other.Keys) {
		return false
	}
	if !equalDeps(e.Dependencies, other.Dependencies) ||
		!equalDeps(e.OptionalDependencies, other.OptionalDependencies) {
		return false
	}
	if len(e.Extra) != len(other.Extra) {
		return false
	}
	for i, f := range e.Extra {
		if f != other.Extra[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalDeps(a, b []Dependency) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
