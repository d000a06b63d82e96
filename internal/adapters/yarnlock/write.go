package yarnlock

import (
	"strconv"
	"strings"

	"go.trai.ch/yarnix/internal/core/domain"
)

const header = "# THIS IS AN AUTOGENERATED FILE. DO NOT EDIT THIS FILE DIRECTLY.\n# yarn lockfile v1\n"

// Serialize renders the lockfile in the canonical yarn v1 text format:
// the autogenerated-file header, entries in insertion order separated by
// blank lines, two-space indentation, yarn's quoting rules.
func (c *Codec) Serialize(lock *domain.Lockfile) []byte {
	var b strings.Builder
	b.WriteString(header)

	for _, entry := range lock.Entries() {
		b.WriteString("\n")
		writeEntry(&b, entry)
	}

	return []byte(b.String())
}

func writeEntry(b *strings.Builder, entry *domain.Entry) {
	quoted := make([]string, len(entry.Keys))
	for i, key := range entry.Keys {
		quoted[i] = maybeQuote(key)
	}
	b.WriteString(strings.Join(quoted, ", "))
	b.WriteString(":\n")

	writeScalar(b, "version", entry.Version)
	writeScalar(b, "resolved", entry.Resolved)
	writeScalar(b, "integrity", entry.Integrity)
	writeScalar(b, "sha256", entry.Sha256)
	for _, field := range entry.Extra {
		writeScalar(b, field.Name, field.Value)
	}
	writeBlock(b, "dependencies", entry.Dependencies)
	writeBlock(b, "optionalDependencies", entry.OptionalDependencies)
}

func writeScalar(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("  ")
	b.WriteString(name)
	b.WriteString(" ")
	b.WriteString(maybeQuote(value))
	b.WriteString("\n")
}

func writeBlock(b *strings.Builder, name string, deps []domain.Dependency) {
	if len(deps) == 0 {
		return
	}
	b.WriteString("  ")
	b.WriteString(name)
	b.WriteString(":\n")
	for _, dep := range deps {
		b.WriteString("    ")
		b.WriteString(maybeQuote(dep.Name))
		b.WriteString(" ")
		b.WriteString(maybeQuote(dep.Range))
		b.WriteString("\n")
	}
}

// maybeQuote applies yarn's quoting rule: a token is quoted unless it starts
// with a letter and contains neither spaces, colons, commas nor quotes.
func maybeQuote(s string) string {
	if needsQuotes(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	first := s[0]
	isLetter := (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')
	if !isLetter {
		return true
	}
	return strings.ContainsAny(s, " :,\"")
}
