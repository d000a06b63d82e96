// Package yarnlock implements the yarn v1 lockfile codec.
package yarnlock

import (
	"strconv"
	"strings"

	"go.trai.ch/yarnix/internal/core/domain"
	"go.trai.ch/yarnix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockfileCodec = (*Codec)(nil)

// Codec parses and serializes yarn v1 lockfiles.
type Codec struct{}

// NewCodec creates a new yarn v1 lockfile codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Parse turns raw lockfile bytes into the ordered in-memory form.
// The format is line-based: entry headers at column zero ending in ':',
// scalar fields at one indent level, dependency blocks one level deeper.
// Comment and blank lines are skipped. Anything else is a parse error.
func (c *Codec) Parse(data []byte) (*domain.Lockfile, error) {
	lock := domain.NewLockfile()

	var entry *domain.Entry
	var block *[]domain.Dependency

	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " "))
		if indent%2 != 0 || strings.HasPrefix(line, "\t") {
			return nil, parseErr(i, "bad indentation")
		}

		switch indent / 2 {
		case 0:
			keys, err := parseHeader(trimmed)
			if err != nil {
				return nil, parseErr(i, err.Error())
			}
			entry = &domain.Entry{Keys: keys}
			block = nil
			lock.Add(entry)
		case 1:
			if entry == nil {
				return nil, parseErr(i, "field outside of an entry")
			}
			b, err := parseField(entry, trimmed)
			if err != nil {
				return nil, parseErr(i, err.Error())
			}
			block = b
		case 2:
			if block == nil {
				return nil, parseErr(i, "dependency outside of a block")
			}
			dep, err := parseDependency(trimmed)
			if err != nil {
				return nil, parseErr(i, err.Error())
			}
			*block = append(*block, dep)
		default:
			return nil, parseErr(i, "unexpected nesting depth")
		}
	}

	return lock, nil
}

func parseErr(lineIdx int, msg string) error {
	err := zerr.With(domain.ErrLockfileParse, "line", lineIdx+1)
	return zerr.With(err, "reason", msg)
}

// parseHeader parses an entry header line: one or more alias keys,
// comma-separated, quoted when needed, terminated by ':'.
func parseHeader(line string) ([]string, error) {
	if !strings.HasSuffix(line, ":") {
		return nil, zerr.New("entry header does not end with ':'")
	}
	keys, err := splitKeys(strings.TrimSuffix(line, ":"))
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, zerr.New("entry header has no keys")
	}
	return keys, nil
}

// parseField parses a scalar field or opens a dependency block. Returns the
// block slice to append into, or nil for scalars.
func parseField(entry *domain.Entry, line string) (*[]domain.Dependency, error) {
	if strings.HasSuffix(line, ":") {
		switch name := strings.TrimSuffix(line, ":"); name {
		case "dependencies":
			return &entry.Dependencies, nil
		case "optionalDependencies":
			return &entry.OptionalDependencies, nil
		default:
			return nil, zerr.With(zerr.New("unknown block"), "block", name)
		}
	}

	tokens, err := splitTokens(line)
	if err != nil {
		return nil, err
	}
	if len(tokens) != 2 {
		return nil, zerr.New("expected a field name and a value")
	}

	name, value := tokens[0], tokens[1]
	switch name {
	case "version":
		entry.Version = value
	case "resolved":
		entry.Resolved = value
	case "integrity":
		entry.Integrity = value
	case "sha256":
		entry.Sha256 = value
	default:
		entry.Extra = append(entry.Extra, domain.Field{Name: name, Value: value})
	}
	return nil, nil
}

func parseDependency(line string) (domain.Dependency, error) {
	tokens, err := splitTokens(line)
	if err != nil {
		return domain.Dependency{}, err
	}
	if len(tokens) != 2 {
		return domain.Dependency{}, zerr.New("expected a dependency name and a range")
	}
	return domain.Dependency{Name: tokens[0], Range: tokens[1]}, nil
}

// splitKeys splits a header key list on commas, respecting quotes.
func splitKeys(s string) ([]string, error) {
	var keys []string
	for _, part := range splitQuoted(s, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, zerr.New("empty entry key")
		}
		key, err := unquote(part)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// splitTokens splits a field line on whitespace, respecting quotes.
func splitTokens(s string) ([]string, error) {
	var tokens []string
	for len(s) > 0 {
		s = strings.TrimLeft(s, " ")
		if s == "" {
			break
		}
		if s[0] == '"' {
			end := closingQuote(s)
			if end < 0 {
				return nil, zerr.New("unterminated quoted token")
			}
			token, err := unquote(s[:end+1])
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
			s = s[end+1:]
			continue
		}
		cut := strings.IndexByte(s, ' ')
		if cut < 0 {
			cut = len(s)
		}
		tokens = append(tokens, s[:cut])
		s = s[cut:]
	}
	return tokens, nil
}

// splitQuoted splits on sep, ignoring separators inside double quotes.
func splitQuoted(s string, sep byte) []string {
	var parts []string
	start := 0
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && inQuotes:
			i++
		case s[i] == '"':
			inQuotes = !inQuotes
		case s[i] == sep && !inQuotes:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// closingQuote returns the index of the quote closing the one at s[0].
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, "\"") {
		return s, nil
	}
	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return "", zerr.With(zerr.New("bad quoted token"), "token", s)
	}
	return unquoted, nil
}
