package usecase

import (
	"regexp"
	"sort"
	"strings"
)

// registryEntry pairs a known name with its precompiled whole-word pattern.
type registryEntry struct {
	name    string
	pattern *regexp.Regexp
}

// NameRegistry is an immutable, ordered list of known common names or
// cultivars. Names are ordered by descending length so that multi-word names
// ("Swiss Chard") match before their single-word substrings ("Chard"). Built
// once per process and safe for concurrent use.
type NameRegistry struct {
	entries []registryEntry
}

// NewNameRegistry builds a registry from a caller-supplied list of names.
// Blank entries are dropped and duplicates collapse case-insensitively,
// keeping the first spelling seen.
func NewNameRegistry(names []string) *NameRegistry {
	seen := make(map[string]bool, len(names))
	var kept []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, name)
	}

	// Longest first; ties keep input order for determinism.
	sort.SliceStable(kept, func(i, j int) bool {
		return len(kept[i]) > len(kept[j])
	})

	entries := make([]registryEntry, 0, len(kept))
	for _, name := range kept {
		entries = append(entries, registryEntry{
			name:    name,
			pattern: wholeWordPattern(name),
		})
	}
	return &NameRegistry{entries: entries}
}

// wholeWordPattern compiles a case-insensitive whole-word matcher for a name.
func wholeWordPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
}

// Len returns the number of names in the registry.
func (r *NameRegistry) Len() int {
	return len(r.entries)
}

// Names returns a copy of the registry contents, longest first.
func (r *NameRegistry) Names() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.name
	}
	return out
}

// Contains reports whether text equals a registry name, case-insensitively.
func (r *NameRegistry) Contains(text string) bool {
	text = strings.TrimSpace(text)
	for _, e := range r.entries {
		if strings.EqualFold(e.name, text) {
			return true
		}
	}
	return false
}

// Canonical returns the registry's preferred spelling for text when text
// equals a registry name case-insensitively.
func (r *NameRegistry) Canonical(text string) (string, bool) {
	text = strings.TrimSpace(text)
	for _, e := range r.entries {
		if strings.EqualFold(e.name, text) {
			return e.name, true
		}
	}
	return "", false
}

// FindIn returns the longest registry name present as a whole word inside
// text, in the registry's canonical spelling.
func (r *NameRegistry) FindIn(text string) (string, bool) {
	for _, e := range r.entries {
		if e.pattern.MatchString(text) {
			return e.name, true
		}
	}
	return "", false
}

// RemoveFrom strips the whole-word occurrence of name from text. The caller
// is expected to clean residual punctuation.
func (r *NameRegistry) RemoveFrom(text, name string) string {
	return wholeWordPattern(name).ReplaceAllString(text, "")
}
