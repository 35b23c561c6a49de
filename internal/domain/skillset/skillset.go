// Package skillset canonicalizes raw skill strings into the key space
// shared by the gap analyzer, rule ensemble and path builder. Upstream
// rule exports encode skill sets inconsistently (printed set/list forms,
// frozenset wrappers, plain comma strings), so all itemset parsing goes
// through ParseItemSet and its fallback chain rather than ad hoc splits.
package skillset

import (
	"regexp"
	"sort"
	"strings"
)

// Set is a deduplicated collection of canonical skills.
type Set map[string]struct{}

func NewSet(skills ...string) Set {
	s := make(Set, len(skills))
	for _, raw := range skills {
		k := Normalize(raw)
		if k == "" {
			continue
		}
		s[k] = struct{}{}
	}
	return s
}

func (s Set) Has(skill string) bool {
	_, ok := s[Normalize(skill)]
	return ok
}

func (s Set) Add(skill string) {
	k := Normalize(skill)
	if k == "" {
		return
	}
	s[k] = struct{}{}
}

// Sorted returns the members in lexical order. Every consumer that needs
// deterministic output iterates through this instead of the map.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for k := range s {
		if _, ok := other[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func (s Set) Diff(other Set) Set {
	out := make(Set)
	for k := range s {
		if _, ok := other[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func (s Set) Intersects(other Set) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for k := range small {
		if _, ok := large[k]; ok {
			return true
		}
	}
	return false
}

var innerSpace = regexp.MustCompile(`\s+`)

// Normalize lowercases, trims and collapses internal whitespace.
func Normalize(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return ""
	}
	return innerSpace.ReplaceAllString(v, " ")
}

// NormalizeAll canonicalizes a programmatic skill list, dropping empties
// and duplicates.
func NormalizeAll(raw []string) []string {
	return NewSet(raw...).Sorted()
}

// ParseList parses a bulk skill string. Structured-literal forms are
// attempted first; anything unparseable falls back to comma splitting.
// Malformed input yields an empty list, never an error.
func ParseList(raw string) []string {
	return ParseItemSet(raw).Sorted()
}

var (
	frozensetWrapper = regexp.MustCompile(`^frozenset\((.*)\)$`)
	braceContent     = regexp.MustCompile(`[\[{(](.*)[\]})]`)
	quotedToken      = regexp.MustCompile(`(?:'([^']*)'|"([^"]*)")`)
)

// ParseItemSet converts one rule cell or skill-list cell into a Set.
// Fallback chain: structured literal, frozenset wrapper, brace-content
// extraction, comma split, whole cell as a singleton. Intentionally
// defensive; upstream export formats are inconsistent.
func ParseItemSet(raw string) Set {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Set{}
	}

	if m := frozensetWrapper.FindStringSubmatch(v); m != nil {
		v = strings.TrimSpace(m[1])
		if v == "" {
			return Set{}
		}
	}

	if s, ok := parseLiteral(v); ok {
		return s
	}

	if m := braceContent.FindStringSubmatch(v); m != nil {
		if s, ok := parseLiteral("[" + m[1] + "]"); ok {
			return s
		}
		return splitComma(m[1])
	}

	if strings.ContainsRune(v, ',') {
		return splitComma(v)
	}

	return NewSet(v)
}

// parseLiteral handles printed list/tuple/set forms with quoted elements,
// e.g. ['python', 'sql'], {'aws'}, ("go", "docker"). Unquoted content is
// rejected so the caller can fall through to comma splitting.
func parseLiteral(v string) (Set, bool) {
	if len(v) < 2 {
		return nil, false
	}
	open, last := v[0], v[len(v)-1]
	bracketed := (open == '[' && last == ']') ||
		(open == '{' && last == '}') ||
		(open == '(' && last == ')')
	if !bracketed {
		return nil, false
	}

	inner := strings.TrimSpace(v[1 : len(v)-1])
	if inner == "" {
		return Set{}, true
	}
	if !strings.ContainsAny(inner, `'"`) {
		return nil, false
	}

	out := make(Set)
	for _, m := range quotedToken.FindAllStringSubmatch(inner, -1) {
		tok := m[1]
		if tok == "" {
			tok = m[2]
		}
		out.Add(tok)
	}
	return out, true
}

func splitComma(v string) Set {
	out := make(Set)
	for _, part := range strings.Split(v, ",") {
		part = strings.Trim(part, ` '"`)
		out.Add(part)
	}
	return out
}
