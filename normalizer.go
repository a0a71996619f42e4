package bushel

import "strings"

// Unknown is the canonical name for records whose commodity label is
// missing or blank. Records grouped under it are excluded from buckets.
const Unknown = "Unknown"

// Normalizer maps raw commodity labels to their standard names using an
// alias table. It is built once per session from an immutable alias
// snapshot and is safe for concurrent reads.
type Normalizer struct {
	aliases map[string]string // folded alias -> standard name
	names   map[string]string // folded alias -> original alias spelling
}

// NewNormalizer builds a Normalizer from an alias snapshot. With an empty
// snapshot normalization degenerates to a trim of the input.
func NewNormalizer(aliases []CommodityAlias) *Normalizer {
	n := &Normalizer{
		aliases: make(map[string]string, len(aliases)),
		names:   make(map[string]string, len(aliases)),
	}
	for _, a := range aliases {
		key := fold(a.Alias)
		if key == "" {
			continue
		}
		n.aliases[key] = strings.TrimSpace(a.Standard)
		n.names[key] = clean(a.Alias)
	}
	return n
}

// fold is the matching key of a label: trimmed, inner whitespace collapsed,
// case-insensitive.
func fold(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), " "))
}

// clean is the identity fallback for unmapped labels: trimmed and inner
// whitespace collapsed, original case kept so unmapped commodities still
// group consistently under their literal spelling.
func clean(label string) string {
	return strings.Join(strings.Fields(label), " ")
}

// Lookup returns the standard name for a raw label and whether the alias
// table knew it. A blank label maps to Unknown and counts as known.
func (n *Normalizer) Lookup(raw string) (standard string, mapped bool) {
	key := fold(raw)
	if key == "" {
		return Unknown, true
	}
	if std, ok := n.aliases[key]; ok {
		return std, true
	}
	return clean(raw), false
}

// Normalize returns the standard name for a raw commodity label. On a miss
// the trimmed input is returned unchanged, which makes Normalize
// idempotent: an already standard name maps to itself.
func (n *Normalizer) Normalize(raw string) string {
	std, _ := n.Lookup(raw)
	return std
}

// Standards returns the set of standard names the alias table maps to.
func (n *Normalizer) Standards() []string {
	seen := make(map[string]bool, len(n.aliases))
	var out []string
	for _, std := range n.aliases {
		if !seen[std] {
			seen[std] = true
			out = append(out, std)
		}
	}
	return out
}

// AliasesOf returns every alias mapping to the given standard name,
// including the standard name itself. Useful to filter upstream records by
// standard commodity.
func (n *Normalizer) AliasesOf(standard string) []string {
	out := []string{standard}
	for alias, std := range n.aliases {
		if std == standard && alias != fold(standard) {
			out = append(out, n.names[alias])
		}
	}
	return out
}
