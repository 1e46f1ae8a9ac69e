package theme

import "maps"

// Map resolves the capture names of one highlight query to styles. It holds
// exactly one entry per capture name; captures the theme does not cover map
// to the zero Style.
type Map map[string]Style

// NewMap resolves every capture name against t. A nil theme yields an empty
// map.
func NewMap(captureNames []string, t *Theme) Map {
	m := make(Map, len(captureNames))
	if t == nil {
		return m
	}
	for _, name := range captureNames {
		style, _ := t.Resolve(name)
		m[name] = style
	}
	return m
}

// Lookup returns the style for a capture name.
func (m Map) Lookup(capture string) (Style, bool) {
	s, ok := m[capture]
	return s, ok
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	if m == nil {
		return Map{}
	}
	return maps.Clone(m)
}
