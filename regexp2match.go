package recap

import "github.com/dlclark/regexp2"

// FromRegexp2 adapts a regexp2 match result, preserving each group's full
// capture history. A nil match, regexp2's no-match result, yields a failed
// Match. Capture indices are rune offsets, regexp2's native unit; the match
// alone does not carry the input text needed to convert them to bytes.
func FromRegexp2(m *regexp2.Match) *Match {
	if m == nil {
		return &Match{}
	}

	src := m.Groups()
	groups := make([]Group, len(src))
	for i := range src {
		g := &src[i]
		groups[i].Name = g.Name
		groups[i].Success = len(g.Captures) > 0
		for j := range g.Captures {
			c := &g.Captures[j]
			groups[i].Captures = append(groups[i].Captures, Capture{
				Text:  c.String(),
				Index: c.Index,
			})
		}
	}
	return NewMatch(true, groups...)
}

// MatchStringRegexp2 runs re against input and adapts the first match. The
// error is regexp2's own, reported when the engine's match timeout elapses.
func MatchStringRegexp2(re *regexp2.Regexp, input string) (*Match, error) {
	m, err := re.FindStringMatch(input)
	if err != nil {
		return nil, err
	}
	return FromRegexp2(m), nil
}
