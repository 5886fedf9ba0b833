package recap

// Capture is one occurrence of a capturing group within a match.
type Capture struct {
	Text  string // the matched text
	Index int    // offset of the text within the input, in the producing engine's unit
}

// Length returns the length of the captured text.
func (c *Capture) Length() int { return len(c.Text) }

// Group is one capturing unit of a pattern. A group inside a quantified
// subpattern may match repeatedly; Captures then records every occurrence in
// order, and the group's singular value is the last one. A group with
// Success true records at least one capture.
type Group struct {
	Name     string
	Success  bool
	Captures []Capture
}

// Capture returns the group's last capture, or nil if the group never
// participated in the match.
func (g *Group) Capture() *Capture {
	if len(g.Captures) == 0 {
		return nil
	}
	return &g.Captures[len(g.Captures)-1]
}

// Value returns the text of the group's last capture, or "" if the group
// never participated in the match.
func (g *Group) Value() string {
	if c := g.Capture(); c != nil {
		return c.Text
	}
	return ""
}

// Match is the result of one regular expression match attempt. Group 0 is the
// whole match; groups 1..N are the pattern's capturing groups in order.
//
// Match is engine-agnostic: the adapters in this package build one from a
// stdlib regexp or a regexp2 result, and any other engine can construct one
// with NewMatch.
type Match struct {
	Success bool

	groups []Group
	byName map[string]int
}

// NewMatch builds a Match from an ordered group list. Groups with a non-empty
// name become addressable by name as well as by index.
func NewMatch(success bool, groups ...Group) *Match {
	m := &Match{Success: success, groups: groups}
	for i, g := range groups {
		if g.Name == "" {
			continue
		}
		if m.byName == nil {
			m.byName = make(map[string]int, len(groups))
		}
		if _, dup := m.byName[g.Name]; !dup {
			m.byName[g.Name] = i
		}
	}
	return m
}

// GroupCount returns the number of groups, counting the whole match.
func (m *Match) GroupCount() int { return len(m.groups) }

// Group returns the group at index i. An out-of-range index yields a group
// with Success false rather than an error.
func (m *Match) Group(i int) *Group {
	if i < 0 || i >= len(m.groups) {
		return &Group{}
	}
	return &m.groups[i]
}

// GroupByName returns the group with the given name. An unknown name yields a
// group with Success false rather than an error.
func (m *Match) GroupByName(name string) *Group {
	if i, ok := m.byName[name]; ok {
		return &m.groups[i]
	}
	return &Group{Name: name}
}

// Value returns the whole-match text, or "" if the match did not succeed.
func (m *Match) Value() string { return m.Group(0).Value() }
