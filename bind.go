package recap

import "fmt"

// bindGroups maps each of arity output slots to a group of m. With names the
// binding is by name, one per slot; without, slot i binds to capturing group
// i+1, except that a scalar against a pattern with no capturing groups binds
// to the whole match. Callers handle failed matches before binding.
func bindGroups(m *Match, arity int, names []string) ([]*Group, error) {
	if arity < 1 {
		return nil, fmt.Errorf("arity %d: %w", arity, ErrUnsupportedShape)
	}

	if len(names) > 0 {
		if len(names) != arity {
			return nil, fmt.Errorf("%d group names for %d output slots: %w", len(names), arity, ErrArityMismatch)
		}
		groups := make([]*Group, arity)
		for i, name := range names {
			groups[i] = m.GroupByName(name)
		}
		return groups, nil
	}

	if arity == 1 {
		if m.GroupCount() >= 2 {
			return []*Group{m.Group(1)}, nil
		}
		return []*Group{m.Group(0)}, nil
	}

	if m.GroupCount() < arity+1 {
		return nil, fmt.Errorf("%d capturing groups for %d output slots: %w", m.GroupCount()-1, arity, ErrInsufficientGroups)
	}
	groups := make([]*Group, arity)
	for i := range groups {
		groups[i] = m.Group(i + 1)
	}
	return groups, nil
}
