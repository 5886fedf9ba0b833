package recap

import (
	"fmt"
	"strings"
)

// EnumSet maps member names to values of an enumerated type. Lookup is
// case-insensitive and tolerates surrounding whitespace.
//
// An enum type plugs into extraction by implementing UnmarshalText on top of
// a set:
//
//	type direction int
//
//	var directions = recap.NewEnumSet(map[string]direction{
//		"lefttoright": leftToRight,
//		"righttoleft": rightToLeft,
//	})
//
//	func (d *direction) UnmarshalText(text []byte) error {
//		v, err := directions.Parse(string(text))
//		if err != nil {
//			return err
//		}
//		*d = v
//		return nil
//	}
type EnumSet[E comparable] struct {
	members map[string]E
}

// NewEnumSet builds a set from member names. Names are folded to lower case;
// two names differing only in case are considered duplicates and the result
// keeps an arbitrary one.
func NewEnumSet[E comparable](members map[string]E) *EnumSet[E] {
	set := &EnumSet[E]{members: make(map[string]E, len(members))}
	for name, v := range members {
		set.members[strings.ToLower(name)] = v
	}
	return set
}

// Parse returns the member whose name matches text case-insensitively. An
// unknown name reports an error wrapping ErrFormat.
func (s *EnumSet[E]) Parse(text string) (E, error) {
	v, ok := s.members[strings.ToLower(strings.TrimSpace(text))]
	if !ok {
		var zero E
		return zero, fmt.Errorf("cannot convert %q to %T: %w", text, zero, ErrFormat)
	}
	return v, nil
}
