package recap

import (
	"regexp"
	"strconv"
)

// MatchString runs re against input and adapts the leftmost match. A group
// that did not participate in the match is present but has Success false.
// Capture indices are byte offsets into input, the stdlib engine's native
// unit.
//
// The stdlib engine records only the final occurrence of a repeatedly
// matching group, so every successful group carries exactly one capture.
// Use the regexp2 adapter when full capture history is needed.
func MatchString(re *regexp.Regexp, input string) *Match {
	idx := re.FindStringSubmatchIndex(input)
	if idx == nil {
		return &Match{}
	}

	names := re.SubexpNames()
	groups := make([]Group, len(names))
	for i, name := range names {
		if name == "" {
			name = strconv.Itoa(i)
		}
		groups[i].Name = name

		start, end := idx[2*i], idx[2*i+1]
		if start < 0 {
			continue
		}
		groups[i].Success = true
		groups[i].Captures = []Capture{{Text: input[start:end], Index: start}}
	}
	return NewMatch(true, groups...)
}
