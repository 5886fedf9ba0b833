package recap

// Get converts the match to T. Without group names the value comes from the
// first capturing group, or from the whole match when the pattern has none.
// With group names, exactly one name must be given and the value comes from
// that group. A failed match reports ErrMatchFailed.
func Get[T any](m *Match, groupNames ...string) (T, error) {
	var zero T
	if !matched(m) {
		return zero, ErrMatchFailed
	}
	groups, err := bindGroups(m, 1, groupNames)
	if err != nil {
		return zero, err
	}
	v, _, err := convertGroup[T](groups[0])
	return v, err
}

// TryGet is Get except that a failed match yields the zero value of T with a
// nil error. Conversion errors still propagate.
func TryGet[T any](m *Match, groupNames ...string) (T, error) {
	var zero T
	if !matched(m) {
		return zero, nil
	}
	groups, err := bindGroups(m, 1, groupNames)
	if err != nil {
		return zero, err
	}
	v, _, err := convertGroup[T](groups[0])
	return v, err
}

// Lookup is TryGet with an explicit presence flag: ok is false when the match
// failed, the bound group did not participate, or a nullable target saw empty
// text.
func Lookup[T any](m *Match, groupNames ...string) (T, bool, error) {
	var zero T
	if !matched(m) {
		return zero, false, nil
	}
	groups, err := bindGroups(m, 1, groupNames)
	if err != nil {
		return zero, false, err
	}
	return convertGroup[T](groups[0])
}

// Get2 converts the match to a pair. Without group names, slot i binds to
// capturing group i+1 and the pattern must have at least two capturing
// groups; extra groups are ignored. With group names, exactly two names must
// be given. A failed match reports ErrMatchFailed.
func Get2[A, B any](m *Match, groupNames ...string) (A, B, error) {
	var a A
	var b B
	if !matched(m) {
		return a, b, ErrMatchFailed
	}
	groups, err := bindGroups(m, 2, groupNames)
	if err != nil {
		return a, b, err
	}
	if a, _, err = convertGroup[A](groups[0]); err != nil {
		return a, b, err
	}
	b, _, err = convertGroup[B](groups[1])
	return a, b, err
}

// TryGet2 is Get2 except that a failed match yields zero values and ok false
// instead of an error. Conversion errors still propagate.
func TryGet2[A, B any](m *Match, groupNames ...string) (a A, b B, ok bool, err error) {
	if !matched(m) {
		return a, b, false, nil
	}
	groups, err := bindGroups(m, 2, groupNames)
	if err != nil {
		return a, b, false, err
	}
	if a, _, err = convertGroup[A](groups[0]); err != nil {
		return a, b, false, err
	}
	if b, _, err = convertGroup[B](groups[1]); err != nil {
		return a, b, false, err
	}
	return a, b, true, nil
}

// Get3 converts the match to a triple; binding follows Get2.
func Get3[A, B, C any](m *Match, groupNames ...string) (A, B, C, error) {
	var a A
	var b B
	var c C
	if !matched(m) {
		return a, b, c, ErrMatchFailed
	}
	groups, err := bindGroups(m, 3, groupNames)
	if err != nil {
		return a, b, c, err
	}
	if a, _, err = convertGroup[A](groups[0]); err != nil {
		return a, b, c, err
	}
	if b, _, err = convertGroup[B](groups[1]); err != nil {
		return a, b, c, err
	}
	c, _, err = convertGroup[C](groups[2])
	return a, b, c, err
}

// TryGet3 is Get3 with TryGet2's failed-match behavior.
func TryGet3[A, B, C any](m *Match, groupNames ...string) (a A, b B, c C, ok bool, err error) {
	if !matched(m) {
		return a, b, c, false, nil
	}
	groups, err := bindGroups(m, 3, groupNames)
	if err != nil {
		return a, b, c, false, err
	}
	if a, _, err = convertGroup[A](groups[0]); err != nil {
		return a, b, c, false, err
	}
	if b, _, err = convertGroup[B](groups[1]); err != nil {
		return a, b, c, false, err
	}
	if c, _, err = convertGroup[C](groups[2]); err != nil {
		return a, b, c, false, err
	}
	return a, b, c, true, nil
}

// Get4 converts the match to a quadruple; binding follows Get2.
func Get4[A, B, C, D any](m *Match, groupNames ...string) (A, B, C, D, error) {
	var a A
	var b B
	var c C
	var d D
	if !matched(m) {
		return a, b, c, d, ErrMatchFailed
	}
	groups, err := bindGroups(m, 4, groupNames)
	if err != nil {
		return a, b, c, d, err
	}
	if a, _, err = convertGroup[A](groups[0]); err != nil {
		return a, b, c, d, err
	}
	if b, _, err = convertGroup[B](groups[1]); err != nil {
		return a, b, c, d, err
	}
	if c, _, err = convertGroup[C](groups[2]); err != nil {
		return a, b, c, d, err
	}
	d, _, err = convertGroup[D](groups[3])
	return a, b, c, d, err
}

// TryGet4 is Get4 with TryGet2's failed-match behavior.
func TryGet4[A, B, C, D any](m *Match, groupNames ...string) (a A, b B, c C, d D, ok bool, err error) {
	if !matched(m) {
		return a, b, c, d, false, nil
	}
	groups, err := bindGroups(m, 4, groupNames)
	if err != nil {
		return a, b, c, d, false, err
	}
	if a, _, err = convertGroup[A](groups[0]); err != nil {
		return a, b, c, d, false, err
	}
	if b, _, err = convertGroup[B](groups[1]); err != nil {
		return a, b, c, d, false, err
	}
	if c, _, err = convertGroup[C](groups[2]); err != nil {
		return a, b, c, d, false, err
	}
	if d, _, err = convertGroup[D](groups[3]); err != nil {
		return a, b, c, d, false, err
	}
	return a, b, c, d, true, nil
}

func matched(m *Match) bool { return m != nil && m.Success }
