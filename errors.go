package recap

import "errors"

// Error kinds reported by extraction. Returned errors wrap exactly one of
// these sentinels, so callers can discriminate with errors.Is.
var (
	// ErrMatchFailed is reported by Get-family entry points when the
	// underlying match did not succeed. TryGet-family entry points return
	// the zero value instead.
	ErrMatchFailed = errors.New("match failed")

	// ErrUnsupportedShape is reported for tuple bindings of arity below 2.
	ErrUnsupportedShape = errors.New("unsupported tuple shape")

	// ErrArityMismatch is reported when the supplied group names do not
	// match the number of output slots.
	ErrArityMismatch = errors.New("group name count mismatch")

	// ErrInsufficientGroups is reported when positional tuple binding needs
	// more capturing groups than the pattern provides.
	ErrInsufficientGroups = errors.New("insufficient capturing groups")

	// ErrFormat is reported when capture text is not a valid literal for the
	// requested type, including empty text for a non-nullable numeric target.
	ErrFormat = errors.New("invalid format")

	// ErrOverflow is reported when capture text is numerically valid but
	// exceeds the target type's range.
	ErrOverflow = errors.New("value out of range")

	// ErrUnsupportedType is reported when the requested target type is not
	// one of the supported kinds.
	ErrUnsupportedType = errors.New("unsupported target type")
)
