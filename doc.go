// Package recap converts regular expression captures into strongly typed Go
// values.
//
// A Match carries the group and capture structure of one match attempt;
// adapters build it from the standard library regexp engine (MatchString) or
// from dlclark/regexp2 (FromRegexp2), which preserves full capture history
// for groups inside quantified subpatterns.
//
// Get extracts a single value, Get2 through Get4 extract fixed-arity tuples.
// Without group names, values bind positionally to capturing groups; with
// names, one name per output slot. The TryGet variants map a failed match to
// the zero value instead of an error, and Lookup adds an explicit presence
// flag.
//
// Pointer targets are nullable: a group that did not participate, or empty
// text for a numeric kind, yields nil. Non-pointer targets yield their zero
// value on absence, except that empty text for a non-nullable numeric kind is
// a format error rather than a zero. Slice targets convert every capture of
// the bound group in order.
package recap
