package recap

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// convertGroup produces the typed value for one bound group. The second
// result reports presence: false means the designated absent value was
// returned (zero for value targets, nil for pointer and slice targets).
//
// Supported targets: *Group and *Capture handles, string, bool, the fixed
// width integer and float kinds, decimal.Decimal, uuid.UUID, pointer forms
// of those scalars, slices of them, []Capture, and any type implementing
// encoding.TextUnmarshaler, in value or pointer form.
func convertGroup[T any](g *Group) (T, bool, error) {
	var value T

	// The group handle is the one target immune to the absence rule.
	if h, ok := any(&value).(**Group); ok {
		*h = g
		return value, true, nil
	}
	if !g.Success {
		return value, false, nil
	}

	present := true
	var err error
	switch p := any(&value).(type) {
	// Slice targets convert the group's whole capture history in order.
	case *[]Capture:
		*p = slices.Clone(g.Captures)
	case *[]string:
		err = assignSlice(g, p)
	case *[]bool:
		err = assignSlice(g, p)
	case *[]int:
		err = assignSlice(g, p)
	case *[]int8:
		err = assignSlice(g, p)
	case *[]int16:
		err = assignSlice(g, p)
	case *[]int32:
		err = assignSlice(g, p)
	case *[]int64:
		err = assignSlice(g, p)
	case *[]uint:
		err = assignSlice(g, p)
	case *[]uint8:
		err = assignSlice(g, p)
	case *[]uint16:
		err = assignSlice(g, p)
	case *[]uint32:
		err = assignSlice(g, p)
	case *[]uint64:
		err = assignSlice(g, p)
	case *[]float32:
		err = assignSlice(g, p)
	case *[]float64:
		err = assignSlice(g, p)
	case *[]decimal.Decimal:
		err = assignSlice(g, p)
	case *[]uuid.UUID:
		err = assignSlice(g, p)

	// Nullable scalars. String and bool take their value from presence
	// alone; the remaining kinds treat empty or all-whitespace text as
	// absent instead of malformed.
	case **string:
		s := g.Value()
		*p = &s
	case **bool:
		b := true
		*p = &b
	case **int:
		present, err = assignNullable(g, p)
	case **int8:
		present, err = assignNullable(g, p)
	case **int16:
		present, err = assignNullable(g, p)
	case **int32:
		present, err = assignNullable(g, p)
	case **int64:
		present, err = assignNullable(g, p)
	case **uint:
		present, err = assignNullable(g, p)
	case **uint8:
		present, err = assignNullable(g, p)
	case **uint16:
		present, err = assignNullable(g, p)
	case **uint32:
		present, err = assignNullable(g, p)
	case **uint64:
		present, err = assignNullable(g, p)
	case **float32:
		present, err = assignNullable(g, p)
	case **float64:
		present, err = assignNullable(g, p)
	case **decimal.Decimal:
		present, err = assignNullable(g, p)
	case **uuid.UUID:
		present, err = assignNullable(g, p)

	default:
		if v, present, handled, nerr := nullableText[T](g); handled {
			return v, present, nerr
		}
		v, cerr := convertCapture[T](g.Capture())
		if cerr != nil {
			return value, false, cerr
		}
		return v, true, nil
	}
	if err != nil {
		var zero T
		return zero, false, err
	}
	return value, present, nil
}

// assignSlice converts every capture of g to E, preserving capture order.
func assignSlice[E any](g *Group, dst *[]E) error {
	out := make([]E, len(g.Captures))
	for i := range g.Captures {
		v, err := convertCapture[E](&g.Captures[i])
		if err != nil {
			return err
		}
		out[i] = v
	}
	*dst = out
	return nil
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// nullableText handles pointer targets whose element type implements
// encoding.TextUnmarshaler, such as pointers to enumerated types. The element
// types are open-ended, so this is the one conversion that cannot go through
// the closed type switch. The nullable rule applies as for the numeric
// pointer kinds: empty or all-whitespace text yields nil.
func nullableText[T any](g *Group) (value T, present, handled bool, err error) {
	t := reflect.TypeOf(value)
	if t == nil || t.Kind() != reflect.Pointer || !reflect.PointerTo(t.Elem()).Implements(textUnmarshalerType) {
		return value, false, false, nil
	}
	text := g.Value()
	if strings.TrimSpace(text) == "" {
		return value, false, true, nil
	}
	elem := reflect.New(t.Elem())
	if uerr := elem.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); uerr != nil {
		if errors.Is(uerr, ErrFormat) {
			return value, false, true, uerr
		}
		return value, false, true, fmt.Errorf("cannot convert %q to %s: %w", text, t, ErrFormat)
	}
	reflect.ValueOf(&value).Elem().Set(elem)
	return value, true, true, nil
}

// assignNullable converts the group's last capture to *E, mapping empty or
// all-whitespace text to nil. The returned flag reports presence.
func assignNullable[E any](g *Group, dst **E) (bool, error) {
	if strings.TrimSpace(g.Value()) == "" {
		*dst = nil
		return false, nil
	}
	v, err := convertCapture[E](g.Capture())
	if err != nil {
		return false, err
	}
	*dst = &v
	return true, nil
}

// convertCapture converts one capture's text to a scalar target. Unlike the
// nullable path, empty text reaching a numeric kind here is malformed and
// reports a format error rather than an absent value.
func convertCapture[T any](c *Capture) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case **Capture:
		*p = c
	case *string:
		*p = c.Text
	case *bool:
		// A successful capture is itself the boolean signal.
		*p = true
	case *int:
		v, err := parseNumber(kindInt, c.Text)
		if err != nil {
			return out, err
		}
		*p = int(v.i)
	case *int8:
		v, err := parseNumber(kindInt8, c.Text)
		if err != nil {
			return out, err
		}
		*p = int8(v.i)
	case *int16:
		v, err := parseNumber(kindInt16, c.Text)
		if err != nil {
			return out, err
		}
		*p = int16(v.i)
	case *int32:
		v, err := parseNumber(kindInt32, c.Text)
		if err != nil {
			return out, err
		}
		*p = int32(v.i)
	case *int64:
		v, err := parseNumber(kindInt64, c.Text)
		if err != nil {
			return out, err
		}
		*p = v.i
	case *uint:
		v, err := parseNumber(kindUint, c.Text)
		if err != nil {
			return out, err
		}
		*p = uint(v.u)
	case *uint8:
		v, err := parseNumber(kindUint8, c.Text)
		if err != nil {
			return out, err
		}
		*p = uint8(v.u)
	case *uint16:
		v, err := parseNumber(kindUint16, c.Text)
		if err != nil {
			return out, err
		}
		*p = uint16(v.u)
	case *uint32:
		v, err := parseNumber(kindUint32, c.Text)
		if err != nil {
			return out, err
		}
		*p = uint32(v.u)
	case *uint64:
		v, err := parseNumber(kindUint64, c.Text)
		if err != nil {
			return out, err
		}
		*p = v.u
	case *float32:
		v, err := parseNumber(kindFloat32, c.Text)
		if err != nil {
			return out, err
		}
		*p = float32(v.f)
	case *float64:
		v, err := parseNumber(kindFloat64, c.Text)
		if err != nil {
			return out, err
		}
		*p = v.f
	case *decimal.Decimal:
		v, err := parseNumber(kindDecimal, c.Text)
		if err != nil {
			return out, err
		}
		*p = v.d
	case *uuid.UUID:
		id, err := uuid.Parse(strings.TrimSpace(c.Text))
		if err != nil {
			return out, fmt.Errorf("cannot convert %q to uuid: %w", c.Text, ErrFormat)
		}
		*p = id
	default:
		u, ok := any(&out).(encoding.TextUnmarshaler)
		if !ok {
			return out, fmt.Errorf("cannot convert to %T: %w", out, ErrUnsupportedType)
		}
		if err := u.UnmarshalText([]byte(c.Text)); err != nil {
			if errors.Is(err, ErrFormat) {
				return out, err
			}
			return out, fmt.Errorf("cannot convert %q to %T: %w", c.Text, out, ErrFormat)
		}
	}
	return out, nil
}
