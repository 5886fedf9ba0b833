package recap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// numKind identifies a primitive numeric target type.
type numKind int

const (
	kindInt numKind = iota
	kindInt8
	kindInt16
	kindInt32
	kindInt64
	kindUint
	kindUint8
	kindUint16
	kindUint32
	kindUint64
	kindFloat32
	kindFloat64
	kindDecimal
	kindCount
)

func (k numKind) String() string {
	switch k {
	case kindInt:
		return "int"
	case kindInt8:
		return "int8"
	case kindInt16:
		return "int16"
	case kindInt32:
		return "int32"
	case kindInt64:
		return "int64"
	case kindUint:
		return "uint"
	case kindUint8:
		return "uint8"
	case kindUint16:
		return "uint16"
	case kindUint32:
		return "uint32"
	case kindUint64:
		return "uint64"
	case kindFloat32:
		return "float32"
	case kindFloat64:
		return "float64"
	case kindDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// parsed is the converter's intermediate numeric form. Exactly one field is
// set, according to the family of the kind that produced it.
type parsed struct {
	i int64
	u uint64
	f float64
	d decimal.Decimal
}

type parseFunc func(text string) (parsed, error)

// parsers returns the kind-to-parser table. The table is built exactly once
// on first use and is read-only afterwards, so concurrent lookups need no
// coordination.
var parsers = sync.OnceValue(buildParsers)

func buildParsers() map[numKind]parseFunc {
	return map[numKind]parseFunc{
		kindInt:     signedParser(strconv.IntSize),
		kindInt8:    signedParser(8),
		kindInt16:   signedParser(16),
		kindInt32:   signedParser(32),
		kindInt64:   signedParser(64),
		kindUint:    unsignedParser(strconv.IntSize),
		kindUint8:   unsignedParser(8),
		kindUint16:  unsignedParser(16),
		kindUint32:  unsignedParser(32),
		kindUint64:  unsignedParser(64),
		kindFloat32: floatParser(32),
		kindFloat64: floatParser(64),
		kindDecimal: parseDecimal,
	}
}

func signedParser(bits int) parseFunc {
	return func(text string) (parsed, error) {
		v, err := strconv.ParseInt(text, 10, bits)
		if err != nil {
			return parsed{}, err
		}
		return parsed{i: v}, nil
	}
}

func unsignedParser(bits int) parseFunc {
	return func(text string) (parsed, error) {
		v, err := strconv.ParseUint(text, 10, bits)
		if err != nil {
			return parsed{}, err
		}
		return parsed{u: v}, nil
	}
}

func floatParser(bits int) parseFunc {
	return func(text string) (parsed, error) {
		v, err := strconv.ParseFloat(text, bits)
		if err != nil {
			return parsed{}, err
		}
		return parsed{f: v}, nil
	}
}

func parseDecimal(text string) (parsed, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return parsed{}, err
	}
	return parsed{d: d}, nil
}

// parseNumber converts trimmed capture text through the parser table,
// classifying failures as format or overflow errors. Parsing is culture
// independent: no grouping separators, standard decimal literal grammar.
func parseNumber(kind numKind, text string) (parsed, error) {
	v, err := parsers()[kind](strings.TrimSpace(text))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return parsed{}, fmt.Errorf("cannot convert %q to %s: %w", text, kind, ErrOverflow)
		}
		return parsed{}, fmt.Errorf("cannot convert %q to %s: %w", text, kind, ErrFormat)
	}
	return v, nil
}
