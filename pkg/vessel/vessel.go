// Package vessel provides the typed value container that a recipe run
// transforms step by step. A Vessel holds exactly one value at a time and
// converts it between a small set of representations on demand.
package vessel

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Type identifies the representation a value is requested or stored under.
type Type int

const (
	TypeText Type = iota
	TypeBytes
	TypeNumber
	TypeJSON
)

// String returns the canonical lowercase name used in recipe documents.
func (t Type) String() string {
	switch t {
	case TypeBytes:
		return "bytes"
	case TypeNumber:
		return "number"
	case TypeJSON:
		return "json"
	default:
		return "text"
	}
}

// TypeFromString resolves a recipe-document type tag. Unknown tags resolve to
// TypeText so a sloppy recipe degrades instead of failing to load.
func TypeFromString(s string) Type {
	switch s {
	case "bytes", "byte_array", "byteArray":
		return TypeBytes
	case "number":
		return TypeNumber
	case "json", "JSON":
		return TypeJSON
	default:
		return TypeText
	}
}

// Vessel is the mutable value container threaded through a recipe run.
// It is not safe for concurrent use; a run owns its vessel exclusively.
type Vessel struct {
	value any
	typ   Type
}

// New creates a vessel holding value under the given type tag.
func New(value any, t Type) *Vessel {
	return &Vessel{value: value, typ: t}
}

// Type returns the tag the current value was stored under.
func (v *Vessel) Type() Type {
	return v.typ
}

// Set replaces the current value and its type tag.
func (v *Vessel) Set(value any, t Type) {
	v.value = value
	v.typ = t
}

// Get returns the current value converted to the requested representation.
func (v *Vessel) Get(t Type) (any, error) {
	switch t {
	case TypeText:
		return v.Text()
	case TypeBytes:
		s, err := v.Text()
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case TypeNumber:
		s, err := v.Text()
		if err != nil {
			return nil, err
		}
		if s == "" {
			return float64(0), nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot read vessel as number: %w", err)
		}
		return n, nil
	case TypeJSON:
		s, err := v.Text()
		if err != nil {
			return nil, err
		}
		var out any
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return nil, fmt.Errorf("cannot read vessel as json: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown vessel type %d", t)
	}
}

// Text returns the string projection of the current value.
func (v *Vessel) Text() (string, error) {
	switch val := v.value.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(val), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", fmt.Errorf("cannot project vessel value to text: %w", err)
		}
		return string(b), nil
	}
}

// Empty reports whether the vessel holds no usable value.
func (v *Vessel) Empty() bool {
	switch val := v.value.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []byte:
		return len(val) == 0
	default:
		return false
	}
}
