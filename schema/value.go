package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindText
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "INT"
	case KindFloat:
		return "FLOAT"
	case KindText:
		return "TEXT"
	case KindTimestamp:
		return "TIMESTAMP"
	}
	return "NULL"
}

// Value is a single cell. Only the field matching kind is meaningful, which
// keeps Value comparable with == and usable as a map key.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string // TEXT and TIMESTAMP (ISO-8601)
}

func Null() Value                { return Value{} }
func Int(i int64) Value          { return Value{kind: KindInt, i: i} }
func Float(f float64) Value      { return Value{kind: KindFloat, f: f} }
func Text(s string) Value        { return Value{kind: KindText, s: s} }
func Timestamp(iso string) Value { return Value{kind: KindTimestamp, s: iso} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsInt returns the integer payload.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the numeric payload of an INT or FLOAT value as float64.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// AsText returns the string payload of a TEXT or TIMESTAMP value.
func (v Value) AsText() (string, bool) {
	return v.s, v.kind == KindText || v.kind == KindTimestamp
}

// Interface unwraps the value into a plain Go value (nil, int64, float64 or string).
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindText, KindTimestamp:
		return v.s
	}
	return nil
}

// String renders the value for display; NULL renders as "NULL".
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindText, KindTimestamp:
		return v.s
	}
	return "NULL"
}

// GoString is used by %#v and in error messages; text is quoted.
func (v Value) GoString() string {
	if v.kind == KindText || v.kind == KindTimestamp {
		return strconv.Quote(v.s)
	}
	return v.String()
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'N' || c == 'I' {
			return s
		}
	}
	return s + ".0"
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// FromInterface converts a decoded JSON or caller-supplied Go value into an
// uncast Value. Numbers decoded with UseNumber stay exact.
func FromInterface(x interface{}) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case int:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case string:
		return Text(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %s", t)
		}
		return Float(f), nil
	case bool:
		return Text(strconv.FormatBool(t)), nil
	}
	return Value{}, fmt.Errorf("unsupported value %v (%T)", x, x)
}
