package schema

import (
	"math"
	"strconv"
	"strings"
	"time"

	"kopadb/dberr"
)

// TimestampLayout is the layout used for generated timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// FormatTimestamp renders t as an ISO-8601 timestamp value.
func FormatTimestamp(t time.Time) Value {
	return Timestamp(t.Format(TimestampLayout))
}

// ParseTimestamp accepts the ISO-8601 forms the engine stores.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Cast converts v to the variant declared by col. NULL casts to NULL for
// every type. A failed conversion is a *dberr.TypeMismatchError.
func Cast(col Column, v Value) (Value, error) {
	if v.IsNull() {
		return v, nil
	}
	mismatch := func() (Value, error) {
		return Value{}, &dberr.TypeMismatchError{Column: col.Name, Value: v.GoString(), Target: string(col.Type)}
	}

	switch col.Type {
	case TypeInt:
		switch v.kind {
		case KindInt:
			return v, nil
		case KindFloat:
			if v.f != math.Trunc(v.f) || math.IsInf(v.f, 0) || v.f >= math.MaxInt64 || v.f < math.MinInt64 {
				return mismatch()
			}
			return Int(int64(v.f)), nil
		case KindText:
			i, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
			if err != nil {
				return mismatch()
			}
			return Int(i), nil
		}
	case TypeFloat:
		switch v.kind {
		case KindFloat:
			if !finite(v.f) {
				return mismatch()
			}
			return v, nil
		case KindInt:
			return Float(float64(v.i)), nil
		case KindText:
			f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
			if err != nil || !finite(f) {
				return mismatch()
			}
			return Float(f), nil
		}
	case TypeText:
		return Text(v.String()), nil
	case TypeTimestamp:
		switch v.kind {
		case KindTimestamp:
			return v, nil
		case KindText:
			if _, ok := ParseTimestamp(v.s); !ok {
				return mismatch()
			}
			return Timestamp(strings.TrimSpace(v.s)), nil
		case KindInt:
			// unix seconds
			return FormatTimestamp(time.Unix(v.i, 0).UTC()), nil
		}
	}
	return mismatch()
}

// finite rejects NaN and the infinities, which can neither key an index nor
// be written to a snapshot.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
