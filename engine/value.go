package engine

import "time"

// Value is one property value crossing the engine boundary: a PropType kind
// plus the payload for that kind. Absence is signaled out of band by the
// bool returned alongside a Value, so a zero Value with TypeEmpty never
// stands in for "no value".
type Value struct {
	Kind PropType
	Str  string
	Int  int64
	Bool bool
	Time time.Time
}

// StringValue returns a TypeString value.
func StringValue(s string) Value {
	return Value{Kind: TypeString, Str: s}
}

// BoolValue returns a TypeBool value.
func BoolValue(b bool) Value {
	return Value{Kind: TypeBool, Bool: b}
}

// IntValue returns a TypeInt value for 32-bit quantities (CRCs, attribute
// bit sets).
func IntValue(v int64) Value {
	return Value{Kind: TypeInt, Int: v}
}

// LongValue returns a TypeLong value for 64-bit quantities (sizes, offsets).
func LongValue(v int64) Value {
	return Value{Kind: TypeLong, Int: v}
}

// TimeValue returns a TypeFileTime value.
func TimeValue(t time.Time) Value {
	return Value{Kind: TypeFileTime, Time: t}
}
