package view

import "reflect"

// IsFunc reports whether v is a function value. Function-valued attributes
// are event callbacks and cannot be represented in a serialized document.
func IsFunc(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}

// IsPrimitive reports whether v is a JSON-representable scalar:
// nil, bool, string, or a numeric value.
func IsPrimitive(v any) bool {
	switch v.(type) {
	case nil, bool, string, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}
