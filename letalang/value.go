package letalang

import (
	"fmt"
	"strconv"
)

// Value is any of: nil (null), float64, string, bool, *UserFunc, *NativeFunc.
type Value = any

func Repr(v Value) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	case Callable:
		return v.Repr()
	}
	return fmt.Sprintf("%v", v)
}

func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	}
	return true
}

func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case bool:
		vb, ok := b.(bool)
		return ok && a == vb
	case float64:
		vb, ok := b.(float64)
		return ok && a == vb
	case string:
		vb, ok := b.(string)
		return ok && a == vb
	}
	// function values compare by identity
	return a == b
}

func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case Callable:
		return "function"
	}
	return fmt.Sprintf("%T", v)
}
