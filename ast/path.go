// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

package ast

import "fmt"

// Path traverses v by the given sequence of keys and reports the value at
// the end of the path. A string key selects the named member of an Object;
// an int key indexes an Array, counting from the end if negative.
func Path(v Value, keys ...any) (Value, error) {
	for _, key := range keys {
		switch k := key.(type) {
		case string:
			obj, ok := v.(Object)
			if !ok {
				return nil, fmt.Errorf("value is %T, not an object", v)
			}
			next, ok := obj[k]
			if !ok {
				return nil, fmt.Errorf("key %q not found", k)
			}
			v = next
		case int:
			arr, ok := v.(Array)
			if !ok {
				return nil, fmt.Errorf("value is %T, not an array", v)
			}
			i := k
			if i < 0 {
				i += len(arr)
			}
			if i < 0 || i >= len(arr) {
				return nil, fmt.Errorf("index %d out of range for %d elements", k, len(arr))
			}
			v = arr[i]
		default:
			return nil, fmt.Errorf("invalid key %v (type %[1]T)", key)
		}
	}
	return v, nil
}
