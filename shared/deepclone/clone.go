// Package deepclone provides reflection-based value copying with two depths:
// Shallow duplicates the outermost container only, Deep recurses through
// nested containers and follows pointers with cycle protection.
package deepclone

import "reflect"

// Shallow returns a one-level copy of v. Slices, maps and pointers get a new
// outer cell whose elements are shared with the original; every other value
// is returned as-is, since Go assignment already copies it.
func Shallow(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(cp, rv)
		return cp.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), iter.Value())
		}
		return cp.Interface()
	case reflect.Pointer:
		if rv.IsNil() {
			return v
		}
		cp := reflect.New(rv.Type().Elem())
		cp.Elem().Set(rv.Elem())
		return cp.Interface()
	default:
		return v
	}
}

// Deep returns a recursive copy of v. Pointers, slices, arrays, maps and the
// exported fields of structs are copied all the way down; pointer cycles are
// preserved in the copy rather than recursed into. Channels, functions and
// unexported pointer-bearing struct fields are shared with the original,
// since reflection cannot duplicate them.
func Deep(v any) any {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return v
	}
	return deepValue(rv, map[visit]reflect.Value{}).Interface()
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

func deepValue(rv reflect.Value, seen map[visit]reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return rv
		}
		key := visit{ptr: rv.Pointer(), typ: rv.Type()}
		if cached, ok := seen[key]; ok {
			return cached
		}
		cp := reflect.New(rv.Type().Elem())
		seen[key] = cp
		cp.Elem().Set(deepValue(rv.Elem(), seen))
		return cp

	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			cp.Index(i).Set(deepValue(rv.Index(i), seen))
		}
		return cp

	case reflect.Array:
		cp := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			cp.Index(i).Set(deepValue(rv.Index(i), seen))
		}
		return cp

	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		cp := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			cp.SetMapIndex(deepValue(iter.Key(), seen), deepValue(iter.Value(), seen))
		}
		return cp

	case reflect.Struct:
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		for i := 0; i < rv.NumField(); i++ {
			if field := cp.Field(i); field.CanSet() {
				field.Set(deepValue(rv.Field(i), seen))
			}
		}
		return cp

	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(deepValue(rv.Elem(), seen))
		return cp

	default:
		return rv
	}
}
