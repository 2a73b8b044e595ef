// Package cn builds class attribute strings for Tailwind CSS components.
//
// Join flattens conditional class inputs the way clsx does. Merge removes
// utility classes overridden by later ones the way tailwind-merge does.
// CN does both and is what component code should call.
package cn

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// ClassValue is anything CN accepts: strings, numbers, nested slices,
// string-keyed maps of conditions, Cond, templ class values and
// fmt.Stringer. Falsy values are ignored.
type ClassValue = any

// Cond is a class applied only when Active is set. Unlike a map of
// conditions it keeps its position in the argument list.
type Cond struct {
	Class  string
	Active bool
}

// If returns a Cond for class.
func If(active bool, class string) Cond {
	return Cond{Class: class, Active: active}
}

// CN joins inputs and resolves Tailwind conflicts so later classes win.
func CN(inputs ...ClassValue) string {
	return Default().Merge(Join(inputs...))
}

// CN joins inputs with Join and merges the result with m.
func (m *Merger) CN(inputs ...ClassValue) string {
	return m.Merge(Join(inputs...))
}

// Join flattens inputs into a space separated class string without
// resolving conflicts.
func Join(inputs ...ClassValue) string {
	var b strings.Builder
	for _, in := range inputs {
		appendValue(&b, in)
	}
	return b.String()
}

func appendClass(b *strings.Builder, class string) {
	if class == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(class)
}

func appendValue(b *strings.Builder, v ClassValue) {
	if isNilPointer(v) {
		return
	}
	switch v := v.(type) {
	case nil, bool:
	case string:
		appendClass(b, v)
	case Cond:
		if v.Active {
			appendClass(b, v.Class)
		}
	case templ.KeyValue[string, bool]:
		if v.Value {
			appendClass(b, v.Key)
		}
	case templ.KeyValue[templ.CSSClass, bool]:
		if v.Value && !isNilPointer(v.Key) {
			appendClass(b, v.Key.ClassName())
		}
	case templ.CSSClass:
		appendClass(b, v.ClassName())
	case fmt.Stringer:
		appendClass(b, v.String())
	case []string:
		for _, s := range v {
			appendClass(b, s)
		}
	case []ClassValue:
		for _, item := range v {
			appendValue(b, item)
		}
	case map[string]bool:
		for _, k := range sortedKeys(v) {
			if v[k] {
				appendClass(b, k)
			}
		}
	default:
		appendReflect(b, reflect.ValueOf(v))
	}
}

// isNilPointer reports whether v is nil or a typed nil pointer, whose
// String or ClassName method would dereference nil.
func isNilPointer(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func appendReflect(b *strings.Builder, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n := rv.Int(); n != 0 {
			appendClass(b, strconv.FormatInt(n, 10))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n := rv.Uint(); n != 0 {
			appendClass(b, strconv.FormatUint(n, 10))
		}
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); f != 0 && !math.IsNaN(f) {
			appendClass(b, strconv.FormatFloat(f, 'f', -1, 64))
		}
	case reflect.String:
		appendClass(b, rv.String())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			appendValue(b, rv.Index(i).Interface())
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return
		}
		mapKeys := rv.MapKeys()
		slices.SortFunc(mapKeys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		for _, k := range mapKeys {
			if truthy(rv.MapIndex(k)) {
				appendClass(b, k.String())
			}
		}
	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() {
			appendValue(b, rv.Elem().Interface())
		}
	}
}

// truthy follows JavaScript truthiness for the value of a condition map.
func truthy(rv reflect.Value) bool {
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
