// Package keys lists the own keys of records: struct fields, map keys and
// the keys of YAML or JSON objects.
//
// Order follows JavaScript property enumeration where Go can express it:
// array-index keys ("0", "1", ...) first in numeric order, then the
// remaining keys in insertion order. Go maps have no insertion order, so
// their remaining keys are sorted.
package keys

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// ErrNilRecord is the panic value of Of and the error of FromDocument when
// there is no record to enumerate.
var ErrNilRecord = errors.New("keys: cannot list keys of nil")

// Key is a key of a record of type T.
type Key[T any] string

// Of returns the own enumerable keys of v typed as keys of T:
//
//   - structs: exported field names in declaration order. An embedded
//     struct is a single key named after its type; its promoted fields are not
//     own keys.
//   - maps: keys in enumeration order.
//   - slices and arrays: indices.
//   - strings: one index per UTF-16 code unit, as JavaScript counts them.
//   - anything else: no keys.
//
// Of panics with ErrNilRecord if v is nil or a nil pointer.
func Of[T any](v T) []Key[T] {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			panic(ErrNilRecord)
		}
		rv = rv.Elem()
	}

	var names []string
	switch rv.Kind() {
	case reflect.Invalid:
		panic(ErrNilRecord)
	case reflect.Struct:
		names = fieldNames(rv.Type())
	case reflect.Map:
		names = mapKeys(rv)
	case reflect.Slice, reflect.Array:
		names = indices(rv.Len())
	case reflect.String:
		names = indices(utf16Len(rv.String()))
	}

	out := make([]Key[T], len(names))
	for i, n := range names {
		out[i] = Key[T](n)
	}
	return out
}

// Map returns the keys of m in enumeration order.
func Map[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.SortedFunc(maps.Keys(m), compareKeys[K])
}

// Strings converts typed keys to plain strings.
func Strings[T any](ks []Key[T]) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = string(k)
	}
	return out
}

// Compare orders keys of an unordered record: array indices first in
// numeric order, then the rest lexicographically.
func Compare(a, b string) int {
	if c := compareIndexFirst(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func compareKeys[K cmp.Ordered](a, b K) int {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.String {
		return Compare(ra.String(), rb.String())
	}
	return cmp.Compare(a, b)
}

// compareIndexFirst places array-index keys before other keys and orders
// indices numerically. Two non-index keys compare equal so a stable sort
// keeps their insertion order.
func compareIndexFirst(a, b string) int {
	ai, aok := arrayIndex(a)
	bi, bok := arrayIndex(b)
	switch {
	case aok && bok:
		return cmp.Compare(ai, bi)
	case aok:
		return -1
	case bok:
		return 1
	}
	return 0
}

// arrayIndex reports whether s is a canonical array index: a decimal
// integer without leading zeros below 2^32-1.
func arrayIndex(s string) (uint64, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n >= 1<<32-1 {
		return 0, false
	}
	return n, true
}

func fieldNames(rt reflect.Type) []string {
	var names []string
	for i := 0; i < rt.NumField(); i++ {
		if f := rt.Field(i); f.IsExported() {
			names = append(names, f.Name)
		}
	}
	return names
}

func mapKeys(rv reflect.Value) []string {
	names := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		names = append(names, keyString(k))
	}
	slices.SortFunc(names, Compare)
	return names
}

func keyString(k reflect.Value) string {
	switch k.Kind() {
	case reflect.String:
		return k.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10)
	}
	return fmt.Sprint(k.Interface())
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r >= 0x10000 {
			n++
		}
	}
	return n
}

func indices(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}
