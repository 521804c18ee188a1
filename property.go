package pathkit

import (
	"reflect"
	"strings"
)

// PropertyReader gives access to named properties of an object.
// Property returns false if the object has no such property.
type PropertyReader interface {
	Property(name string) (value any, ok bool)
}

// PropertyFunc adapts a function to PropertyReader.
type PropertyFunc func(name string) (any, bool)

func (f PropertyFunc) Property(name string) (any, bool) {
	return f(name)
}

// Properties is a PropertyReader backed by an explicit map.
type Properties map[string]any

func (p Properties) Property(name string) (any, bool) {
	v, ok := p[name]
	if !ok || isNil(v) {
		return nil, false
	}
	return v, true
}

// Reflect returns a PropertyReader which reads properties of v by
// reflection. Values implementing PropertyReader, at the top or at any
// step of a dotted name, are asked through their Property method.
//
// A name is resolved against structs, in this order, by the field
// tagged `path:"name"`, the exported field or zero-argument method
// called name, and the same with the first letter upper-cased, so that
// "articleID" finds the field ArticleID. Only value-receiver methods
// are called, pointer-receiver methods are never looked up. Maps with
// string keys are indexed by name. A dotted name like "author.name"
// walks nested values. Nil values, typed nil pointers included, are
// reported as absent.
func Reflect(v any) PropertyReader {
	if r, ok := v.(reflectReader); ok {
		return r
	}
	return reflectReader{v: v}
}

type reflectReader struct {
	v any
}

func (r reflectReader) Property(name string) (any, bool) {
	if value, ok := property(r.v, name); ok {
		return value, true
	}
	if !strings.Contains(name, ".") {
		return nil, false
	}
	cur := r.v
	for _, seg := range strings.Split(name, ".") {
		var ok bool
		if cur, ok = property(cur, seg); !ok {
			return nil, false
		}
	}
	return cur, true
}

func property(v any, name string) (any, bool) {
	if name == "" || isNil(v) {
		return nil, false
	}
	if pr, ok := v.(PropertyReader); ok {
		out, ok := pr.Property(name)
		if !ok || isNil(out) {
			return nil, false
		}
		return out, true
	}

	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, false
	}
	if out, ok := callMethod(rv, name); ok {
		return out, true
	}

	var out reflect.Value
	switch rv.Kind() {
	case reflect.Struct:
		out = structField(rv, name)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			out = rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		}
	}
	if !out.IsValid() || !out.CanInterface() {
		return nil, false
	}
	value := out.Interface()
	if isNil(value) {
		return nil, false
	}
	return value, true
}

func structField(rv reflect.Value, name string) reflect.Value {
	typ := rv.Type()
	fields := reflect.VisibleFields(typ)
	for _, f := range fields {
		if f.IsExported() && f.Tag.Get("path") == name {
			if out, err := rv.FieldByIndexErr(f.Index); err == nil {
				return out
			}
		}
	}
	for _, candidate := range []string{name, upperFirst(name)} {
		f, ok := typ.FieldByName(candidate)
		if !ok || !f.IsExported() {
			continue
		}
		if out, err := rv.FieldByIndexErr(f.Index); err == nil {
			return out
		}
	}
	return reflect.Value{}
}

func callMethod(rv reflect.Value, name string) (any, bool) {
	for _, candidate := range []string{name, upperFirst(name)} {
		m := rv.MethodByName(candidate)
		if !m.IsValid() {
			continue
		}
		mt := m.Type()
		if mt.NumIn() != 0 || mt.NumOut() != 1 {
			continue
		}
		out := m.Call(nil)[0].Interface()
		if isNil(out) {
			return nil, false
		}
		return out, true
	}
	return nil, false
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
