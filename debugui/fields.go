package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

// Field is one exported struct field formatted for display.
type Field struct {
	Name  string
	Value string
	// Nested holds the fields of struct values.
	Nested []Field
}

type fieldInfo struct {
	name  string
	index int
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

func exportedFields(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}

	var fields []fieldInfo
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fields = append(fields, fieldInfo{name: f.Name, index: i})
	}
	fieldCache.Store(t, fields)
	return fields
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

// Fields lists the exported fields of v, which must be a struct or a
// pointer to one. Types implementing fmt.Stringer are shown with String
// rather than expanded, so a Board prints as its grid.
func Fields(v any) []Field {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}
	return structFields(val)
}

func structFields(val reflect.Value) []Field {
	infos := exportedFields(val.Type())
	out := make([]Field, 0, len(infos))
	for _, info := range infos {
		out = append(out, field(info.name, val.Field(info.index)))
	}
	return out
}

func field(name string, val reflect.Value) Field {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return Field{Name: name, Value: "nil"}
		}
		val = val.Elem()
	}

	if val.Type().Implements(stringerType) {
		return Field{Name: name, Value: val.Interface().(fmt.Stringer).String()}
	}

	switch val.Kind() {
	case reflect.Struct:
		return Field{Name: name, Nested: structFields(val)}
	case reflect.Slice, reflect.Array:
		return Field{Name: name, Value: fmt.Sprintf("[%d items]", val.Len())}
	case reflect.Map:
		return Field{Name: name, Value: fmt.Sprintf("map[%d items]", val.Len())}
	case reflect.Func:
		return Field{Name: name, Value: "func"}
	default:
		return Field{Name: name, Value: fmt.Sprintf("%v", val.Interface())}
	}
}
