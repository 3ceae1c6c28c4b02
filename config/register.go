// FILE: lixenwraith/sitecore/config/register.go
package config

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
)

// StructMapping converts a struct with default values into a configuration
// layer. Paths come from struct tags (tagName, "toml" when empty) or field
// names; nested structs become nested mappings. The prefix, if any, is the
// dot-path the fields are placed under (e.g. "plugins.search").
func StructMapping(prefix string, structWithDefaults any, tagName string) (*Mapping, error) {
	if tagName == "" {
		tagName = "toml"
	}

	v := reflect.ValueOf(structWithDefaults)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("struct defaults require a non-nil struct pointer or value")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("struct defaults require a struct or struct pointer, got %T", structWithDefaults)
	}

	root := NewMapping()
	target := root
	if prefix = strings.Trim(prefix, "."); prefix != "" {
		if err := ValidatePath(prefix); err != nil {
			return nil, err
		}
		target = root.ensureSegments(splitPath(prefix))
	}

	var errs []string
	registerFields(target, v, tagName, "", &errs)
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to register %d field(s): %s", len(errs), strings.Join(errs, "; "))
	}

	return root, nil
}

// registerFields handles the recursive field registration.
func registerFields(m *Mapping, v reflect.Value, tagName, fieldPath string, errs *[]string) {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get(tagName)
		if tag == "-" {
			continue
		}

		key := field.Name
		if tag != "" {
			if name, _, _ := strings.Cut(tag, ","); name != "" {
				key = name
			}
		}
		if !isValidKeySegment(key) {
			*errs = append(*errs, fmt.Sprintf("field %s%s: invalid key %q", fieldPath, field.Name, key))
			continue
		}

		if leaf, ok := structLeaf(fieldValue); ok {
			m.Set(key, leaf)
			continue
		}

		isPtrToStruct := fieldValue.Kind() == reflect.Pointer && field.Type.Elem().Kind() == reflect.Struct
		if fieldValue.Kind() == reflect.Struct || isPtrToStruct {
			nested := fieldValue
			if isPtrToStruct {
				if fieldValue.IsNil() {
					continue // nil pointers carry no defaults
				}
				nested = fieldValue.Elem()
			}
			child := NewMapping()
			registerFields(child, nested, tagName, fieldPath+field.Name+".", errs)
			m.Set(key, Table(child))
			continue
		}

		m.Set(key, FromAny(fieldValue.Interface()))
	}
}

// structLeaf reports whether a struct (or struct pointer) field is a single
// value rather than a nested section. Text marshalers and stringers such as
// time.Time and url.URL are stored in their text form, structs without
// exported fields as opaque scalars. Nil pointers are not leaves.
func structLeaf(v reflect.Value) (Value, bool) {
	ptr := v
	switch {
	case v.Kind() == reflect.Pointer && v.Type().Elem().Kind() == reflect.Struct:
		if v.IsNil() {
			return Null(), false
		}
	case v.Kind() == reflect.Struct:
		ptr = reflect.New(v.Type())
		ptr.Elem().Set(v)
	default:
		return Null(), false
	}

	switch x := ptr.Interface().(type) {
	case encoding.TextMarshaler:
		text, err := x.MarshalText()
		if err != nil {
			return Null(), false
		}
		return Scalar(string(text)), true
	case fmt.Stringer:
		return Scalar(x.String()), true
	}

	t := ptr.Type().Elem()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return Null(), false
		}
	}
	return Scalar(ptr.Elem().Interface()), true
}
