package util

import (
	"fmt"
	"reflect"
)

// IsStructInitialized checks that every exported pointer, interface, map, slice or func field
// of the given struct is non-nil. Fields tagged `wire:"-"` are ignored.
func IsStructInitialized(i interface{}) error {
	v := reflect.ValueOf(i)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return fmt.Errorf("expected struct, got %s", v.Kind())
	}

	t := v.Type()
	for idx := 0; idx < v.NumField(); idx++ {
		field := t.Field(idx)
		if !field.IsExported() || field.Tag.Get("wire") == "-" {
			continue
		}

		//nolint:exhaustive
		switch v.Field(idx).Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if v.Field(idx).IsNil() {
				return fmt.Errorf("struct field %q is not initialized", field.Name)
			}
		}
	}

	return nil
}
