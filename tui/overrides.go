package tui

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
)

// ApplyOverrides rebinds KeyMap fields from config keys. Config keys are the
// snake_case form of the field names (NextResult -> next_result); unknown
// keys and empty lists are ignored. Help descriptions are preserved.
func ApplyOverrides(km *KeyMap, overrides map[string][]string) {
	if len(overrides) == 0 {
		return
	}

	v := reflect.ValueOf(km).Elem()
	t := v.Type()
	bindingType := reflect.TypeOf(key.Binding{})

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() || t.Field(i).Type != bindingType {
			continue
		}

		keys, ok := overrides[camelToSnake(t.Field(i).Name)]
		if !ok || len(keys) == 0 {
			continue
		}

		current := field.Interface().(key.Binding)
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], current.Help().Desc),
		)))
	}
}

// camelToSnake converts a CamelCase field name to its snake_case config key.
func camelToSnake(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteRune('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
