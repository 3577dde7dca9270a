// FILE: lixenwraith/smolconf/register.go
package smolconf

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// AppendString inserts key=value if key is absent.
func (s *Store) AppendString(key, value string) bool {
	return s.Insert(key, value)
}

// AppendBool inserts "1" or "0" for key if key is absent.
func (s *Store) AppendBool(key string, value bool) bool {
	if value {
		return s.AppendUint64(key, 1)
	}
	return s.AppendUint64(key, 0)
}

// AppendInt64 inserts the decimal form of value if key is absent.
func (s *Store) AppendInt64(key string, value int64) bool {
	return s.Insert(key, strconv.FormatInt(value, 10))
}

// AppendUint64 inserts the decimal form of value if key is absent.
func (s *Store) AppendUint64(key string, value uint64) bool {
	return s.Insert(key, strconv.FormatUint(value, 10))
}

// AppendFloat64 inserts value with six fractional digits if key is absent.
func (s *Store) AppendFloat64(key string, value float64) bool {
	return s.Insert(key, formatFloat(value))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// AppendStruct inserts the exported scalar fields of a struct, using the
// `conf` tag or the field name as key. Nested structs are flattened with an
// underscore. The prefix is prepended to every key (e.g. "log_").
// Existing keys are left untouched; zero-length strings are skipped.
func (s *Store) AppendStruct(prefix string, structValue any) error {
	v := reflect.ValueOf(structValue)

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("AppendStruct requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return fmt.Errorf("AppendStruct requires a struct or struct pointer, got %T", structValue)
	}

	var errs []string
	s.appendFields(v, prefix, &errs)

	if len(errs) > 0 {
		return fmt.Errorf("failed to append %d field(s): %s", len(errs), strings.Join(errs, "; "))
	}
	return nil
}

func (s *Store) appendFields(v reflect.Value, keyPrefix string, errs *[]string) {
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
		key = keyPrefix + key

		if fieldValue.Kind() == reflect.Ptr {
			if fieldValue.IsNil() {
				continue
			}
			if _, isStringer := fieldValue.Interface().(fmt.Stringer); !isStringer {
				fieldValue = fieldValue.Elem()
			}
		}

		if fieldValue.Kind() == reflect.Struct && !isLeafStruct(fieldValue) {
			s.appendFields(fieldValue, key+"_", errs)
			continue
		}

		value, ok := formatField(fieldValue)
		if !ok {
			*errs = append(*errs, fmt.Sprintf("field %s (key %s): unsupported type %s", field.Name, key, fieldValue.Type()))
			continue
		}
		if value == "" {
			continue
		}
		if err := checkEntry(key, value); err != nil {
			*errs = append(*errs, fmt.Sprintf("field %s: %v", field.Name, err))
			continue
		}
		s.Insert(key, value)
	}
}

// isLeafStruct reports struct types written as a single value.
func isLeafStruct(v reflect.Value) bool {
	if v.Type() == reflect.TypeOf(time.Time{}) {
		return true
	}
	_, isStringer := v.Interface().(fmt.Stringer)
	return isStringer
}

// formatField renders a scalar field in the form the typed accessors read back.
func formatField(v reflect.Value) (string, bool) {
	switch val := v.Interface().(type) {
	case time.Duration:
		return val.String(), true
	case time.Time:
		return val.Format(time.RFC3339), true
	case fmt.Stringer:
		return val.String(), true
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		if v.Bool() {
			return "1", true
		}
		return "0", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return formatFloat(v.Float()), true
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return "", false
		}
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = v.Index(i).String()
		}
		return strings.Join(parts, ","), true
	}
	return "", false
}
