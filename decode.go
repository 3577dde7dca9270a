// FILE: lixenwraith/smolconf/decode.go
package smolconf

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// tagName is the struct tag used by Scan and AppendStruct.
const tagName = "conf"

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Scan decodes the store into target, a non-nil pointer to a struct or map.
// Struct fields are matched by their `conf` tag or name; nested structs read
// the underscore-joined keys written by AppendStruct. String values are
// converted to the field types with the same bool grammar as Bool.
func (s *Store) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	var input map[string]any
	if t := rv.Elem().Type(); t.Kind() == reflect.Struct {
		input = s.nestFor(t, "")
	} else {
		input = make(map[string]any, len(s.entries))
		for _, e := range s.entries {
			input[e.Key] = e.Value
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          tagName,
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("failed to scan config into %T: %w", target, err)
	}
	return nil
}

// ScanAndValidate scans into target and then checks its `validate` struct tags.
func (s *Store) ScanAndValidate(target any) error {
	if err := s.Scan(target); err != nil {
		return err
	}
	if err := structValidator().Struct(target); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// decodeHook returns the composite decode hook for all type conversions
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToBoolHookFunc(),
		stringToNetIPHookFunc(),
		stringToURLHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// stringToBoolHookFunc applies the accessor bool grammar (1/0, true/false, on/off).
func stringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		b, ok := parseBool(data.(string))
		if !ok {
			return nil, fmt.Errorf("%w: cannot convert %q to bool", ErrWrongType, data)
		}
		return b, nil
	}
}

// stringToNetIPHookFunc handles net.IP conversion
func stringToNetIPHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(net.IP{}) {
			return data, nil
		}

		str := data.(string)
		ip := net.ParseIP(str)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address: %s", str)
		}
		return ip, nil
	}
}

// stringToURLHookFunc handles url.URL conversion
func stringToURLHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != reflect.TypeOf(url.URL{}) {
			return data, nil
		}

		u, err := url.Parse(data.(string))
		if err != nil {
			return nil, fmt.Errorf("invalid URL: %w", err)
		}
		if isPtr {
			return u, nil
		}
		return *u, nil
	}
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// nestFor shapes the flat entries after struct type t, so that nested struct
// fields receive the keys prefixed with their own name and an underscore.
func (s *Store) nestFor(t reflect.Type, prefix string) map[string]any {
	out := make(map[string]any)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get(tagName)
		if tag == "-" {
			continue
		}
		name := field.Name
		if n, _, _ := strings.Cut(tag, ","); n != "" {
			name = n
		}

		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct && !isLeafType(ft) {
			if sub := s.nestFor(ft, prefix+name+"_"); len(sub) > 0 {
				out[name] = sub
			}
			continue
		}

		if v, ok := s.Find(prefix + name); ok {
			out[name] = v
		}
	}
	return out
}

// isLeafType mirrors isLeafStruct for types without a value at hand.
func isLeafType(t reflect.Type) bool {
	if t == reflect.TypeOf(time.Time{}) || t == reflect.TypeOf(url.URL{}) {
		return true
	}
	return t.Implements(stringerType) || reflect.PointerTo(t).Implements(stringerType)
}
