// FILE: lixenwraith/smolconf/builder.go
package smolconf

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
)

// ValidatorFunc defines the signature for a function that can validate a Store.
// It receives the fully loaded store and should return an error if validation fails.
type ValidatorFunc func(s *Store) error

// Builder provides a fluent interface for building configurations
type Builder struct {
	opts       LoadOptions
	defaults   *Store
	prefix     string
	file       string
	args       []string
	probe      FileProbe
	required   []string
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultLoadOptions(),
		defaults:   New(DefaultCapacity),
		args:       os.Args[1:],
		validators: make([]ValidatorFunc, 0),
	}
}

// WithPrefix sets the key prefix used by WithDefaults for struct defaults
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// WithDefaults adds default values from a struct (see AppendStruct), a
// map[string]string, or another *Store. Earlier defaults win over later ones.
func (b *Builder) WithDefaults(defaults any) *Builder {
	if b.err != nil {
		return b
	}

	switch d := defaults.(type) {
	case nil:
	case *Store:
		b.defaults.Concat(d)
	case map[string]string:
		for _, key := range slices.Sorted(maps.Keys(d)) {
			value := d[key]
			if err := checkEntry(key, value); err != nil {
				b.err = fmt.Errorf("invalid default: %w", err)
				return b
			}
			b.defaults.Insert(key, value)
		}
	default:
		if err := b.defaults.AppendStruct(b.prefix, defaults); err != nil {
			b.err = fmt.Errorf("failed to register defaults: %w", err)
		}
	}
	return b
}

// WithEnvPrefix sets the environment variable prefix
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.opts.EnvPrefix = prefix
	return b
}

// WithFile sets the configuration file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithArgs sets the command-line arguments
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithSources sets the precedence order for configuration sources
func (b *Builder) WithSources(sources ...Source) *Builder {
	b.opts.Sources = sources
	return b
}

// WithEnvTransform sets a custom environment variable transformer
func (b *Builder) WithEnvTransform(fn EnvTransformFunc) *Builder {
	b.opts.EnvTransform = fn
	return b
}

// WithEnvWhitelist limits which keys are checked for env vars
func (b *Builder) WithEnvWhitelist(keys ...string) *Builder {
	if b.opts.EnvWhitelist == nil {
		b.opts.EnvWhitelist = make(map[string]bool)
	}
	for _, key := range keys {
		b.opts.EnvWhitelist[key] = true
	}
	return b
}

// WithProbe sets the file probe used by Path on the built store
func (b *Builder) WithProbe(p FileProbe) *Builder {
	b.probe = p
	return b
}

// WithRequired lists keys that must be defined once all sources are merged
func (b *Builder) WithRequired(keys ...string) *Builder {
	b.required = append(b.required, keys...)
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Store with all specified options
func (b *Builder) Build() (*Store, error) {
	if b.err != nil {
		return nil, b.err
	}

	s, loadErr := Load(b.file, b.args, b.defaults, b.opts)
	if s == nil {
		return nil, loadErr
	}
	if loadErr != nil && !onlyConfigNotFound(loadErr) {
		// Return on load errors other than a missing file
		return nil, loadErr
	}
	s.SetProbe(b.probe)

	if len(b.required) > 0 {
		if err := s.Validate(b.required...); err != nil {
			return nil, err
		}
	}

	for _, validator := range b.validators {
		if err := validator(s); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	// ErrConfigNotFound or nil
	return s, loadErr
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Store {
	s, err := b.Build()
	if err != nil {
		// ErrConfigNotFound is not fatal: the store holds defaults and overrides
		if !onlyConfigNotFound(err) {
			panic(fmt.Sprintf("config build failed: %v", err))
		}
	}
	return s
}

// BuildAndScan builds and decodes the final configuration into the provided target struct pointer
func (b *Builder) BuildAndScan(target any) error {
	s, err := b.Build()
	if err != nil && !onlyConfigNotFound(err) {
		return err
	}

	if err := s.ScanAndValidate(target); err != nil {
		return fmt.Errorf("failed to scan final config into target: %w", err)
	}

	// ErrConfigNotFound or nil
	return err
}

// onlyConfigNotFound reports whether err, possibly joined from several
// sources, holds nothing but missing-file errors.
func onlyConfigNotFound(err error) bool {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !onlyConfigNotFound(e) {
				return false
			}
		}
		return true
	}
	return errors.Is(err, ErrConfigNotFound)
}
