// FILE: lixenwraith/smolconf/loader.go
package smolconf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// Source represents a configuration source, used to define load precedence
type Source string

const (
	// SourceDefault represents caller-supplied default values
	SourceDefault Source = "default"
	// SourceFile represents values loaded from a configuration file
	SourceFile Source = "file"
	// SourceEnv represents values loaded from environment variables
	SourceEnv Source = "env"
	// SourceCLI represents values loaded from command-line arguments
	SourceCLI Source = "cli"
)

// EnvTransformFunc converts a configuration key to an environment variable name
type EnvTransformFunc func(key string) string

// LoadOptions configures how configuration is loaded from multiple sources
type LoadOptions struct {
	// Sources defines the precedence order (first = highest priority)
	// Default: [SourceCLI, SourceEnv, SourceFile, SourceDefault]
	Sources []Source

	// EnvPrefix is prepended to environment variable names
	// Example: "MYAPP_" transforms "server_port" to "MYAPP_SERVER_PORT"
	EnvPrefix string

	// EnvTransform customizes how keys map to environment variables
	// If nil, uses default transformation (uppercase plus prefix)
	EnvTransform EnvTransformFunc

	// EnvWhitelist limits which keys are checked for env vars (nil = all)
	EnvWhitelist map[string]bool
}

// DefaultLoadOptions returns the standard load options
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Sources: []Source{SourceCLI, SourceEnv, SourceFile, SourceDefault},
	}
}

// Load assembles a store from defaults, a line config file, environment
// variables and command-line arguments. Sources are merged in opts.Sources
// order; since insertion never overwrites, the first source holding a key wins.
//
// Environment variables are only consulted for keys known from the other
// sources. A missing file is reported as ErrConfigNotFound alongside the
// store; syntax and open errors other than a missing file are fatal.
func Load(filePath string, args []string, defaults *Store, opts LoadOptions) (*Store, error) {
	if len(opts.Sources) == 0 {
		opts.Sources = DefaultLoadOptions().Sources
	}

	var loadErrors []error
	stores := make(map[Source]*Store, len(opts.Sources))

	if defaults != nil && slices.Contains(opts.Sources, SourceDefault) {
		stores[SourceDefault] = defaults
	}

	if filePath != "" && slices.Contains(opts.Sources, SourceFile) {
		fileStore, err := Read(filePath)
		switch {
		case err == nil:
			stores[SourceFile] = fileStore
		case errors.Is(err, fs.ErrNotExist):
			loadErrors = append(loadErrors, fmt.Errorf("%w: %s", ErrConfigNotFound, filePath))
		default:
			return nil, err
		}
	}

	if len(args) > 0 && slices.Contains(opts.Sources, SourceCLI) {
		cliStore, err := ParseArgs(args)
		if err != nil {
			loadErrors = append(loadErrors, fmt.Errorf("%w: %w", ErrCLIParse, err))
		} else {
			stores[SourceCLI] = cliStore
		}
	}

	if slices.Contains(opts.Sources, SourceEnv) {
		envStore, err := loadEnv(knownKeys(stores), opts)
		if err != nil {
			loadErrors = append(loadErrors, err)
		}
		stores[SourceEnv] = envStore
	}

	capacity := 0
	for _, st := range stores {
		capacity += st.Len()
	}
	result := New(capacity)
	for _, source := range opts.Sources {
		result.Concat(stores[source])
	}

	return result, errors.Join(loadErrors...)
}

// knownKeys lists the keys of all loaded stores, without duplicates.
func knownKeys(stores map[Source]*Store) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, source := range []Source{SourceCLI, SourceFile, SourceDefault} {
		st, ok := stores[source]
		if !ok {
			continue
		}
		for _, key := range st.Keys() {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	return keys
}

// loadEnv looks up the environment variable of each key.
// Values that could not be written back as a line are skipped and reported.
func loadEnv(keys []string, opts LoadOptions) (*Store, error) {
	transform := opts.EnvTransform
	if transform == nil {
		transform = defaultEnvTransform(opts.EnvPrefix)
	}

	s := New(len(keys))
	var errs []error
	for _, key := range keys {
		if opts.EnvWhitelist != nil && !opts.EnvWhitelist[key] {
			continue
		}

		envVar := transform(key)
		value, exists := os.LookupEnv(envVar)
		if !exists {
			continue
		}
		if err := checkEntry(key, value); err != nil {
			errs = append(errs, fmt.Errorf("environment variable %s: %w", envVar, err))
			continue
		}
		s.Insert(key, value)
	}
	return s, errors.Join(errs...)
}

// defaultEnvTransform creates the default environment variable transformer
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(key string) string {
		return prefix + strings.ToUpper(key)
	}
}

// EnvName returns the environment variable consulted for key under opts.
func EnvName(key string, opts LoadOptions) string {
	if opts.EnvTransform != nil {
		return opts.EnvTransform(key)
	}
	return defaultEnvTransform(opts.EnvPrefix)(key)
}

// ParseArgs collects "--key=value", "--key value" and bare "--flag" arguments
// into a new store. A bare flag is stored as "true". Non-flag arguments and a
// lone "--" are skipped. The first occurrence of a key wins.
func ParseArgs(args []string) (*Store, error) {
	s := New(len(args))
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			// Skip non-flag arguments
			i++
			continue
		}

		argContent := strings.TrimPrefix(arg, "--")
		if argContent == "" {
			// Skip "--" argument if used as a separator
			i++
			continue
		}

		var key, value string
		if k, v, found := strings.Cut(argContent, "="); found {
			key, value = k, v
			i++
		} else {
			key = argContent
			// Check if it's a boolean flag (next arg is another flag or end of args)
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				value = "true"
				i++
			} else {
				value = args[i+1]
				i += 2
			}
		}

		if err := checkEntry(key, value); err != nil {
			return nil, fmt.Errorf("invalid command-line argument %q: %w", arg, err)
		}
		s.Insert(key, value)
	}
	return s, nil
}
