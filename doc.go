// FILE: lixenwraith/smolconf/doc.go

// Package smolconf provides a small key=value configuration store backed by a
// fixed 256-bucket hash index over a dense, insertion-ordered entry list.
//
// The native file format is one "key=value" pair per line. Leading spaces are
// ignored, '#' starts a comment, keys are [A-Za-z0-9_]+ and values are
// printable text. Parsing stops at the first malformed line and reports its
// line number through *SyntaxError.
//
// Features:
//   - Insert-if-absent semantics: the first value stored for a key wins
//   - Typed accessors (bool, int64, uint64, float64, path) with clamping
//   - Typed appenders and struct registration with `conf` tags
//   - Atomic saves and TOML / JSON / YAML import and export
//   - Layered sources (CLI, environment, file, defaults) with precedence
//   - Struct decoding and validation through Scan / ScanAndValidate
//
// Quick Start:
//
//	type Config struct {
//	    Server struct {
//	        Host string `conf:"host"`
//	        Port int    `conf:"port"`
//	    } `conf:"server"`
//	}
//
//	defaults := Config{}
//	defaults.Server.Host = "localhost"
//	defaults.Server.Port = 8080
//
//	cfg, err := smolconf.Quick(defaults, "MYAPP_", "app.conf")
//	if err != nil && !errors.Is(err, smolconf.ErrConfigNotFound) {
//	    log.Fatal(err)
//	}
//
//	host, _ := cfg.String("server_host")
//	port, _ := cfg.Int64("server_port", 1, 65535)
//
// Default Precedence (highest to lowest):
//  1. Command-line arguments (--server_port=9090)
//  2. Environment variables (MYAPP_SERVER_PORT=9090)
//  3. Configuration file (app.conf)
//  4. Default values
//
// Custom Precedence:
//
//	cfg, err := smolconf.NewBuilder().
//	    WithDefaults(defaults).
//	    WithSources(
//	        smolconf.SourceEnv, // Environment the highest priority
//	        smolconf.SourceCLI,
//	        smolconf.SourceFile,
//	        smolconf.SourceDefault,
//	    ).
//	    Build()
//
// Thread Safety:
// A Store has no internal locking. Concurrent reads are safe; any mutation
// must be serialized by the caller.
package smolconf
