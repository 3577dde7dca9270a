// FILE: lixenwraith/smolconf/cmd/smolconf/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/smolconf"
	"github.com/spf13/cobra"
)

var (
	// Global flags (available to all commands)
	verbose bool
	format  string
)

// Root command
var rootCmd = &cobra.Command{
	Use:   "smolconf",
	Short: "Inspect and edit key=value configuration files",
	Long: `smolconf reads, checks and rewrites key=value configuration files.

Files hold one "key=value" pair per line; '#' starts a comment. The first
value of a repeated key wins. TOML, JSON and YAML files can be converted to
and from the line format, with nested tables flattened using '_'.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFlags(0)
		log.SetPrefix("smolconf: ")
	},
}

// Version subcommand
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s version %s\n", smolconf.Name, smolconf.Version())

		if verbose {
			fmt.Printf("  Header: %s\n", smolconf.Header())
			fmt.Printf("  Buckets: %d\n", smolconf.HashSize)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "auto", "File format: auto, conf, toml, json or yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// debugf logs only when --verbose is set
func debugf(fmtStr string, args ...any) {
	if verbose {
		log.Printf(fmtStr, args...)
	}
}

// readStore loads path using the --format flag.
func readStore(path string) (*smolconf.Store, error) {
	f, err := smolconf.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	s, err := smolconf.ReadFormat(path, f)
	if err != nil {
		return nil, err
	}
	debugf("read %d entries from %s", s.Len(), path)
	return s, nil
}
