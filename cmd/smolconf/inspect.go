// FILE: lixenwraith/smolconf/cmd/smolconf/inspect.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lixenwraith/smolconf"
	"github.com/spf13/cobra"
)

var (
	requiredKeys []string
	outputFormat string
	dumpFormat   string
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check configuration files for syntax errors",
	Long: `Parse each file and report the first syntax error with its line number.

Examples:
  smolconf check app.conf
  smolconf check --require server_host,server_port app.conf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed []error
		for _, path := range args {
			s, err := readStore(path)
			if err == nil {
				err = s.Validate(requiredKeys...)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "❌ %v\n", err)
				failed = append(failed, err)
				continue
			}
			fmt.Printf("✅ %s: %d entries\n", path, s.Len())
			if verbose {
				fmt.Print(s.Debug())
			}
		}
		if len(failed) > 0 {
			return fmt.Errorf("%d of %d files failed: %w", len(failed), len(args), errors.Join(failed...))
		}
		return nil
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print a configuration file in the line format or another format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readStore(args[0])
		if err != nil {
			return err
		}
		out, err := smolconf.ParseFormat(dumpFormat)
		if err != nil {
			return err
		}
		if out == smolconf.FormatAuto {
			out = smolconf.FormatLine
		}
		return s.Dump(os.Stdout, out)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert between line, TOML, JSON and YAML files",
	Long: `Convert a configuration file to another format.

The input format comes from --format, the output format from --to; "auto"
uses the file extensions.

Examples:
  smolconf convert app.toml app.conf
  smolconf convert --to yaml app.conf app.out`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readStore(args[0])
		if err != nil {
			return err
		}
		out, err := smolconf.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		if err := s.WriteFormat(args[1], out); err != nil {
			return err
		}
		debugf("converted %s to %s", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(convertCmd)

	checkCmd.Flags().StringSliceVar(&requiredKeys, "require", nil, "Keys that must be defined")
	dumpCmd.Flags().StringVar(&dumpFormat, "to", "conf", "Output format: conf, toml, json or yaml")
	convertCmd.Flags().StringVar(&outputFormat, "to", "auto", "Output format: auto, conf, toml, json or yaml")
}
