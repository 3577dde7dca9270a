// FILE: lixenwraith/smolconf/cmd/smolconf/merge.go
package main

import (
	"os"

	"github.com/lixenwraith/smolconf"
	"github.com/spf13/cobra"
)

var mergeOutput string

var mergeCmd = &cobra.Command{
	Use:   "merge <file>...",
	Short: "Merge configuration files, earlier files taking precedence",
	Long: `Merge several configuration files into one.

Files are concatenated in argument order and the first value of each key
wins, so list overrides before base files.

Examples:
  smolconf merge local.conf base.conf
  smolconf merge -o app.conf local.toml base.conf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		merged, err := mergeFiles(args)
		if err != nil {
			return err
		}

		if mergeOutput == "" {
			_, err := merged.WriteTo(os.Stdout)
			return err
		}
		if err := merged.WriteFormat(mergeOutput, smolconf.FormatAuto); err != nil {
			return err
		}
		debugf("wrote %d entries to %s", merged.Len(), mergeOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Write the result to a file instead of stdout")
}

// mergeFiles reads paths in order and concatenates them into a new store.
func mergeFiles(paths []string) (*smolconf.Store, error) {
	merged := smolconf.New(smolconf.DefaultCapacity)
	for _, path := range paths {
		s, err := readStore(path)
		if err != nil {
			return nil, err
		}
		n := merged.Concat(s)
		debugf("%s: %d of %d entries added", path, n, s.Len())
	}
	return merged, nil
}
