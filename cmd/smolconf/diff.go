// FILE: lixenwraith/smolconf/cmd/smolconf/diff.go
package main

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/smolconf"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

var contextLines int

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Show a unified diff of the entries of two files",
	Long: `Compare the effective entries of two configuration files.

Both files are reduced to sorted key=value lines first, so comments, entry
order and shadowed duplicates do not show up. The files may use different
formats.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := readStore(args[0])
		if err != nil {
			return err
		}
		b, err := readStore(args[1])
		if err != nil {
			return err
		}

		text, err := unifiedDiff(a, b, args[0], args[1], contextLines)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().IntVarP(&contextLines, "context", "U", 3, "Lines of context")
}

// unifiedDiff renders the difference between the sorted entries of a and b.
// It returns an empty string when both hold the same entries.
func unifiedDiff(a, b *smolconf.Store, nameA, nameB string, context int) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        sortedLines(a),
		B:        sortedLines(b),
		FromFile: nameA,
		ToFile:   nameB,
		Context:  context,
	})
}

func sortedLines(s *smolconf.Store) []string {
	lines := make([]string, 0, s.Len())
	for k, v := range s.All() {
		lines = append(lines, k+"="+v+"\n")
	}
	slices.Sort(lines)
	return lines
}
