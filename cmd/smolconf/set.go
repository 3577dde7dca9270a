// FILE: lixenwraith/smolconf/cmd/smolconf/set.go
package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lixenwraith/smolconf"
	"github.com/spf13/cobra"
)

var createFile bool

var setCmd = &cobra.Command{
	Use:   "set <file> <key> <value>",
	Short: "Set the value of a key and save the file",
	Long: `Set the value of a key, keeping the position of existing entries.

The file is rewritten atomically in the line format; comments are not kept.

Examples:
  smolconf set app.conf server_port 9090
  smolconf set --create new.conf name demo`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, key, value := args[0], args[1], args[2]

		s, err := smolconf.Read(path)
		if err != nil {
			if !createFile || !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			debugf("creating %s", path)
			s = smolconf.New(smolconf.DefaultCapacity)
		}

		updated, err := replace(s, key, value)
		if err != nil {
			return err
		}
		if err := updated.Save(path); err != nil {
			return err
		}
		debugf("saved %d entries to %s", updated.Len(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().BoolVar(&createFile, "create", false, "Create the file if it does not exist")
}

// replace returns a copy of s where key holds value. Since the store never
// overwrites, the copy is rebuilt in order with the new value substituted.
func replace(s *smolconf.Store, key, value string) (*smolconf.Store, error) {
	check, err := smolconf.ParseString(key + "=" + value)
	if err != nil {
		return nil, fmt.Errorf("invalid entry %q: %w", key+"="+value, err)
	}
	if v, _ := check.Find(key); v != value {
		return nil, fmt.Errorf("invalid entry %q: value would not read back unchanged", key+"="+value)
	}

	out := smolconf.New(s.Len() + 1)
	for k, v := range s.All() {
		if k == key {
			v = value
		}
		out.Insert(k, v)
	}
	out.Insert(key, value)
	return out, nil
}
