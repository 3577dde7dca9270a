// FILE: lixenwraith/smolconf/cmd/smolconf/get.go
package main

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/smolconf"
	"github.com/spf13/cobra"
)

var (
	valueType string
	minValue  string
	maxValue  string
)

var getCmd = &cobra.Command{
	Use:   "get <file> <key>",
	Short: "Print the value of a key",
	Long: `Print the value stored for a key, optionally converted to a type.

Numeric types are clamped to --min and --max when given.

Examples:
  smolconf get app.conf server_port --type int --min 1 --max 65535
  smolconf get app.conf debug --type bool`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readStore(args[0])
		if err != nil {
			return err
		}

		value, err := lookup(s, args[1], valueType, minValue, maxValue)
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVarP(&valueType, "type", "t", "string", "Value type: string, bool, int, uint, float or path")
	getCmd.Flags().StringVar(&minValue, "min", "", "Lower clamp bound for numeric types")
	getCmd.Flags().StringVar(&maxValue, "max", "", "Upper clamp bound for numeric types")
}

// lookup fetches key through the accessor matching typ and renders the result.
func lookup(s *smolconf.Store, key, typ, lo, hi string) (string, error) {
	switch typ {
	case "string", "":
		return s.String(key)
	case "path":
		return s.Path(key)
	case "bool":
		b, err := s.Bool(key)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	case "int":
		min, max, err := bounds(lo, hi, smolconf.NoClampIntMin, smolconf.NoClampIntMax, parseInt)
		if err != nil {
			return "", err
		}
		v, err := s.Int64(key, min, max)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	case "uint":
		min, max, err := bounds(lo, hi, smolconf.NoClampUintMin, smolconf.NoClampUintMax, parseUint)
		if err != nil {
			return "", err
		}
		v, err := s.Uint64(key, min, max)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(v, 10), nil
	case "float":
		min, max, err := bounds(lo, hi, smolconf.NoClampFloatMin, smolconf.NoClampFloatMax, parseFloat)
		if err != nil {
			return "", err
		}
		v, err := s.Float64(key, min, max)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("unknown value type %q", typ)
}

func parseInt(s string) (int64, error)     { return strconv.ParseInt(s, 10, 64) }
func parseUint(s string) (uint64, error)   { return strconv.ParseUint(s, 10, 64) }
func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

// bounds parses the clamp flags, keeping the unbounded defaults for empty flags.
func bounds[T any](lo, hi string, defMin, defMax T, parse func(string) (T, error)) (T, T, error) {
	min, max := defMin, defMax
	var err error
	if lo != "" {
		if min, err = parse(lo); err != nil {
			return min, max, fmt.Errorf("invalid --min %q: %w", lo, err)
		}
	}
	if hi != "" {
		if max, err = parse(hi); err != nil {
			return min, max, fmt.Errorf("invalid --max %q: %w", hi, err)
		}
	}
	return min, max, nil
}
