// FILE: lixenwraith/smolconf/helper.go
package smolconf

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// isValidKey checks that s is non-empty and made of ASCII letters, digits and underscores.
func isValidKey(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		isDigit := c >= '0' && c <= '9'
		if !(isLetter || isDigit || c == '_') {
			return false
		}
	}
	return true
}

// isPrintable checks that s is valid UTF-8 made only of printable runes.
// Space counts as printable; tabs and line breaks do not.
func isPrintable(s string) bool {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			return false
		}
		if !unicode.IsPrint(r) {
			return false
		}
		s = s[size:]
	}
	return true
}

// checkEntry validates a pair produced outside the line parser so that the
// written form reads back to the same pair.
func checkEntry(key, value string) error {
	if !isValidKey(key) {
		return fmt.Errorf("invalid key %q: must match [A-Za-z0-9_]+", key)
	}
	if value == "" {
		return fmt.Errorf("empty value for key %s", key)
	}
	if !isPrintable(value) {
		return fmt.Errorf("value for key %s is not printable", key)
	}
	if strings.ContainsRune(value, '#') {
		return fmt.Errorf("value for key %s contains '#'", key)
	}
	return nil
}

// flattenMap converts a nested map[string]any to a flat map, joining key
// segments with an underscore.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newKey := key
		if prefix != "" {
			newKey = prefix + "_" + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subKey, subValue := range flattenMap(nestedMap, newKey) {
				flat[subKey] = subValue
			}
		} else {
			flat[newKey] = value
		}
	}

	return flat
}
