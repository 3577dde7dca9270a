// FILE: lixenwraith/smolconf/format.go
package smolconf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"
)

// Format names a serialization understood by Marshal and Unmarshal.
type Format string

const (
	// FormatAuto detects the format from the file extension, then from content
	FormatAuto Format = "auto"
	// FormatLine is the native key=value line format
	FormatLine Format = "conf"
	// FormatTOML flattens TOML tables with an underscore
	FormatTOML Format = "toml"
	// FormatJSON flattens JSON objects with an underscore
	FormatJSON Format = "json"
	// FormatYAML flattens YAML mappings with an underscore
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "conf", "line", "scnf", "cfg":
		return FormatLine, nil
	case "toml", "tml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// DetectFormat determines the format from the file extension.
// It returns FormatAuto when the extension is not recognized.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".conf", ".scnf", ".cfg", ".config":
		return FormatLine
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) Format {
	// JSON first (strict format)
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	// Native line format before TOML, since "key=value" is valid TOML too
	if _, err := ParseString(string(data)); err == nil {
		return FormatLine
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	return FormatAuto
}

// ReadFormat reads the file at path in format f into a new store.
// FormatAuto detects the format from the extension, then from content.
func ReadFormat(path string, f Format) (*Store, error) {
	if f == FormatLine {
		return Read(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrFileOpen, path, err)
	}

	if f == FormatAuto {
		f = DetectFormat(path)
	}
	s, err := Unmarshal(data, f)
	if err != nil {
		return s, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	return s, nil
}

// WriteFormat atomically writes the store to path in format f.
// FormatAuto picks the format from the extension and falls back to FormatLine.
func (s *Store) WriteFormat(path string, f Format) error {
	if f == FormatAuto {
		if f = DetectFormat(path); f == FormatAuto {
			f = FormatLine
		}
	}
	data, err := Marshal(s, f)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// Unmarshal decodes data in format f into a new store. Nested tables are
// flattened into keys joined by an underscore; arrays are rejected.
func Unmarshal(data []byte, f Format) (*Store, error) {
	if f == FormatAuto {
		if f = detectFormatFromContent(data); f == FormatAuto {
			return nil, fmt.Errorf("%w: unable to detect format from content", ErrUnsupportedFormat)
		}
	}

	switch f {
	case FormatLine:
		return ParseString(string(data))
	case FormatTOML:
		return unmarshalTOML(data)
	case FormatJSON:
		return unmarshalJSON(data)
	case FormatYAML:
		return unmarshalYAML(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// unmarshalTOML keeps the key order of the document.
func unmarshalTOML(data []byte) (*Store, error) {
	doc := make(map[string]any)
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	s := New(len(md.Keys()))
	for _, key := range md.Keys() {
		value := lookupNested(doc, key)
		if _, isTable := value.(map[string]any); isTable {
			continue
		}
		if err := s.insertScalar(strings.Join(key, "_"), value); err != nil {
			return s, err
		}
	}
	return s, nil
}

func lookupNested(doc map[string]any, path []string) any {
	var current any = doc
	for _, segment := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[segment]
	}
	return current
}

// unmarshalJSON sorts keys, since object order is not kept by encoding/json.
func unmarshalJSON(data []byte) (*Store, error) {
	doc := make(map[string]any)
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	flat := flattenMap(doc, "")
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := New(len(keys))
	for _, k := range keys {
		if err := s.insertScalar(k, flat[k]); err != nil {
			return s, err
		}
	}
	return s, nil
}

// unmarshalYAML walks the node tree to keep the document's key order.
func unmarshalYAML(data []byte) (*Store, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	s := New(DefaultCapacity)
	if len(root.Content) == 0 {
		return s, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("failed to parse YAML: top level must be a mapping")
	}
	return s, s.insertYAMLMapping(doc, "")
}

func (s *Store) insertYAMLMapping(node *yaml.Node, prefix string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if prefix != "" {
			key = prefix + "_" + key
		}

		valueNode := node.Content[i+1]
		switch valueNode.Kind {
		case yaml.MappingNode:
			if err := s.insertYAMLMapping(valueNode, key); err != nil {
				return err
			}
		case yaml.ScalarNode:
			var value any
			if err := valueNode.Decode(&value); err != nil {
				return fmt.Errorf("failed to decode YAML value for key %s: %w", key, err)
			}
			if err := s.insertScalar(key, value); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported YAML value for key %s: only scalars and mappings are allowed", key)
		}
	}
	return nil
}

// insertScalar converts a decoded scalar to its line form and inserts it.
func (s *Store) insertScalar(key string, value any) error {
	str, err := scalarString(value)
	if err != nil {
		return fmt.Errorf("key %s: %w", key, err)
	}
	if err := checkEntry(key, str); err != nil {
		return err
	}
	s.Insert(key, str)
	return nil
}

func scalarString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case nil:
		return "", fmt.Errorf("null values are not supported")
	default:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
}

// Marshal encodes the store in format f. Values are always written as strings.
func Marshal(s *Store, f Format) ([]byte, error) {
	switch f {
	case FormatLine, FormatAuto:
		var buf bytes.Buffer
		if _, err := s.WriteTo(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case FormatTOML:
		flat := make(map[string]string, s.Len())
		for k, v := range s.All() {
			flat[k] = v
		}
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(flat); err != nil {
			return nil, fmt.Errorf("failed to marshal config data to TOML: %w", err)
		}
		return buf.Bytes(), nil

	case FormatJSON:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, e := range s.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, _ := json.Marshal(e.Key)
			v, _ := json.Marshal(e.Value)
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
		buf.WriteByte('}')
		return pretty.Pretty(buf.Bytes()), nil

	case FormatYAML:
		doc := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range s.entries {
			doc.Content = append(doc.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value},
			)
		}
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config data to YAML: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}
