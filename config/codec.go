// FILE: lixenwraith/sitecore/config/codec.go
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a configuration serialization format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. "yml" is accepted as YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toml", "tml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DetectFormat determines format from a file name extension.
// It returns "" when the extension is not recognized.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return ""
	}
}

// DetectFormatFromContent attempts to detect format by parsing.
// JSON is tried first (strictest), then TOML, then YAML which must decode to a mapping.
func DetectFormatFromContent(data []byte) Format {
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	var tomlTest map[string]any
	if _, err := toml.Decode(string(data), &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	return ""
}

// Parse decodes a configuration layer. An empty format triggers content detection.
// TOML and YAML keep document key order.
func Parse(data []byte, format Format) (*Mapping, error) {
	if format == "" {
		format = DetectFormatFromContent(data)
		if format == "" {
			return nil, fmt.Errorf("%w: unable to detect format from content", ErrUnknownFormat)
		}
	}

	switch format {
	case FormatTOML:
		return parseTOML(data)
	case FormatYAML:
		return parseYAML(data)
	case FormatJSON:
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func parseTOML(data []byte) (*Mapping, error) {
	raw := make(map[string]any)
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}

	// MetaData.Keys is in document order, tables included
	m := NewMapping()
	for _, key := range md.Keys() {
		v, ok := lookupRaw(raw, key)
		if !ok {
			continue // keys inside arrays of tables
		}
		if _, isTable := v.(map[string]any); isTable {
			m.ensureSegments(key)
			continue
		}
		if _, exists := m.lookupSegments(key); exists {
			continue
		}
		m.setSegments(key, FromAny(v))
	}

	// Anything the key walk could not place keeps sorted order
	m.MergeUnder(FromAny(raw).Mapping())
	return m, nil
}

func lookupRaw(raw map[string]any, key []string) (any, bool) {
	var current any = raw
	for _, segment := range key {
		table, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = table[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func parseYAML(data []byte) (*Mapping, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return NewMapping(), nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return NewMapping(), nil
	}

	v, err := fromYAMLNode(root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	switch v.Kind() {
	case KindNull:
		return NewMapping(), nil
	case KindMapping:
		return v.Mapping(), nil
	default:
		return nil, fmt.Errorf("YAML config must be a mapping, got %s", v.Kind())
	}
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)

	case yaml.MappingNode:
		m := NewMapping()
		var merges []*Mapping
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]
			child, err := fromYAMLNode(valueNode)
			if err != nil {
				return Null(), err
			}
			if keyNode.Tag == "!!merge" {
				merges = append(merges, mergeSources(child)...)
				continue
			}
			m.Set(keyNode.Value, child)
		}
		// Explicit keys win over "<<" merged ones
		for _, src := range merges {
			m.MergeUnder(src)
		}
		return Table(m), nil

	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, itemNode := range n.Content {
			item, err := fromYAMLNode(itemNode)
			if err != nil {
				return Null(), err
			}
			items = append(items, item)
		}
		return Sequence(items...), nil

	case yaml.ScalarNode:
		var out any
		if err := n.Decode(&out); err != nil {
			return Null(), fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Scalar(out), nil

	default:
		return Null(), nil
	}
}

func mergeSources(v Value) []*Mapping {
	switch v.Kind() {
	case KindMapping:
		return []*Mapping{v.Mapping()}
	case KindSequence:
		var out []*Mapping
		for _, item := range v.Items() {
			if item.Kind() == KindMapping {
				out = append(out, item.Mapping())
			}
		}
		return out
	default:
		return nil
	}
}

func parseJSON(data []byte) (*Mapping, error) {
	raw := make(map[string]any)
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber() // Preserve number precision
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON config: %w", err)
	}
	return FromAny(raw).Mapping(), nil
}

// Marshal encodes a mapping in the given format.
func Marshal(m *Mapping, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(withoutNulls(m.Interface())); err != nil {
			return nil, fmt.Errorf("failed to marshal config to TOML: %w", err)
		}
		return buf.Bytes(), nil

	case FormatYAML:
		node, err := toYAMLNode(Table(m))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		out, err := yaml.Marshal(node)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		return out, nil

	case FormatJSON:
		out, err := json.MarshalIndent(m.Interface(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		return append(out, '\n'), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// toYAMLNode builds a node tree so that mapping order survives encoding.
func toYAMLNode(v Value) (*yaml.Node, error) {
	switch v.Kind() {
	case KindMapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		m := v.Mapping()
		for _, k := range m.Keys() {
			child, _ := m.Get(k)
			childNode, err := toYAMLNode(child)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, childNode)
		}
		return n, nil

	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items() {
			itemNode, err := toYAMLNode(item)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, itemNode)
		}
		return n, nil

	case KindScalar:
		n := &yaml.Node{}
		if err := n.Encode(v.Scalar()); err != nil {
			return nil, err
		}
		return n, nil

	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
}

// withoutNulls drops nil entries which TOML cannot represent.
func withoutNulls(data any) any {
	switch t := data.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			if v == nil {
				continue
			}
			out[k] = withoutNulls(v)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, v := range t {
			if v == nil {
				continue
			}
			out = append(out, withoutNulls(v))
		}
		return out
	default:
		return data
	}
}
