package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/shade"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// JSONFormatter renders the palette as an indented JSON object whose
// shades keep their 50-900 order.
type JSONFormatter struct{}

type jsonDocument struct {
	Name    string          `json:"name"`
	Mode    shade.BlendMode `json:"mode"`
	Factor  *float64        `json:"factor,omitempty"`
	Primary colour.Colour   `json:"primary"`
	Shades  shade.Swatch    `json:"shades"`
}

// Name returns the format name.
func (JSONFormatter) Name() string { return "json" }

// Description returns the format description.
func (JSONFormatter) Description() string { return "JSON object with ordered shades" }

// Format renders the document.
func (JSONFormatter) Format(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(jsonDocument{
		Name:    doc.identifier(),
		Mode:    doc.Mode,
		Factor:  doc.Factor,
		Primary: doc.Palette.Primary,
		Shades:  doc.Palette.Swatch,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// YAMLFormatter renders the palette as YAML with shades as an ordered
// mapping of integer keys.
type YAMLFormatter struct{}

// Name returns the format name.
func (YAMLFormatter) Name() string { return "yaml" }

// Description returns the format description.
func (YAMLFormatter) Description() string { return "YAML document with ordered shades" }

// Format renders the document.
func (YAMLFormatter) Format(doc Document) ([]byte, error) {
	str := func(v string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	}
	quoted := func(v string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v, Style: yaml.DoubleQuotedStyle}
	}

	shades := &yaml.Node{Kind: yaml.MappingNode}
	for key, c := range doc.Palette.Swatch.All() {
		shades.Content = append(shades.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: key.String()},
			quoted(c.Hex()),
		)
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		str("name"), str(doc.identifier()),
		str("mode"), str(doc.Mode.String()),
	)
	if doc.Factor != nil {
		root.Content = append(root.Content,
			str("factor"),
			&yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(*doc.Factor, 'g', -1, 64)},
		)
	}
	root.Content = append(root.Content,
		str("primary"), quoted(doc.Palette.Primary.Hex()),
		str("shades"), shades,
	)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// TOMLFormatter renders the palette as TOML. Shades are an array of tables
// so their order survives.
type TOMLFormatter struct{}

type tomlDocument struct {
	Name    string        `toml:"name"`
	Mode    string        `toml:"mode"`
	Factor  *float64      `toml:"factor,omitempty"`
	Primary colour.Colour `toml:"primary"`
	Shades  []tomlShade   `toml:"shades"`
}

type tomlShade struct {
	Key    int           `toml:"key"`
	Colour colour.Colour `toml:"colour"`
}

// Name returns the format name.
func (TOMLFormatter) Name() string { return "toml" }

// Description returns the format description.
func (TOMLFormatter) Description() string { return "TOML document with an array of shade tables" }

// Format renders the document.
func (TOMLFormatter) Format(doc Document) ([]byte, error) {
	out := tomlDocument{
		Name:    doc.identifier(),
		Mode:    doc.Mode.String(),
		Factor:  doc.Factor,
		Primary: doc.Palette.Primary,
	}
	for key, c := range doc.Palette.Swatch.All() {
		out.Shades = append(out.Shades, tomlShade{Key: int(key), Colour: c})
	}

	data, err := toml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode TOML: %w", err)
	}
	return data, nil
}
