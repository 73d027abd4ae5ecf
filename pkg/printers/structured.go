package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how command results are written.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// ParseFormat accepts pretty, json or yaml, ignoring case. Blank is pretty.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "", FormatPretty:
		return FormatPretty, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected pretty, json or yaml", raw)
	}
}

// Structured writes v as indented JSON or as YAML. YAML keys follow the json
// tags, since the value is encoded to JSON first.
func Structured(w io.Writer, format Format, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	switch format {
	case FormatJSON:
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(b, &node); err != nil {
			return err
		}
		blockStyle(&node)
		out, err := yaml.Marshal(&node)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("format %q is not structured", format)
	}
}

// blockStyle drops the flow style the JSON source gives every collection.
func blockStyle(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style = 0
	}
	if n.Kind == yaml.ScalarNode && n.Style == yaml.DoubleQuotedStyle {
		n.Style = 0
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// Print writes v in a structured format, or calls pretty for FormatPretty.
func Print(w io.Writer, format Format, v any, pretty func()) error {
	if format == "" || format == FormatPretty {
		pretty()
		return nil
	}
	return Structured(w, format, v)
}
