package common

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// LoadYaml loads Yaml file into out
func LoadYaml(filename string, out interface{}) error {
	yamlData, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("yaml read %s: %w", filename, err)
	}
	if err = yaml.Unmarshal(yamlData, out); err != nil {
		return fmt.Errorf("yaml unmarshal %s: %w", filename, err)
	}
	return nil
}

// YamlObjectAsString outputs contents of yaml object with a label
func YamlObjectAsString(in interface{}, label string) string {
	d, err := yaml.Marshal(in)
	if err != nil {
		log.Fatalf("error: yaml.Marshal %v", err)
	}
	return fmt.Sprintf("=== %s ===\n%s\n\n", label, string(d))
}

// ParseColour accepts an SVG colour name ("black", "yellow") or a hex
// colour with 3, 4, 6 or 8 digits and an optional leading '#'.
func ParseColour(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, found := colornames.Map[name]; found {
		return c, nil
	}
	hex := strings.TrimPrefix(name, "#")
	switch len(hex) {
	case 3, 4:
		// Expand shorthand, "abc" -> "aabbcc"
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return nil, fmt.Errorf("unknown colour %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("unknown colour %q", s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
