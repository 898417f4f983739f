package common

import (
	"fmt"
	"image/color"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_config.yaml")
	content := []byte("key: value\nlist:\n  - item1\n  - item2")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	type Config struct {
		Key  string   `yaml:"key"`
		List []string `yaml:"list"`
	}

	var cfg Config
	if err := LoadYaml(path, &cfg); err != nil {
		t.Fatalf("LoadYaml failed: %v", err)
	}

	if cfg.Key != "value" {
		t.Errorf("Expected key 'value', got '%s'", cfg.Key)
	}
	if len(cfg.List) != 2 || cfg.List[0] != "item1" {
		t.Errorf("Expected list [item1, item2], got %v", cfg.List)
	}
}

func TestLoadYaml_Errors(t *testing.T) {
	var cfg interface{}
	if err := LoadYaml("missing_file.yaml", &cfg); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad_config.yaml")
	os.WriteFile(path, []byte("invalid: [ yaml"), 0644)
	if err := LoadYaml(path, &cfg); err == nil {
		t.Error("Expected error for invalid yaml")
	}

	tabs := filepath.Join(t.TempDir(), "tabs.yaml")
	os.WriteFile(tabs, []byte("\tinvalid: yaml\n"), 0644)
	if err := LoadYaml(tabs, &cfg); err == nil {
		t.Error("Expected error for yaml with tabs")
	}
}

// FailMarshaler ensures yaml.Marshal returns an error
type FailMarshaler struct{}

func (f FailMarshaler) MarshalYAML() (interface{}, error) {
	return nil, fmt.Errorf("forced marshal error")
}

func TestYamlObjectAsString_Error(t *testing.T) {
	if os.Getenv("BE_CRASHER_MARSHAL") == "1" {
		YamlObjectAsString(FailMarshaler{}, "Label")
		return
	}
	cmd := exec.Command(os.Args[0], "-test.run=TestYamlObjectAsString_Error")
	cmd.Env = append(os.Environ(), "BE_CRASHER_MARSHAL=1")
	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		return // Expected crash
	}
	t.Errorf("process ran with err %v, want exit status 1", err)
}

func TestYamlObjectAsString(t *testing.T) {
	data := map[string]string{"foo": "bar"}
	str := YamlObjectAsString(data, "Test Label")
	if !strings.Contains(str, "=== Test Label ===") {
		t.Error("Expected label in output")
	}
	if !strings.Contains(str, "foo: bar") {
		t.Error("Expected data in output")
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"black", color.NRGBA{0, 0, 0, 255}},
		{"White", color.NRGBA{255, 255, 255, 255}},
		{"yellow", color.NRGBA{255, 255, 0, 255}},
		{"#112233", color.NRGBA{0x11, 0x22, 0x33, 0xff}},
		{"112233", color.NRGBA{0x11, 0x22, 0x33, 0xff}},
		{"#abc", color.NRGBA{0xaa, 0xbb, 0xcc, 0xff}},
		{"#11223344", color.NRGBA{0x11, 0x22, 0x33, 0x44}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColour(tt.in)
			if err != nil {
				t.Fatalf("ParseColour(%q) error %v", tt.in, err)
			}
			got := color.NRGBAModel.Convert(c).(color.NRGBA)
			if got != tt.want {
				t.Errorf("ParseColour(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "notacolour", "#12", "#zzzzzz"} {
		if _, err := ParseColour(bad); err == nil {
			t.Errorf("ParseColour(%q) expected error", bad)
		}
	}
}
