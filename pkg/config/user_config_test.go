package config

import (
	"testing"

	"github.com/jesseduffield/yaml"
)

func TestGetDefaultConfig(t *testing.T) {
	defaults := GetDefaultConfig()

	if defaults.Language != "auto" {
		t.Errorf("Expected Language to be 'auto', got '%s'", defaults.Language)
	}
	if defaults.Inspect.Kind != "any" {
		t.Errorf("Expected Inspect.Kind to be 'any', got '%s'", defaults.Inspect.Kind)
	}
	if defaults.Inspect.FailFast {
		t.Errorf("Expected Inspect.FailFast to default to false")
	}
	if err := defaults.Validate(); err != nil {
		t.Errorf("Expected the default config to be valid, got %s", err)
	}
}

func TestUserConfigYAMLUnmarshal(t *testing.T) {
	yamlContent := `
language: pl
inspect:
  kind: directory
  failFast: true
output:
  headerColor: [red]
`

	config := GetDefaultConfig()
	err := yaml.Unmarshal([]byte(yamlContent), &config)
	if err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if config.Language != "pl" {
		t.Errorf("Expected Language to be 'pl', got '%s'", config.Language)
	}
	if config.Inspect.Kind != "directory" {
		t.Errorf("Expected Inspect.Kind to be 'directory', got '%s'", config.Inspect.Kind)
	}
	if !config.Inspect.FailFast {
		t.Errorf("Expected Inspect.FailFast to be true")
	}
	if config.Inspect.SkipPrecheck {
		t.Errorf("Expected Inspect.SkipPrecheck to keep its default")
	}
	if len(config.Output.HeaderColor) != 1 || config.Output.HeaderColor[0] != "red" {
		t.Errorf("Expected Output.HeaderColor to be [red], got %v", config.Output.HeaderColor)
	}
}

func TestUserConfigValidate(t *testing.T) {
	scenarios := []struct {
		name     string
		update   func(*UserConfig)
		expected string
	}{
		{
			name:     "defaults",
			update:   func(*UserConfig) {},
			expected: "",
		},
		{
			name:     "dir shorthand",
			update:   func(c *UserConfig) { c.Inspect.Kind = "dir" },
			expected: "",
		},
		{
			name:     "bad kind",
			update:   func(c *UserConfig) { c.Inspect.Kind = "socket" },
			expected: "Unrecognized kind 'socket'. Expected one of: [any file directory] for 'inspect.kind'",
		},
		{
			name:     "bad color",
			update:   func(c *UserConfig) { c.Output.HeaderColor = []string{"blue", "sparkly"} },
			expected: "Unrecognized color 'sparkly' for 'output.headerColor'",
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			config := GetDefaultConfig()
			s.update(&config)
			err := config.Validate()
			if s.expected == "" {
				if err != nil {
					t.Fatalf("Unexpected error: %s", err)
				}
				return
			}
			if err == nil || err.Error() != s.expected {
				t.Fatalf("Expected error '%s' but got '%v'", s.expected, err)
			}
		})
	}
}
