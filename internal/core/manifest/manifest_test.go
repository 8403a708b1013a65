package manifest

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	data := `
[package]
name = "test-template"
version = "1.0.0"

[artifacts]
"newton/**" = ".newton"
"templates/*.md" = ".templates"
`
	m, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Package.Name != "test-template" {
		t.Errorf("Name = %q", m.Package.Name)
	}
	if m.Package.Version != "1.0.0" {
		t.Errorf("Version = %q", m.Package.Version)
	}
	if len(m.Artifacts) != 2 {
		t.Fatalf("Artifacts len = %d", len(m.Artifacts))
	}
	if m.Artifacts["newton/**"] != ".newton" {
		t.Errorf("Artifacts[newton/**] = %q", m.Artifacts["newton/**"])
	}
}

func TestParse_Minimal(t *testing.T) {
	data := `
[package]
name = "minimal"
version = "0.1.0"
`
	m, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Artifacts) != 0 {
		t.Errorf("expected empty artifacts, got %v", m.Artifacts)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", "[package\nname = \"invalid\n"},
		{"missing package", "[artifacts]\n\"x/**\" = \".x\"\n"},
		{"missing name", "[package]\nversion = \"1.0.0\"\n"},
		{"missing version", "[package]\nname = \"test\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("expected parse error")
			} else if !strings.Contains(err.Error(), "parsing manifest") {
				t.Errorf("error = %q", err.Error())
			}
		})
	}
}
