package topics

import (
	"errors"
	"reflect"
	"testing"
)

func TestClassifier_Classify(t *testing.T) {
	classifier, err := NewClassifier(DefaultConfig())
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "single topic",
			text:     "Inflation is rising fast",
			expected: []string{"economy"},
		},
		{
			name:     "overlapping topics",
			text:     "texas schools are underfunded while inflation rises",
			expected: []string{"economy", "education", "texas"},
		},
		{
			name:     "case insensitive match",
			text:     "IMMIGRATION policy announced today",
			expected: []string{"migration"},
		},
		{
			name:     "no topics",
			text:     "the weather is lovely today",
			expected: nil,
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
		{
			name:     "multi word keyword",
			text:     "a new health care bill passed",
			expected: []string{"healthcare"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestClassifier_Idempotent(t *testing.T) {
	classifier, err := NewClassifier(DefaultConfig())
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}

	text := "jobs report and border crossings both made headlines"
	first := classifier.Classify(text)
	for i := 0; i < 5; i++ {
		if got := classifier.Classify(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: Classify = %v, want %v", i, got, first)
		}
	}
}

func TestNewClassifier_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "nil config", cfg: nil},
		{name: "no topics", cfg: &Config{}},
		{
			name: "topic without keywords",
			cfg:  &Config{Topics: map[string]Topic{"economy": {}}},
		},
		{
			name: "blank keyword",
			cfg:  &Config{Topics: map[string]Topic{"economy": {Keywords: []string{"  "}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClassifier(tt.cfg)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	data := []byte(`
topics:
  economy:
    keywords: [inflation, jobs]
    description: economic policy
  climate:
    keywords: [climate, carbon]
`)

	cfg, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.Names(); !reflect.DeepEqual(got, []string{"climate", "economy"}) {
		t.Errorf("Names = %v", got)
	}
	if kw := cfg.Topics["economy"].Keywords; len(kw) != 2 || kw[0] != "inflation" {
		t.Errorf("economy keywords = %v", kw)
	}
}

func TestLoad_Invalid(t *testing.T) {
	if _, err := Load([]byte("topics: {}")); err == nil {
		t.Error("expected error for empty topic map")
	}
	if _, err := Load([]byte(":::not yaml")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
