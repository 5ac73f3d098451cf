package topics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// ConfigError reports a malformed or empty topic configuration.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "topic config: " + e.Reason
}

// Topic is one named topic with its matching keywords.
type Topic struct {
	Keywords    []string `koanf:"keywords"`
	Description string   `koanf:"description"`
}

// Config maps topic names to keyword sets. It is immutable after Load and
// shared read-only across workers.
type Config struct {
	Topics map[string]Topic `koanf:"topics"`
}

// Names returns the declared topic names in stable order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Topics))
	for name := range c.Topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that the config declares at least one topic and that every
// topic carries a non-empty keyword list.
func (c *Config) Validate() error {
	if len(c.Topics) == 0 {
		return &ConfigError{Reason: "no topics declared"}
	}
	for name, topic := range c.Topics {
		if len(topic.Keywords) == 0 {
			return &ConfigError{Reason: fmt.Sprintf("topic %q has no keywords", name)}
		}
		for _, kw := range topic.Keywords {
			if strings.TrimSpace(kw) == "" {
				return &ConfigError{Reason: fmt.Sprintf("topic %q has an empty keyword", name)}
			}
		}
	}
	return nil
}

// Load parses a YAML topic configuration of the form:
//
//	topics:
//	  economy:
//	    keywords: [inflation, jobs]
//	    description: economic policy
func Load(data []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("parse yaml: %v", err)}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("unmarshal: %v", err)}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the built-in topic set used when no configuration file
// is supplied.
func DefaultConfig() *Config {
	return &Config{
		Topics: map[string]Topic{
			"migration": {
				Keywords:    []string{"immigration", "immigrant", "border", "migration", "migrant", "asylum"},
				Description: "immigration and border policy",
			},
			"texas": {
				Keywords:    []string{"texas", "tx"},
				Description: "Texas state politics",
			},
			"economy": {
				Keywords:    []string{"economy", "economic", "inflation", "jobs", "unemployment", "gdp"},
				Description: "economic policy and indicators",
			},
			"healthcare": {
				Keywords:    []string{"healthcare", "health care", "obamacare", "medicare", "medicaid"},
				Description: "healthcare policy",
			},
			"climate": {
				Keywords:    []string{"climate", "global warming", "environment", "clean energy", "carbon"},
				Description: "climate and environmental policy",
			},
			"education": {
				Keywords:    []string{"education", "school", "university", "college", "student"},
				Description: "education policy",
			},
		},
	}
}
