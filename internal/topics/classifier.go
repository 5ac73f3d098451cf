package topics

import (
	"sort"
	"strings"
)

// Classifier assigns topic labels to post text by case-insensitive keyword
// matching. A post may match any number of topics, including none. The
// classifier is a pure function of its config and safe for concurrent use.
type Classifier struct {
	cfg *Config

	// keywords pre-lowered per topic so Classify only lowers the input once
	lowered map[string][]string
}

// NewClassifier validates the config and builds a classifier over it.
func NewClassifier(cfg *Config) (*Classifier, error) {
	if cfg == nil {
		return nil, &ConfigError{Reason: "nil config"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lowered := make(map[string][]string, len(cfg.Topics))
	for name, topic := range cfg.Topics {
		kws := make([]string, len(topic.Keywords))
		for i, kw := range topic.Keywords {
			kws[i] = strings.ToLower(kw)
		}
		lowered[name] = kws
	}

	return &Classifier{cfg: cfg, lowered: lowered}, nil
}

// Config returns the active topic configuration.
func (c *Classifier) Config() *Config {
	return c.cfg
}

// Classify returns the sorted set of topic names with at least one keyword
// occurring as a substring of the text. An empty result means the post is
// topic-less.
func (c *Classifier) Classify(cleanedText string) []string {
	if cleanedText == "" {
		return nil
	}

	text := strings.ToLower(cleanedText)
	var matched []string
	for name, keywords := range c.lowered {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				matched = append(matched, name)
				break
			}
		}
	}

	sort.Strings(matched)
	return matched
}
