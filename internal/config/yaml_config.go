package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"smartedubot/internal/knowledge"
)

// YAMLConfig represents the structure of the config.yaml file.
// Topic data is easier to maintain in YAML than in env vars.
type YAMLConfig struct {
	Topics      []TopicConfig `yaml:"topics"`
	Suggestions []string      `yaml:"suggestions,omitempty"` // Replaces the generic reply's suggestion list
}

// TopicConfig defines a topic in the YAML config. A topic whose id matches a
// built-in topic replaces it; any other id is appended.
type TopicConfig struct {
	ID       string   `yaml:"id"`
	Response string   `yaml:"response"`
	Keywords []string `yaml:"keywords"`
	Category string   `yaml:"category,omitempty"`
	Priority int      `yaml:"priority,omitempty"` // Lower wins ties; defaults to 1
}

// LoadYAMLConfig loads the YAML configuration file at path.
// Returns nil without error if the file doesn't exist.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Set defaults
	for i := range cfg.Topics {
		if cfg.Topics[i].Priority == 0 {
			cfg.Topics[i].Priority = 1
		}
	}

	return &cfg, nil
}

// BuildStore merges the configured topics over the built-in ones and
// validates the result. A nil config yields the built-in store.
func (c *YAMLConfig) BuildStore() (*knowledge.Store, error) {
	topics := knowledge.BuiltinTopics()
	if c == nil {
		return knowledge.New(topics...)
	}

	index := make(map[string]int, len(topics))
	for i, t := range topics {
		index[t.ID] = i
	}

	for _, tc := range c.Topics {
		t := knowledge.Topic{
			ID:       tc.ID,
			Response: tc.Response,
			Keywords: tc.Keywords,
			Category: tc.Category,
			Priority: tc.Priority,
		}
		if i, ok := index[tc.ID]; ok {
			topics[i] = t
			continue
		}
		index[tc.ID] = len(topics)
		topics = append(topics, t)
	}

	return knowledge.New(topics...)
}

// GetSuggestions returns the configured suggestions, or nil if none are set.
func (c *YAMLConfig) GetSuggestions() []string {
	if c == nil {
		return nil
	}
	return c.Suggestions
}
