package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tags is an ordered list of tags. The admin UI sends tags as a single
// comma-separated string while stored files and API responses always use
// an array, so both decoders accept either form.
type Tags []string

// ParseTags splits a comma-separated list, trimming items and dropping empty ones.
func ParseTags(s string) Tags {
	return NormalizeTags(strings.Split(s, ","))
}

// NormalizeTags trims every item and drops empty ones. The result is never nil.
func NormalizeTags(items []string) Tags {
	tags := make(Tags, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			tags = append(tags, item)
		}
	}
	return tags
}

// Contains reports whether tag is present, ignoring case.
func (t Tags) Contains(tag string) bool {
	for _, existing := range t {
		if strings.EqualFold(existing, tag) {
			return true
		}
	}
	return false
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tags) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*t = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = ParseTags(s)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("tags must be a string or an array of strings: %w", err)
	}
	*t = NormalizeTags(items)
	return nil
}

// MarshalJSON always emits an array, never null.
func (t Tags) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// UnmarshalYAML implements yaml.Unmarshaler for both `tags: [a, b]` and `tags: a, b`.
func (t *Tags) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*t = nil
			return nil
		}
		*t = ParseTags(value.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return fmt.Errorf("tags must be a list of strings: %w", err)
		}
		*t = NormalizeTags(items)
		return nil
	default:
		return fmt.Errorf("tags must be a list of strings (line %d)", value.Line)
	}
}

// MarshalYAML always emits a sequence, never null.
func (t Tags) MarshalYAML() (interface{}, error) {
	if t == nil {
		return []string{}, nil
	}
	return []string(t), nil
}
