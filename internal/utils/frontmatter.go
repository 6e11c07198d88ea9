package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontmatterDelimiter opens and closes the metadata block.
const FrontmatterDelimiter = "---"

// ErrMalformedFrontmatter is wrapped by every decode failure.
var ErrMalformedFrontmatter = errors.New("malformed frontmatter")

// splitFrontmatter separates the metadata block from the body.
// Expected format:
//
//	---
//	title: "Hello"
//	---
//
//	# Markdown content here
//
// A document without an opening delimiter has no metadata and its whole text is the body.
// The single blank line written after the closing delimiter is not part of the body.
func splitFrontmatter(content []byte) (block []byte, body string, err error) {
	if !bytes.HasPrefix(content, []byte(FrontmatterDelimiter+"\n")) &&
		!bytes.HasPrefix(content, []byte(FrontmatterDelimiter+"\r\n")) {
		return nil, string(content), nil
	}

	lines := bytes.Split(content, []byte("\n"))

	// Skip the opening "---" line
	closingDelim := 0
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte(FrontmatterDelimiter)) {
			closingDelim = i
			break
		}
	}
	if closingDelim == 0 {
		return nil, "", fmt.Errorf("%w: missing closing delimiter '%s'", ErrMalformedFrontmatter, FrontmatterDelimiter)
	}

	block = bytes.Join(lines[1:closingDelim], []byte("\n"))
	body = string(bytes.Join(lines[closingDelim+1:], []byte("\n")))

	if strings.HasPrefix(body, "\r\n") {
		body = body[2:]
	} else if strings.HasPrefix(body, "\n") {
		body = body[1:]
	}
	return block, body, nil
}

// ParseFrontmatter decodes a document into its metadata map and Markdown body.
// Lists whose items are all strings are returned as []string.
func ParseFrontmatter(content []byte) (map[string]interface{}, string, error) {
	block, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, "", err
	}

	metadata := make(map[string]interface{})
	if len(bytes.TrimSpace(block)) == 0 {
		return metadata, body, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(block, &node); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrMalformedFrontmatter, err)
	}
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return nil, "", fmt.Errorf("%w: metadata must be a key/value block", ErrMalformedFrontmatter)
	}
	if err := node.Decode(&metadata); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrMalformedFrontmatter, err)
	}

	for key, value := range metadata {
		if items, ok := value.([]interface{}); ok {
			if strs, ok := stringSlice(items); ok {
				metadata[key] = strs
			}
		}
	}
	return metadata, body, nil
}

// DecodeFrontmatter decodes the metadata block into v (a pointer to a struct
// with yaml tags) and returns the Markdown body.
func DecodeFrontmatter(content []byte, v interface{}) (string, error) {
	block, body, err := splitFrontmatter(content)
	if err != nil {
		return "", err
	}
	if len(bytes.TrimSpace(block)) == 0 {
		return body, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(block, &node); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedFrontmatter, err)
	}
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return "", fmt.Errorf("%w: metadata must be a key/value block", ErrMalformedFrontmatter)
	}
	if err := node.Decode(v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedFrontmatter, err)
	}
	return body, nil
}

// EncodeFrontmatter serializes metadata (keys sorted) followed by a blank line and the body.
func EncodeFrontmatter(body string, metadata map[string]interface{}) ([]byte, error) {
	if len(metadata) == 0 {
		return assembleDocument(nil, body), nil
	}
	return MarshalFrontmatter(body, metadata)
}

// MarshalFrontmatter serializes v (a map or a struct with yaml tags) followed by
// a blank line and the body. Strings are double-quoted, lists use the flow style.
func MarshalFrontmatter(body string, v interface{}) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("encode frontmatter: metadata must be a map or struct, got %T", v)
	}
	restyleValues(&node)

	var buf bytes.Buffer
	if len(node.Content) > 0 {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return nil, fmt.Errorf("encode frontmatter: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode frontmatter: %w", err)
		}
	}
	return assembleDocument(buf.Bytes(), body), nil
}

func assembleDocument(block []byte, body string) []byte {
	var buf bytes.Buffer
	buf.WriteString(FrontmatterDelimiter + "\n")
	buf.Write(block)
	buf.WriteString(FrontmatterDelimiter + "\n\n")
	buf.WriteString(body)
	return buf.Bytes()
}

// restyleValues walks a mapping node and quotes string values and flattens lists.
// Mapping keys keep the plain style.
func restyleValues(n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 1; i < len(n.Content); i += 2 {
			restyleValues(n.Content[i])
		}
	case yaml.SequenceNode:
		n.Style = yaml.FlowStyle
		for _, item := range n.Content {
			restyleValues(item)
		}
	case yaml.ScalarNode:
		if n.Tag == "!!str" {
			n.Style = yaml.DoubleQuotedStyle
		}
	}
}

func stringSlice(items []interface{}) ([]string, bool) {
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
