package content

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Shivrajsoni/portfolio/internal/config"
	"github.com/Shivrajsoni/portfolio/internal/domain/services"
)

type contentAnalyzerService struct{}

// NewContentAnalyzer creates a new content analyzer service
func NewContentAnalyzer() services.ContentAnalyzer {
	return &contentAnalyzerService{}
}

// CountWords counts whitespace-separated tokens of the raw body, markup included
func (s *contentAnalyzerService) CountWords(markdown string) int {
	return len(strings.Fields(markdown))
}

// ReadTime rounds up at config.WordsPerMinute and never reports less than a minute
func (s *contentAnalyzerService) ReadTime(markdown string) string {
	words := s.CountWords(markdown)
	minutes := (words + config.WordsPerMinute - 1) / config.WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// Excerpt returns the first config.ExcerptFallbackLength characters of the body followed by "..."
func (s *contentAnalyzerService) Excerpt(markdown string) string {
	if utf8.RuneCountInString(markdown) <= config.ExcerptFallbackLength {
		return markdown + "..."
	}
	runes := []rune(markdown)
	return string(runes[:config.ExcerptFallbackLength]) + "..."
}

// PlainText strips the most common Markdown markers. Imported documents use it
// to build an excerpt that does not start with "# Title".
func PlainText(markdown string) string {
	text := removeCodeBlocks(markdown)

	text = strings.ReplaceAll(text, "`", "")
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = strings.ReplaceAll(text, "~~", "")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "#>")
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		line = strings.TrimSpace(line)
		if line == "" || line == "---" || line == "***" {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, " ")
}

// removeCodeBlocks removes ```...``` code blocks from text
func removeCodeBlocks(text string) string {
	for {
		start := strings.Index(text, "```")
		if start == -1 {
			break
		}
		end := strings.Index(text[start+3:], "```")
		if end == -1 {
			break
		}
		text = text[:start] + text[start+end+6:]
	}
	return text
}
