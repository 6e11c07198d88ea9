package services

// ContentAnalyzer derives display metadata from a Markdown body
type ContentAnalyzer interface {
	// CountWords counts whitespace-separated words
	CountWords(markdown string) int

	// ReadTime formats the reading time, e.g. "3 min read"
	ReadTime(markdown string) string

	// Excerpt returns the fallback excerpt for documents stored without one
	Excerpt(markdown string) string
}
