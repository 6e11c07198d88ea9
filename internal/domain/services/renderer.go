package services

// Renderer converts a Markdown body into an HTML fragment.
// Output for a given body is deterministic.
type Renderer interface {
	Render(markdown string) (string, error)
}
