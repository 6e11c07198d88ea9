package content

// Kind identifies a document kind. Each kind has its own storage
// directory and its own frontmatter schema.
type Kind string

const (
	KindBlog        Kind = "blog"
	KindProject     Kind = "project"
	KindProofOfWork Kind = "proof-of-work"
)

// Kinds lists every document kind in display order.
var Kinds = []Kind{KindBlog, KindProject, KindProofOfWork}

// Dir returns the directory name (relative to the content root) holding documents of this kind.
func (k Kind) Dir() string {
	switch k {
	case KindBlog:
		return "blog"
	case KindProject:
		return "projects"
	case KindProofOfWork:
		return "proofofwork"
	default:
		return string(k)
	}
}

// Collection returns the plural route segment used by the API (e.g. /api/blogs).
func (k Kind) Collection() string {
	switch k {
	case KindBlog:
		return "blogs"
	case KindProject:
		return "projects"
	default:
		return string(k)
	}
}

// PagePath returns the public page prefix for documents of this kind.
func (k Kind) PagePath() string {
	switch k {
	case KindBlog:
		return "/blog"
	case KindProject:
		return "/projects"
	default:
		return "/" + string(k)
	}
}

// ParseKind resolves either a kind name or its collection name.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if s == string(k) || s == k.Collection() {
			return k, true
		}
	}
	return "", false
}
