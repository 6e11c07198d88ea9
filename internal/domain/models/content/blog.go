package content

// Blog is a blog post. It carries only the shared fields.
type Blog struct {
	Meta `yaml:",inline"`
}

// NewBlog returns an empty blog post.
func NewBlog() *Blog {
	return &Blog{}
}

func (b *Blog) Kind() Kind {
	return KindBlog
}

// Validate checks the fields required to write a blog post.
func (b *Blog) Validate() error {
	return b.Meta.validate()
}
