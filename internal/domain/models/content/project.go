package content

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/Shivrajsoni/portfolio/internal/config"
)

// Project is a portfolio project showcase.
type Project struct {
	Meta `yaml:",inline"`

	LiveLink        string `yaml:"liveLink,omitempty" json:"liveLink,omitempty"`
	GithubLink      string `yaml:"githubLink,omitempty" json:"githubLink,omitempty"`
	PagePreviewLink string `yaml:"pagePreviewLink,omitempty" json:"pagePreviewLink,omitempty"`
	Timeline        string `yaml:"timeline,omitempty" json:"timeline,omitempty"`
}

// NewProject returns an empty project.
func NewProject() *Project {
	return &Project{}
}

func (p *Project) Kind() Kind {
	return KindProject
}

// Validate checks the shared fields and the project links.
func (p *Project) Validate() error {
	if err := p.Meta.validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(p,
		validation.Field(&p.LiveLink, is.URL, validation.Length(0, config.MaxLinkLength)),
		validation.Field(&p.GithubLink, is.URL, validation.Length(0, config.MaxLinkLength)),
		validation.Field(&p.PagePreviewLink, is.URL, validation.Length(0, config.MaxLinkLength)),
	)
}
