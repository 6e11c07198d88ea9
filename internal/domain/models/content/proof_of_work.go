package content

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/Shivrajsoni/portfolio/internal/config"
)

// ProofOfWorkType classifies a proof-of-work entry.
type ProofOfWorkType string

const (
	ProofOfWorkOSS      ProofOfWorkType = "oss"
	ProofOfWorkBounty   ProofOfWorkType = "bounty"
	ProofOfWorkMentions ProofOfWorkType = "mentions"
)

// ProofOfWork records an open-source contribution, a bounty or a mention.
type ProofOfWork struct {
	Meta `yaml:",inline"`

	Type          ProofOfWorkType `yaml:"type" json:"type"`
	LiveLink      string          `yaml:"liveLink,omitempty" json:"liveLink,omitempty"`
	Organization  string          `yaml:"organization,omitempty" json:"organization,omitempty"`
	HardnessLevel string          `yaml:"hardnessLevel,omitempty" json:"hardnessLevel,omitempty"`
}

// NewProofOfWork returns an empty proof-of-work entry.
func NewProofOfWork() *ProofOfWork {
	return &ProofOfWork{}
}

func (p *ProofOfWork) Kind() Kind {
	return KindProofOfWork
}

// Validate checks the shared fields, the entry type and the link.
func (p *ProofOfWork) Validate() error {
	if err := p.Meta.validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(p,
		validation.Field(&p.Type, validation.Required,
			validation.In(ProofOfWorkOSS, ProofOfWorkBounty, ProofOfWorkMentions)),
		validation.Field(&p.LiveLink, is.URL, validation.Length(0, config.MaxLinkLength)),
	)
}
