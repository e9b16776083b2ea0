package prompt

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/phrazzld/copyforge-api/internal/domain"
)

// systemTemplateText frames the model as a copywriter, injects the
// per-offer-type guidelines, and pins down the JSON output contract.
const systemTemplateText = `You are an expert retail marketing copywriter.

Guidelines for this offer type:
{{.Guidelines}}

Respond with a single JSON object and nothing else. The object must have
exactly these five fields:
  "headline": string, at most 120 characters
  "subheadline": string or null
  "body": string
  "callToAction": string, at most 80 characters
  "legalDisclaimer": string or null

Do not add any other fields. Do not wrap the JSON in markdown.`

// userTemplateText frames the task: revise the supplied copy when the
// offer carries existing copy, generate from scratch otherwise.
const userTemplateText = `{{if .ExistingCopy -}}
Revise the existing ad copy below for the following offer. Keep what works,
fix what does not, and follow the guidelines.

Offer: {{.Description}}

Existing copy to revise:
{{.ExistingCopy}}
{{- else -}}
Generate new ad copy for the following offer, following the guidelines.

Offer: {{.Description}}
{{- end}}`

// systemData is the data passed to the system instruction template.
type systemData struct {
	Guidelines string
}

// userData is the data passed to the user prompt template.
type userData struct {
	Description  string
	ExistingCopy string
}

// Builder composes system and user instructions for the generation service.
type Builder struct {
	systemTemplate *template.Template
	userTemplate   *template.Template
}

// NewBuilder creates a Builder with the parsed instruction templates.
func NewBuilder() (*Builder, error) {
	systemTemplate, err := template.New("system").Parse(systemTemplateText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse system template: %w", err)
	}

	userTemplate, err := template.New("user").Parse(userTemplateText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user template: %w", err)
	}

	return &Builder{
		systemTemplate: systemTemplate,
		userTemplate:   userTemplate,
	}, nil
}

// BuildSystem returns the system instruction for the given offer type:
// the type's guidelines plus the JSON output contract.
func (b *Builder) BuildSystem(offerType domain.OfferType) (string, error) {
	guidelines, err := GuidelinesFor(offerType)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := b.systemTemplate.Execute(&buf, systemData{Guidelines: guidelines}); err != nil {
		return "", fmt.Errorf("failed to execute system template: %w", err)
	}

	return buf.String(), nil
}

// BuildUser returns the user prompt for the given offer, with revise
// framing when the offer carries existing copy and generate framing
// otherwise.
func (b *Builder) BuildUser(offer domain.Offer) (string, error) {
	data := userData{Description: offer.Description}
	if offer.HasExistingCopy() {
		data.ExistingCopy = *offer.ExistingCopy
	}

	var buf bytes.Buffer
	if err := b.userTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute user template: %w", err)
	}

	return buf.String(), nil
}
