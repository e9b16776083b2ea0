package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phrazzld/copyforge-api/internal/domain"
)

// Excerpt bounds for decode failure messages. Failures must be diagnosable
// without leaking unbounded model output or offer text into logs.
const (
	maxRawExcerptLength         = 200
	maxDescriptionExcerptLength = 60
)

// adCopyFields is the exact set of fields a decoded response must carry.
// All five must be present; subheadline and legalDisclaimer may be
// explicit null, the rest must be non-null strings.
var adCopyFields = map[string]struct{}{
	"headline":        {},
	"subheadline":     {},
	"body":            {},
	"callToAction":    {},
	"legalDisclaimer": {},
}

// DecodeAdCopy turns raw response text into a validated AdCopy or a decode
// failure. Decoding is all-or-nothing: there is no partial record.
//
// The raw text may be wrapped in a fenced code block (optionally tagged as
// json), which generation services commonly emit; the fence is stripped
// before parsing rather than treated as an error. Parse failures are
// reported as ErrMalformedOutput with bounded excerpts of the raw text and
// of the originating offer description; shape violations in successfully
// parsed documents are reported as ErrSchemaViolation.
func DecodeAdCopy(raw, description string) (*domain.AdCopy, error) {
	normalized := stripCodeFence(raw)

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(normalized), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v (response: %q, offer: %q)",
			ErrMalformedOutput, err,
			excerpt(raw, maxRawExcerptLength),
			excerpt(description, maxDescriptionExcerptLength))
	}

	for field := range doc {
		if _, known := adCopyFields[field]; !known {
			return nil, fmt.Errorf("%w: unexpected field %q", ErrSchemaViolation, field)
		}
	}

	for field := range adCopyFields {
		if _, present := doc[field]; !present {
			return nil, fmt.Errorf("%w: missing field %q", ErrSchemaViolation, field)
		}
	}

	headline, err := requiredString(doc, "headline")
	if err != nil {
		return nil, err
	}

	body, err := requiredString(doc, "body")
	if err != nil {
		return nil, err
	}

	callToAction, err := requiredString(doc, "callToAction")
	if err != nil {
		return nil, err
	}

	subheadline, err := nullableString(doc, "subheadline")
	if err != nil {
		return nil, err
	}

	legalDisclaimer, err := nullableString(doc, "legalDisclaimer")
	if err != nil {
		return nil, err
	}

	adCopy := &domain.AdCopy{
		Headline:        headline,
		Subheadline:     subheadline,
		Body:            body,
		CallToAction:    callToAction,
		LegalDisclaimer: legalDisclaimer,
	}

	if err := adCopy.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	return adCopy, nil
}

// stripCodeFence removes a leading ``` or ```json marker and a trailing
// ``` marker, plus surrounding whitespace. Text without fence markers is
// returned unchanged apart from whitespace trimming, so the operation is
// idempotent.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)

	if rest, found := strings.CutPrefix(trimmed, "```json"); found {
		trimmed = rest
	} else if rest, found := strings.CutPrefix(trimmed, "```"); found {
		trimmed = rest
	}

	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.TrimSuffix(trimmed, "```")

	return strings.TrimSpace(trimmed)
}

// requiredString extracts a field that must be a non-null JSON string.
func requiredString(doc map[string]json.RawMessage, field string) (string, error) {
	value := doc[field]
	if isJSONNull(value) {
		return "", fmt.Errorf("%w: field %q must not be null", ErrSchemaViolation, field)
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", fmt.Errorf("%w: field %q must be a string", ErrSchemaViolation, field)
	}

	return s, nil
}

// nullableString extracts a field that must be a JSON string or explicit null.
func nullableString(doc map[string]json.RawMessage, field string) (*string, error) {
	value := doc[field]
	if isJSONNull(value) {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return nil, fmt.Errorf("%w: field %q must be a string or null", ErrSchemaViolation, field)
	}

	return &s, nil
}

// isJSONNull reports whether the raw value is the JSON null literal.
func isJSONNull(value json.RawMessage) bool {
	return string(value) == "null"
}

// excerpt returns at most limit characters of s, marking truncation.
func excerpt(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
