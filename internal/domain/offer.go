package domain

import (
	"errors"
	"fmt"
)

// OfferType categorizes the kind of promotion an offer describes.
// The set is closed: copy guidelines are curated per type, so an
// unknown type has no guidelines to generate against.
type OfferType string

// Supported offer types
const (
	OfferTypeDiscount     OfferType = "discount"
	OfferTypeBOGO         OfferType = "bogo"
	OfferTypeFreeShipping OfferType = "free_shipping"
	OfferTypeNewProduct   OfferType = "new_product"
	OfferTypeSeasonal     OfferType = "seasonal"
	OfferTypeLoyalty      OfferType = "loyalty"
)

// Field length bounds for Offer
const (
	MaxDescriptionLength  = 2000
	MaxExistingCopyLength = 5000
)

// Common validation errors for Offer
var (
	ErrInvalidOfferType    = errors.New("invalid offer type")
	ErrEmptyDescription    = errors.New("offer description cannot be empty")
	ErrDescriptionTooLong  = fmt.Errorf("offer description exceeds %d characters", MaxDescriptionLength)
	ErrExistingCopyTooLong = fmt.Errorf("existing copy exceeds %d characters", MaxExistingCopyLength)
)

// Offer represents one independent copy-generation request: what kind of
// promotion it is, a free-text description of it, and optionally the
// existing ad copy to revise. Immutable once accepted.
type Offer struct {
	Type         OfferType `json:"offerType"`
	Description  string    `json:"offerDescription"`
	ExistingCopy *string   `json:"existingCopy,omitempty"`
}

// NewOffer creates a validated Offer. existingCopy may be nil when there is
// no prior copy to revise.
func NewOffer(offerType OfferType, description string, existingCopy *string) (*Offer, error) {
	offer := &Offer{
		Type:         offerType,
		Description:  description,
		ExistingCopy: existingCopy,
	}

	if err := offer.Validate(); err != nil {
		return nil, err
	}

	return offer, nil
}

// Validate checks the offer's fields against their declared bounds.
func (o *Offer) Validate() error {
	if !o.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidOfferType, o.Type)
	}

	if o.Description == "" {
		return ErrEmptyDescription
	}

	if len(o.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	if o.ExistingCopy != nil && len(*o.ExistingCopy) > MaxExistingCopyLength {
		return ErrExistingCopyTooLong
	}

	return nil
}

// HasExistingCopy reports whether the offer carries prior copy to revise.
func (o *Offer) HasExistingCopy() bool {
	return o.ExistingCopy != nil && *o.ExistingCopy != ""
}

// IsValid checks if the given offer type is part of the supported set.
func (t OfferType) IsValid() bool {
	switch t {
	case OfferTypeDiscount, OfferTypeBOGO, OfferTypeFreeShipping,
		OfferTypeNewProduct, OfferTypeSeasonal, OfferTypeLoyalty:
		return true
	default:
		return false
	}
}

// OfferTypes returns the closed set of supported offer types.
func OfferTypes() []OfferType {
	return []OfferType{
		OfferTypeDiscount,
		OfferTypeBOGO,
		OfferTypeFreeShipping,
		OfferTypeNewProduct,
		OfferTypeSeasonal,
		OfferTypeLoyalty,
	}
}
