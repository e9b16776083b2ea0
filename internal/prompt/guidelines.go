package prompt

import (
	"fmt"

	"github.com/phrazzld/copyforge-api/internal/domain"
)

// offerTypeGuidelines maps each supported offer type to the copywriting
// guidance the model receives for it.
var offerTypeGuidelines = map[domain.OfferType]string{
	domain.OfferTypeDiscount: `Lead with the size of the saving. State the discount plainly in the headline and repeat the qualifying conditions in the body. Urgency is appropriate but must not overstate scarcity.`,

	domain.OfferTypeBOGO: `Make the mechanics unmistakable: what the customer buys and what they get. Avoid abbreviations like "BOGO" in customer-facing text. Spell out any limits per transaction in the body.`,

	domain.OfferTypeFreeShipping: `Emphasize the removal of a cost the customer expects to pay. State any minimum order value prominently. Keep the call to action focused on starting an order.`,

	domain.OfferTypeNewProduct: `Focus on what is new and why it matters to the customer. The headline introduces the product; the body covers the one or two strongest differentiators. Avoid discount language.`,

	domain.OfferTypeSeasonal: `Anchor the copy to the occasion without naming competitors. Tie product relevance to the season in the body. Time-limited framing is expected for this offer type.`,

	domain.OfferTypeLoyalty: `Address existing customers directly and acknowledge their relationship with the brand. Make the reward and how to claim it explicit. Exclusivity framing is appropriate.`,
}

// GuidelinesFor returns the copywriting guideline text for the given offer
// type, or an error if the type is outside the supported set.
func GuidelinesFor(offerType domain.OfferType) (string, error) {
	guidelines, ok := offerTypeGuidelines[offerType]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidOfferType, offerType)
	}
	return guidelines, nil
}
