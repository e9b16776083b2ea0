// Package prompt composes the system and user instructions sent to the
// generation service: per-offer-type copywriting guidelines, the JSON
// output contract, and generate-new versus revise-existing framing.
package prompt
