// Package generation provides the boundary to external text-generation
// services and the decoding of their responses. It abstracts the details
// of LLM API integration (Gemini), allowing the application to generate
// ad copy for offers without coupling to a specific external service.
package generation
