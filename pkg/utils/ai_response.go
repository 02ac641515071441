package utils

import (
	"encoding/json"
	"log"
	"strings"
)

// StripCodeFences removes a leading ```json or ``` marker and a trailing ```
// marker from a model response. Any combination of the markers may be present.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	}
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// DecodeAIResponse strips markdown fencing from a raw model response and
// unmarshals the remainder into out. The raw text is logged on parse failure
// so non-compliant responses can be triaged afterwards.
func DecodeAIResponse(raw string, out interface{}) error {
	cleaned := StripCodeFences(raw)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		log.Printf("JSON decode error: %v\nResponse: %s", err, raw)
		return ErrMalformedAIResponse
	}
	return nil
}
