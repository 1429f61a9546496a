package gateway

import "encoding/json"

// Response is the uniform result of a gateway call. OK is true for 2xx
// statuses; the raw body is retained so callers decode success and error
// payloads as they see fit.
type Response struct {
	OK     bool
	Status int
	Body   []byte
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// ErrorMessage extracts the backend error payload's message field, falling
// back to the supplied operation-specific message when the payload has none.
func (r *Response) ErrorMessage(fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.Body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fallback
}
