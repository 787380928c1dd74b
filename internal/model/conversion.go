package model

// HexifyRequest is the body of a decimal to hex conversion. The json tag is
// used by /api, the form tag by the htmx form posting to /html.
type HexifyRequest struct {
	DecValue string `json:"dec_value" form:"dec_value"`
}

// DecifyRequest is the body of a hex to decimal conversion.
type DecifyRequest struct {
	HexValue string `json:"hex_value" form:"hex_value"`
}

// ConversionView is what the result fragment renders.
type ConversionView struct {
	Name  string
	Value string
}

// ErrorResponse is the JSON error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

const (
	ErrCodeNotFound    = "notFound"
	ErrCodeInvalidBody = "invalidBody"
)
