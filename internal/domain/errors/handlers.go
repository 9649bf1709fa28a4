package errors

// The JSON envelopes every API response uses. A success carries data, a
// failure carries error; both carry the request id in meta.

// ErrorInfo is the error half of the envelope.
type ErrorInfo struct {
	// Code is the stable machine code, e.g. "LOCATION_ALREADY_CLAIMED"
	Code    string `json:"code"`
	Message string `json:"message"`
	// Details is a string or, for VALIDATION_FAILED, a list of field errors
	Details any `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
