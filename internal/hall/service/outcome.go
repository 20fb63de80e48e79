package service

import "net/http"

// Result is the shaped outcome of a store or gate operation: a status code
// and a human-readable message, rendered by the HTTP boundary as a
// status-coded {"code", "message"} JSON body.
type Result struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Failures the caller can act on carry specific messages; infrastructure
// failures always collapse to msgFailed with the detail going only to the
// log sink.
const (
	msgNotFound      = "The requested ID doesn't exist, please try again!"
	msgNoID          = "No ID was provided, try again!"
	msgIDMismatch    = "The provided ID and the record's current ID do not match, try again!"
	msgInvalidKey    = "Invalid key"
	msgAdminDisabled = "The admin interface is currently disabled"
	msgFailed        = "The requested operation failed, please try again."
	msgMalformed     = "Your request was malformed, please modify it and try again."
)

func badRequest(msg string) Result {
	return Result{Code: http.StatusBadRequest, Message: msg}
}

func forbidden(msg string) Result {
	return Result{Code: http.StatusForbidden, Message: msg}
}

// MalformedRequest is the generic 400 for request bodies that never reach
// the store (bad JSON, unparseable path IDs).
func MalformedRequest() Result {
	return badRequest(msgMalformed)
}

// OperationFailed is the one opaque 500 every unexpected backend, codec, or
// ID-generator failure collapses to.
func OperationFailed() Result {
	return Result{Code: http.StatusInternalServerError, Message: msgFailed}
}
