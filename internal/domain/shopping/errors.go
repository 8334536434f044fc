package shopping

import "foodgram/internal/pkg/apperr"

var (
	ErrUnknownFormat       = apperr.Validation("UNKNOWN_FORMAT", "Unsupported document format")
	ErrResourceUnavailable = apperr.Resource("RESOURCE_UNAVAILABLE", "Document resource is unavailable")
)
