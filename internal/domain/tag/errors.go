package tag

import "foodgram/internal/pkg/apperr"

var (
	ErrInvalidRequest = apperr.Validation("VALIDATION_ERROR", "Invalid request")
	ErrDuplicate      = apperr.Validation("TAG_EXISTS", "A tag with this name, color or slug already exists")
	ErrNotFound       = apperr.NotFound("TAG_NOT_FOUND", "Tag not found")
)
