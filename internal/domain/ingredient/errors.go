package ingredient

import "foodgram/internal/pkg/apperr"

var (
	ErrNotFound      = apperr.NotFound("INGREDIENT_NOT_FOUND", "Ingredient not found")
	ErrInvalidRecord = apperr.Validation("INVALID_INGREDIENT_RECORD", "Invalid ingredient record")
	ErrUnknownFormat = apperr.Validation("UNKNOWN_IMPORT_FORMAT", "Unsupported import format")
)
