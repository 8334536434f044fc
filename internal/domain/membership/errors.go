package membership

import "foodgram/internal/pkg/apperr"

var ErrInvalidRecipe = apperr.Validation("INVALID_ID", "Invalid recipe ID")
