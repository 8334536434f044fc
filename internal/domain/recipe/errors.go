package recipe

import "foodgram/internal/pkg/apperr"

var (
	ErrInvalidRequest      = apperr.Validation("VALIDATION_ERROR", "Invalid request")
	ErrDuplicateIngredient = apperr.Validation("DUPLICATE_INGREDIENT", "Ingredient listed more than once")
	ErrDuplicateTag        = apperr.Validation("DUPLICATE_TAG", "Tag listed more than once")
	ErrNotFound            = apperr.NotFound("RECIPE_NOT_FOUND", "Recipe not found")
	ErrForbidden           = apperr.Authorization("NOT_RECIPE_AUTHOR", "Only the author can modify this recipe")
)
