package follow

import "foodgram/internal/pkg/apperr"

var (
	ErrSelfFollow       = apperr.Validation("SELF_SUBSCRIPTION", "You cannot subscribe to yourself")
	ErrAlreadyFollowing = apperr.Validation("ALREADY_SUBSCRIBED", "You are already subscribed to this author")
	ErrNotFollowing     = apperr.Validation("NOT_SUBSCRIBED", "You are not subscribed to this author")
	ErrInvalidLimit     = apperr.Validation("INVALID_RECIPES_LIMIT", "recipes_limit must be a non-negative integer")
)
