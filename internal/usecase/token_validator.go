package usecase

import (
	"carreserve/internal/domain/user"

	"github.com/google/uuid"
)

// TokenValidator is the slice of AuthUseCase the auth middleware depends on.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

func NewTokenValidator(authUseCase AuthUseCase) TokenValidator {
	return authUseCase
}
