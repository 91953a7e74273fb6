package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hermes/backend/internal/domain/identity"
)

// LoginInput contains the credentials supplied by the presentation layer
type LoginInput struct {
	Username string
	Password string
}

// UserInfo is the safe subset of a user returned to the presentation
// layer. It never carries the password hash.
type UserInfo struct {
	ID       uuid.UUID
	Username string
	Role     identity.Role
}

// LoginResult contains the issued tokens and user info
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}
