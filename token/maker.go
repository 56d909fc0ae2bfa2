package token

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Maker creates and verifies access and refresh tokens. JWT and PASETO
// implementations are interchangeable. VerifyToken does not check the kind;
// callers must.
type Maker interface {
	CreateToken(kind Kind, userID uuid.UUID, username, role string, duration time.Duration) (string, *Payload, error)

	VerifyToken(token string) (*Payload, error)
}

// NewMaker builds the maker named by kind ("jwt" or "paseto").
func NewMaker(kind, symmetricKey string) (Maker, error) {
	switch kind {
	case "", "jwt":
		return NewJWTMaker(symmetricKey)
	case "paseto":
		return NewPasetoMaker(symmetricKey)
	}
	return nil, fmt.Errorf("unknown token type %q", kind)
}
