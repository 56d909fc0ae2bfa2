package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrExpired      = errors.New("token has expired")
	ErrInvalidToken = errors.New("token is invalid")
	ErrWrongKind    = errors.New("token kind not accepted here")
)

// Kind separates short-lived access tokens from refresh tokens, which are
// only good for obtaining a new pair.
type Kind string

const (
	AccessToken  Kind = "access"
	RefreshToken Kind = "refresh"
)

type Payload struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`
}

func NewPayload(kind Kind, userID uuid.UUID, username, role string, duration time.Duration) (*Payload, error) {
	if kind != AccessToken && kind != RefreshToken {
		return nil, fmt.Errorf("unknown token kind %q", kind)
	}
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}
	if duration <= 0 {
		return nil, errors.New("duration must be positive")
	}

	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	issuedAt := time.Now()
	payload := &Payload{
		ID:        tokenID,
		Kind:      kind,
		UserID:    userID,
		Username:  username,
		Role:      role,
		IssuedAt:  issuedAt,
		ExpiredAt: issuedAt.Add(duration),
	}
	return payload, nil
}

func (payload *Payload) Valid() error {
	if time.Now().After(payload.ExpiredAt) {
		return ErrExpired
	}
	return nil
}

func (p *Payload) String() string {
	return fmt.Sprintf("ID: %s, Kind: %s, Username: %s, Role: %s, ExpiredAt: %s", p.ID, p.Kind, p.Username, p.Role, p.ExpiredAt)
}
