package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const minJWTKeySize = 32

// JWTMaker issues HS256 signed JWTs.
type JWTMaker struct {
	secretKey []byte
}

type jwtClaims struct {
	Kind     Kind   `json:"kind"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func NewJWTMaker(secretKey string) (Maker, error) {
	if len(secretKey) < minJWTKeySize {
		return nil, fmt.Errorf("invalid key size: must be at least %d characters", minJWTKeySize)
	}
	return &JWTMaker{secretKey: []byte(secretKey)}, nil
}

func (maker *JWTMaker) CreateToken(kind Kind, userID uuid.UUID, username, role string, duration time.Duration) (string, *Payload, error) {
	payload, err := NewPayload(kind, userID, username, role, duration)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create token payload: %w", err)
	}

	claims := jwtClaims{
		Kind:     kind,
		UserID:   userID.String(),
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        payload.ID.String(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(payload.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(payload.ExpiredAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(maker.secretKey)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, payload, nil
}

func (maker *JWTMaker) VerifyToken(token string) (*Payload, error) {
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return maker.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	payload := &Payload{
		Kind:     claims.Kind,
		Username: claims.Username,
		Role:     claims.Role,
	}
	if payload.ID, err = uuid.Parse(claims.ID); err != nil {
		return nil, ErrInvalidToken
	}
	if payload.UserID, err = uuid.Parse(claims.UserID); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}
	payload.ExpiredAt = claims.ExpiresAt.Time

	return payload, nil
}
