package session

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/healthguard/internal/common"
	"github.com/dmitrijs2005/healthguard/internal/cryptox"
	"github.com/dmitrijs2005/healthguard/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Codec serializes the persisted session snapshot. Decode returns an error
// wrapping common.ErrCorruptSession for anything that is not a valid session.
type Codec interface {
	Encode(s *models.Session) ([]byte, error)
	Decode(data []byte) (*models.Session, error)
}

// validate checks the shape a restored session must have.
func validate(s *models.Session) error {
	switch {
	case s.ID == "":
		return fmt.Errorf("%w: missing session id", common.ErrCorruptSession)
	case s.User.ID == "":
		return fmt.Errorf("%w: missing user id", common.ErrCorruptSession)
	case s.User.Name == "":
		return fmt.Errorf("%w: missing user name", common.ErrCorruptSession)
	case !s.User.Role.Valid():
		return fmt.Errorf("%w: unknown role %q", common.ErrCorruptSession, s.User.Role)
	}
	return nil
}

// JSONCodec stores the session as a plain JSON object.
type JSONCodec struct{}

func (JSONCodec) Encode(s *models.Session) ([]byte, error) {
	return json.Marshal(s)
}

func (JSONCodec) Decode(data []byte) (*models.Session, error) {
	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptSession, err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// snapshotClaims is the JWT payload of a signed snapshot.
type snapshotClaims struct {
	jwt.RegisteredClaims
	Session models.Session `json:"session"`
}

// SignedCodec stores the session as an HS256 JWT so that a hand-edited
// snapshot (for example one that changes the role) is rejected as corrupt.
type SignedCodec struct {
	key []byte
}

// NewSignedCodec derives the HMAC key from secret with Argon2id.
func NewSignedCodec(secret string) *SignedCodec {
	return &SignedCodec{key: cryptox.DeriveKey([]byte(secret), cryptox.SigningSalt)}
}

func (c *SignedCodec) Encode(s *models.Session) ([]byte, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, snapshotClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  s.User.Username,
			ID:       s.ID,
			IssuedAt: jwt.NewNumericDate(s.EstablishedAt),
		},
		Session: *s,
	})

	signed, err := token.SignedString(c.key)
	if err != nil {
		return nil, err
	}
	return []byte(signed), nil
}

func (c *SignedCodec) Decode(data []byte) (*models.Session, error) {
	claims := &snapshotClaims{}

	token, err := jwt.ParseWithClaims(string(data), claims, func(t *jwt.Token) (interface{}, error) {
		return c.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptSession, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: invalid signature", common.ErrCorruptSession)
	}

	s := claims.Session
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
