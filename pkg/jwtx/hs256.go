package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretBytes is the smallest shared secret HS256 accepts. HMAC-SHA256
// wants at least a hash-sized key.
const MinSecretBytes = 32

// HS256 signs and verifies session tokens with a single shared secret. The
// issuing service is also the only verifier, so there is no key
// distribution problem a keypair would solve.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 creates a shared-secret signer/verifier. The secret must carry
// at least MinSecretBytes of material.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) < MinSecretBytes {
		return nil, fmt.Errorf("jwtx: secret must be at least %d bytes, got %d", MinSecretBytes, len(secret))
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign turns claims into a compact signed JWT string.
func (h *HS256) Sign(claims Claims) (string, error) {
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return s, nil
}

// Verify parses and validates a compact token string. Only HMAC tokens are
// accepted; an RS256 or alg=none token fails before the keyfunc runs.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		return Claims{}, translateParseError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidClaim)
	}

	return *claims, nil
}

// translateParseError maps golang-jwt parse failures onto our sentinels.
func translateParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
