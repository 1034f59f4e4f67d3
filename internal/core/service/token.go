package service

import (
	"encoding/base64"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nailyse/salon-api/internal/core/domain"
)

// tokenTTL is the validity window of every issued token. Legacy tokens use
// the same 24-hour window measured from their embedded timestamp.
const tokenTTL = 24 * time.Hour

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// TokenManager issues and validates bearer tokens. Issued tokens are HS256
// JWTs carrying the user's email as subject. Validation optionally also
// accepts the historical unsigned base64(email:timestamp) format, which
// provides no integrity guarantee and exists only for compatibility with
// clients that still hold such tokens.
type TokenManager struct {
	secret      []byte
	allowLegacy bool
}

func NewTokenManager(secret string, allowLegacy bool) *TokenManager {
	return &TokenManager{secret: []byte(secret), allowLegacy: allowLegacy}
}

// Issue returns a signed token identifying the given email, valid for 24h.
func (m *TokenManager) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// ParseEmail validates a bearer token and returns the embedded email.
func (m *TokenManager) ParseEmail(token string) (string, error) {
	email, err := m.parseJWT(token)
	if err == nil {
		return email, nil
	}
	if m.allowLegacy && !errors.Is(err, domain.ErrTokenExpired) {
		if legacyEmail, legacyErr := m.parseLegacy(token); legacyErr == nil {
			return legacyEmail, nil
		} else if errors.Is(legacyErr, domain.ErrTokenExpired) {
			return "", legacyErr
		}
	}
	return "", err
}

func (m *TokenManager) parseJWT(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenMalformed
	}
	if !parsed.Valid || !emailRx.MatchString(claims.Subject) {
		return "", domain.ErrTokenMalformed
	}
	return claims.Subject, nil
}

// parseLegacy decodes base64(email:timestamp) and applies the same 24-hour
// window the historical backend used.
func (m *TokenManager) parseLegacy(token string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil || !strings.Contains(string(decoded), ":") {
		return "", domain.ErrTokenMalformed
	}

	parts := strings.SplitN(string(decoded), ":", 2)
	email := parts[0]
	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", domain.ErrTokenMalformed
	}
	if time.Since(time.Unix(ts, 0)) > tokenTTL {
		return "", domain.ErrTokenExpired
	}
	if !emailRx.MatchString(email) {
		return "", domain.ErrTokenMalformed
	}
	return email, nil
}
