// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"draftdesk/config"
	"draftdesk/internal/domain/service"
)

const (
	defaultAccessTTL  = time.Minute * 15
	defaultRefreshTTL = time.Hour * 24 * 7
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, refreshTTL := defaultAccessTTL, defaultRefreshTTL
	if cfg.Session != nil {
		if cfg.Session.AccessTTL > 0 {
			accessTTL = cfg.Session.AccessTTL
		}
		if cfg.Session.RefreshTTL > 0 {
			refreshTTL = cfg.Session.RefreshTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given principal.
func (s *jwtService) GenerateTokens(uid, email string, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(uid, email, roles, s.accessTTL, s.accessSecret, "access")
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(uid, email, nil, s.refreshTTL, s.refreshSecret, "refresh")
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken checks the validity of a token string against either secret
// and returns the parsed claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := jwt.MapClaims{}

	// A token is tried against the access secret first; a refresh token
	// fails that check and is retried with the refresh secret.
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc(s.accessSecret))
	if err != nil {
		token, err = jwt.ParseWithClaims(tokenString, claims, s.keyFunc(s.refreshSecret))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	return claimsFromMap(claims)
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) keyFunc(secret string) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	}
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(uid, email string, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   uid,                        // Subject (who the token is for)
		"email": email,                      // Role derivation input
		"iat":   time.Now().Unix(),          // Issued At
		"exp":   time.Now().Add(ttl).Unix(), // Expiration Time
		"type":  tokenType,                  // Type of token (access or refresh)
	}
	// Only add roles to the access token for stateless authorization.
	if roles != nil {
		claims["roles"] = roles
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func claimsFromMap(m jwt.MapClaims) (*service.Claims, error) {
	out := &service.Claims{}

	sub, ok := m["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token is missing its subject")
	}
	out.UID = sub

	if email, ok := m["email"].(string); ok {
		out.Email = email
	}
	if tokenType, ok := m["type"].(string); ok {
		out.Type = tokenType
	}
	if rolesClaim, ok := m["roles"].([]any); ok {
		for _, r := range rolesClaim {
			if roleStr, ok := r.(string); ok {
				out.Roles = append(out.Roles, roleStr)
			}
		}
	}

	return out, nil
}
