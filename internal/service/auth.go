package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aidar/event-planner/internal/domain"
	"github.com/aidar/event-planner/internal/repository"
)

const (
	tokenIssuer   = "event-planner"
	tokenAudience = "event-planner-api"
)

// Claims carries the attendee identity in the subject claim.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// UserID returns the user the token was issued to.
func (c *Claims) UserID() string {
	return c.Subject
}

// IssuedToken is a signed access token and the moment it stops being accepted.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService issues and verifies attendee access tokens.
type AuthService struct {
	userRepo repository.UserRepository
	secret   []byte
	ttl      time.Duration
	parser   *jwt.Parser
	now      func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	s := &AuthService{
		userRepo: userRepo,
		secret:   []byte(jwtSecret),
		ttl:      jwtExpiry,
		now:      time.Now,
	}
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	return s
}

// Login issues a token for a known user.
func (s *AuthService) Login(ctx context.Context, userID string) (IssuedToken, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return IssuedToken{}, err
	}

	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)
	claims := &Claims{
		Name: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID,
			Audience:  jwt.ClaimStrings{tokenAudience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return IssuedToken{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return IssuedToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// ValidateToken verifies signature, algorithm, issuer, audience and expiry.
// Any failure is reported as ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
