package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nasarali03/Portfolio/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	AdminRole   = "admin"
	tokenIssuer = "portfolio-service"
)

// SessionStore tracks live admin sessions so tokens can be revoked.
type SessionStore interface {
	SaveSession(ctx context.Context, id string, ttl time.Duration) error
	SessionExists(ctx context.Context, id string) (bool, error)
	DeleteSession(ctx context.Context, id string) error
}

type AdminClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthService is the single-admin session oracle.
type AuthService struct {
	username     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	sessions     SessionStore
	now          func() time.Time
}

func NewAuthService(cfg config.AdminConfig, sessions SessionStore) (*AuthService, error) {
	var hash []byte
	switch {
	case cfg.PasswordHash != "":
		hash = []byte(cfg.PasswordHash)
	case cfg.Password != "":
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		hash = generated
	default:
		return nil, errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}

	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		log.Println("Warning: JWT_SECRET is empty, using a random secret; admin sessions end on restart")
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &AuthService{
		username:     cfg.Username,
		passwordHash: hash,
		secret:       secret,
		ttl:          ttl,
		sessions:     sessions,
		now:          time.Now,
	}, nil
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.ttl
}

// Login checks the credentials and opens a session. It returns the signed
// token and its expiry.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: username,
		Role:     AdminRole,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		loginAttempts.WithLabelValues("error").Inc()
		return "", time.Time{}, fmt.Errorf("error generate token string: %w", err)
	}

	if err := s.sessions.SaveSession(ctx, claims.ID, s.ttl); err != nil {
		loginAttempts.WithLabelValues("error").Inc()
		return "", time.Time{}, err
	}

	loginAttempts.WithLabelValues("success").Inc()
	return token, expiresAt, nil
}

// ValidateToken verifies the signature, expiry and the live session.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != AdminRole || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	live, err := s.sessions.SessionExists(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !live {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) Logout(ctx context.Context, claims *AdminClaims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	return s.sessions.DeleteSession(ctx, claims.ID)
}
