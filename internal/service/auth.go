package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
)

// AuthService verifies administrator credentials and manages session
// tokens. It is the application's identity provider: the route guard
// depends on it explicitly rather than on any process-wide session value.
type AuthService struct {
	admins     domain.AdminRepository
	jwtSecret  []byte
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(admins domain.AdminRepository, jwtSecret string, bcryptCost int) *AuthService {
	return &AuthService{
		admins:     admins,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
	}
}

// SeedAdmin ensures the administrator account exists. It is idempotent: an
// existing account is left untouched, including its password hash.
func (s *AuthService) SeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: admin email and password are required", domain.ErrInvalidInput)
	}

	_, err := s.admins.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &domain.Admin{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

// Login verifies credentials and returns a signed session token. Any
// credential failure collapses to ErrUnauthorized; the caller renders one
// generic message either way.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("get admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	token, err := s.generateJWT(admin)
	if err != nil {
		return "", fmt.Errorf("generate jwt: %w", err)
	}
	return token, nil
}

// ValidateToken parses and validates a session token string and returns
// the admin ID from the sub claim.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrUnauthorized
	}
	return sub, nil
}

// GetAdminByID retrieves an administrator account by its ID.
func (s *AuthService) GetAdminByID(ctx context.Context, id string) (*domain.Admin, error) {
	return s.admins.GetByID(ctx, id)
}

func (s *AuthService) generateJWT(admin *domain.Admin) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   admin.ID,
		"email": admin.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
