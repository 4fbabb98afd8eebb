package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vegfeedback/internal/apperrors"
	"vegfeedback/internal/models"
	"vegfeedback/internal/repositories"
	"vegfeedback/internal/validation"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid email or password"

// AuthService handles registration, credential checks and bearer tokens.
type AuthService struct {
	userRepo   repositories.UserRepository
	validate   *validation.Validator
	jwtSecret  []byte
	tokenDurat time.Duration
	hashCost   int
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, validate *validation.Validator, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		validate:   validate,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: tokenTTL,
		hashCost:   bcrypt.DefaultCost,
	}
}

// SetHashCost overrides the bcrypt cost; tests use bcrypt.MinCost.
func (s *AuthService) SetHashCost(cost int) {
	s.hashCost = cost
}

// Register validates input, hashes the password and saves the new user.
func (s *AuthService) Register(ctx context.Context, input models.RegisterInput) (*models.User, error) {
	input.Email = normalizeEmail(input.Email)
	input.Username = strings.TrimSpace(input.Username)
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	// Check if username or email already exists
	if existingUser, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil && existingUser != nil {
		return nil, apperrors.Conflict("Email already registered")
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existingUser, err := s.userRepo.GetByUsername(ctx, input.Username); err == nil && existingUser != nil {
		return nil, apperrors.Conflict("Username already taken")
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hashedPassword),
		PRNNumber: strings.TrimSpace(input.PRNNumber),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Authenticate checks an email/password pair. Unknown emails and wrong
// passwords fail with the same message.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.Unauthenticated(invalidCredentials)
	}
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthenticated(invalidCredentials)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Compare the provided password with the hashed password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.Unauthenticated(invalidCredentials)
	}
	return user, nil
}

// CurrentUser loads the user behind an authenticated identity.
func (s *AuthService) CurrentUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthenticated("Unauthorized")
		}
		return nil, err
	}
	return user, nil
}

// IssueToken signs a bearer token for user.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      now.Add(s.tokenDurat).Unix(),
		"iat":      now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a bearer token and returns the user
// id it was issued for.
func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, apperrors.Unauthenticated("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, apperrors.Unauthenticated("Invalid or expired token")
	}
	// Numeric claims decode as float64.
	id, ok := claims["user_id"].(float64)
	if !ok || id < 1 {
		return 0, apperrors.Unauthenticated("Invalid or expired token")
	}
	return uint(id), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
