package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"socialhub/dto"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired token")
)

const (
	tokenLifetime    = 24 * time.Hour
	resetTokenLifetime = time.Hour
)

type AuthService struct {
	users        repository.UserRepository
	mailer       Mailer
	jwtSecret    string
	clientOrigin string
}

func NewAuthService(users repository.UserRepository, mailer Mailer, jwtSecret, clientOrigin string) *AuthService {
	return &AuthService{users: users, mailer: mailer, jwtSecret: jwtSecret, clientOrigin: clientOrigin}
}

// Signup creates a user with a bcrypt-hashed password. The returned user is
// the stored record; callers must serialize it through PublicUser so the
// hash never leaves the service boundary.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Lastname: strings.TrimSpace(req.Lastname),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a signed session token. The same
// error covers an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) signToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"uid": fmt.Sprintf("%d", userID),
		"sub": fmt.Sprintf("%d", userID),
		"iat": now.Unix(),
		"exp": now.Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ForgotPassword stores a short-lived reset token and mails the reset link.
// An unknown email is not an error; the caller answers identically either
// way so the endpoint does not disclose account existence.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)
	expires := time.Now().Add(resetTokenLifetime)

	user.ResetPasswordToken = &token
	user.ResetPasswordExpires = &expires
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.clientOrigin, token)
	body := fmt.Sprintf("You requested a password reset. Click here:\n\n%s", resetURL)
	if err := s.mailer.Send(user.Email, "Password Reset", body); err != nil {
		log.Printf("auth: send reset mail: %v", err)
		return err
	}
	return nil
}

// ResetPassword consumes an unexpired reset token and replaces the password.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	user, err := s.users.ByResetToken(ctx, token, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	user.ResetPasswordToken = nil
	user.ResetPasswordExpires = nil
	return s.users.Save(ctx, user)
}
