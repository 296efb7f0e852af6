package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"socialhub/dto"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) (*AuthService, *fakeMailer, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	mailer := &fakeMailer{}
	users := repository.NewUserRepository(db)
	auth := NewAuthService(users, mailer, testSecret, "http://localhost:5173")
	return auth, mailer, db
}

func TestSignup(t *testing.T) {
	auth, _, db := newAuthFixture(t)
	ctx := context.Background()

	user, err := auth.Signup(ctx, dto.SignupRequest{
		Name: " Jane ", Lastname: "Doe", Email: " Jane@Example.COM ", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.Name != "Jane" || user.Email != "jane@example.com" {
		t.Errorf("normalization: name=%q email=%q", user.Name, user.Email)
	}
	if user.Password == "secret123" || user.Password == "" {
		t.Fatalf("password stored as %q, want bcrypt hash", user.Password)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}

	var rows int64
	if err := db.Model(&models.User{}).Count(&rows).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if rows != 1 {
		t.Fatalf("got %d user rows, want 1", rows)
	}

	// Same address again, different case: the unique index rejects it.
	_, err = auth.Signup(ctx, dto.SignupRequest{
		Name: "Other", Email: "JANE@example.com", Password: "whatever12",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate signup err = %v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	auth, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := auth.Signup(ctx, dto.SignupRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"ok", "jane@example.com", "secret123", nil},
		{"wrong password", "jane@example.com", "nope12345", ErrInvalidCredentials},
		{"unknown email", "ghost@example.com", "secret123", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, token, err := auth.Login(ctx, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if user == nil || token == "" {
				t.Fatalf("login returned user=%v token=%q", user, token)
			}

			parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
				return []byte(testSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !parsed.Valid {
				t.Fatalf("token does not verify: %v", err)
			}
			claims := parsed.Claims.(jwt.MapClaims)
			if claims["uid"] != "1" {
				t.Errorf("uid claim = %v, want \"1\"", claims["uid"])
			}
		})
	}
}

func TestForgotPassword(t *testing.T) {
	auth, mailer, db := newAuthFixture(t)
	ctx := context.Background()

	if _, err := auth.Signup(ctx, dto.SignupRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	// Unknown address: same nil result, no mail.
	if err := auth.ForgotPassword(ctx, "ghost@example.com"); err != nil {
		t.Fatalf("ForgotPassword unknown: %v", err)
	}
	if len(mailer.to) != 0 {
		t.Fatalf("mail sent for unknown address: %v", mailer.to)
	}

	if err := auth.ForgotPassword(ctx, "jane@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if len(mailer.to) != 1 || mailer.to[0] != "jane@example.com" {
		t.Fatalf("mail recipients = %v", mailer.to)
	}

	var user models.User
	if err := db.First(&user, "email = ?", "jane@example.com").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.ResetPasswordToken == nil || user.ResetPasswordExpires == nil {
		t.Fatal("reset token not stored")
	}
	if !strings.Contains(mailer.bodies[0], *user.ResetPasswordToken) {
		t.Errorf("mail body does not carry the token: %q", mailer.bodies[0])
	}
	if !strings.Contains(mailer.bodies[0], "http://localhost:5173/reset-password?token=") {
		t.Errorf("mail body does not carry the reset link: %q", mailer.bodies[0])
	}
}

func TestForgotPasswordMailFailure(t *testing.T) {
	auth, mailer, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := auth.Signup(ctx, dto.SignupRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	mailer.failErr = errors.New("smtp down")
	if err := auth.ForgotPassword(ctx, "jane@example.com"); err == nil {
		t.Fatal("want error when the mailer fails")
	}
}

func TestResetPassword(t *testing.T) {
	auth, _, db := newAuthFixture(t)
	ctx := context.Background()

	if _, err := auth.Signup(ctx, dto.SignupRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if err := auth.ForgotPassword(ctx, "jane@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}

	var user models.User
	if err := db.First(&user, "email = ?", "jane@example.com").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	token := *user.ResetPasswordToken

	if err := auth.ResetPassword(ctx, "bogus-token", "newsecret1"); !errors.Is(err, ErrInvalidResetToken) {
		t.Fatalf("bogus token err = %v, want ErrInvalidResetToken", err)
	}

	if err := auth.ResetPassword(ctx, token, "newsecret1"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if _, _, err := auth.Login(ctx, "jane@example.com", "newsecret1"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, _, err := auth.Login(ctx, "jane@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password err = %v, want ErrInvalidCredentials", err)
	}

	// Single use: the token is cleared on success.
	if err := auth.ResetPassword(ctx, token, "another99"); !errors.Is(err, ErrInvalidResetToken) {
		t.Fatalf("reused token err = %v, want ErrInvalidResetToken", err)
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	auth, _, db := newAuthFixture(t)
	ctx := context.Background()

	if _, err := auth.Signup(ctx, dto.SignupRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if err := auth.ForgotPassword(ctx, "jane@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}

	var user models.User
	if err := db.First(&user, "email = ?", "jane@example.com").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	token := *user.ResetPasswordToken

	past := time.Now().Add(-time.Minute)
	if err := db.Model(&user).Update("reset_password_expires", past).Error; err != nil {
		t.Fatalf("expire token: %v", err)
	}

	if err := auth.ResetPassword(ctx, token, "newsecret1"); !errors.Is(err, ErrInvalidResetToken) {
		t.Fatalf("expired token err = %v, want ErrInvalidResetToken", err)
	}
}
