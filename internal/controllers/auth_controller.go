package controllers

import (
	"errors"
	"net/mail"
	"time"

	"github.com/gofiber/fiber/v2"

	"socialhub/dto"
	"socialhub/internal/middleware"
	"socialhub/internal/services"
)

// Signup godoc
// @Summary      Create a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "Signup payload"
// @Success      201   {object} dto.SignupResponse
// @Failure      400   {object} dto.ErrorResponse
// @Router       /auth/signup [post]
func Signup(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.SignupRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
		}

		if req.Name == "" || req.Email == "" || req.Password == "" || req.PasswordConfirm == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
		}
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Enter a valid email"})
		}
		if len(req.Password) < 8 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Password must be at least 8 characters"})
		}
		if req.Password != req.PasswordConfirm {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Passwords do not match"})
		}

		user, err := auth.Signup(c.UserContext(), req)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email already in use"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}

		return c.Status(fiber.StatusCreated).JSON(dto.SignupResponse{
			Data:    user.Public(),
			Message: "User created successfully",
		})
	}
}

// Login godoc
// @Summary      Authenticate and receive a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object} dto.LoginResponse
// @Failure      400   {object} dto.ErrorResponse
// @Router       /auth/login [post]
func Login(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
		}
		if req.Email == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
		}

		user, token, err := auth.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid email or password"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}

		c.Cookie(&fiber.Cookie{
			Name:     middleware.CookieName,
			Value:    token,
			Expires:  time.Now().Add(24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})

		return c.Status(fiber.StatusOK).JSON(dto.LoginResponse{
			Message: "Login successful",
			User:    user.Public(),
			Token:   token,
		})
	}
}

// Profile godoc
// @Summary      Current user's profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} map[string]interface{}
// @Failure      401  {object} dto.ErrorResponse
// @Router       /auth/profile [get]
func Profile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := middleware.CurrentUser(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "User profile fetched successfully",
			"user":    user.Public(),
		})
	}
}

// Logout godoc
// @Summary      Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object} dto.MessageResponse
// @Router       /auth/logout [post]
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     middleware.CookieName,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out successfully."})
	}
}

// ForgotPassword godoc
// @Summary      Request a password reset link
// @Description  Responds identically whether or not the email exists.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "Email"
// @Success      200   {object} dto.MessageResponse
// @Router       /auth/forgot-password [post]
func ForgotPassword(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.ForgotPasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
		}

		if err := auth.ForgotPassword(c.UserContext(), req.Email); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "If that email exists, a reset link has been sent.",
		})
	}
}

// ResetPassword godoc
// @Summary      Set a new password using a reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "Token and new password"
// @Success      200   {object} dto.MessageResponse
// @Failure      400   {object} dto.ErrorResponse
// @Router       /auth/reset-password [post]
func ResetPassword(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.ResetPasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
		}
		if req.Token == "" || len(req.Password) < 8 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Password must be at least 8 characters"})
		}

		if err := auth.ResetPassword(c.UserContext(), req.Token, req.Password); err != nil {
			if errors.Is(err, services.ErrInvalidResetToken) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid or expired token."})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password reset successfully."})
	}
}
