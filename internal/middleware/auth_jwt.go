package middleware

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"socialhub/internal/repository"
)

// CookieName is the session cookie the login handler sets.
const CookieName = "token"

type sessionClaims struct {
	UID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

// RequireAuth is the authentication gate: it takes the token from the
// session cookie (or the bearer header when no cookie is present), verifies
// it, loads the user it names and stores the user in Locals. Requests that
// fail any step stop here with a 401.
func RequireAuth(users repository.UserRepository, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "no token provided"})
		}

		var claims sessionClaims
		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token"})
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		id, err := strconv.ParseUint(uid, 10, 64)
		if err != nil || id == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token"})
		}

		user, err := users.ByID(c.UserContext(), uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "user not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
		}

		c.Locals("user", user)
		c.Locals("user_id", user.ID)
		return c.Next()
	}
}

// tokenFromRequest prefers the cookie; the Authorization header only counts
// when no cookie was sent.
func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(CookieName); cookie != "" {
		return cookie
	}
	auth := c.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
