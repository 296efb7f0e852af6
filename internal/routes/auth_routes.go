package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialhub/internal/controllers"
	"socialhub/internal/services"
)

func SetupAuth(app *fiber.App, authGate fiber.Handler, auth *services.AuthService) {
	group := app.Group("/auth")

	group.Post("/signup", controllers.Signup(auth))
	group.Post("/login", controllers.Login(auth))
	group.Get("/profile", authGate, controllers.Profile())
	group.Post("/logout", controllers.Logout())
	group.Post("/forgot-password", controllers.ForgotPassword(auth))
	group.Post("/reset-password", controllers.ResetPassword(auth))
}
