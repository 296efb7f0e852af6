package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialhub/internal/controllers"
	"socialhub/internal/services"
)

func SetupUsers(
	app *fiber.App,
	authGate fiber.Handler,
	users *services.UserService,
	follows *services.FollowService,
	notifications *services.NotificationService,
) {
	group := app.Group("/users")

	group.Get("/profile/:id", authGate, controllers.GetUserByID(users))
	group.Put("/profile/:id", authGate, controllers.UpdateProfile(users))
	group.Delete("/delete/:id", authGate, controllers.DeleteUser(users))
	group.Get("/search", authGate, controllers.SearchUsers(users))
	group.Get("/all", authGate, controllers.GetAllUsers(users))

	// notification routes are registered before the :id ones so the
	// literal segments win the match
	group.Get("/getNotifications", authGate, controllers.GetNotifications(notifications))
	group.Delete("/deleteNotification/:id", authGate, controllers.DeleteNotification(notifications))

	group.Post("/:id/follow", authGate, controllers.FollowUser(follows))
	group.Post("/:id/unfollow", authGate, controllers.UnfollowUser(follows))
	group.Get("/:id/followers", controllers.GetFollowers(follows))
	group.Get("/:id/followings", controllers.GetFollowing(follows))
}
