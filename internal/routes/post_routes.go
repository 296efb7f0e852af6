package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialhub/internal/controllers"
	"socialhub/internal/services"
)

func SetupPost(
	app *fiber.App,
	authGate fiber.Handler,
	posts *services.PostService,
	feed *services.FeedService,
	engagement *services.EngagementService,
) {
	group := app.Group("/post", authGate)

	group.Post("/Create-Post", controllers.CreatePost(posts))
	group.Put("/update/:id", controllers.UpdatePost(posts))
	group.Delete("/delete/:id", controllers.DeletePost(posts))

	group.Get("/getAllPosts/:id", controllers.GetUserPosts(feed))
	group.Get("/getUserLoginFeed", controllers.GetUserLoginFeed(feed))

	group.Post("/like/:id", controllers.ToggleLike(engagement))
	group.Get("/likes/:id", controllers.ListLikes(engagement))

	group.Post("/posts/:id/comment", controllers.AddComment(engagement))
	group.Get("/comments/:id", controllers.ListComments(engagement))
	group.Patch("/posts/:id/update", controllers.UpdateComment(engagement))
	group.Delete("/posts/:id/delete", controllers.DeleteComment(engagement))
}
