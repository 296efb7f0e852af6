package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"socialhub/dto"
	"socialhub/internal/middleware"
	"socialhub/internal/services"
)

// CreatePost godoc
// @Summary      Create a post
// @Description  Multipart form with title, description and an optional image.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  true   "Description"
// @Param        image        formData  file    false  "Media attachment"
// @Success      201  {object} models.Post
// @Failure      400  {object} dto.ErrorResponse
// @Router       /post/Create-Post [post]
func CreatePost(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}

		title := c.FormValue("title")
		description := c.FormValue("description")
		if title == "" || description == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Title and description are required"})
		}

		// image is optional
		file, err := c.FormFile("image")
		if err != nil {
			file = nil
		}

		post, err := posts.Create(c.UserContext(), userID, title, description, file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	}
}

// UpdatePost godoc
// @Summary      Update own post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Post ID"
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} dto.ErrorResponse
// @Router       /post/update/{id} [put]
func UpdatePost(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		postID, err := c.ParamsInt("id")
		if err != nil || postID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid post id"})
		}

		req := dto.UpdatePostRequest{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
		}
		file, err := c.FormFile("image")
		if err != nil {
			file = nil
		}

		post, err := posts.Update(c.UserContext(), uint(postID), userID, req, file)
		if err != nil {
			if errors.Is(err, services.ErrPostNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Post not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Post updated", "post": post})
	}
}

// DeletePost godoc
// @Summary      Delete own post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Post ID"
// @Success      200  {object} dto.MessageResponse
// @Failure      404  {object} dto.ErrorResponse
// @Router       /post/delete/{id} [delete]
func DeletePost(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		postID, err := c.ParamsInt("id")
		if err != nil || postID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid post id"})
		}

		if err := posts.Delete(c.UserContext(), uint(postID), userID); err != nil {
			if errors.Is(err, services.ErrPostNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Post not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Post deleted successfully"})
	}
}

// GetUserPosts godoc
// @Summary      List one user's posts, annotated for the viewer
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Profile user ID"
// @Success      200  {array} dto.FeedPost
// @Router       /post/getAllPosts/{id} [get]
func GetUserPosts(feed *services.FeedService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewerID, err := middleware.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		profileID, err := c.ParamsInt("id")
		if err != nil || profileID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
		}

		posts, err := feed.GetUserPosts(c.UserContext(), uint(profileID), viewerID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(posts)
	}
}

// GetUserLoginFeed godoc
// @Summary      Personalized feed for the authenticated user
// @Description  Posts by the viewer and everyone they follow, newest first,
// @Description  with like/comment totals and the viewer's own like state.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.FeedPost
// @Router       /post/getUserLoginFeed [get]
func GetUserLoginFeed(feed *services.FeedService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewerID, err := middleware.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}

		posts, err := feed.GetFeed(c.UserContext(), viewerID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(posts)
	}
}
