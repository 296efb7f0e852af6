package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"socialhub/dto"
	"socialhub/internal/middleware"
	"socialhub/internal/services"
)

// AddComment godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                      true  "Post ID"
// @Param        body  body  dto.CreateCommentRequest true  "Comment text"
// @Success      201   {object} map[string]interface{}
// @Failure      400   {object} dto.ErrorResponse
// @Failure      404   {object} dto.ErrorResponse
// @Router       /post/posts/{id}/comment [post]
func AddComment(engagement *services.EngagementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		postID, err := c.ParamsInt("id")
		if err != nil || postID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid post id"})
		}

		var req dto.CreateCommentRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
		}

		comment, err := engagement.AddComment(c.UserContext(), userID, uint(postID), req.Text)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyComment):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Comment text cannot be empty"})
			case errors.Is(err, services.ErrPostNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Post not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Comment added successfully",
			"comment": comment,
		})
	}
}

// ListComments godoc
// @Summary      List a post's comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Post ID"
// @Success      200  {array} dto.CommentResponse
// @Router       /post/comments/{id} [get]
func ListComments(engagement *services.EngagementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := c.ParamsInt("id")
		if err != nil || postID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid post id"})
		}

		comments, err := engagement.ListComments(c.UserContext(), uint(postID))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(comments)
	}
}

// UpdateComment godoc
// @Summary      Edit own comment
// @Description  A comment that is missing or belongs to another user answers
// @Description  with the same not-found message either way.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                      true  "Comment ID"
// @Param        body  body  dto.UpdateCommentRequest true  "New text"
// @Success      200   {object} map[string]interface{}
// @Failure      404   {object} dto.ErrorResponse
// @Router       /post/posts/{id}/update [patch]
func UpdateComment(engagement *services.EngagementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		commentID, err := c.ParamsInt("id")
		if err != nil || commentID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid comment id"})
		}

		var req dto.UpdateCommentRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
		}

		comment, err := engagement.EditComment(c.UserContext(), uint(commentID), userID, req.Text)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyComment):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Comment text cannot be empty"})
			case errors.Is(err, services.ErrCommentNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Comment not found or you dont have permission to update it"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Comment updated successfully",
			"comment": comment,
		})
	}
}

// DeleteComment godoc
// @Summary      Delete own comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Comment ID"
// @Success      200  {object} dto.MessageResponse
// @Failure      404  {object} dto.ErrorResponse
// @Router       /post/posts/{id}/delete [delete]
func DeleteComment(engagement *services.EngagementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		commentID, err := c.ParamsInt("id")
		if err != nil || commentID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid comment id"})
		}

		if err := engagement.DeleteComment(c.UserContext(), uint(commentID), userID); err != nil {
			if errors.Is(err, services.ErrCommentNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Comment not found or you dont have permission to delete it"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Comment deleted successfully"})
	}
}
