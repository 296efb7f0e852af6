package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"socialhub/dto"
	"socialhub/internal/middleware"
	"socialhub/internal/services"
)

// ToggleLike godoc
// @Summary      Like or unlike a post
// @Description  Flips the caller's like and returns the new state with the
// @Description  like count recomputed from rows.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Post ID"
// @Success      200  {object} dto.ToggleLikeResponse
// @Failure      404  {object} dto.ErrorResponse
// @Router       /post/like/{id} [post]
func ToggleLike(engagement *services.EngagementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		postID, err := c.ParamsInt("id")
		if err != nil || postID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid post id"})
		}

		liked, likesCount, err := engagement.ToggleLike(c.UserContext(), userID, uint(postID))
		if err != nil {
			if errors.Is(err, services.ErrPostNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Post not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}

		message := "Post unliked"
		if liked {
			message = "Post liked"
		}
		return c.Status(fiber.StatusOK).JSON(dto.ToggleLikeResponse{
			Message:    message,
			PostID:     uint(postID),
			Liked:      liked,
			LikesCount: likesCount,
		})
	}
}

// ListLikes godoc
// @Summary      List a post's likes with the users behind them
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Post ID"
// @Success      200  {array} dto.PostLike
// @Router       /post/likes/{id} [get]
func ListLikes(engagement *services.EngagementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := c.ParamsInt("id")
		if err != nil || postID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid post id"})
		}

		likes, err := engagement.ListLikes(c.UserContext(), uint(postID))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(likes)
	}
}
