package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"socialhub/dto"
	"socialhub/internal/middleware"
	"socialhub/internal/services"
)

// GetUserByID godoc
// @Summary      Fetch a user's public profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "User ID"
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} dto.ErrorResponse
// @Router       /users/profile/{id} [get]
func GetUserByID(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := c.ParamsInt("id")
		if err != nil || userID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
		}

		user, err := users.GetByID(c.UserContext(), uint(userID))
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "User fetched successfully",
			"user":    user.Public(),
		})
	}
}

// UpdateProfile godoc
// @Summary      Update profile fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                      true  "User ID"
// @Param        body  body  dto.UpdateProfileRequest true  "Fields to change"
// @Success      200   {object} map[string]interface{}
// @Failure      400   {object} dto.ErrorResponse
// @Router       /users/profile/{id} [put]
func UpdateProfile(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := c.ParamsInt("id")
		if err != nil || userID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
		}

		var req dto.UpdateProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
		}

		user, err := users.UpdateProfile(c.UserContext(), uint(userID), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
			case errors.Is(err, services.ErrEmailInUse):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email already in use"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "User profile updated successfully",
			"user":    user.Public(),
		})
	}
}

// DeleteUser godoc
// @Summary      Delete an account and everything it produced
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "User ID"
// @Success      200  {object} dto.MessageResponse
// @Failure      404  {object} dto.ErrorResponse
// @Router       /users/delete/{id} [delete]
func DeleteUser(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := c.ParamsInt("id")
		if err != nil || userID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
		}

		if err := users.Delete(c.UserContext(), uint(userID)); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted successfully"})
	}
}

// SearchUsers godoc
// @Summary      Search users by name prefix
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        query  query  string  true  "Name or lastname prefix"
// @Success      200  {array} models.PublicUser
// @Failure      400  {object} dto.ErrorResponse
// @Router       /users/search [get]
func SearchUsers(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("query")
		if query == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Query parameter is required"})
		}

		results, err := users.Search(c.UserContext(), query)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(results)
	}
}

// GetAllUsers godoc
// @Summary      User directory with post counts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.UserWithPostCount
// @Router       /users/all [get]
func GetAllUsers(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		results, err := users.ListAll(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(results)
	}
}

// FollowUser godoc
// @Summary      Follow a user
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "User to follow"
// @Success      200  {object} dto.MessageResponse
// @Failure      400  {object} dto.ErrorResponse
// @Router       /users/{id}/follow [post]
func FollowUser(follows *services.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		followerID, err := middleware.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		followingID, err := c.ParamsInt("id")
		if err != nil || followingID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
		}

		if err := follows.Follow(c.UserContext(), followerID, uint(followingID)); err != nil {
			switch {
			case errors.Is(err, services.ErrSelfFollow):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "You can't follow yourself."})
			case errors.Is(err, services.ErrAlreadyFollowing):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Already following this user."})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User followed successfully."})
	}
}

// UnfollowUser godoc
// @Summary      Unfollow a user
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "User to unfollow"
// @Success      200  {object} dto.MessageResponse
// @Failure      400  {object} dto.ErrorResponse
// @Router       /users/{id}/unfollow [post]
func UnfollowUser(follows *services.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		followerID, err := middleware.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		followingID, err := c.ParamsInt("id")
		if err != nil || followingID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
		}

		if err := follows.Unfollow(c.UserContext(), followerID, uint(followingID)); err != nil {
			switch {
			case errors.Is(err, services.ErrSelfUnfollow):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "You can't unfollow yourself."})
			case errors.Is(err, services.ErrNotFollowing):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Not following this user."})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User unfollowed successfully."})
	}
}

// GetFollowers godoc
// @Summary      List a user's followers
// @Tags         follows
// @Produce      json
// @Param        id  path  int  true  "User ID"
// @Success      200  {object} map[string]interface{}
// @Router       /users/{id}/followers [get]
func GetFollowers(follows *services.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := c.ParamsInt("id")
		if err != nil || userID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
		}

		followers, err := follows.Followers(c.UserContext(), uint(userID))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"followers": followers})
	}
}

// GetFollowing godoc
// @Summary      List who a user follows
// @Tags         follows
// @Produce      json
// @Param        id  path  int  true  "User ID"
// @Success      200  {object} map[string]interface{}
// @Router       /users/{id}/followings [get]
func GetFollowing(follows *services.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := c.ParamsInt("id")
		if err != nil || userID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
		}

		following, err := follows.Following(c.UserContext(), uint(userID))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"following": following})
	}
}
