package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"socialhub/dto"
	"socialhub/internal/middleware"
	"socialhub/internal/services"
)

// GetNotifications godoc
// @Summary      List the caller's notifications, newest first
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} dto.NotificationListResponse
// @Router       /users/getNotifications [get]
func GetNotifications(notifications *services.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}

		list, err := notifications.List(c.UserContext(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error while fetching notifications."})
		}
		return c.Status(fiber.StatusOK).JSON(dto.NotificationListResponse{Notifications: list})
	}
}

// DeleteNotification godoc
// @Summary      Delete one of the caller's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Notification ID"
// @Success      200  {object} dto.MessageResponse
// @Failure      404  {object} dto.ErrorResponse
// @Router       /users/deleteNotification/{id} [delete]
func DeleteNotification(notifications *services.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		notiID, err := c.ParamsInt("id")
		if err != nil || notiID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid notification id"})
		}

		if err := notifications.Delete(c.UserContext(), uint(notiID), userID); err != nil {
			if errors.Is(err, services.ErrNotificationNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Notification not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notification deleted successfully"})
	}
}
