package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"greetapi/internal/service"
)

// ListVisits handles GET /api/visits with limit & offset pagination.
func ListVisits(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limitStr := c.Query("limit", "10")
		offsetStr := c.Query("offset", "0")
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.Stats(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetVisit handles GET /api/visits/:username.
func GetVisit(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Params("username")

		v, err := svc.Lookup(c.UserContext(), username)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUsernameRequired), errors.Is(err, service.ErrInvalidUsername):
				return writeError(c, fiber.StatusBadRequest, "INVALID_USERNAME", "invalid username")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "visit not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(v)
	}
}

// DeleteVisit handles DELETE /api/visits/:username.
func DeleteVisit(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Params("username")

		if err := svc.Forget(c.UserContext(), username); err != nil {
			switch {
			case errors.Is(err, service.ErrUsernameRequired), errors.Is(err, service.ErrInvalidUsername):
				return writeError(c, fiber.StatusBadRequest, "INVALID_USERNAME", "invalid username")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "visit not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
