package controllers

import (
	"errors"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/queries"
	"github.com/focusbloom/focusbloom-backend/app/services"
	"github.com/focusbloom/focusbloom-backend/pkg/database"
	"github.com/focusbloom/focusbloom-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

func GetStreak(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	streakService := services.StreakService{DB: database.DB}
	streak, err := streakService.GetOrCreateStreak(userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch streak"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"streak": streak})
}

// UpdateStreak records today's activity if the user completed a task
// today. Without a completed task the streak is returned unchanged.
func UpdateStreak(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	streakService := services.StreakService{DB: database.DB}
	streak, err := streakService.UpdateStreak(userID, time.Now())
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update streak"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"streak": streak})
}

// CheckStreakBreak closes out an expired streak. Safe to call any number
// of times.
func CheckStreakBreak(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	streakService := services.StreakService{DB: database.DB}
	streak, err := streakService.CheckStreakBreak(userID, time.Now())
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check streak"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"streak": streak})
}

func GetStreakStats(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	streakService := services.StreakService{DB: database.DB}
	stats, err := streakService.GetStreakStats(userID, time.Now())
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch streak stats"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"stats": stats})
}
