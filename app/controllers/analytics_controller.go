package controllers

import (
	"strconv"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/focusbloom/focusbloom-backend/app/services"
	"github.com/focusbloom/focusbloom-backend/pkg/database"
	"github.com/focusbloom/focusbloom-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// GetAnalytics returns the aggregated productivity view over a trailing
// window, 30 days by default, capped at 365.
func GetAnalytics(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	days := 30
	if q := c.Query("days"); q != "" {
		iv, err := strconv.Atoi(q)
		if err != nil || iv <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid days parameter"})
		}
		if iv > 365 {
			iv = 365
		}
		days = iv
	}

	analyticsService := services.AnalyticsService{DB: database.DB}
	data, err := analyticsService.GetAnalytics(userID, days)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch analytics"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"analytics": data})
}

// GetProductivityInsights returns patterns and recommendations derived
// from the same trailing window as GetAnalytics.
func GetProductivityInsights(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	days := 30
	if q := c.Query("days"); q != "" {
		iv, err := strconv.Atoi(q)
		if err != nil || iv <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid days parameter"})
		}
		if iv > 365 {
			iv = 365
		}
		days = iv
	}

	insightsService := services.InsightsService{DB: database.DB}
	insights, err := insightsService.GetProductivityInsights(userID, days)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch insights"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"insights": insights})
}

// UpdateDailyPerformance rebuilds today's snapshot (or a given date's) from
// the stored tasks and pomodoros.
func UpdateDailyPerformance(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	req := &models.UpdateDailyPerformanceRequest{}
	if err := c.BodyParser(req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
		}
		date = parsed
	}

	analyticsService := services.AnalyticsService{DB: database.DB}
	record, err := analyticsService.UpdateDailyPerformance(userID, date)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update daily performance"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"record": record})
}

// GetDailyPerformance recomputes and returns the snapshot for one day, so
// the response never lags behind the task and pomodoro tables.
func GetDailyPerformance(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	date, err := time.ParseInLocation("2006-01-02", c.Params("date"), time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	analyticsService := services.AnalyticsService{DB: database.DB}
	record, err := analyticsService.UpdateDailyPerformance(userID, date)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch daily performance"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"record": record})
}
