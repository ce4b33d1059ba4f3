package controllers

import (
	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/focusbloom/focusbloom-backend/app/queries"
	"github.com/focusbloom/focusbloom-backend/app/services"
	"github.com/focusbloom/focusbloom-backend/pkg/database"
	"github.com/focusbloom/focusbloom-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

func GetGarden(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	flowerService := services.FlowerService{DB: database.DB}
	garden, err := flowerService.GetUserGarden(userID)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch garden"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"garden": garden})
}

func GetFlowers(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	flowerQueries := queries.FlowerQueries{DB: database.DB}
	flowers, err := flowerQueries.GetFlowersByUser(userID)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch flowers"})
	}
	if flowers == nil {
		flowers = []models.Flower{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"flowers": flowers})
}

func GetGardenStats(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	flowerService := services.FlowerService{DB: database.DB}
	stats, err := flowerService.GardenStats(userID)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch garden stats"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"stats": stats})
}
