package controllers

import (
	"errors"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/focusbloom/focusbloom-backend/app/queries"
	"github.com/focusbloom/focusbloom-backend/app/services"
	"github.com/focusbloom/focusbloom-backend/pkg/database"
	"github.com/focusbloom/focusbloom-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// defaultColumns are created on every new goal board. The Done column is
// the one that completes tasks when they are moved into it.
var defaultColumns = []struct {
	Name   string
	Color  string
	IsDone bool
}{
	{"To Do", "#94a3b8", false},
	{"In Progress", "#fbbf24", false},
	{"Done", "#4ade80", true},
}

// CreateGoal creates the goal together with its kanban board and the
// three default columns. A target value of zero or less is rejected; such
// a goal would complete the moment it is recomputed.
func CreateGoal(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	req := &models.CreateGoalRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	goalType := models.GoalType(req.Type)
	if !goalType.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal type"})
	}
	category := models.GoalCategory(req.Category)
	if !category.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal category"})
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_date, expected YYYY-MM-DD"})
	}
	endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_date, expected YYYY-MM-DD"})
	}
	if endDate.Before(startDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date must not be before start_date"})
	}

	goal := &models.Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Type:        goalType,
		Category:    category,
		Status:      models.GoalStatusActive,
		TargetValue: req.TargetValue,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	goalQueries := queries.GoalQueries{DB: database.DB}
	if err := goalQueries.CreateGoal(goal); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create goal"})
	}

	kanbanQueries := queries.KanbanQueries{DB: database.DB}
	board := &models.KanbanBoard{
		ID:          uuid.New(),
		GoalID:      goal.ID,
		UserID:      userID,
		Name:        goal.Title,
		Description: goal.Description,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := kanbanQueries.CreateBoard(board); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create goal board"})
	}
	for i, col := range defaultColumns {
		column := &models.KanbanColumn{
			ID:           uuid.New(),
			BoardID:      board.ID,
			Name:         col.Name,
			Position:     i,
			Color:        col.Color,
			IsDoneColumn: col.IsDone,
			CreatedAt:    time.Now(),
		}
		if err := kanbanQueries.CreateColumn(column); err != nil {
			println(err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create board columns"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"goal":  goal,
		"board": board,
	})
}

func GetGoals(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	status := models.GoalStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status filter"})
	}

	goalQueries := queries.GoalQueries{DB: database.DB}
	goals, err := goalQueries.GetGoalsByUser(userID, status)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch goals"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"goals": goals})
}

func GetGoalsByType(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	goalType := models.GoalType(c.Params("type"))
	if !goalType.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal type"})
	}

	goalQueries := queries.GoalQueries{DB: database.DB}
	goals, err := goalQueries.GetGoalsByType(userID, goalType)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch goals"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"goals": goals})
}

func UpdateGoal(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}

	req := &models.UpdateGoalRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	goalQueries := queries.GoalQueries{DB: database.DB}
	goal, err := goalQueries.GetGoalByID(goalID)
	if err != nil || goal.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.TargetValue != nil {
		if *req.TargetValue <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "target_value must be greater than zero"})
		}
		goal.TargetValue = *req.TargetValue
	}
	if req.Status != nil {
		status := models.GoalStatus(*req.Status)
		if !status.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		}
		goal.Status = status
	}
	if req.EndDate != nil {
		endDate, err := time.ParseInLocation("2006-01-02", *req.EndDate, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_date, expected YYYY-MM-DD"})
		}
		goal.EndDate = endDate
	}
	goal.UpdatedAt = time.Now()

	if err := goalQueries.UpdateGoal(&goal); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update goal"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"goal": goal})
}

func UpdateGoalProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}

	req := &models.UpdateGoalProgressRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	goalQueries := queries.GoalQueries{DB: database.DB}
	goal, err := goalQueries.GetGoalByID(goalID)
	if err != nil || goal.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}

	goalService := services.GoalService{DB: database.DB}
	updated, err := goalService.UpdateGoalProgress(goalID, *req.CurrentValue)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update goal progress"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"goal": updated})
}

// CheckGoals fails every active goal whose end date has passed.
func CheckGoals(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	goalService := services.GoalService{DB: database.DB}
	if err := goalService.CheckAndUpdateGoals(userID); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check goals"})
	}

	goalQueries := queries.GoalQueries{DB: database.DB}
	goals, err := goalQueries.GetGoalsByUser(userID, "")
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch goals"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"goals": goals})
}

func DeleteGoal(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}

	goalQueries := queries.GoalQueries{DB: database.DB}
	if err := goalQueries.DeleteGoal(goalID, userID); err != nil {
		if errors.Is(err, queries.ErrGoalNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
		}
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete goal"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Goal deleted"})
}
