package controllers

import (
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/focusbloom/focusbloom-backend/app/queries"
	"github.com/focusbloom/focusbloom-backend/app/services"
	"github.com/focusbloom/focusbloom-backend/pkg/database"
	"github.com/focusbloom/focusbloom-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func CreateTask(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	req := &models.CreateTaskRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	priority := models.TaskPriority(req.Priority)
	if req.Priority == "" {
		priority = models.TaskPriorityMedium
	}
	if !priority.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid priority"})
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid due_date, expected RFC3339"})
		}
		dueDate = &parsed
	}

	task := &models.Task{
		ID:                 uuid.New(),
		UserID:             userID,
		Title:              req.Title,
		Description:        req.Description,
		Status:             models.TaskStatusPending,
		Priority:           priority,
		DueDate:            dueDate,
		EstimatedPomodoros: req.EstimatedPomodoros,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	taskQueries := queries.TaskQueries{DB: database.DB}
	if err := taskQueries.CreateTask(task); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create task"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"task": task})
}

func GetTasks(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	status := models.TaskStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status filter"})
	}

	taskQueries := queries.TaskQueries{DB: database.DB}
	tasks, err := taskQueries.GetTasksByUser(userID, status)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch tasks"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"tasks": tasks})
}

func GetTaskByID(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id"})
	}

	taskQueries := queries.TaskQueries{DB: database.DB}
	task, err := taskQueries.GetTaskByID(taskID)
	if err != nil || task.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"task": task})
}

func UpdateTask(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id"})
	}

	req := &models.UpdateTaskRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	taskQueries := queries.TaskQueries{DB: database.DB}
	task, err := taskQueries.GetTaskByID(taskID)
	if err != nil || task.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		if !priority.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid priority"})
		}
		task.Priority = priority
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else {
			parsed, err := time.Parse(time.RFC3339, *req.DueDate)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid due_date, expected RFC3339"})
			}
			task.DueDate = &parsed
		}
	}
	if req.EstimatedPomodoros != nil {
		task.EstimatedPomodoros = *req.EstimatedPomodoros
	}
	task.UpdatedAt = time.Now()

	if err := taskQueries.UpdateTask(&task); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"task": task})
}

// UpdateTaskStatus moves a task between statuses. A transition into
// completed stamps completed_at and emits a completion event; everything
// derived from completions (streak, snapshot, goals) catches up
// asynchronously.
func UpdateTaskStatus(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id"})
	}

	req := &models.UpdateTaskStatusRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	status := models.TaskStatus(req.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	taskQueries := queries.TaskQueries{DB: database.DB}
	task, err := taskQueries.GetTaskByID(taskID)
	if err != nil || task.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	completing := status == models.TaskStatusCompleted && task.Status != models.TaskStatusCompleted
	task.Status = status
	if completing {
		now := time.Now()
		task.CompletedAt = &now
	} else if status != models.TaskStatusCompleted {
		task.CompletedAt = nil
	}
	task.UpdatedAt = time.Now()

	if err := taskQueries.UpdateTask(&task); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}

	if completing {
		services.EmitCompletion(services.CompletionEvent{
			UserID:     userID,
			Kind:       services.TaskCompleted,
			OccurredAt: *task.CompletedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"task": task})
}

func DeleteTask(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id"})
	}

	taskQueries := queries.TaskQueries{DB: database.DB}
	if err := taskQueries.DeleteTask(taskID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Task deleted"})
}
