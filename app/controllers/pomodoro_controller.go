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

// ownedPomodoro loads a pomodoro and checks it belongs to one of the
// caller's tasks.
func ownedPomodoro(pomodoroID, userID uuid.UUID) (models.Pomodoro, bool) {
	pq := queries.PomodoroQueries{DB: database.DB}
	pomodoro, err := pq.GetPomodoroByID(pomodoroID)
	if err != nil {
		return models.Pomodoro{}, false
	}
	tq := queries.TaskQueries{DB: database.DB}
	task, err := tq.GetTaskByID(pomodoro.TaskID)
	if err != nil || task.UserID != userID {
		return models.Pomodoro{}, false
	}
	return pomodoro, true
}

func CreatePomodoro(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	req := &models.CreatePomodoroRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id"})
	}

	taskQueries := queries.TaskQueries{DB: database.DB}
	task, err := taskQueries.GetTaskByID(taskID)
	if err != nil || task.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	duration := req.Duration
	if duration <= 0 {
		duration = models.DefaultPomodoroDuration
	}

	pomodoro := &models.Pomodoro{
		ID:        uuid.New(),
		TaskID:    taskID,
		Duration:  duration,
		Status:    models.PomodoroStatusInProgress,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}

	pq := queries.PomodoroQueries{DB: database.DB}
	if err := pq.CreatePomodoro(pomodoro); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create pomodoro"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"pomodoro": pomodoro})
}

func GetPomodoros(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	pq := queries.PomodoroQueries{DB: database.DB}
	pomodoros, err := pq.GetPomodorosByUser(userID)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch pomodoros"})
	}
	if pomodoros == nil {
		pomodoros = []models.Pomodoro{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"pomodoros": pomodoros})
}

func StartPomodoro(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	pomodoroID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid pomodoro id"})
	}

	pomodoro, ok := ownedPomodoro(pomodoroID, userID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pomodoro not found"})
	}
	if pomodoro.StartTime != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Pomodoro already started"})
	}

	now := time.Now()
	pomodoro.StartTime = &now
	pomodoro.Status = models.PomodoroStatusInProgress

	pq := queries.PomodoroQueries{DB: database.DB}
	if err := pq.UpdatePomodoro(&pomodoro); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start pomodoro"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"pomodoro": pomodoro})
}

// CompletePomodoro finishes a session: it bumps the task's completed
// pomodoro counter, grows a flower in the garden, and emits a completion
// event for the downstream recomputations.
func CompletePomodoro(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	pomodoroID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid pomodoro id"})
	}

	pomodoro, ok := ownedPomodoro(pomodoroID, userID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pomodoro not found"})
	}
	if pomodoro.Status == models.PomodoroStatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Pomodoro already completed"})
	}

	now := time.Now()
	if pomodoro.StartTime == nil {
		start := now.Add(-time.Duration(pomodoro.Duration) * time.Second)
		pomodoro.StartTime = &start
	}
	pomodoro.EndTime = &now
	pomodoro.Status = models.PomodoroStatusCompleted

	pq := queries.PomodoroQueries{DB: database.DB}
	if err := pq.UpdatePomodoro(&pomodoro); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete pomodoro"})
	}

	taskQueries := queries.TaskQueries{DB: database.DB}
	if err := taskQueries.IncrementCompletedPomodoros(pomodoro.TaskID); err != nil {
		println(err.Error())
	}

	services.EmitCompletion(services.CompletionEvent{
		UserID:     userID,
		Kind:       services.PomodoroCompleted,
		OccurredAt: now,
	})

	flowerService := services.FlowerService{DB: database.DB}
	flower, err := flowerService.AwardFlower(userID, pomodoro.TaskID)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"pomodoro": pomodoro})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"pomodoro": pomodoro,
		"flower":   flower,
	})
}

func InterruptPomodoro(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	pomodoroID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid pomodoro id"})
	}

	pomodoro, ok := ownedPomodoro(pomodoroID, userID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pomodoro not found"})
	}
	if pomodoro.Status == models.PomodoroStatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Pomodoro already completed"})
	}

	now := time.Now()
	pomodoro.EndTime = &now
	pomodoro.Status = models.PomodoroStatusInterrupted

	pq := queries.PomodoroQueries{DB: database.DB}
	if err := pq.UpdatePomodoro(&pomodoro); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to interrupt pomodoro"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"pomodoro": pomodoro})
}

func UpdatePomodoroNotes(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	pomodoroID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid pomodoro id"})
	}

	req := &models.PomodoroNotesRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	pomodoro, ok := ownedPomodoro(pomodoroID, userID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pomodoro not found"})
	}

	pomodoro.Notes = req.Notes
	pq := queries.PomodoroQueries{DB: database.DB}
	if err := pq.UpdatePomodoro(&pomodoro); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update notes"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"pomodoro": pomodoro})
}

func GetTaskPomodoros(c *fiber.Ctx) error {
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

	pq := queries.PomodoroQueries{DB: database.DB}
	pomodoros, err := pq.GetPomodorosByTask(taskID)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch pomodoros"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"pomodoros": pomodoros})
}
