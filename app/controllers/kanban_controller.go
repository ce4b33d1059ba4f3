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

func assembleBoard(board models.KanbanBoard) (models.BoardWithColumns, error) {
	kanbanQueries := queries.KanbanQueries{DB: database.DB}
	columns, err := kanbanQueries.GetColumnsByBoard(board.ID)
	if err != nil {
		return models.BoardWithColumns{}, err
	}

	taskQueries := queries.TaskQueries{DB: database.DB}
	out := models.BoardWithColumns{KanbanBoard: board, Columns: []models.ColumnWithTasks{}}
	for _, col := range columns {
		tasks, err := taskQueries.GetTasksByColumn(col.ID)
		if err != nil {
			return models.BoardWithColumns{}, err
		}
		if tasks == nil {
			tasks = []models.Task{}
		}
		out.Columns = append(out.Columns, models.ColumnWithTasks{KanbanColumn: col, Tasks: tasks})
	}
	return out, nil
}

func GetBoards(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	kanbanQueries := queries.KanbanQueries{DB: database.DB}
	boards, err := kanbanQueries.GetBoardsByUser(userID)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch boards"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"boards": boards})
}

func GetBoard(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid board id"})
	}

	kanbanQueries := queries.KanbanQueries{DB: database.DB}
	board, err := kanbanQueries.GetBoardByID(boardID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Board not found"})
	}

	full, err := assembleBoard(board)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch board"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"board": full})
}

func GetBoardByGoal(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	goalID, err := uuid.Parse(c.Params("goalId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}

	kanbanQueries := queries.KanbanQueries{DB: database.DB}
	board, err := kanbanQueries.GetBoardByGoal(goalID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Board not found"})
	}

	full, err := assembleBoard(board)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch board"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"board": full})
}

// MoveTask places a task into a column at a position. Moving into the
// Done column completes the task, which emits the usual completion event.
func MoveTask(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	req := &models.MoveTaskRequest{}
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
	columnID, err := uuid.Parse(req.ColumnID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid column id"})
	}

	taskQueries := queries.TaskQueries{DB: database.DB}
	task, err := taskQueries.GetTaskByID(taskID)
	if err != nil || task.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	kanbanQueries := queries.KanbanQueries{DB: database.DB}
	column, err := kanbanQueries.GetColumnByID(columnID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Column not found"})
	}
	if _, err := kanbanQueries.GetBoardByID(column.BoardID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Column not found"})
	}

	task.KanbanColumnID = &column.ID
	task.Position = req.Position

	completing := column.IsDoneColumn && task.Status != models.TaskStatusCompleted
	if completing {
		now := time.Now()
		task.Status = models.TaskStatusCompleted
		task.CompletedAt = &now
	}
	task.UpdatedAt = time.Now()

	if err := taskQueries.UpdateTask(&task); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to move task"})
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
