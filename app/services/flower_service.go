package services

import (
	"database/sql"
	"errors"
	"math/rand"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/focusbloom/focusbloom-backend/app/queries"
	"github.com/focusbloom/focusbloom-backend/pkg/database"
	"github.com/google/uuid"
)

// FlowerService awards a flower for each completed pomodoro and keeps the
// per-user garden counters in sync. Roll is the randomness source for the
// daily rare-flower chance; it defaults to rand.Float64.
type FlowerService struct {
	DB   *sql.DB
	Roll func() float64
}

// ColorForPriority maps task priority to flower color.
func ColorForPriority(p models.TaskPriority) models.FlowerColor {
	switch p {
	case models.TaskPriorityHigh:
		return models.FlowerColorRed
	case models.TaskPriorityMedium:
		return models.FlowerColorOrange
	default:
		return models.FlowerColorGreen
	}
}

// IsRedRun reports whether the three most recent flowers are all red,
// which upgrades the next red flower to a rare purple one.
func IsRedRun(recent []models.Flower, color models.FlowerColor) bool {
	if color != models.FlowerColorRed || len(recent) < 3 {
		return false
	}
	for _, f := range recent[:3] {
		if f.Color != models.FlowerColorRed {
			return false
		}
	}
	return true
}

// ShouldAwardRare decides whether the flower being awarded is rare:
// a red run, three consecutive high-priority pomodoros, or a 10% roll on
// the first flower of the day.
func ShouldAwardRare(recent []models.Flower, color models.FlowerColor, flowersToday, consecutiveHigh int, roll func() float64) bool {
	if IsRedRun(recent, color) {
		return true
	}
	if consecutiveHigh >= 3 {
		return true
	}
	if flowersToday == 0 && roll() < 0.1 {
		return true
	}
	return false
}

func (s *FlowerService) getOrCreateGarden(userID uuid.UUID) (models.Garden, error) {
	fq := queries.FlowerQueries{DB: s.DB}
	garden, err := fq.GetGardenByUser(userID)
	if err == nil {
		return garden, nil
	}
	if !errors.Is(err, queries.ErrGardenNotFound) {
		return models.Garden{}, err
	}

	now := time.Now()
	garden = models.Garden{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := fq.InsertGarden(&garden); err != nil {
		if database.IsUniqueViolation(err) {
			return fq.GetGardenByUser(userID)
		}
		return models.Garden{}, err
	}
	return garden, nil
}

func (s *FlowerService) GetUserGarden(userID uuid.UUID) (models.Garden, error) {
	return s.getOrCreateGarden(userID)
}

// AwardFlower creates a flower for a completed pomodoro on the given task
// and updates the garden counters. Returns the created flower.
func (s *FlowerService) AwardFlower(userID, taskID uuid.UUID) (models.Flower, error) {
	tq := queries.TaskQueries{DB: s.DB}
	task, err := tq.GetTaskByID(taskID)
	if err != nil {
		return models.Flower{}, err
	}
	if task.UserID != userID {
		return models.Flower{}, queries.ErrTaskNotFound
	}

	garden, err := s.getOrCreateGarden(userID)
	if err != nil {
		return models.Flower{}, err
	}

	if task.Priority == models.TaskPriorityHigh {
		garden.ConsecutiveHighPriorityPomodoros++
	} else {
		garden.ConsecutiveHighPriorityPomodoros = 0
	}

	fq := queries.FlowerQueries{DB: s.DB}
	recent, err := fq.GetRecentFlowers(userID, 4)
	if err != nil {
		return models.Flower{}, err
	}

	day := DayStart(time.Now())
	flowersToday, err := fq.CountFlowersInRange(userID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return models.Flower{}, err
	}

	roll := s.Roll
	if roll == nil {
		roll = rand.Float64
	}

	color := ColorForPriority(task.Priority)
	flowerType := models.FlowerTypeCommon
	if ShouldAwardRare(recent, color, flowersToday, garden.ConsecutiveHighPriorityPomodoros, roll) {
		flowerType = models.FlowerTypeRare
		color = models.FlowerColorPurple
		garden.ConsecutiveHighPriorityPomodoros = 0
		garden.RareFlowers++
	} else {
		switch color {
		case models.FlowerColorGreen:
			garden.GreenFlowers++
		case models.FlowerColorOrange:
			garden.OrangeFlowers++
		case models.FlowerColorRed:
			garden.RedFlowers++
		}
	}
	garden.TotalFlowers++

	if err := fq.UpdateGarden(&garden); err != nil {
		return models.Flower{}, err
	}

	flower := models.Flower{
		ID:                  uuid.New(),
		UserID:              userID,
		TaskID:              taskID,
		Type:                flowerType,
		Color:               color,
		EarnedFromTaskTitle: task.Title,
		CreatedAt:           time.Now(),
	}
	if err := fq.CreateFlower(&flower); err != nil {
		return models.Flower{}, err
	}
	return flower, nil
}

// GardenStats summarizes the user's flowers by color and rarity.
func (s *FlowerService) GardenStats(userID uuid.UUID) (models.GardenStats, error) {
	fq := queries.FlowerQueries{DB: s.DB}
	flowers, err := fq.GetFlowersByUser(userID)
	if err != nil {
		return models.GardenStats{}, err
	}

	garden, err := s.getOrCreateGarden(userID)
	if err != nil {
		return models.GardenStats{}, err
	}

	stats := models.GardenStats{
		TotalFlowers: len(flowers),
		FlowersByColor: map[string]int{
			string(models.FlowerColorGreen):  0,
			string(models.FlowerColorOrange): 0,
			string(models.FlowerColorRed):    0,
			string(models.FlowerColorPurple): 0,
		},
		ConsecutiveHighPriority: garden.ConsecutiveHighPriorityPomodoros,
	}
	for _, f := range flowers {
		stats.FlowersByColor[string(f.Color)]++
		if f.Type == models.FlowerTypeRare {
			stats.RareFlowersCount++
		}
	}
	return stats, nil
}
