package models

import (
	"time"

	"github.com/google/uuid"
)

type FlowerType string

const (
	FlowerTypeCommon FlowerType = "common"
	FlowerTypeRare   FlowerType = "rare"
)

type FlowerColor string

const (
	FlowerColorGreen  FlowerColor = "green"
	FlowerColorOrange FlowerColor = "orange"
	FlowerColorRed    FlowerColor = "red"
	FlowerColorPurple FlowerColor = "purple"
)

type Flower struct {
	ID                  uuid.UUID   `json:"id" db:"id"`
	UserID              uuid.UUID   `json:"user_id" db:"user_id"`
	TaskID              uuid.UUID   `json:"task_id" db:"task_id"`
	Type                FlowerType  `json:"type" db:"type"`
	Color               FlowerColor `json:"color" db:"color"`
	EarnedFromTaskTitle string      `json:"earned_from_task_title" db:"earned_from_task_title"`
	CreatedAt           time.Time   `json:"created_at" db:"created_at"`
}

// Garden keeps per-user flower counters, one row per user.
type Garden struct {
	ID                               uuid.UUID `json:"id" db:"id"`
	UserID                           uuid.UUID `json:"user_id" db:"user_id"`
	TotalFlowers                     int       `json:"total_flowers" db:"total_flowers"`
	GreenFlowers                     int       `json:"green_flowers" db:"green_flowers"`
	OrangeFlowers                    int       `json:"orange_flowers" db:"orange_flowers"`
	RedFlowers                       int       `json:"red_flowers" db:"red_flowers"`
	RareFlowers                      int       `json:"rare_flowers" db:"rare_flowers"`
	ConsecutiveHighPriorityPomodoros int       `json:"consecutive_high_priority_pomodoros" db:"consecutive_high_priority_pomodoros"`
	CreatedAt                        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt                        time.Time `json:"updated_at" db:"updated_at"`
}

type GardenStats struct {
	TotalFlowers            int            `json:"total_flowers"`
	FlowersByColor          map[string]int `json:"flowers_by_color"`
	RareFlowersCount        int            `json:"rare_flowers_count"`
	ConsecutiveHighPriority int            `json:"consecutive_high_priority"`
}
