package services

import (
	"testing"

	"github.com/focusbloom/focusbloom-backend/app/models"
)

func TestColorForPriority(t *testing.T) {
	tests := []struct {
		priority models.TaskPriority
		want     models.FlowerColor
	}{
		{models.TaskPriorityLow, models.FlowerColorGreen},
		{models.TaskPriorityMedium, models.FlowerColorOrange},
		{models.TaskPriorityHigh, models.FlowerColorRed},
		{"", models.FlowerColorGreen},
	}
	for _, tt := range tests {
		if got := ColorForPriority(tt.priority); got != tt.want {
			t.Errorf("ColorForPriority(%q) = %s, want %s", tt.priority, got, tt.want)
		}
	}
}

func flowers(colors ...models.FlowerColor) []models.Flower {
	out := make([]models.Flower, len(colors))
	for i, c := range colors {
		out[i] = models.Flower{Color: c}
	}
	return out
}

func TestIsRedRun(t *testing.T) {
	red := models.FlowerColorRed
	green := models.FlowerColorGreen

	tests := []struct {
		name   string
		recent []models.Flower
		color  models.FlowerColor
		want   bool
	}{
		{"three reds and a red award", flowers(red, red, red), red, true},
		{"four recent, newest three red", flowers(red, red, red, green), red, true},
		{"broken run", flowers(red, green, red), red, false},
		{"only two reds", flowers(red, red), red, false},
		{"no history", nil, red, false},
		{"run but green award", flowers(red, red, red), green, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRedRun(tt.recent, tt.color); got != tt.want {
				t.Errorf("IsRedRun = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShouldAwardRare(t *testing.T) {
	red := models.FlowerColorRed
	never := func() float64 { return 0.99 }
	always := func() float64 { return 0.0 }

	tests := []struct {
		name            string
		recent          []models.Flower
		color           models.FlowerColor
		flowersToday    int
		consecutiveHigh int
		roll            func() float64
		want            bool
	}{
		{"red run", flowers(red, red, red), red, 5, 0, never, true},
		{"three consecutive high pomodoros", nil, models.FlowerColorGreen, 5, 3, never, true},
		{"lucky first flower of the day", nil, models.FlowerColorGreen, 0, 0, always, true},
		{"unlucky first flower", nil, models.FlowerColorGreen, 0, 0, never, false},
		{"lucky roll but not first flower", nil, models.FlowerColorGreen, 1, 0, always, false},
		{"nothing special", flowers(red, red), red, 2, 2, never, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldAwardRare(tt.recent, tt.color, tt.flowersToday, tt.consecutiveHigh, tt.roll)
			if got != tt.want {
				t.Errorf("ShouldAwardRare = %v, want %v", got, tt.want)
			}
		})
	}
}
