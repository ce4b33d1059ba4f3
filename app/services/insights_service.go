package services

import (
	"database/sql"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/focusbloom/focusbloom-backend/app/queries"
	"github.com/google/uuid"
)

// InsightsService interprets the stored snapshots, tasks and goals into
// patterns and plain-language recommendations. Like the aggregator it is
// read-only over the materialized data.
type InsightsService struct {
	DB *sql.DB
}

// WeekdayProductivity averages the daily productivity score per weekday
// (0 = Sunday) and ranks weekdays most productive first. Ties break on the
// earlier weekday so the order is deterministic. Weekdays without a
// snapshot are omitted.
func WeekdayProductivity(records []models.PerformanceRecord) []models.WeekdayActivity {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, r := range records {
		wd := int(r.Date.Weekday())
		sums[wd] += r.ProductivityScore
		counts[wd]++
	}

	weekdays := make([]models.WeekdayActivity, 0, len(sums))
	for wd, sum := range sums {
		weekdays = append(weekdays, models.WeekdayActivity{
			Weekday:           wd,
			ProductivityScore: round2(sum / float64(counts[wd])),
		})
	}
	sort.SliceStable(weekdays, func(i, j int) bool {
		if weekdays[i].ProductivityScore != weekdays[j].ProductivityScore {
			return weekdays[i].ProductivityScore > weekdays[j].ProductivityScore
		}
		return weekdays[i].Weekday < weekdays[j].Weekday
	})
	return weekdays
}

func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// ComputeWeeklyTrends averages the productivity score per ISO week,
// sorted by week key.
func ComputeWeeklyTrends(records []models.PerformanceRecord) []models.WeekTrend {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		k := weekKey(r.Date)
		sums[k] += r.ProductivityScore
		counts[k]++
	}

	trends := make([]models.WeekTrend, 0, len(sums))
	for k, sum := range sums {
		trends = append(trends, models.WeekTrend{
			Week:              k,
			ProductivityScore: round2(sum / float64(counts[k])),
		})
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Week < trends[j].Week })
	return trends
}

// TasksCompletionRate is completed over created as a percentage. Zero when
// nothing was created in the window, so a quiet week does not read as a
// perfect one.
func TasksCompletionRate(completed, created int) float64 {
	if created <= 0 {
		return 0
	}
	return round2(float64(completed) / float64(created) * 100)
}

// GoalProgressRate averages each goal's progress percentage, capped at 100
// so an overshot goal cannot mask stalled ones. A goal with a zero target
// contributes nothing but still counts toward the average.
func GoalProgressRate(goals []models.Goal) float64 {
	if len(goals) == 0 {
		return 0
	}
	var total float64
	for _, g := range goals {
		if g.TargetValue <= 0 {
			continue
		}
		total += math.Min(g.CurrentValue/g.TargetValue*100, 100)
	}
	return round2(total / float64(len(goals)))
}

// BuildRecommendations turns the computed patterns into short suggestions.
// Thresholds: under 20 focus minutes per session reads as fragmented,
// over 45 as strong; under 60% completion as overcommitted, over 80% as
// room for more.
func BuildRecommendations(hours []models.HourActivity, weekdays []models.WeekdayActivity, avgFocusMinutes, completionRate float64) []string {
	recommendations := []string{}

	if len(hours) > 0 && hours[0].ActivityLevel > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"You focus best around %d:00. Schedule your most important work in that window.", hours[0].Hour))
	}
	if len(weekdays) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"%s is your most productive day of the week. Plan demanding tasks for it.",
			time.Weekday(weekdays[0].Weekday)))
	}

	if avgFocusMinutes < 20 {
		recommendations = append(recommendations,
			"Your average focus session is short. Cut distractions and let the timer run its full length.")
	} else if avgFocusMinutes > 45 {
		recommendations = append(recommendations,
			"Long focus sessions are working for you. Keep taking regular breaks to sustain them.")
	}

	if completionRate < 60 {
		recommendations = append(recommendations,
			"Your task completion rate has room to grow. Try breaking large tasks into smaller ones.")
	} else if completionRate > 80 {
		recommendations = append(recommendations,
			"Excellent completion rate. You have room to take on more ambitious goals.")
	}

	return recommendations
}

// GetProductivityInsights builds the insights view over a trailing window
// of the given number of days.
func (s *InsightsService) GetProductivityInsights(userID uuid.UUID, days int) (models.ProductivityInsights, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	prq := queries.PerformanceQueries{DB: s.DB}
	records, err := prq.GetRecordsInRange(userID, start, end)
	if err != nil {
		return models.ProductivityInsights{}, err
	}

	tq := queries.TaskQueries{DB: s.DB}
	completed, err := tq.CountCompletedInRange(userID, start, end)
	if err != nil {
		return models.ProductivityInsights{}, err
	}
	created, err := tq.CountCreatedInRange(userID, start, end)
	if err != nil {
		return models.ProductivityInsights{}, err
	}

	pq := queries.PomodoroQueries{DB: s.DB}
	sessions, err := pq.CountCompletedInRange(userID, start, end)
	if err != nil {
		return models.ProductivityInsights{}, err
	}
	var avgFocus float64
	if sessions > 0 {
		minutes, err := pq.SumFocusMinutesInRange(userID, start, end)
		if err != nil {
			return models.ProductivityInsights{}, err
		}
		avgFocus = round2(minutes / float64(sessions))
	}

	gq := queries.GoalQueries{DB: s.DB}
	goals, err := gq.GetGoalsByUser(userID, "")
	if err != nil {
		return models.ProductivityInsights{}, err
	}

	hours := MostProductiveHours(records)
	weekdays := WeekdayProductivity(records)
	completionRate := TasksCompletionRate(completed, created)

	return models.ProductivityInsights{
		MostProductiveHours:    hours,
		MostProductiveWeekdays: weekdays,
		AverageFocusTime:       avgFocus,
		TasksCompletionRate:    completionRate,
		GoalProgressRate:       GoalProgressRate(goals),
		Recommendations:        BuildRecommendations(hours, weekdays, avgFocus, completionRate),
		WeeklyTrends:           ComputeWeeklyTrends(records),
		MonthlyTrends:          ComputeMonthlyTrends(records),
	}, nil
}
