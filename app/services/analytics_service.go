package services

import (
	"database/sql"
	"math"
	"sort"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/focusbloom/focusbloom-backend/app/queries"
	"github.com/google/uuid"
)

// AnalyticsService builds daily performance snapshots and aggregates them
// into weekly/monthly views. Aggregation reads only the materialized
// snapshots, never the raw task/pomodoro rows.
type AnalyticsService struct {
	DB *sql.DB
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ProductivityScore weights a completed task twenty times a focus minute
// and caps the composite at 5.0.
func ProductivityScore(tasksCompleted int, focusMinutes float64) float64 {
	score := (float64(tasksCompleted)*10 + focusMinutes*0.5) / 100
	if score > 5.0 {
		return 5.0
	}
	if score < 0 {
		return 0
	}
	return score
}

// HourlyActivity distributes pomodoro minutes over 24 slots keyed by each
// pomodoro's start hour. Slots without activity stay at zero.
func HourlyActivity(pomodoros []models.Pomodoro) map[int]float64 {
	activity := make(map[int]float64, 24)
	for hour := 0; hour < 24; hour++ {
		activity[hour] = 0
	}
	for _, p := range pomodoros {
		if p.StartTime == nil {
			continue
		}
		activity[p.StartTime.Hour()] += float64(p.Duration) / 60
	}
	return activity
}

// ComputeWeeklyAverage is the per-field mean over the fetched records,
// rounded to 2 decimals. Zeroes when there are no records.
func ComputeWeeklyAverage(records []models.PerformanceRecord) models.WeeklyAverage {
	if len(records) == 0 {
		return models.WeeklyAverage{}
	}
	var avg models.WeeklyAverage
	for _, r := range records {
		avg.TasksCompleted += float64(r.TasksCompleted)
		avg.PomodorosCompleted += float64(r.PomodorosCompleted)
		avg.FocusTime += r.FocusTimeMinutes
		avg.ProductivityScore += r.ProductivityScore
	}
	n := float64(len(records))
	avg.TasksCompleted = round2(avg.TasksCompleted / n)
	avg.PomodorosCompleted = round2(avg.PomodorosCompleted / n)
	avg.FocusTime = round2(avg.FocusTime / n)
	avg.ProductivityScore = round2(avg.ProductivityScore / n)
	return avg
}

// ComputeMonthlyTrends groups records by YYYY-MM and averages each field.
// The result is sorted by month key so the order is deterministic.
func ComputeMonthlyTrends(records []models.PerformanceRecord) []models.MonthlyTrend {
	type bucket struct {
		tasks     float64
		pomodoros float64
		focus     float64
		count     int
	}
	buckets := make(map[string]*bucket)
	for _, r := range records {
		key := r.Date.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.tasks += float64(r.TasksCompleted)
		b.pomodoros += float64(r.PomodorosCompleted)
		b.focus += r.FocusTimeMinutes
		b.count++
	}

	trends := make([]models.MonthlyTrend, 0, len(buckets))
	for month, b := range buckets {
		n := float64(b.count)
		trends = append(trends, models.MonthlyTrend{
			Month:              month,
			TasksCompleted:     round2(b.tasks / n),
			PomodorosCompleted: round2(b.pomodoros / n),
			FocusTime:          round2(b.focus / n),
		})
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Month < trends[j].Month })
	return trends
}

// BestPerformanceDays returns the top 5 records by productivity score.
func BestPerformanceDays(records []models.PerformanceRecord) []models.PerformanceRecord {
	best := make([]models.PerformanceRecord, len(records))
	copy(best, records)
	sort.SliceStable(best, func(i, j int) bool {
		return best[i].ProductivityScore > best[j].ProductivityScore
	})
	if len(best) > 5 {
		best = best[:5]
	}
	return best
}

// MostProductiveHours sums hourly activity across all records and returns
// the 6 busiest hours, most active first.
func MostProductiveHours(records []models.PerformanceRecord) []models.HourActivity {
	if len(records) == 0 {
		return []models.HourActivity{}
	}
	totals := make([]float64, 24)
	for _, r := range records {
		for hour, activity := range r.HourlyActivity {
			if hour >= 0 && hour < 24 {
				totals[hour] += activity
			}
		}
	}

	hours := make([]models.HourActivity, 24)
	for h := 0; h < 24; h++ {
		hours[h] = models.HourActivity{Hour: h, ActivityLevel: round2(totals[h])}
	}
	sort.SliceStable(hours, func(i, j int) bool {
		return hours[i].ActivityLevel > hours[j].ActivityLevel
	})
	return hours[:6]
}

// buildDailyRecord derives every snapshot field from the day's rows.
// Identical inputs always yield an identical record, which is what makes
// the daily upsert safe to re-run. ID, user and created_at are assigned by
// the caller.
func buildDailyRecord(tasksCompleted int, pomodoros []models.Pomodoro, day time.Time) models.PerformanceRecord {
	var focusMinutes float64
	for _, p := range pomodoros {
		focusMinutes += float64(p.Duration) / 60
	}
	return models.PerformanceRecord{
		Date:               day,
		TasksCompleted:     tasksCompleted,
		PomodorosCompleted: len(pomodoros),
		FocusTimeMinutes:   focusMinutes,
		ProductivityScore:  ProductivityScore(tasksCompleted, focusMinutes),
		HourlyActivity:     HourlyActivity(pomodoros),
	}
}

// UpdateDailyPerformance recomputes and upserts the snapshot for the day
// containing date. It is a pure function of the stored task and pomodoro
// rows for that day, so re-running it any number of times yields the same
// record.
func (s *AnalyticsService) UpdateDailyPerformance(userID uuid.UUID, date time.Time) (models.PerformanceRecord, error) {
	day := DayStart(date)
	next := day.AddDate(0, 0, 1)

	tq := queries.TaskQueries{DB: s.DB}
	tasksCompleted, err := tq.CountCompletedInRange(userID, day, next)
	if err != nil {
		return models.PerformanceRecord{}, err
	}

	pq := queries.PomodoroQueries{DB: s.DB}
	pomodoros, err := pq.GetCompletedInRange(userID, day, next)
	if err != nil {
		return models.PerformanceRecord{}, err
	}

	record := buildDailyRecord(tasksCompleted, pomodoros, day)
	record.ID = uuid.New()
	record.UserID = userID
	record.CreatedAt = time.Now()

	prq := queries.PerformanceQueries{DB: s.DB}
	if err := prq.UpsertPerformanceRecord(&record); err != nil {
		return models.PerformanceRecord{}, err
	}
	return prq.GetRecordByDate(userID, day)
}

// GetAnalytics aggregates the user's snapshots over the trailing window of
// the given number of days. Read-only.
func (s *AnalyticsService) GetAnalytics(userID uuid.UUID, days int) (models.AnalyticsData, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	prq := queries.PerformanceQueries{DB: s.DB}
	records, err := prq.GetRecordsInRange(userID, start, end)
	if err != nil {
		return models.AnalyticsData{}, err
	}

	daily := records
	if daily == nil {
		daily = []models.PerformanceRecord{}
	}
	return models.AnalyticsData{
		DailyStats:          daily,
		WeeklyAverage:       ComputeWeeklyAverage(records),
		MonthlyTrends:       ComputeMonthlyTrends(records),
		BestPerformanceDays: BestPerformanceDays(records),
		MostProductiveHours: MostProductiveHours(records),
	}, nil
}
