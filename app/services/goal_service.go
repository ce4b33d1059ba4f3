package services

import (
	"database/sql"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/focusbloom/focusbloom-backend/app/queries"
	"github.com/google/uuid"
)

// GoalService recomputes goal progress from the authoritative task and
// pomodoro rows and applies status transitions. Completion is one-way:
// a completed goal is never reverted even if its recomputed value later
// drops below target.
type GoalService struct {
	DB *sql.DB
}

// ApplyProgress sets the goal's current value and flips an active goal to
// completed once the target is reached. Returns true when the status
// changed.
func ApplyProgress(g *models.Goal, currentValue float64, now time.Time) bool {
	g.CurrentValue = currentValue
	if g.Status == models.GoalStatusActive && currentValue >= g.TargetValue {
		g.Status = models.GoalStatusCompleted
		completed := now
		g.CompletedAt = &completed
		return true
	}
	return false
}

// GoalWindow is the goal's counting window as a half-open interval.
// end_date is stored as a midnight timestamp and the whole of that day
// still belongs to the goal, so the window runs through end of the end
// day. A goal whose start and end dates coincide covers one full day.
func GoalWindow(g *models.Goal) (time.Time, time.Time) {
	return g.StartDate, g.EndDate.AddDate(0, 0, 1)
}

// ExpireGoal flips an active goal to failed once its window has fully
// elapsed. Activity on the end day itself still counts, so expiry starts
// the following midnight. Returns true when the status changed.
func ExpireGoal(g *models.Goal, now time.Time) bool {
	_, end := GoalWindow(g)
	if g.Status == models.GoalStatusActive && !now.Before(end) {
		g.Status = models.GoalStatusFailed
		return true
	}
	return false
}

func (s *GoalService) UpdateGoalProgress(goalID uuid.UUID, currentValue float64) (models.Goal, error) {
	gq := queries.GoalQueries{DB: s.DB}
	goal, err := gq.GetGoalByID(goalID)
	if err != nil {
		return models.Goal{}, err
	}

	ApplyProgress(&goal, currentValue, time.Now())
	if err := gq.UpdateGoal(&goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// CheckAndUpdateGoals fails every active goal whose end date has passed.
func (s *GoalService) CheckAndUpdateGoals(userID uuid.UUID) error {
	gq := queries.GoalQueries{DB: s.DB}
	goals, err := gq.GetGoalsByUser(userID, models.GoalStatusActive)
	if err != nil {
		return err
	}

	now := time.Now()
	for i := range goals {
		if ExpireGoal(&goals[i], now) {
			if err := gq.UpdateGoal(&goals[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecalculateGoalsForCategory recomputes current values for every active
// goal of the category, each scoped to its own window per GoalWindow. The
// productivity_score category has no event-driven source and is skipped
// here; those goals are updated through direct progress calls.
func (s *GoalService) RecalculateGoalsForCategory(userID uuid.UUID, category models.GoalCategory) error {
	gq := queries.GoalQueries{DB: s.DB}
	goals, err := gq.GetActiveGoalsByCategory(userID, category)
	if err != nil {
		return err
	}

	tq := queries.TaskQueries{DB: s.DB}
	pq := queries.PomodoroQueries{DB: s.DB}
	now := time.Now()

	for i := range goals {
		g := &goals[i]
		start, end := GoalWindow(g)
		var value float64

		switch category {
		case models.GoalCategoryTasksCompleted:
			cnt, err := tq.CountCompletedInRange(userID, start, end)
			if err != nil {
				return err
			}
			value = float64(cnt)
		case models.GoalCategoryPomodorosCompleted:
			cnt, err := pq.CountCompletedInRange(userID, start, end)
			if err != nil {
				return err
			}
			value = float64(cnt)
		case models.GoalCategoryFocusTime:
			minutes, err := pq.SumFocusMinutesInRange(userID, start, end)
			if err != nil {
				return err
			}
			value = minutes
		default:
			continue
		}

		ApplyProgress(g, value, now)
		if err := gq.UpdateGoal(g); err != nil {
			return err
		}
	}
	return nil
}
