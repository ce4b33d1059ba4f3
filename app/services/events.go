package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/google/uuid"
)

type CompletionKind string

const (
	TaskCompleted     CompletionKind = "task_completed"
	PomodoroCompleted CompletionKind = "pomodoro_completed"
)

// CompletionEvent is emitted after a task or pomodoro completion has been
// persisted. Secondary recomputations (streak, daily snapshot, goal
// progress) hang off these events instead of being called inline from the
// completion handlers, so a failed recomputation never fails the primary
// action.
type CompletionEvent struct {
	UserID     uuid.UUID
	Kind       CompletionKind
	OccurredAt time.Time
}

type CompletionHandler struct {
	Name string
	Fn   func(ev CompletionEvent) error
}

// CompletionDispatcher runs handlers in registration order for each
// event. Handler errors are logged and skipped; the chain always runs to
// the end.
type CompletionDispatcher struct {
	ch       chan CompletionEvent
	handlers []CompletionHandler
}

func NewCompletionDispatcher(buffer int, handlers ...CompletionHandler) *CompletionDispatcher {
	return &CompletionDispatcher{
		ch:       make(chan CompletionEvent, buffer),
		handlers: handlers,
	}
}

func (d *CompletionDispatcher) Start() {
	go func() {
		for ev := range d.ch {
			d.Dispatch(ev)
		}
	}()
}

// Emit queues the event without blocking the caller. When the buffer is
// full the event is dropped; the next completion re-derives the same
// state, so a drop only delays the recomputation.
func (d *CompletionDispatcher) Emit(ev CompletionEvent) {
	select {
	case d.ch <- ev:
	default:
		log.Printf("completion dispatcher: buffer full, dropping %s event for user %s", ev.Kind, ev.UserID)
	}
}

// Dispatch runs every handler for the event, in order, best-effort.
func (d *CompletionDispatcher) Dispatch(ev CompletionEvent) {
	for _, h := range d.handlers {
		if err := h.Fn(ev); err != nil {
			log.Printf("completion dispatcher: %s failed for user %s: %v", h.Name, ev.UserID, err)
		}
	}
}

var defaultDispatcher *CompletionDispatcher

// StartCompletionDispatcher wires the standard chain — streak update,
// daily snapshot, goal recomputation — and starts consuming events.
// Called once from main after the database is up.
func StartCompletionDispatcher(db *sql.DB) {
	streaks := StreakService{DB: db}
	analytics := AnalyticsService{DB: db}
	goals := GoalService{DB: db}

	defaultDispatcher = NewCompletionDispatcher(100,
		CompletionHandler{Name: "streak update", Fn: func(ev CompletionEvent) error {
			_, err := streaks.UpdateStreak(ev.UserID, ev.OccurredAt)
			return err
		}},
		CompletionHandler{Name: "daily snapshot", Fn: func(ev CompletionEvent) error {
			_, err := analytics.UpdateDailyPerformance(ev.UserID, ev.OccurredAt)
			return err
		}},
		CompletionHandler{Name: "goal recomputation", Fn: func(ev CompletionEvent) error {
			if ev.Kind == TaskCompleted {
				return goals.RecalculateGoalsForCategory(ev.UserID, models.GoalCategoryTasksCompleted)
			}
			if err := goals.RecalculateGoalsForCategory(ev.UserID, models.GoalCategoryPomodorosCompleted); err != nil {
				return err
			}
			return goals.RecalculateGoalsForCategory(ev.UserID, models.GoalCategoryFocusTime)
		}},
	)
	defaultDispatcher.Start()
}

// EmitCompletion publishes to the default dispatcher. A no-op before
// StartCompletionDispatcher runs (tests exercise services directly).
func EmitCompletion(ev CompletionEvent) {
	if defaultDispatcher == nil {
		return
	}
	defaultDispatcher.Emit(ev)
}
