package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDispatchRunsHandlersInOrder(t *testing.T) {
	var order []string
	d := NewCompletionDispatcher(1,
		CompletionHandler{Name: "first", Fn: func(CompletionEvent) error {
			order = append(order, "first")
			return nil
		}},
		CompletionHandler{Name: "second", Fn: func(CompletionEvent) error {
			order = append(order, "second")
			return nil
		}},
		CompletionHandler{Name: "third", Fn: func(CompletionEvent) error {
			order = append(order, "third")
			return nil
		}},
	)

	d.Dispatch(CompletionEvent{UserID: uuid.New(), Kind: TaskCompleted, OccurredAt: time.Now()})

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("ran %d handlers, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("handler %d was %q, want %q", i, order[i], want[i])
		}
	}
}

func TestDispatchContinuesPastFailingHandler(t *testing.T) {
	var ran []string
	d := NewCompletionDispatcher(1,
		CompletionHandler{Name: "failing", Fn: func(CompletionEvent) error {
			ran = append(ran, "failing")
			return errors.New("storage offline")
		}},
		CompletionHandler{Name: "after", Fn: func(CompletionEvent) error {
			ran = append(ran, "after")
			return nil
		}},
	)

	d.Dispatch(CompletionEvent{UserID: uuid.New(), Kind: PomodoroCompleted})

	if len(ran) != 2 || ran[1] != "after" {
		t.Errorf("ran = %v, want both handlers despite the failure", ran)
	}
}

func TestEmitDoesNotBlockWhenBufferFull(t *testing.T) {
	// No consumer goroutine, buffer of one: the second Emit must drop
	// instead of blocking.
	d := NewCompletionDispatcher(1)
	ev := CompletionEvent{UserID: uuid.New(), Kind: TaskCompleted}

	done := make(chan struct{})
	go func() {
		d.Emit(ev)
		d.Emit(ev)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full buffer")
	}
	if len(d.ch) != 1 {
		t.Errorf("buffered %d events, want 1", len(d.ch))
	}
}

func TestStartConsumesEmittedEvents(t *testing.T) {
	handled := make(chan CompletionEvent, 2)
	d := NewCompletionDispatcher(10,
		CompletionHandler{Name: "record", Fn: func(ev CompletionEvent) error {
			handled <- ev
			return nil
		}},
	)
	d.Start()

	userID := uuid.New()
	d.Emit(CompletionEvent{UserID: userID, Kind: TaskCompleted})
	d.Emit(CompletionEvent{UserID: userID, Kind: PomodoroCompleted})

	for _, wantKind := range []CompletionKind{TaskCompleted, PomodoroCompleted} {
		select {
		case ev := <-handled:
			if ev.Kind != wantKind {
				t.Errorf("handled %s, want %s", ev.Kind, wantKind)
			}
			if ev.UserID != userID {
				t.Errorf("handled user %s, want %s", ev.UserID, userID)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for the dispatcher")
		}
	}
}
