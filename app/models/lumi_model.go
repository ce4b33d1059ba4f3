package models

import (
	"time"

	"github.com/google/uuid"
)

type LumiMood string

const (
	LumiMoodEncouraging LumiMood = "encouraging"
	LumiMoodCelebratory LumiMood = "celebratory"
	LumiMoodSupportive  LumiMood = "supportive"
)

type ConversationEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	UserMessage  string    `json:"user_message"`
	LumiResponse string    `json:"lumi_response"`
	Context      string    `json:"context"`
}

// LumiMemory is the assistant's per-user state, one row per user.
type LumiMemory struct {
	ID                  uuid.UUID           `json:"id" db:"id"`
	UserID              uuid.UUID           `json:"user_id" db:"user_id"`
	ConversationHistory []ConversationEntry `json:"conversation_history" db:"conversation_history"`
	InteractionCount    int                 `json:"interaction_count" db:"interaction_count"`
	CurrentMood         LumiMood            `json:"current_mood" db:"current_mood"`
	LastInteraction     time.Time           `json:"last_interaction" db:"last_interaction"`
	CreatedAt           time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at" db:"updated_at"`
}

type LumiChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type LumiChatResponse struct {
	Response string   `json:"response"`
	Mood     LumiMood `json:"mood"`
}
