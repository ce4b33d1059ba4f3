package queries

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/google/uuid"
)

var ErrLumiMemoryNotFound = errors.New("lumi memory not found")

type LumiQueries struct {
	DB *sql.DB
}

func (q *LumiQueries) GetMemoryByUser(userID uuid.UUID) (models.LumiMemory, error) {
	m := models.LumiMemory{}
	var historyBytes []byte
	query := `SELECT id, user_id, conversation_history, interaction_count, current_mood, last_interaction, created_at, updated_at FROM lumi_memories WHERE user_id = $1`
	err := q.DB.QueryRow(query, userID).Scan(&m.ID, &m.UserID, &historyBytes, &m.InteractionCount,
		&m.CurrentMood, &m.LastInteraction, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return m, ErrLumiMemoryNotFound
		}
		println(err.Error())
		return m, errors.New("unable to get lumi memory")
	}
	if len(historyBytes) > 0 {
		if err := json.Unmarshal(historyBytes, &m.ConversationHistory); err != nil {
			return m, errors.New("unable to decode conversation history")
		}
	}
	return m, nil
}

func (q *LumiQueries) InsertMemory(m *models.LumiMemory) error {
	historyBytes, err := json.Marshal(m.ConversationHistory)
	if err != nil {
		return err
	}
	query := `INSERT INTO lumi_memories (id, user_id, conversation_history, interaction_count, current_mood, last_interaction, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err = q.DB.Exec(query, m.ID, m.UserID, historyBytes, m.InteractionCount, m.CurrentMood,
		m.LastInteraction, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("unable to insert lumi memory: %w", err)
	}
	return nil
}

func (q *LumiQueries) UpdateMemory(m *models.LumiMemory) error {
	historyBytes, err := json.Marshal(m.ConversationHistory)
	if err != nil {
		return err
	}
	query := `UPDATE lumi_memories SET conversation_history = $1, interaction_count = $2, current_mood = $3, last_interaction = $4, updated_at = $5 WHERE id = $6`
	_, err = q.DB.Exec(query, historyBytes, m.InteractionCount, m.CurrentMood, m.LastInteraction, time.Now(), m.ID)
	if err != nil {
		println(err.Error())
		return errors.New("unable to update lumi memory, DB error")
	}
	return nil
}
