package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/focusbloom/focusbloom-backend/app/queries"
	"github.com/focusbloom/focusbloom-backend/pkg/database"
	"github.com/focusbloom/focusbloom-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// conversationHistoryLimit caps the stored history; older entries are
// discarded first.
const conversationHistoryLimit = 50

// lumiConn is the write side of a client socket. The websocket library
// allows at most one concurrent writer per connection, so every outbound
// frame goes through lumiClient.write.
type lumiConn interface {
	WriteMessage(messageType int, data []byte) error
}

type lumiClient struct {
	conn lumiConn
	uid  uuid.UUID

	writeMu sync.Mutex
}

func (cl *lumiClient) write(messageType int, data []byte) error {
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()
	return cl.conn.WriteMessage(messageType, data)
}

var (
	lumiClientsByUser = make(map[uuid.UUID]map[*lumiClient]bool)
	lumiClientsMu     sync.RWMutex
)

// LumiWsHandler keeps a websocket open per client so chat responses and
// nudges can be pushed without polling. Token comes in as a query param
// since browsers cannot set headers on websocket upgrades.
func LumiWsHandler(c *websocket.Conn) {
	token := c.Query("token")
	var userID uuid.UUID
	if token != "" {
		userID, _ = utils.ExtractUserIDFromHeader("Bearer " + token)
	}
	if userID == uuid.Nil {
		c.Close()
		return
	}

	cl := &lumiClient{conn: c, uid: userID}
	lumiClientsMu.Lock()
	if _, ok := lumiClientsByUser[userID]; !ok {
		lumiClientsByUser[userID] = make(map[*lumiClient]bool)
	}
	lumiClientsByUser[userID][cl] = true
	lumiClientsMu.Unlock()

	defer func() {
		lumiClientsMu.Lock()
		if conns, ok := lumiClientsByUser[userID]; ok {
			delete(conns, cl)
			if len(conns) == 0 {
				delete(lumiClientsByUser, userID)
			}
		}
		lumiClientsMu.Unlock()
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

func pushToUser(userID uuid.UUID, payload interface{}) {
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	lumiClientsMu.RLock()
	defer lumiClientsMu.RUnlock()
	for cl := range lumiClientsByUser[userID] {
		cl.write(websocket.TextMessage, b)
	}
}

// moodForStreak picks the assistant's tone from the user's streak state.
func moodForStreak(current int) models.LumiMood {
	switch {
	case current >= 7:
		return models.LumiMoodCelebratory
	case current >= 1:
		return models.LumiMoodEncouraging
	default:
		return models.LumiMoodSupportive
	}
}

func lumiPrompt(memory models.LumiMemory, streak models.Streak, recentTasks []models.Task, message string) string {
	var b strings.Builder
	b.WriteString("You are Lumi, a warm productivity companion. Reply briefly and helpfully.\n")
	fmt.Fprintf(&b, "Mood: %s. User streak: %d days (longest %d).\n", memory.CurrentMood, streak.CurrentStreak, streak.LongestStreak)
	for _, t := range recentTasks {
		fmt.Fprintf(&b, "Recent task: %s (%s)\n", t.Title, t.Status)
	}

	history := memory.ConversationHistory
	if len(history) > 5 {
		history = history[len(history)-5:]
	}
	for _, entry := range history {
		fmt.Fprintf(&b, "User: %s\nLumi: %s\n", entry.UserMessage, entry.LumiResponse)
	}
	fmt.Fprintf(&b, "User: %s\nLumi:", message)
	return b.String()
}

func getOrCreateLumiMemory(userID uuid.UUID) (models.LumiMemory, error) {
	lq := queries.LumiQueries{DB: database.DB}
	memory, err := lq.GetMemoryByUser(userID)
	if err == nil {
		return memory, nil
	}
	if !errors.Is(err, queries.ErrLumiMemoryNotFound) {
		return models.LumiMemory{}, err
	}

	memory = models.LumiMemory{
		ID:                  uuid.New(),
		UserID:              userID,
		ConversationHistory: []models.ConversationEntry{},
		CurrentMood:         models.LumiMoodEncouraging,
		LastInteraction:     time.Now(),
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}
	if err := lq.InsertMemory(&memory); err != nil {
		if database.IsUniqueViolation(err) {
			return lq.GetMemoryByUser(userID)
		}
		return models.LumiMemory{}, err
	}
	return memory, nil
}

func LumiChat(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	req := &models.LumiChatRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	memory, err := getOrCreateLumiMemory(userID)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load assistant memory"})
	}

	var streak models.Streak
	sq := queries.StreakQueries{DB: database.DB}
	if s, err := sq.GetStreakByUser(userID); err == nil {
		streak = s
	}
	memory.CurrentMood = moodForStreak(streak.CurrentStreak)

	tq := queries.TaskQueries{DB: database.DB}
	recentTasks, err := tq.GetRecentTasks(userID, 3)
	if err != nil {
		println(err.Error())
	}

	response, err := utils.QueryLumiAI(lumiPrompt(memory, streak, recentTasks, req.Message))
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Assistant is unavailable"})
	}

	memory.ConversationHistory = append(memory.ConversationHistory, models.ConversationEntry{
		Timestamp:    time.Now(),
		UserMessage:  req.Message,
		LumiResponse: response,
		Context:      fmt.Sprintf("streak:%d", streak.CurrentStreak),
	})
	if len(memory.ConversationHistory) > conversationHistoryLimit {
		memory.ConversationHistory = memory.ConversationHistory[len(memory.ConversationHistory)-conversationHistoryLimit:]
	}
	memory.InteractionCount++
	memory.LastInteraction = time.Now()
	memory.UpdatedAt = time.Now()

	lq := queries.LumiQueries{DB: database.DB}
	if err := lq.UpdateMemory(&memory); err != nil {
		println(err.Error())
	}

	chatResponse := models.LumiChatResponse{Response: response, Mood: memory.CurrentMood}
	pushToUser(userID, chatResponse)

	return c.Status(fiber.StatusOK).JSON(chatResponse)
}

func GetLumiMemory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	memory, err := getOrCreateLumiMemory(userID)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load assistant memory"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"memory": memory})
}
