package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cryptochat/internal/memory"
	"cryptochat/internal/model"
	"cryptochat/internal/router"
)

const (
	SessionCookie = "cryptochat_session"

	msgEmptyMessage = "⚠️ No message received."
	sessionMaxAge   = 30 * 24 * time.Hour
)

type Answerer interface {
	Handle(ctx context.Context, sess *memory.Session, req router.Request) model.Reply
}

type TurnStore interface {
	SaveTurn(ctx context.Context, turn *model.Turn) error
	GetTurns(ctx context.Context, sessionID string, limit, offset int) ([]model.Turn, error)
	GetTurnTotal(ctx context.Context, sessionID string) (int, error)
	Ping(ctx context.Context) error
}

// ChatHandler serves the chat endpoint. turns may be nil, which disables the transcript.
// Turns on one session are serialised within this process.
type ChatHandler struct {
	answerer Answerer
	sessions memory.Store
	turns    TurnStore
	locks    *memory.Locks
}

func NewChatHandler(answerer Answerer, sessions memory.Store, turns TurnStore) *ChatHandler {
	return &ChatHandler{answerer: answerer, sessions: sessions, turns: turns, locks: memory.NewLocks()}
}

func (h *ChatHandler) GetResponse(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusOK, ChatResponse{Response: msgEmptyMessage})
		return
	}

	sessionID := h.sessionID(c)
	ctx := c.Request.Context()

	defer func() {
		if p := recover(); p != nil {
			slog.Error("panic in chat handler", "session", sessionID, "panic", p)
			c.JSON(http.StatusOK, ChatResponse{Response: renderError(fmt.Sprint(p))})
		}
	}()

	unlock := h.locks.Lock(sessionID)
	defer unlock()

	sess, err := h.sessions.Load(ctx, sessionID)
	if err != nil {
		slog.Error("error loading session, starting fresh", "session", sessionID, "error", err)
		sess = memory.NewSession(sessionID)
	}

	reply := h.answerer.Handle(ctx, sess, router.Request{Message: message, URL: strings.TrimSpace(req.URL)})

	if err := h.sessions.Save(ctx, sess); err != nil {
		slog.Error("error saving session", "session", sessionID, "error", err)
	}

	h.recordTurn(ctx, sess, message, reply)

	c.JSON(http.StatusOK, ChatResponse{Response: RenderReply(reply)})
}

// sessionID reads the session cookie, issuing a new id when it is missing or malformed.
func (h *ChatHandler) sessionID(c *gin.Context) string {
	if id, err := c.Cookie(SessionCookie); err == nil {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}

	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id, int(sessionMaxAge.Seconds()), "/", "", false, true)
	return id
}

func (h *ChatHandler) recordTurn(ctx context.Context, sess *memory.Session, message string, reply model.Reply) {
	if h.turns == nil {
		return
	}

	turn := &model.Turn{
		SessionID: sess.ID,
		Input:     message,
		Intent:    model.Unknown,
		Reply:     reply.PlainText(),
	}
	if last, ok := sess.Last(); ok && last.Input == message {
		turn.Intent = string(last.Query.Intent)
		turn.Asset = last.Query.Asset
	}

	if err := h.turns.SaveTurn(ctx, turn); err != nil {
		slog.Error("error saving turn", "session", sess.ID, "error", err)
	}
}

func (h *ChatHandler) GetHealth(c *gin.Context) {
	ctx := c.Request.Context()
	status := gin.H{"status": "healthy", "sessions": "connected", "database": "disabled"}
	code := http.StatusOK

	if err := h.sessions.Ping(ctx); err != nil {
		slog.Error("session store ping failed", "error", err)
		status["status"] = "unhealthy"
		status["sessions"] = "disconnected"
		code = http.StatusServiceUnavailable
	}

	if h.turns != nil {
		status["database"] = "connected"
		if err := h.turns.Ping(ctx); err != nil {
			slog.Error("database ping failed", "error", err)
			status["status"] = "unhealthy"
			status["database"] = "disconnected"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, status)
}

func (h *ChatHandler) GetTurns(c *gin.Context) {
	if h.turns == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transcripts are disabled"})
		return
	}

	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	limit, offset := pageParams(c)
	ctx := c.Request.Context()

	turns, err := h.turns.GetTurns(ctx, sessionID, limit, offset)
	if err != nil {
		slog.Error("error fetching turns", "session", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.turns.GetTurnTotal(ctx, sessionID)
	if err != nil {
		slog.Error("error fetching turn total", "session", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := TranscriptResponse{
		SessionID: sessionID,
		Turns:     make([]TurnResponse, 0, len(turns)),
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}
	for _, t := range turns {
		res.Turns = append(res.Turns, TurnResponse{
			ID:        t.ID,
			Input:     t.Input,
			Intent:    t.Intent,
			Asset:     t.Asset,
			Reply:     t.Reply,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, res)
}
