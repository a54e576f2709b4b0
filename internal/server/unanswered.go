package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/quititaus/quitit-chat/internal/store"
	"github.com/quititaus/quitit-chat/internal/telemetry"
)

const maxQuestionRunes = 500

// UnansweredHandler captures questions the pipeline answered badly so the
// team can grow the FAQ tables. Store is optional; logging always happens.
type UnansweredHandler struct {
	Store   *store.Store
	Metrics *telemetry.Metrics
	Logger  *log.Logger
}

func (h *UnansweredHandler) Register(g *echo.Group) {
	g.POST("/log-unanswered", h.logUnanswered)
}

type unansweredRequest struct {
	Question string                 `json:"question"`
	Client   map[string]interface{} `json:"client"`
}

func (h *UnansweredHandler) logUnanswered(c echo.Context) error {
	var req unansweredRequest
	_ = c.Bind(&req)
	if req.Question == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"ok": false, "error": "Missing question"})
	}

	question := req.Question
	if runes := []rune(question); len(runes) > maxQuestionRunes {
		question = string(runes[:maxQuestionRunes])
	}

	r := c.Request()
	record := store.UnansweredQuestion{
		ID:        uuid.NewString(),
		Question:  question,
		AskedAt:   time.Now().UTC(),
		IP:        c.RealIP(),
		UserAgent: r.UserAgent(),
		Referer:   firstNonEmpty(r.Referer(), r.Header.Get("Origin"), "unknown"),
	}
	if req.Client != nil {
		record.Client, _ = json.Marshal(req.Client)
	}

	meta, _ := json.Marshal(map[string]interface{}{
		"id":       record.ID,
		"question": record.Question,
		"when":     record.AskedAt.Format(time.RFC3339),
		"ip":       record.IP,
		"ua":       record.UserAgent,
		"referer":  record.Referer,
	})
	h.Logger.Printf("%s", meta)
	h.Metrics.UnansweredLogged.Inc()

	if h.Store != nil {
		if err := h.Store.SaveUnanswered(r.Context(), record); err != nil {
			// Sink failures must never fail the request.
			h.Logger.Printf("sink save failed: %v", err)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"ok": true})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
