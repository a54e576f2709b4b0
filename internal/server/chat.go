package server

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quititaus/quitit-chat/internal/resolve"
	"github.com/quititaus/quitit-chat/internal/telemetry"
)

// ChatHandler serves the widget-facing chat endpoint.
type ChatHandler struct {
	Resolver *resolve.Orchestrator
	Metrics  *telemetry.Metrics
	Logger   *log.Logger
}

func (h *ChatHandler) Register(g *echo.Group) {
	g.POST("/chat", h.chat)
}

type chatRequest struct {
	Message string `json:"message"`
	Text    string `json:"text"` // legacy widget builds send this key
}

type chatResponse struct {
	Answer   string `json:"answer"`
	Grounded bool   `json:"grounded"`
	Source   string `json:"source"`
	ID       string `json:"id,omitempty"`
	Cited    string `json:"cited,omitempty"`
}

func (h *ChatHandler) chat(c echo.Context) error {
	var req chatRequest
	// A malformed body is treated like an empty one; the widget has sent
	// some strange things over the years.
	_ = c.Bind(&req)
	question := strings.TrimSpace(req.Message)
	if question == "" {
		question = strings.TrimSpace(req.Text)
	}
	if question == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing message")
	}

	start := time.Now()
	result, err := h.Resolver.Resolve(c.Request().Context(), question)
	h.Metrics.ResolveSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, resolve.ErrContentUnavailable) {
			h.Logger.Printf("content unavailable: %v", err)
			return c.JSON(http.StatusBadGateway, map[string]interface{}{
				"ok":     false,
				"error":  "Failed to fetch site content",
				"detail": err.Error(),
			})
		}
		// Everything else degrades to the fallback; the chat user always
		// gets a usable message.
		h.Logger.Printf("resolve failed: %v", err)
		result = resolve.Result{
			Answer: h.Resolver.FallbackText,
			Source: resolve.SourceNone,
		}
	}

	h.Metrics.ChatRequests.WithLabelValues(result.Source).Inc()
	return c.JSON(http.StatusOK, chatResponse{
		Answer:   result.Answer,
		Grounded: result.Grounded,
		Source:   result.Source,
		ID:       result.ID,
		Cited:    result.Cited,
	})
}
