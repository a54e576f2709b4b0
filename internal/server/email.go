package server

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quititaus/quitit-chat/internal/mail"
)

// EmailHandler forwards a "talk to a human" form to the support inbox.
type EmailHandler struct {
	Sender mail.Sender
	Logger *log.Logger
}

func (h *EmailHandler) Register(g *echo.Group) {
	g.POST("/email", h.send)
}

type emailRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *EmailHandler) send(c echo.Context) error {
	var req emailRequest
	_ = c.Bind(&req)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"ok": false, "error": "Missing fields"})
	}
	if h.Sender == nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"ok": false, "error": "mail sender not configured"})
	}

	if err := h.Sender.Send(c.Request().Context(), req.Name, req.Email, req.Message); err != nil {
		h.Logger.Printf("send failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"ok": false, "error": "failed to send email"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"ok": true})
}
