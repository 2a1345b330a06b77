package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const Version = "1.0.0"

// BotStatus reports "online" or "offline". A nil BotStatus means the bot was
// never started.
type BotStatus interface {
	Status() string
}

type StatusHandler struct {
	bot BotStatus
}

func NewStatusHandler(bot BotStatus) *StatusHandler {
	return &StatusHandler{bot: bot}
}

type statusResponse struct {
	Status  string `json:"status"`
	Bot     string `json:"bot"`
	Version string `json:"version"`
}

func (h *StatusHandler) Status(c echo.Context) error {
	bot := "not_started"
	if h.bot != nil {
		bot = h.bot.Status()
	}
	return c.JSON(http.StatusOK, statusResponse{
		Status:  "ok",
		Bot:     bot,
		Version: Version,
	})
}
