package telegram

import (
	"github.com/gin-gonic/gin"

	"hr-assistant/internal/assistant"
	"hr-assistant/pkg/log"
	pkgTelegram "hr-assistant/pkg/telegram"
)

// Handler is the Telegram webhook handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l           log.Logger
	uc          assistant.UseCase
	bot         pkgTelegram.IBot
	secretToken string
	// spawn runs message processing off the request goroutine.
	spawn func(func())
}

// New creates a Telegram delivery handler. An empty secretToken disables the header check.
func New(l log.Logger, uc assistant.UseCase, bot pkgTelegram.IBot, secretToken string) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		secretToken: secretToken,
		spawn:       func(f func()) { go f() },
	}
}
