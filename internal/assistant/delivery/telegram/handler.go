package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/assistant"
	"hr-assistant/pkg/response"
	pkgTelegram "hr-assistant/pkg/telegram"
)

// HandleWebhook acknowledges the update immediately and answers in the background,
// since generation can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) != 1 {
			h.l.Warnf(ctx, "telegram.HandleWebhook: invalid secret token")
			response.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram.HandleWebhook: parse update: %v", err)
		response.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		response.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)
	h.spawn(func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram.HandleWebhook: process message: %v", err)
			if sendErr := h.bot.SendMessage(bgCtx, msg.Chat.ID, msgError); sendErr != nil {
				h.l.Warnf(bgCtx, "telegram.HandleWebhook: send error notice: %v", sendErr)
			}
		}
	})

	response.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}
	chatID := msg.Chat.ID
	contextType := fmt.Sprintf(contextTypeFormat, chatID)

	switch command(text) {
	case cmdStart:
		return h.bot.SendMessage(ctx, chatID, msgStart)
	case cmdHelp:
		return h.bot.SendMessage(ctx, chatID, msgHelp)
	case cmdReset:
		h.uc.ClearHistory(ctx, contextType)
		return h.bot.SendMessage(ctx, chatID, msgReset)
	}

	if err := h.bot.SendTyping(ctx, chatID); err != nil {
		h.l.Warnf(ctx, "telegram.processMessage: send typing: %v", err)
	}

	out, err := h.uc.Generate(ctx, assistant.GenerateInput{
		Query:       text,
		ContextType: contextType,
		TaskType:    taskType,
	})
	if err != nil {
		return err
	}
	return h.bot.SendMessage(ctx, chatID, formatReply(out))
}

// command strips a "@botname" suffix so "/help@hr_bot" still matches.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	return cmd
}

func formatReply(out assistant.GenerateOutput) string {
	if len(out.Sources) == 0 {
		return out.Response
	}
	var b strings.Builder
	b.WriteString(out.Response)
	b.WriteString("\n\n參考來源：")
	for i, s := range out.Sources {
		fmt.Fprintf(&b, "\n%d. %s (%.2f)", i+1, s.Source, s.Relevance)
	}
	return b.String()
}
