// Package chat is the AI trainer screen. The backend keeps the feature
// behind a 503 while it is down for maintenance, so the screen serves a
// static notice and stays input-disabled.
package chat

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/middleware"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/models"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/store"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/view"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/zeniapi"
)

const genericUnavailable = "Desculpe, a IA está temporariamente indisponível."

const unavailableNotice = "🚧 **Personal Trainer IA Temporariamente Indisponível** 🚧\n\n" +
	"Olá! Infelizmente nossa IA está temporariamente fora do ar para manutenção.\n\n" +
	"**Enquanto isso, você pode:**\n" +
	"- Usar a criação manual de treinos na tela anterior\n" +
	"- Escolher exercícios específicos por categoria (Cardio, Força, HIIT, etc.)\n" +
	"- Salvar seus treinos personalizados\n\n" +
	"**Em breve estaremos de volta com:**\n" +
	"- Treinos 100% personalizados\n" +
	"- Sugestões baseadas em seus objetivos\n" +
	"- Dicas de execução e segurança\n\n" +
	"Obrigado pela compreensão! 💪"

// mdRenderer converts the AI notices, which arrive as markdown, into
// the HTML the transcript shows.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// PageHandler renders the transcript, seeding the maintenance notice on
// first visit.
func PageHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)

		history := st.ChatHistory(user.ID)
		if len(history) == 0 {
			st.AppendChat(user.ID, aiMessage(unavailableNotice))
			history = st.ChatHistory(user.ID)
		}

		ctx.HTML(http.StatusOK, "chat.html", gin.H{
			"User":     user,
			"Messages": history,
		})
	}
}

// SendHandler forwards one message to the backend. The expected outcome
// today is the 503 maintenance answer, rendered as a friendly AI reply
// rather than an error page.
func SendHandler(st *store.MemoryStore, api *zeniapi.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)

		message := ctx.PostForm("message")
		if message == "" {
			ctx.Redirect(http.StatusSeeOther, view.Chat.Path())
			return
		}

		st.AppendChat(user.ID, models.ChatMessage{
			ID:   time.Now().UnixNano(),
			Role: models.ChatRoleUser,
			Text: message,
			HTML: template.HTML(template.HTMLEscapeString(message)),
		})

		sessionID := st.ChatSessionID(user.ID, uuid.NewString)
		reply, err := api.Chat(sessionID, user.ID, message)
		if err != nil {
			log.Printf("chat request failed: %v", err)
			detail := genericUnavailable
			var apiErr *zeniapi.APIError
			if errors.As(err, &apiErr) && apiErr.Status == http.StatusServiceUnavailable && apiErr.Detail != "" {
				detail = apiErr.Detail
			}
			reply = "🚧 " + detail + "\n\nPor favor, use a criação manual de treinos por enquanto. Voltamos em breve! 💪"
		}

		st.AppendChat(user.ID, aiMessage(reply))

		ctx.Redirect(http.StatusSeeOther, view.Chat.Path())
	}
}

func aiMessage(markdown string) models.ChatMessage {
	return models.ChatMessage{
		ID:   time.Now().UnixNano(),
		Role: models.ChatRoleAI,
		Text: markdown,
		HTML: renderMarkdown(markdown),
	}
}

func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
