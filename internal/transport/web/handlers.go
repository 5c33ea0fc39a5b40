package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/service/chat"
	"github.com/sandevgo/csbot/pkg/conv"
	"github.com/sandevgo/csbot/pkg/log"
)

func (s *Server) getConversation(c *gin.Context) {
	msgs, err := s.session.Messages(c.Request.Context())
	if err != nil {
		log.FromCtx(s.ctx).Error().Err(err).Msg("failed to load conversation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load conversation"})
		return
	}

	resp := conversationResponse{
		SessionID: s.session.SessionID(),
		Bot:       core.BotName,
		Tagline:   core.BotTagline,
		Typing:    s.session.IsTyping(),
		Messages:  make([]messageDTO, 0, len(msgs)),
	}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, toDTO(m))
	}
	if len(msgs) == 1 {
		resp.QuickQuestions = s.quick
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) postMessage(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if out, ok := s.router.Execute(c.Request.Context(), s.session.SessionID(), req.Text); ok {
		c.JSON(http.StatusOK, sendResponse{
			Command: out,
			HTML:    conv.MarkdownToHTML([]byte(out)),
		})
		return
	}

	// Replies are composed on the server context, the request may end first.
	userMsg, _, err := s.session.Submit(s.ctx, req.Text)
	switch {
	case errors.Is(err, chat.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, chat.ErrReplyPending):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.FromCtx(s.ctx).Error().Err(err).Msg("failed to submit message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit message"})
		return
	}

	dto := toDTO(userMsg)
	c.JSON(http.StatusAccepted, sendResponse{Message: &dto})
}

// streamEvents pushes "message" and "typing" server-sent events until the
// client goes away.
func (s *Server) streamEvents(c *gin.Context) {
	updates, cancel := s.hub.Subscribe()
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-s.ctx.Done():
			return false
		case u, ok := <-updates:
			if !ok {
				return false
			}
			switch u.Kind {
			case chat.UpdateMessage:
				c.SSEvent("message", toDTO(u.Message))
			case chat.UpdateTyping:
				c.SSEvent("typing", gin.H{"typing": u.Typing})
			}
			return true
		}
	})
}

func (s *Server) getTopics(c *gin.Context) {
	cats := s.tax.Categories()
	topics := make([]topicDTO, 0, len(cats))
	for _, cat := range cats {
		topics = append(topics, topicDTO{ID: string(cat), Triggers: s.tax.Triggers(cat)})
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

func (s *Server) getQuickQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": s.quick})
}
