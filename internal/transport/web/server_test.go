package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/csbot/internal/config"
	"github.com/sandevgo/csbot/internal/service/chat"
	"github.com/sandevgo/csbot/internal/service/command"
	"github.com/sandevgo/csbot/internal/service/topic"
	"github.com/sandevgo/csbot/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	*Server
	hub *Hub
}

func newTestServer(t *testing.T, ctx context.Context, delay time.Duration) *testServer {
	t.Helper()
	conv, err := chat.NewConversation(ctx, memory.NewStore(), topic.Greeting, nil)
	require.NoError(t, err)

	tax := topic.MustDefault()
	hub := NewHub()
	session := chat.NewSession(conv, topic.NewResponder(tax, nil), chat.FixedDelay(delay), chat.WithObserver(hub.Observe))
	cfg := &config.WebConfig{Addr: "127.0.0.1:0", AllowOrigins: []string{"*"}}

	return &testServer{
		Server: NewServer(ctx, cfg, session, command.NewDefaultRouter(tax), tax, hub, topic.QuickQuestions),
		hub:    hub,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, context.Background(), 0)
	w := s.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestGetConversation_Initial(t *testing.T) {
	s := newTestServer(t, context.Background(), 0)

	w := s.do(t, http.MethodGet, "/api/conversation", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[conversationResponse](t, w)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "CS Assistant", resp.Bot)
	assert.False(t, resp.Typing)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, topic.Greeting, resp.Messages[0].Text)
	assert.Equal(t, "bot", resp.Messages[0].Sender)
	assert.Regexp(t, `^\d\d:\d\d (AM|PM)$`, resp.Messages[0].Time)
	assert.Equal(t, topic.QuickQuestions, resp.QuickQuestions)
}

func TestPostMessage_RoundTrip(t *testing.T) {
	s := newTestServer(t, context.Background(), 0)

	w := s.do(t, http.MethodPost, "/api/messages", `{"text":"Explain Big O notation"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	resp := decode[sendResponse](t, w)
	require.NotNil(t, resp.Message)
	assert.Equal(t, "user", resp.Message.Sender)
	assert.Equal(t, int64(2), resp.Message.ID)

	s.session.Wait()

	conv := decode[conversationResponse](t, s.do(t, http.MethodGet, "/api/conversation", ""))
	require.Len(t, conv.Messages, 3)
	assert.Equal(t, topic.Responses[topic.CatAlgorithm], conv.Messages[2].Text)
	assert.Equal(t, "algorithm", conv.Messages[2].Category)
	assert.Contains(t, conv.Messages[2].HTML, "<p>")
	assert.Empty(t, conv.QuickQuestions)
}

func TestPostMessage_Empty(t *testing.T) {
	s := newTestServer(t, context.Background(), 0)

	for _, body := range []string{`{"text":""}`, `{"text":"   "}`, `{}`} {
		w := s.do(t, http.MethodPost, "/api/messages", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		assert.Equal(t, chat.ErrEmptyInput.Error(), decode[map[string]string](t, w)["error"])
	}

	conv := decode[conversationResponse](t, s.do(t, http.MethodGet, "/api/conversation", ""))
	assert.Len(t, conv.Messages, 1)
}

func TestPostMessage_MalformedBody(t *testing.T) {
	s := newTestServer(t, context.Background(), 0)

	for _, body := range []string{`not json`, `{"text":5}`} {
		w := s.do(t, http.MethodPost, "/api/messages", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)

		msg := decode[map[string]string](t, w)["error"]
		assert.Contains(t, msg, "invalid request body", "body %s", body)
		assert.NotEqual(t, chat.ErrEmptyInput.Error(), msg)
	}
	assert.False(t, s.session.IsPending())
}

func TestPostMessage_ConflictWhilePending(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newTestServer(t, ctx, time.Hour)

	w := s.do(t, http.MethodPost, "/api/messages", `{"text":"What is Python?"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	conv := decode[conversationResponse](t, s.do(t, http.MethodGet, "/api/conversation", ""))
	assert.True(t, conv.Typing)

	w = s.do(t, http.MethodPost, "/api/messages", `{"text":"What is Java?"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	cancel()
	s.session.Wait()

	conv = decode[conversationResponse](t, s.do(t, http.MethodGet, "/api/conversation", ""))
	assert.False(t, conv.Typing)
	assert.Len(t, conv.Messages, 3)
}

func TestPostMessage_Command(t *testing.T) {
	s := newTestServer(t, context.Background(), 0)

	w := s.do(t, http.MethodPost, "/api/messages", `{"text":"/examples"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[sendResponse](t, w)
	assert.Nil(t, resp.Message)
	assert.Contains(t, resp.Command, "What is Python?")
	assert.Contains(t, resp.HTML, "<strong>")
	assert.False(t, s.session.IsPending())
}

func TestGetTopicsAndQuickQuestions(t *testing.T) {
	s := newTestServer(t, context.Background(), 0)

	topics := decode[struct {
		Topics []topicDTO `json:"topics"`
	}](t, s.do(t, http.MethodGet, "/api/topics", ""))
	require.Len(t, topics.Topics, len(topic.Order))
	assert.Equal(t, "python", topics.Topics[0].ID)
	assert.Equal(t, "os", topics.Topics[len(topics.Topics)-1].ID)

	quick := decode[struct {
		Questions []string `json:"questions"`
	}](t, s.do(t, http.MethodGet, "/api/quick-questions", ""))
	assert.Equal(t, topic.QuickQuestions, quick.Questions)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, context.Background(), 0)

	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHub_FanOut(t *testing.T) {
	hub := NewHub()
	a, cancelA := hub.Subscribe()
	b, cancelB := hub.Subscribe()
	assert.Equal(t, 2, hub.Len())

	hub.Observe(chat.Update{Kind: chat.UpdateTyping, Typing: true})
	assert.True(t, (<-a).Typing)
	assert.True(t, (<-b).Typing)

	cancelA()
	cancelA()
	assert.Equal(t, 1, hub.Len())
	_, open := <-a
	assert.False(t, open)

	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Observe(chat.Update{Kind: chat.UpdateTyping})
	}
	assert.Len(t, b, subscriberBuffer)
	cancelB()
}

func TestServer_StartShutdown(t *testing.T) {
	s := newTestServer(t, context.Background(), 0)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, <-errCh)
}
