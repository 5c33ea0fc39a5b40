package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/service/topic"
	"github.com/sandevgo/csbot/pkg/log"
)

const (
	ToolAsk    = "ask_cs_assistant"
	ToolTopics = "list_cs_topics"
	ToolTopic  = "get_cs_topic"
)

type answer struct {
	Reply    string `json:"reply"`
	Kind     string `json:"kind"`
	Category string `json:"category,omitempty"`
	Trigger  string `json:"trigger,omitempty"`
}

type Server struct {
	responder *topic.Responder
	mcp       *server.MCPServer
}

// NewServer exposes the assistant as MCP tools. Answers are immediate, the
// typing delay only exists for chat windows.
func NewServer(responder *topic.Responder) *Server {
	s := &Server{
		responder: responder,
		mcp: server.NewMCPServer(
			"csbot",
			core.Version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
	}

	s.mcp.AddTool(mcp.NewTool(ToolAsk,
		mcp.WithDescription("Ask the CS Assistant a computer science question. Returns a canned overview for the matched topic."),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("The question, in plain English"),
		),
	), s.handleAsk)

	s.mcp.AddTool(mcp.NewTool(ToolTopics,
		mcp.WithDescription("List the computer science topics the assistant knows, in match priority order."),
	), s.handleTopics)

	s.mcp.AddTool(mcp.NewTool(ToolTopic,
		mcp.WithDescription("Get the overview text for one topic."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Topic id as returned by "+ToolTopics),
		),
	), s.handleTopic)

	return s
}

func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio blocks serving JSON-RPC on stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	log.FromCtx(ctx).Info().Msg("serving mcp")
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

func (s *Server) handleAsk(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := req.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if strings.TrimSpace(question) == "" {
		return mcp.NewToolResultError("question is empty"), nil
	}

	reply := s.responder.Reply(question)
	log.FromCtx(ctx).Debug().Stringer("kind", reply.Match.Kind).Str("trigger", reply.Match.Trigger).Msg("mcp ask")

	return jsonResult(answer{
		Reply:    reply.Text,
		Kind:     reply.Match.Kind.String(),
		Category: string(reply.Match.Category),
		Trigger:  reply.Match.Trigger,
	})
}

func (s *Server) handleTopics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tax := s.responder.Taxonomy()
	type topicInfo struct {
		ID       string   `json:"id"`
		Triggers []string `json:"triggers"`
	}

	cats := tax.Categories()
	topics := make([]topicInfo, 0, len(cats))
	for _, c := range cats {
		topics = append(topics, topicInfo{ID: string(c), Triggers: tax.Triggers(c)})
	}
	return jsonResult(topics)
}

func (s *Server) handleTopic(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, ok := s.responder.Taxonomy().Response(topic.Category(strings.ToLower(strings.TrimSpace(name))))
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown topic %q", name)), nil
	}
	return mcp.NewToolResultText(text), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
