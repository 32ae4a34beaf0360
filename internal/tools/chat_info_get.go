package tools

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tolmachov/tgcompose/internal/tgdata"
)

// ChatInfoGetHandler handles the GetChatInfo tool
type ChatInfoGetHandler struct {
	client *tg.Client
}

// NewChatInfoGetHandler creates a new ChatInfoGetHandler
func NewChatInfoGetHandler(client *tg.Client) *ChatInfoGetHandler {
	return &ChatInfoGetHandler{client: client}
}

// Tool returns the MCP tool definition
func (h *ChatInfoGetHandler) Tool() mcp.Tool {
	return mcp.NewTool("GetChatInfo",
		mcp.WithDescription("Get detailed information about a specific chat, group, or channel, including its default member permissions."),
		chatOption("The chat to get information about."),
	)
}

// Handle processes the GetChatInfo tool request
func (h *ChatInfoGetHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	peer, errResult := resolveChat(ctx, h.client, request)
	if errResult != nil {
		return errResult, nil
	}

	info, err := tgdata.GetChatInfo(ctx, h.client, peer)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get chat info: %v", err)), nil
	}
	return jsonResult(info)
}
