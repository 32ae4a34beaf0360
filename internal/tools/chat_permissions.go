package tools

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tolmachov/tgcompose/internal/tgdata"
)

// ChatPermissionsHandler handles the GetChatPermissions tool
type ChatPermissionsHandler struct {
	client *tg.Client
}

// NewChatPermissionsHandler creates a new ChatPermissionsHandler
func NewChatPermissionsHandler(client *tg.Client) *ChatPermissionsHandler {
	return &ChatPermissionsHandler{client: client}
}

// Tool returns the MCP tool definition
func (h *ChatPermissionsHandler) Tool() mcp.Tool {
	return mcp.NewTool("GetChatPermissions",
		mcp.WithDescription("Get the default member permissions of a group or supergroup."),
		mcp.WithReadOnlyHintAnnotation(true),
		chatOption("The group or supergroup to inspect."),
	)
}

// Handle processes the GetChatPermissions tool request
func (h *ChatPermissionsHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	peer, errResult := resolveChat(ctx, h.client, request)
	if errResult != nil {
		return errResult, nil
	}

	perms, err := tgdata.GetChatPermissions(ctx, h.client, peer)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get chat permissions: %v", err)), nil
	}
	return jsonResult(perms)
}
