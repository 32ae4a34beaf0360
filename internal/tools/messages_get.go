package tools

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tolmachov/tgcompose/internal/messages"
)

// MessagesGetHandler handles the GetMessages tool
type MessagesGetHandler struct {
	client   *tg.Client
	provider *messages.Provider
}

// NewMessagesGetHandler creates a new MessagesGetHandler
func NewMessagesGetHandler(client *tg.Client, provider *messages.Provider) *MessagesGetHandler {
	return &MessagesGetHandler{client: client, provider: provider}
}

// Tool returns the MCP tool definition
func (h *MessagesGetHandler) Tool() mcp.Tool {
	return mcp.NewTool("GetMessages",
		mcp.WithDescription("Get messages from a specific chat."),
		chatOption("The chat to get messages from."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of messages to return (default 50, max 100)"),
		),
		mcp.WithNumber("offset_id",
			mcp.Description("Message ID to start from for pagination"),
		),
		mcp.WithBoolean("unread_only",
			mcp.Description("Only return unread messages"),
		),
	)
}

// Handle processes the GetMessages tool request
func (h *MessagesGetHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	peer, errResult := resolveChat(ctx, h.client, request)
	if errResult != nil {
		return errResult, nil
	}

	opts := messages.DefaultFetchOptions()

	if limit := mcp.ParseInt(request, "limit", 0); limit > 0 {
		opts.Limit = limit
		if opts.Limit > 100 {
			opts.Limit = 100
		}
	}
	if offsetID := mcp.ParseInt(request, "offset_id", 0); offsetID > 0 {
		opts.OffsetID = offsetID
	}
	opts.UnreadOnly = mcp.ParseBoolean(request, "unread_only", false)

	result, err := h.provider.Fetch(ctx, peer, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get messages: %v", err)), nil
	}
	return jsonResult(result)
}
