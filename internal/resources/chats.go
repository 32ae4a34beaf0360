package resources

import (
	"context"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tolmachov/tgcompose/internal/tgdata"
)

// ChatsHandler serves the telegram://chats resource.
type ChatsHandler struct {
	client *tg.Client
}

func NewChatsHandler(client *tg.Client) *ChatsHandler {
	return &ChatsHandler{client: client}
}

func (h *ChatsHandler) Resource() mcp.Resource {
	return mcp.NewResource(
		"telegram://chats",
		"Chats List",
		mcp.WithResourceDescription("All dialogs of the account: private chats, groups, and channels"),
		mcp.WithMIMEType("application/json"),
	)
}

// Handle lists every dialog, streaming progress notifications while the
// dialog iterator pages through the account.
func (h *ChatsHandler) Handle(ctx context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	onProgress := func(current int, message string) {
		if srv := server.ServerFromContext(ctx); srv != nil {
			_ = srv.SendNotificationToClient(ctx, "notifications/progress", map[string]any{
				"progress": current,
				"message":  message,
			})
		}
	}

	result, err := tgdata.GetChats(ctx, h.client, onProgress)
	if err != nil {
		return nil, err
	}
	return jsonContents("telegram://chats", result)
}
