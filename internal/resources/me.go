package resources

import (
	"context"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tolmachov/tgcompose/internal/tgdata"
)

// MeHandler serves the telegram://me resource.
type MeHandler struct {
	client *tg.Client
}

func NewMeHandler(client *tg.Client) *MeHandler {
	return &MeHandler{client: client}
}

func (h *MeHandler) Resource() mcp.Resource {
	return mcp.NewResource(
		"telegram://me",
		"Current User",
		mcp.WithResourceDescription("Profile of the authorized Telegram account"),
		mcp.WithMIMEType("application/json"),
	)
}

func (h *MeHandler) Handle(ctx context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	info, err := tgdata.GetCurrentUser(ctx, h.client)
	if err != nil {
		return nil, err
	}
	return jsonContents("telegram://me", info)
}
