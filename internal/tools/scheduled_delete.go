package tools

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"
)

// ScheduledDeleteHandler handles the DeleteScheduledMessage tool
type ScheduledDeleteHandler struct {
	client *tg.Client
}

// NewScheduledDeleteHandler creates a new ScheduledDeleteHandler
func NewScheduledDeleteHandler(client *tg.Client) *ScheduledDeleteHandler {
	return &ScheduledDeleteHandler{client: client}
}

// Tool returns the MCP tool definition
func (h *ScheduledDeleteHandler) Tool() mcp.Tool {
	return mcp.NewTool("DeleteScheduledMessage",
		mcp.WithDescription("Cancel a scheduled message before it's sent."),
		chatOption("The chat containing the scheduled message."),
		mcp.WithNumber("message_id",
			mcp.Description("The ID of the scheduled message to delete"),
			mcp.Required(),
		),
	)
}

// Handle processes the DeleteScheduledMessage tool request
func (h *ScheduledDeleteHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	peer, errResult := resolveChat(ctx, h.client, request)
	if errResult != nil {
		return errResult, nil
	}

	messageID := mcp.ParseInt(request, "message_id", 0)
	if messageID == 0 {
		return mcp.NewToolResultError("message_id is required"), nil
	}

	_, err := h.client.MessagesDeleteScheduledMessages(ctx, &tg.MessagesDeleteScheduledMessagesRequest{
		Peer: peer,
		ID:   []int{messageID},
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete scheduled message: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Scheduled message %d canceled. It has been removed from the schedule queue and will not be sent.",
		messageID,
	)), nil
}
