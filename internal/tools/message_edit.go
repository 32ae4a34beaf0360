package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tolmachov/tgcompose/internal/sender"
)

// MessageEditHandler handles the EditMessage tool
type MessageEditHandler struct {
	client *tg.Client
	sender *sender.Sender
}

// NewMessageEditHandler creates a new MessageEditHandler
func NewMessageEditHandler(client *tg.Client, snd *sender.Sender) *MessageEditHandler {
	return &MessageEditHandler{client: client, sender: snd}
}

// Tool returns the MCP tool definition
func (h *MessageEditHandler) Tool() mcp.Tool {
	return mcp.NewTool("EditMessage",
		mcp.WithDescription("Edit a message you previously sent."),
		mcp.WithOpenWorldHintAnnotation(true),
		chatOption("The chat containing the message."),
		mcp.WithNumber("message_id",
			mcp.Description("The ID of the message to edit"),
			mcp.Required(),
		),
		mcp.WithString("new_text",
			mcp.Description("The new text for the message, styled according to parse_mode"),
			mcp.Required(),
		),
		parseModeOption(),
		mcp.WithBoolean("disable_preview",
			mcp.Description("Do not generate a link preview for URLs in the new text"),
		),
	)
}

// Handle processes the EditMessage tool request
func (h *MessageEditHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	peer, errResult := resolveChat(ctx, h.client, request)
	if errResult != nil {
		return errResult, nil
	}

	messageID := mcp.ParseInt(request, "message_id", 0)
	if messageID == 0 {
		return mcp.NewToolResultError("message_id is required"), nil
	}

	newText := mcp.ParseString(request, "new_text", "")
	if newText == "" {
		return mcp.NewToolResultError("new_text is required"), nil
	}

	mode, errResult := requestMode(request)
	if errResult != nil {
		return errResult, nil
	}

	plain, entities, err := h.sender.Parse(ctx, newText, mode)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse new text: %v", err)), nil
	}

	editRequest := &tg.MessagesEditMessageRequest{
		Peer: peer,
		ID:   messageID,
	}
	editRequest.SetMessage(plain)
	if mcp.ParseBoolean(request, "disable_preview", false) {
		editRequest.NoWebpage = true
	}
	if len(entities) > 0 {
		editRequest.SetEntities(entities)
	}

	updates, err := h.client.MessagesEditMessage(ctx, editRequest)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to edit message: %v", err)), nil
	}

	// The server reports the edit as an edit update, not a new message.
	var date int
	if u, ok := updates.(*tg.Updates); ok {
		for _, update := range u.Updates {
			var raw tg.MessageClass
			switch v := update.(type) {
			case *tg.UpdateEditMessage:
				raw = v.Message
			case *tg.UpdateEditChannelMessage:
				raw = v.Message
			default:
				continue
			}
			if msg, ok := raw.(*tg.Message); ok {
				date = msg.EditDate
				break
			}
		}
	}

	result := fmt.Sprintf("Message %d edited successfully.\nNew text: %s", messageID, truncateRunes(plain, 200))
	if date > 0 {
		result += fmt.Sprintf("\nEdited at: %s", time.Unix(int64(date), 0).Format(time.RFC3339))
	}
	return mcp.NewToolResultText(result), nil
}
