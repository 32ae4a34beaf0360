package tools

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tolmachov/tgcompose/internal/sender"
)

// MessageReplyHandler handles the ReplyToMessage tool
type MessageReplyHandler struct {
	client *tg.Client
	sender *sender.Sender
}

// NewMessageReplyHandler creates a new MessageReplyHandler
func NewMessageReplyHandler(client *tg.Client, snd *sender.Sender) *MessageReplyHandler {
	return &MessageReplyHandler{client: client, sender: snd}
}

// Tool returns the MCP tool definition
func (h *MessageReplyHandler) Tool() mcp.Tool {
	return mcp.NewTool("ReplyToMessage",
		mcp.WithDescription("Reply to a specific message in a chat."),
		mcp.WithOpenWorldHintAnnotation(true),
		chatOption("The chat containing the message."),
		mcp.WithNumber("message_id",
			mcp.Description("The ID of the message to reply to"),
			mcp.Required(),
		),
		mcp.WithString("text",
			mcp.Description("The reply text, styled according to parse_mode"),
			mcp.Required(),
		),
		parseModeOption(),
		mcp.WithBoolean("silent",
			mcp.Description("Deliver without a notification sound"),
		),
	)
}

// Handle processes the ReplyToMessage tool request
func (h *MessageReplyHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	peer, errResult := resolveChat(ctx, h.client, request)
	if errResult != nil {
		return errResult, nil
	}

	messageID := mcp.ParseInt(request, "message_id", 0)
	if messageID == 0 {
		return mcp.NewToolResultError("message_id is required"), nil
	}

	text := mcp.ParseString(request, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	mode, errResult := requestMode(request)
	if errResult != nil {
		return errResult, nil
	}

	msg, err := h.sender.Send(ctx, peer, text, sender.Options{
		Mode:    mode,
		Silent:  mcp.ParseBoolean(request, "silent", false),
		ReplyTo: messageID,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to send reply: %v", err)), nil
	}
	if msg == nil {
		return mcp.NewToolResultText("Reply sent. The server did not return the new message record."), nil
	}
	return jsonResult(msg)
}
