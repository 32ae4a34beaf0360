package tools

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tolmachov/tgcompose/internal/sender"
)

// MessageSendHandler handles the SendMessage tool
type MessageSendHandler struct {
	client *tg.Client
	sender *sender.Sender
}

// NewMessageSendHandler creates a new MessageSendHandler
func NewMessageSendHandler(client *tg.Client, snd *sender.Sender) *MessageSendHandler {
	return &MessageSendHandler{client: client, sender: snd}
}

// Tool returns the MCP tool definition
func (h *MessageSendHandler) Tool() mcp.Tool {
	return mcp.NewTool("SendMessage",
		mcp.WithDescription("Send a styled text message to a contact, group, or channel."),
		mcp.WithOpenWorldHintAnnotation(true),
		chatOption("The chat to send the message to."),
		mcp.WithString("message",
			mcp.Description("The message text to send, styled according to parse_mode"),
			mcp.Required(),
		),
		parseModeOption(),
		mcp.WithBoolean("disable_preview",
			mcp.Description("Do not generate a link preview for URLs in the message"),
		),
		mcp.WithBoolean("silent",
			mcp.Description("Deliver without a notification sound"),
		),
		mcp.WithNumber("reply_to",
			mcp.Description("ID of a message in the chat to reply to"),
		),
	)
}

// Handle processes the SendMessage tool request
func (h *MessageSendHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	peer, errResult := resolveChat(ctx, h.client, request)
	if errResult != nil {
		return errResult, nil
	}

	message := mcp.ParseString(request, "message", "")
	if message == "" {
		return mcp.NewToolResultError("message is required"), nil
	}

	mode, errResult := requestMode(request)
	if errResult != nil {
		return errResult, nil
	}

	msg, err := h.sender.Send(ctx, peer, message, sender.Options{
		Mode:           mode,
		DisablePreview: mcp.ParseBoolean(request, "disable_preview", false),
		Silent:         mcp.ParseBoolean(request, "silent", false),
		ReplyTo:        mcp.ParseInt(request, "reply_to", 0),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to send message: %v", err)), nil
	}
	if msg == nil {
		return mcp.NewToolResultText("Message sent. The server did not return the new message record."), nil
	}
	return jsonResult(msg)
}
