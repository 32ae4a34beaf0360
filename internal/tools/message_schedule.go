package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tolmachov/tgcompose/internal/sender"
)

// MessageScheduleHandler handles the ScheduleMessage tool
type MessageScheduleHandler struct {
	client *tg.Client
	sender *sender.Sender
}

// NewMessageScheduleHandler creates a new MessageScheduleHandler
func NewMessageScheduleHandler(client *tg.Client, snd *sender.Sender) *MessageScheduleHandler {
	return &MessageScheduleHandler{client: client, sender: snd}
}

// Tool returns the MCP tool definition
func (h *MessageScheduleHandler) Tool() mcp.Tool {
	return mcp.NewTool("ScheduleMessage",
		mcp.WithDescription("Schedule a message to be sent at a specific time using Telegram's native scheduling API."),
		chatOption("The chat to schedule the message for."),
		mcp.WithString("message",
			mcp.Description("The message text to schedule, styled according to parse_mode"),
			mcp.Required(),
		),
		mcp.WithNumber("delay_seconds",
			mcp.Description("Number of seconds from now to send the message"),
			mcp.Required(),
		),
		parseModeOption(),
		mcp.WithBoolean("silent",
			mcp.Description("Deliver without a notification sound"),
		),
	)
}

// Handle processes the ScheduleMessage tool request
func (h *MessageScheduleHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	peer, errResult := resolveChat(ctx, h.client, request)
	if errResult != nil {
		return errResult, nil
	}

	message := mcp.ParseString(request, "message", "")
	if message == "" {
		return mcp.NewToolResultError("message is required"), nil
	}

	delaySeconds := mcp.ParseInt(request, "delay_seconds", 0)
	if delaySeconds <= 0 {
		return mcp.NewToolResultError("delay_seconds must be a positive number"), nil
	}

	mode, errResult := requestMode(request)
	if errResult != nil {
		return errResult, nil
	}

	scheduleTime := time.Now().Add(time.Duration(delaySeconds) * time.Second)
	msg, err := h.sender.Send(ctx, peer, message, sender.Options{
		Mode:         mode,
		Silent:       mcp.ParseBoolean(request, "silent", false),
		ScheduleDate: scheduleTime,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to schedule message: %v", err)), nil
	}
	if msg == nil {
		return mcp.NewToolResultText(fmt.Sprintf(
			"Message scheduled for %s. The server did not return the new message record.",
			scheduleTime.Format(time.RFC3339),
		)), nil
	}
	return jsonResult(msg)
}
