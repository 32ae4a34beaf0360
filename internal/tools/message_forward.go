package tools

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tolmachov/tgcompose/internal/sender"
	"github.com/tolmachov/tgcompose/internal/tgclient"
)

// MessageForwardHandler handles the ForwardMessage tool
type MessageForwardHandler struct {
	client *tg.Client
	sender *sender.Sender
}

// NewMessageForwardHandler creates a new MessageForwardHandler
func NewMessageForwardHandler(client *tg.Client, snd *sender.Sender) *MessageForwardHandler {
	return &MessageForwardHandler{client: client, sender: snd}
}

// Tool returns the MCP tool definition
func (h *MessageForwardHandler) Tool() mcp.Tool {
	return mcp.NewTool("ForwardMessage",
		mcp.WithDescription("Forward a message from one chat to another."),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithString("from_chat",
			mcp.Description("The chat to forward from. Accepts a numeric chat ID, a public @username, or \"me\"."),
			mcp.Required(),
		),
		mcp.WithNumber("message_id",
			mcp.Description("The ID of the message to forward"),
			mcp.Required(),
		),
		mcp.WithString("to_chat",
			mcp.Description("The chat to forward to. Accepts a numeric chat ID, a public @username, or \"me\"."),
			mcp.Required(),
		),
		mcp.WithBoolean("silent",
			mcp.Description("Deliver without a notification sound"),
		),
	)
}

// Handle processes the ForwardMessage tool request
func (h *MessageForwardHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fromIdent := mcp.ParseString(request, "from_chat", "")
	if fromIdent == "" {
		return mcp.NewToolResultError("from_chat is required"), nil
	}
	toIdent := mcp.ParseString(request, "to_chat", "")
	if toIdent == "" {
		return mcp.NewToolResultError("to_chat is required"), nil
	}

	messageID := mcp.ParseInt(request, "message_id", 0)
	if messageID == 0 {
		return mcp.NewToolResultError("message_id is required"), nil
	}

	fromPeer, err := tgclient.ResolvePeerText(ctx, h.client, fromIdent)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve source chat: %v", err)), nil
	}
	toPeer, err := tgclient.ResolvePeerText(ctx, h.client, toIdent)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve destination chat: %v", err)), nil
	}

	randomIDs, err := h.sender.RandomIDs(1)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to generate random id: %v", err)), nil
	}

	forwardRequest := &tg.MessagesForwardMessagesRequest{
		FromPeer: fromPeer,
		ID:       []int{messageID},
		ToPeer:   toPeer,
		RandomID: randomIDs,
	}
	if mcp.ParseBoolean(request, "silent", false) {
		forwardRequest.Silent = true
	}

	updates, err := h.client.MessagesForwardMessages(ctx, forwardRequest)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to forward message: %v", err)), nil
	}

	msg, err := h.sender.Resolve(updates, toPeer)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve forwarded message: %v", err)), nil
	}
	if msg == nil {
		return mcp.NewToolResultText("Message forwarded. The server did not return the new message record."), nil
	}
	return jsonResult(msg)
}
