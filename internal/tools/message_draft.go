package tools

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tolmachov/tgcompose/internal/sender"
	"github.com/tolmachov/tgcompose/internal/tgclient"
)

// MessageDraftHandler handles the DraftMessage tool
type MessageDraftHandler struct {
	client *tg.Client
	sender *sender.Sender
}

// NewMessageDraftHandler creates a new MessageDraftHandler
func NewMessageDraftHandler(client *tg.Client, snd *sender.Sender) *MessageDraftHandler {
	return &MessageDraftHandler{client: client, sender: snd}
}

// Tool returns the MCP tool definition
func (h *MessageDraftHandler) Tool() mcp.Tool {
	return mcp.NewTool("DraftMessage",
		mcp.WithDescription("Draft a message in a given chat, group or channel. The message will be saved as a draft and can be sent later."),
		chatOption("The chat to save the draft to."),
		mcp.WithString("message",
			mcp.Description("The message text to save as draft, styled according to parse_mode"),
			mcp.Required(),
		),
		parseModeOption(),
		mcp.WithNumber("reply_to",
			mcp.Description("ID of a message in the chat the draft replies to"),
		),
	)
}

// Handle processes the DraftMessage tool request
func (h *MessageDraftHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	plain, entities, err := h.sender.Parse(ctx, message, mode)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse message: %v", err)), nil
	}

	draftRequest := &tg.MessagesSaveDraftRequest{
		Peer:    peer,
		Message: plain,
	}
	if len(entities) > 0 {
		draftRequest.SetEntities(entities)
	}
	if replyTo := mcp.ParseInt(request, "reply_to", 0); replyTo != 0 {
		draftRequest.SetReplyTo(&tg.InputReplyToMessage{ReplyToMsgID: replyTo})
	}

	if _, err := h.client.MessagesSaveDraft(ctx, draftRequest); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save draft: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Draft saved for chat %d", tgclient.PeerID(peer))), nil
}
