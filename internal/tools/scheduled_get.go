package tools

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tolmachov/tgcompose/internal/messages"
	"github.com/tolmachov/tgcompose/internal/tgclient"
)

// ScheduledGetHandler handles the GetScheduledMessages tool
type ScheduledGetHandler struct {
	client *tg.Client
}

// NewScheduledGetHandler creates a new ScheduledGetHandler
func NewScheduledGetHandler(client *tg.Client) *ScheduledGetHandler {
	return &ScheduledGetHandler{client: client}
}

// Tool returns the MCP tool definition
func (h *ScheduledGetHandler) Tool() mcp.Tool {
	return mcp.NewTool("GetScheduledMessages",
		mcp.WithDescription("Get all scheduled messages for a specific chat from Telegram's schedule queue."),
		chatOption("The chat to get scheduled messages from."),
	)
}

// Handle processes the GetScheduledMessages tool request
func (h *ScheduledGetHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	peer, errResult := resolveChat(ctx, h.client, request)
	if errResult != nil {
		return errResult, nil
	}

	scheduled, err := h.client.MessagesGetScheduledHistory(ctx, &tg.MessagesGetScheduledHistoryRequest{
		Peer: peer,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get scheduled messages: %v", err)), nil
	}

	var (
		raw      []tg.MessageClass
		rawUsers []tg.UserClass
		rawChats []tg.ChatClass
	)
	switch s := scheduled.(type) {
	case *tg.MessagesMessages:
		raw, rawUsers, rawChats = s.Messages, s.Users, s.Chats
	case *tg.MessagesMessagesSlice:
		raw, rawUsers, rawChats = s.Messages, s.Users, s.Chats
	case *tg.MessagesChannelMessages:
		raw, rawUsers, rawChats = s.Messages, s.Users, s.Chats
	default:
		return mcp.NewToolResultError("Unexpected response type"), nil
	}

	users := messages.UserMap(rawUsers)
	chats := messages.ChatMap(rawChats)

	var list []*messages.Message
	for _, msgClass := range raw {
		msg, ok := msgClass.(*tg.Message)
		if !ok {
			continue
		}
		list = append(list, messages.Parse(msg, users, chats, true))
	}

	if len(list) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No scheduled messages found for chat %d", tgclient.PeerID(peer))), nil
	}
	return jsonResult(list)
}
