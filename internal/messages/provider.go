package messages

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
	"go.uber.org/ratelimit"

	"github.com/tolmachov/tgcompose/internal/tgclient"
)

// Provider fetches message history from Telegram with a unified interface.
type Provider struct {
	client  *tg.Client
	limiter ratelimit.Limiter
}

// NewProvider creates a message provider with 1 RPS rate limiting.
func NewProvider(client *tg.Client) *Provider {
	return &Provider{
		client:  client,
		limiter: ratelimit.New(1),
	}
}

// Fetch retrieves messages from a chat with the given options.
func (p *Provider) Fetch(ctx context.Context, peer tg.InputPeerClass, opts FetchOptions) (*FetchResult, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}

	var readInboxMaxID int
	var err error
	if opts.UnreadOnly {
		readInboxMaxID, err = p.getReadInboxMaxID(ctx, peer)
		if err != nil {
			return nil, fmt.Errorf("getting read inbox max id: %w", err)
		}
	}

	historyRequest := &tg.MessagesGetHistoryRequest{
		Peer:     peer,
		Limit:    opts.Limit,
		OffsetID: opts.OffsetID,
	}

	if !opts.OffsetDate.IsZero() {
		historyRequest.OffsetDate = int(opts.OffsetDate.Unix())
	}

	if opts.UnreadOnly && readInboxMaxID > 0 {
		historyRequest.MinID = readInboxMaxID
	}

	p.limiter.Take()

	history, err := p.client.MessagesGetHistory(ctx, historyRequest)
	if err != nil {
		return nil, fmt.Errorf("getting messages: %w", err)
	}

	result, err := processHistory(history)
	if err != nil {
		return nil, err
	}
	result.ChatID = tgclient.PeerID(peer)
	return result, nil
}

func processHistory(history tg.MessagesMessagesClass) (*FetchResult, error) {
	var (
		rawMessages []tg.MessageClass
		rawUsers    []tg.UserClass
		rawChats    []tg.ChatClass
		totalCount  int
	)

	switch hist := history.(type) {
	case *tg.MessagesMessages:
		rawMessages = hist.Messages
		rawUsers = hist.Users
		rawChats = hist.Chats
		totalCount = len(hist.Messages)
	case *tg.MessagesMessagesSlice:
		rawMessages = hist.Messages
		rawUsers = hist.Users
		rawChats = hist.Chats
		totalCount = hist.Count
	case *tg.MessagesChannelMessages:
		rawMessages = hist.Messages
		rawUsers = hist.Users
		rawChats = hist.Chats
		totalCount = hist.Count
	default:
		return nil, fmt.Errorf("unexpected response type: %T", history)
	}

	users := UserMap(rawUsers)
	chats := ChatMap(rawChats)

	result := &FetchResult{
		Messages: make([]Message, 0, len(rawMessages)),
	}
	for _, msgClass := range rawMessages {
		msg, ok := msgClass.(*tg.Message)
		if !ok {
			continue
		}
		result.Messages = append(result.Messages, *Parse(msg, users, chats, false))
	}

	result.Count = len(result.Messages)
	result.Total = totalCount
	result.HasMore = len(result.Messages) > 0 && len(result.Messages) < totalCount

	if len(result.Messages) > 0 {
		result.NextID = result.Messages[len(result.Messages)-1].ID
	}

	return result, nil
}

func (p *Provider) getReadInboxMaxID(ctx context.Context, peer tg.InputPeerClass) (int, error) {
	result, err := p.client.MessagesGetPeerDialogs(ctx, []tg.InputDialogPeerClass{
		&tg.InputDialogPeer{Peer: peer},
	})
	if err != nil {
		return 0, fmt.Errorf("getting peer dialogs: %w", err)
	}

	if len(result.Dialogs) == 0 {
		return 0, nil
	}

	dialog, ok := result.Dialogs[0].(*tg.Dialog)
	if !ok {
		return 0, nil
	}

	return dialog.ReadInboxMaxID, nil
}
