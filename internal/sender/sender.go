// Package sender builds outgoing message requests and resolves the
// server's confirmation back into message records.
package sender

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"

	"github.com/tolmachov/tgcompose/internal/messages"
	"github.com/tolmachov/tgcompose/internal/styling"
)

// RPC is the subset of the Telegram API the sender calls.
type RPC interface {
	MessagesSendMessage(ctx context.Context, request *tg.MessagesSendMessageRequest) (tg.UpdatesClass, error)
}

// Sender dispatches styled text messages.
type Sender struct {
	rpc    RPC
	parser *styling.Parser
	ids    *IDSource
	selfID int64
}

// New creates a Sender. selfID is the authorized account's user ID, used
// to attribute compact confirmations for saved-messages sends.
func New(rpc RPC, parser *styling.Parser, selfID int64) *Sender {
	return &Sender{
		rpc:    rpc,
		parser: parser,
		ids:    NewIDSource(),
		selfID: selfID,
	}
}

// Send parses text according to opts.Mode, dispatches it to peer and
// resolves the reply. A nil message with nil error means the server
// reported success without surfacing a new message record.
func (s *Sender) Send(ctx context.Context, peer tg.InputPeerClass, text string, opts Options) (*messages.Message, error) {
	plain, entities, err := s.parser.Parse(ctx, text, opts.Mode)
	if err != nil {
		return nil, fmt.Errorf("parsing text: %w", err)
	}
	randomID, err := s.ids.Next()
	if err != nil {
		return nil, fmt.Errorf("generating random id: %w", err)
	}
	updates, err := s.rpc.MessagesSendMessage(ctx, BuildRequest(peer, plain, entities, randomID, opts))
	if err != nil {
		return nil, fmt.Errorf("sending message: %w", err)
	}
	return ResolveSent(updates, peer, s.selfID, plain, entities)
}

// Parse exposes the sender's text parser for operations that style text
// without dispatching it, such as edits and drafts.
func (s *Sender) Parse(ctx context.Context, text string, mode styling.Mode) (string, []tg.MessageEntityClass, error) {
	return s.parser.Parse(ctx, text, mode)
}

// Resolve maps a server reply for an already-dispatched request onto
// the produced message record.
func (s *Sender) Resolve(updates tg.UpdatesClass, peer tg.InputPeerClass) (*messages.Message, error) {
	return ResolveSent(updates, peer, s.selfID, "", nil)
}

// RandomIDs returns n fresh client random IDs for bulk requests.
func (s *Sender) RandomIDs(n int) ([]int64, error) {
	return s.ids.NextN(n)
}
