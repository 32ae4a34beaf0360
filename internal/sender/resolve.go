package sender

import (
	"time"

	"github.com/gotd/td/tg"

	"github.com/tolmachov/tgcompose/internal/messages"
)

// ResolveSent reconstructs the message produced by a send request from
// the server's reply. Returns (nil, nil) when the reply carries no new
// message, which is normal for some request kinds and not an error.
//
// Compact confirmations echo back only the assigned ID and date, so the
// caller-supplied plain text and entities fill in the rest. Full update
// batches carry the complete message record and are parsed as usual.
func ResolveSent(updates tg.UpdatesClass, peer tg.InputPeerClass, selfID int64, plain string, entities []tg.MessageEntityClass) (*messages.Message, error) {
	switch u := updates.(type) {
	case *tg.UpdateShortSentMessage:
		return resolveShort(u, peer, selfID, plain, entities), nil
	case *tg.Updates:
		return resolveBatch(u.Updates, u.Users, u.Chats), nil
	case *tg.UpdatesCombined:
		return resolveBatch(u.Updates, u.Users, u.Chats), nil
	}
	return nil, nil
}

func resolveShort(u *tg.UpdateShortSentMessage, peer tg.InputPeerClass, selfID int64, plain string, entities []tg.MessageEntityClass) *messages.Message {
	// Compact confirmations only arrive for private chats, so the peer
	// the request targeted identifies the chat.
	chat := messages.Chat{Type: "private"}
	switch p := peer.(type) {
	case *tg.InputPeerUser:
		chat.ID = p.UserID
	case *tg.InputPeerSelf:
		chat.ID = selfID
	case *tg.InputPeerChat:
		chat.ID = -p.ChatID
		chat.Type = "group"
	}

	var ents []tg.MessageEntityClass
	if len(entities) > 0 {
		ents = make([]tg.MessageEntityClass, len(entities))
		copy(ents, entities)
	}
	return &messages.Message{
		ID:       u.ID,
		Chat:     chat,
		Date:     time.Unix(int64(u.Date), 0),
		Text:     plain,
		Entities: ents,
		Outgoing: u.Out,
	}
}

func resolveBatch(updates []tg.UpdateClass, rawUsers []tg.UserClass, rawChats []tg.ChatClass) *messages.Message {
	users := messages.UserMap(rawUsers)
	chats := messages.ChatMap(rawChats)
	for _, upd := range updates {
		var (
			raw       tg.MessageClass
			scheduled bool
		)
		switch v := upd.(type) {
		case *tg.UpdateNewMessage:
			raw = v.Message
		case *tg.UpdateNewChannelMessage:
			raw = v.Message
		case *tg.UpdateNewScheduledMessage:
			raw = v.Message
			scheduled = true
		default:
			continue
		}
		msg, ok := raw.(*tg.Message)
		if !ok {
			continue
		}
		return messages.Parse(msg, users, chats, scheduled)
	}
	return nil
}
