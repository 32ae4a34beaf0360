package sender

import (
	"testing"

	"github.com/gotd/td/tg"
)

func TestResolveSentShort(t *testing.T) {
	short := &tg.UpdateShortSentMessage{Out: true, ID: 42, Date: 1000}
	ents := []tg.MessageEntityClass{&tg.MessageEntityBold{Offset: 0, Length: 2}}

	tests := []struct {
		name     string
		peer     tg.InputPeerClass
		wantChat int64
		wantType string
	}{
		{
			name:     "user peer",
			peer:     &tg.InputPeerUser{UserID: 777},
			wantChat: 777,
			wantType: "private",
		},
		{
			name:     "saved messages",
			peer:     &tg.InputPeerSelf{},
			wantChat: 555,
			wantType: "private",
		},
		{
			name:     "basic group",
			peer:     &tg.InputPeerChat{ChatID: 12345},
			wantChat: -12345,
			wantType: "group",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := ResolveSent(short, tt.peer, 555, "hi", ents)
			if err != nil {
				t.Fatalf("ResolveSent() error = %v", err)
			}
			if msg == nil {
				t.Fatal("ResolveSent() = nil, want message")
			}
			if msg.ID != 42 {
				t.Errorf("ID = %d, want 42", msg.ID)
			}
			if msg.Chat.ID != tt.wantChat || msg.Chat.Type != tt.wantType {
				t.Errorf("chat = %d %q, want %d %q", msg.Chat.ID, msg.Chat.Type, tt.wantChat, tt.wantType)
			}
			if msg.Date.Unix() != 1000 {
				t.Errorf("date = %d, want 1000", msg.Date.Unix())
			}
			if !msg.Outgoing {
				t.Error("outgoing = false, want true")
			}
			if msg.Text != "hi" || len(msg.Entities) != 1 {
				t.Errorf("text %q with %d entities, want %q with 1", msg.Text, len(msg.Entities), "hi")
			}
		})
	}
}

func TestResolveSentBatch(t *testing.T) {
	user := &tg.User{ID: 777, FirstName: "Dan"}
	channel := &tg.Channel{ID: 67890, Title: "News", Broadcast: true}

	newMsg := func(id int, peer tg.PeerClass) *tg.Message {
		m := &tg.Message{ID: id, PeerID: peer, Message: "posted", Date: 1000, Out: true}
		return m
	}

	tests := []struct {
		name          string
		updates       tg.UpdatesClass
		wantNil       bool
		wantID        int
		wantChat      int64
		wantScheduled bool
	}{
		{
			name: "channel message",
			updates: &tg.Updates{
				Updates: []tg.UpdateClass{
					&tg.UpdateMessageID{ID: 9, RandomID: 1},
					&tg.UpdateNewChannelMessage{Message: newMsg(9, &tg.PeerChannel{ChannelID: 67890})},
				},
				Chats: []tg.ChatClass{channel},
			},
			wantID:   9,
			wantChat: -1000000000000 - 67890,
		},
		{
			name: "private message in combined batch",
			updates: &tg.UpdatesCombined{
				Updates: []tg.UpdateClass{
					&tg.UpdateNewMessage{Message: newMsg(5, &tg.PeerUser{UserID: 777})},
				},
				Users: []tg.UserClass{user},
			},
			wantID:   5,
			wantChat: 777,
		},
		{
			name: "scheduled message",
			updates: &tg.Updates{
				Updates: []tg.UpdateClass{
					&tg.UpdateNewScheduledMessage{Message: newMsg(3, &tg.PeerUser{UserID: 777})},
				},
				Users: []tg.UserClass{user},
			},
			wantID:        3,
			wantChat:      777,
			wantScheduled: true,
		},
		{
			name: "first message update wins",
			updates: &tg.Updates{
				Updates: []tg.UpdateClass{
					&tg.UpdateNewMessage{Message: newMsg(1, &tg.PeerUser{UserID: 777})},
					&tg.UpdateNewMessage{Message: newMsg(2, &tg.PeerUser{UserID: 777})},
				},
				Users: []tg.UserClass{user},
			},
			wantID:   1,
			wantChat: 777,
		},
		{
			name: "no message updates",
			updates: &tg.Updates{
				Updates: []tg.UpdateClass{
					&tg.UpdateMessageID{ID: 9, RandomID: 1},
					&tg.UpdateReadHistoryInbox{Peer: &tg.PeerUser{UserID: 777}},
				},
			},
			wantNil: true,
		},
		{
			name: "empty message record skipped",
			updates: &tg.Updates{
				Updates: []tg.UpdateClass{
					&tg.UpdateNewMessage{Message: &tg.MessageEmpty{ID: 4}},
					&tg.UpdateNewMessage{Message: newMsg(5, &tg.PeerUser{UserID: 777})},
				},
				Users: []tg.UserClass{user},
			},
			wantID:   5,
			wantChat: 777,
		},
		{
			name:    "unknown updates class",
			updates: &tg.UpdatesTooLong{},
			wantNil: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := ResolveSent(tt.updates, &tg.InputPeerUser{UserID: 777}, 555, "posted", nil)
			if err != nil {
				t.Fatalf("ResolveSent() error = %v", err)
			}
			if tt.wantNil {
				if msg != nil {
					t.Fatalf("ResolveSent() = %+v, want nil", msg)
				}
				return
			}
			if msg == nil {
				t.Fatal("ResolveSent() = nil, want message")
			}
			if msg.ID != tt.wantID {
				t.Errorf("ID = %d, want %d", msg.ID, tt.wantID)
			}
			if msg.Chat.ID != tt.wantChat {
				t.Errorf("chat ID = %d, want %d", msg.Chat.ID, tt.wantChat)
			}
			if msg.Scheduled != tt.wantScheduled {
				t.Errorf("scheduled = %v, want %v", msg.Scheduled, tt.wantScheduled)
			}
		})
	}
}
