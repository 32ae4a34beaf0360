package messages

import (
	"testing"

	"github.com/gotd/td/tg"
)

func TestParse(t *testing.T) {
	users := UserMap([]tg.UserClass{
		&tg.User{ID: 777, FirstName: "Dan", Username: "haskell"},
	})
	chats := ChatMap([]tg.ChatClass{
		&tg.Chat{ID: 12345, Title: "Friends"},
		&tg.Channel{ID: 67890, Title: "News", Megagroup: false},
		&tg.Channel{ID: 67891, Title: "Group", Megagroup: true},
	})

	tests := []struct {
		name      string
		msg       *tg.Message
		scheduled bool
		wantChat  Chat
		wantFrom  string
		wantLinks []string
	}{
		{
			name: "private chat message",
			msg: &tg.Message{
				ID:     42,
				PeerID: &tg.PeerUser{UserID: 777},
				FromID: &tg.PeerUser{UserID: 777},
				Date:   1000,
				Out:    false,
			},
			wantChat: Chat{ID: 777, Type: "private", Title: "Dan"},
			wantFrom: "@haskell",
		},
		{
			name: "private message without FromID falls back to peer",
			msg: &tg.Message{
				ID:     43,
				PeerID: &tg.PeerUser{UserID: 777},
				Date:   1000,
			},
			wantChat: Chat{ID: 777, Type: "private", Title: "Dan"},
			wantFrom: "@haskell",
		},
		{
			name: "basic group gets negated id",
			msg: &tg.Message{
				ID:     44,
				PeerID: &tg.PeerChat{ChatID: 12345},
				FromID: &tg.PeerUser{UserID: 777},
				Date:   1000,
			},
			wantChat: Chat{ID: -12345, Type: "group", Title: "Friends"},
			wantFrom: "@haskell",
		},
		{
			name: "channel gets -100 prefixed id",
			msg: &tg.Message{
				ID:     45,
				PeerID: &tg.PeerChannel{ChannelID: 67890},
				Date:   1000,
			},
			wantChat: Chat{ID: -1000000000000 - 67890, Type: "channel", Title: "News"},
			wantFrom: "News",
		},
		{
			name: "megagroup is a supergroup",
			msg: &tg.Message{
				ID:     46,
				PeerID: &tg.PeerChannel{ChannelID: 67891},
				Date:   1000,
			},
			wantChat: Chat{ID: -1000000000000 - 67891, Type: "supergroup", Title: "Group"},
			wantFrom: "Group",
		},
		{
			name: "scheduled flag carried through",
			msg: &tg.Message{
				ID:     47,
				PeerID: &tg.PeerUser{UserID: 777},
				Date:   2000,
			},
			scheduled: true,
			wantChat:  Chat{ID: 777, Type: "private", Title: "Dan"},
			wantFrom:  "@haskell",
		},
		{
			name: "links collected from entities",
			msg: &tg.Message{
				ID:      48,
				PeerID:  &tg.PeerUser{UserID: 777},
				Date:    1000,
				Message: "see https://example.com and docs",
				Entities: []tg.MessageEntityClass{
					&tg.MessageEntityURL{Offset: 4, Length: 19},
					&tg.MessageEntityTextURL{Offset: 28, Length: 4, URL: "https://docs.example.com"},
				},
			},
			wantChat:  Chat{ID: 777, Type: "private", Title: "Dan"},
			wantFrom:  "@haskell",
			wantLinks: []string{"https://example.com", "https://docs.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.msg, users, chats, tt.scheduled)

			if got.ID != tt.msg.ID {
				t.Errorf("ID = %d, want %d", got.ID, tt.msg.ID)
			}
			if got.Chat != tt.wantChat {
				t.Errorf("Chat = %+v, want %+v", got.Chat, tt.wantChat)
			}
			if got.SenderName != tt.wantFrom {
				t.Errorf("SenderName = %q, want %q", got.SenderName, tt.wantFrom)
			}
			if got.Scheduled != tt.scheduled {
				t.Errorf("Scheduled = %v, want %v", got.Scheduled, tt.scheduled)
			}
			if got.Date.Unix() != int64(tt.msg.Date) {
				t.Errorf("Date = %v, want unix %d", got.Date, tt.msg.Date)
			}
			if len(got.Links) != len(tt.wantLinks) {
				t.Fatalf("Links = %v, want %v", got.Links, tt.wantLinks)
			}
			for i, link := range got.Links {
				if link != tt.wantLinks[i] {
					t.Errorf("Links[%d] = %q, want %q", i, link, tt.wantLinks[i])
				}
			}
			if len(got.Entities) != len(tt.msg.Entities) {
				t.Errorf("Entities = %d, want %d", len(got.Entities), len(tt.msg.Entities))
			}
		})
	}
}

func TestExtractSubstring(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		length int
		want   string
	}{
		{
			name:   "ASCII text",
			input:  "Hello, World!",
			offset: 7,
			length: 5,
			want:   "World",
		},
		{
			name:   "Cyrillic text",
			input:  "Привет, мир!",
			offset: 8,
			length: 3,
			want:   "мир",
		},
		{
			name:   "emoji takes two code units",
			input:  "Hello 👋 World",
			offset: 6,
			length: 2,
			want:   "👋",
		},
		{
			name:   "text after emoji",
			input:  "Hello 👋 World",
			offset: 9,
			length: 5,
			want:   "World",
		},
		{
			name:   "URL after Cyrillic",
			input:  "Ссылка: https://example.com",
			offset: 8,
			length: 19,
			want:   "https://example.com",
		},
		{
			name:   "empty string",
			input:  "",
			offset: 0,
			length: 1,
			want:   "",
		},
		{
			name:   "negative offset",
			input:  "Hello",
			offset: -1,
			length: 3,
			want:   "",
		},
		{
			name:   "zero length",
			input:  "Hello",
			offset: 0,
			length: 0,
			want:   "",
		},
		{
			name:   "offset beyond string",
			input:  "Hello",
			offset: 10,
			length: 1,
			want:   "",
		},
		{
			name:   "length exceeds string",
			input:  "Hello",
			offset: 0,
			length: 100,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractSubstring(tt.input, tt.offset, tt.length)
			if got != tt.want {
				t.Errorf("extractSubstring(%q, %d, %d) = %q, want %q",
					tt.input, tt.offset, tt.length, got, tt.want)
			}
		})
	}
}
