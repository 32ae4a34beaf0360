package messages

import (
	"time"

	"github.com/gotd/td/tg"
)

// Chat identifies the conversation a message belongs to, using user-facing
// IDs: positive for users, negated for basic groups, -100-prefixed for
// channels and supergroups.
type Chat struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"` // private, group, supergroup, channel
	Title string `json:"title,omitempty"`
}

// Message is a decoded Telegram message.
type Message struct {
	ID         int                     `json:"id"`
	Chat       Chat                    `json:"chat"`
	Date       time.Time               `json:"date"`
	SenderID   int64                   `json:"sender_id,omitempty"`
	SenderName string                  `json:"sender_name,omitempty"`
	Text       string                  `json:"text"`
	Entities   []tg.MessageEntityClass `json:"-"` // styled spans, wire representation
	Links      []string                `json:"links,omitempty"`
	ReplyToID  int                     `json:"reply_to_id,omitempty"`
	Media      *MediaInfo              `json:"media,omitempty"`
	Outgoing   bool                    `json:"outgoing"`
	Scheduled  bool                    `json:"scheduled,omitempty"`
	Raw        *tg.Message             `json:"-"` // original record for advanced use cases
}

// MediaInfo represents media attached to a message.
type MediaInfo struct {
	Type     string `json:"type"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	FileName string `json:"file_name,omitempty"`
	URL      string `json:"url,omitempty"`
}

// FetchResult contains messages and metadata from a fetch operation.
type FetchResult struct {
	ChatID   int64     `json:"chat_id"`
	Messages []Message `json:"messages"`
	Count    int       `json:"count"`
	HasMore  bool      `json:"has_more"`
	NextID   int       `json:"next_id,omitempty"`
	Total    int       `json:"-"` // total messages in the chat (from API)
}

// FetchOptions configures message fetching.
type FetchOptions struct {
	Limit      int
	OffsetID   int
	OffsetDate time.Time
	UnreadOnly bool
}

// DefaultFetchOptions returns sensible defaults for message fetching.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{
		Limit: 50,
	}
}
