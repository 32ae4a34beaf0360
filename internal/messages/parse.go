package messages

import (
	"time"

	"github.com/gotd/td/tg"

	"github.com/tolmachov/tgcompose/internal/tgclient"
)

// channelIDOffset converts between raw MTProto channel IDs and the
// user-facing -100-prefixed form.
const channelIDOffset = 1000000000000

// UserMap indexes a response's user set by user ID. Last one wins if the
// server ever repeats an ID.
func UserMap(users []tg.UserClass) map[int64]*tg.User {
	m := make(map[int64]*tg.User, len(users))
	for _, u := range users {
		if user, ok := u.(*tg.User); ok {
			m[user.ID] = user
		}
	}
	return m
}

// ChatMap indexes a response's chat set by chat or channel ID.
func ChatMap(chats []tg.ChatClass) map[int64]tg.ChatClass {
	m := make(map[int64]tg.ChatClass, len(chats))
	for _, c := range chats {
		switch chat := c.(type) {
		case *tg.Chat:
			m[chat.ID] = chat
		case *tg.Channel:
			m[chat.ID] = chat
		}
	}
	return m
}

// Parse decodes a raw server message record into a Message, resolving
// sender and chat identity through the given id-keyed reference maps.
func Parse(msg *tg.Message, users map[int64]*tg.User, chats map[int64]tg.ChatClass, scheduled bool) *Message {
	m := &Message{
		ID:        msg.ID,
		Chat:      chatOf(msg.PeerID, users, chats),
		Date:      time.Unix(int64(msg.Date), 0),
		Text:      msg.Message,
		Outgoing:  msg.Out,
		Scheduled: scheduled,
		Raw:       msg,
	}

	if len(msg.Entities) > 0 {
		m.Entities = make([]tg.MessageEntityClass, len(msg.Entities))
		copy(m.Entities, msg.Entities)
	}

	if msg.FromID != nil {
		m.SenderID, m.SenderName = extractSender(msg.FromID, users, chats)
	} else {
		// In private chats, messages from the other side carry no FromID;
		// the chat peer is the sender.
		m.SenderID, m.SenderName = extractSender(msg.PeerID, users, chats)
	}

	if msg.ReplyTo != nil {
		if reply, ok := msg.ReplyTo.(*tg.MessageReplyHeader); ok {
			m.ReplyToID = reply.ReplyToMsgID
		}
	}

	if msg.Media != nil {
		m.Media = extractMediaType(msg.Media)
	}

	// Collect link targets for quick inspection.
	// Offsets are in UTF-16 code units, per the wire convention.
	for _, entity := range msg.Entities {
		if url, ok := entity.(*tg.MessageEntityURL); ok {
			if extracted := extractSubstring(msg.Message, url.Offset, url.Length); extracted != "" {
				m.Links = append(m.Links, extracted)
			}
		}
		if textURL, ok := entity.(*tg.MessageEntityTextURL); ok {
			m.Links = append(m.Links, textURL.URL)
		}
	}

	return m
}

// chatOf builds the user-facing chat identity for a message peer.
func chatOf(peer tg.PeerClass, users map[int64]*tg.User, chats map[int64]tg.ChatClass) Chat {
	switch p := peer.(type) {
	case *tg.PeerUser:
		chat := Chat{ID: p.UserID, Type: "private"}
		if user, ok := users[p.UserID]; ok {
			chat.Title = tgclient.UserDisplayName(user)
		}
		return chat
	case *tg.PeerChat:
		chat := Chat{ID: -p.ChatID, Type: "group"}
		if c, ok := chats[p.ChatID].(*tg.Chat); ok {
			chat.Title = c.Title
		}
		return chat
	case *tg.PeerChannel:
		chat := Chat{ID: -channelIDOffset - p.ChannelID, Type: "channel"}
		if c, ok := chats[p.ChannelID].(*tg.Channel); ok {
			chat.Title = c.Title
			if c.Megagroup {
				chat.Type = "supergroup"
			}
		}
		return chat
	}
	return Chat{}
}

// extractSender extracts sender ID and name from a peer reference.
func extractSender(peer any, users map[int64]*tg.User, chats map[int64]tg.ChatClass) (int64, string) {
	const unknownSender = "Unknown"

	var id int64
	var name string

	switch p := peer.(type) {
	case interface{ GetUserID() int64 }:
		id = p.GetUserID()
		if user, ok := users[id]; ok {
			name = tgclient.UserName(user)
		}
	case interface{ GetChannelID() int64 }:
		id = p.GetChannelID()
		name = chatTitle(chats, id)
	case interface{ GetChatID() int64 }:
		id = p.GetChatID()
		name = chatTitle(chats, id)
	default:
		return 0, unknownSender
	}

	if name == "" {
		name = unknownSender
	}
	return id, name
}

func chatTitle(chats map[int64]tg.ChatClass, id int64) string {
	switch c := chats[id].(type) {
	case *tg.Chat:
		return c.Title
	case *tg.Channel:
		return c.Title
	}
	return ""
}

func extractMediaType(media tg.MessageMediaClass) *MediaInfo {
	switch m := media.(type) {
	case *tg.MessageMediaPhoto:
		info := &MediaInfo{Type: "photo"}
		if photo, ok := m.GetPhoto(); ok {
			if p, ok := photo.(*tg.Photo); ok {
				// Report the largest available size.
				for _, size := range p.Sizes {
					var w, h int
					switch s := size.(type) {
					case *tg.PhotoSize:
						w, h = s.W, s.H
					case *tg.PhotoSizeProgressive:
						w, h = s.W, s.H
					case *tg.PhotoCachedSize:
						w, h = s.W, s.H
					default:
						continue
					}
					if w > info.Width {
						info.Width = w
						info.Height = h
					}
				}
			}
		}
		return info
	case *tg.MessageMediaDocument:
		info := &MediaInfo{Type: "document"}
		if doc, ok := m.GetDocument(); ok {
			if d, ok := doc.(*tg.Document); ok {
				for _, attr := range d.Attributes {
					if fileName, ok := attr.(*tg.DocumentAttributeFilename); ok {
						info.FileName = fileName.FileName
						break
					}
				}
			}
		}
		return info
	case *tg.MessageMediaGeo:
		return &MediaInfo{Type: "geo"}
	case *tg.MessageMediaContact:
		return &MediaInfo{Type: "contact"}
	case *tg.MessageMediaWebPage:
		info := &MediaInfo{Type: "webpage"}
		if webpage, ok := m.Webpage.(*tg.WebPage); ok {
			info.URL = webpage.URL
		}
		return info
	case *tg.MessageMediaVenue:
		return &MediaInfo{Type: "venue"}
	case *tg.MessageMediaPoll:
		return &MediaInfo{Type: "poll"}
	case *tg.MessageMediaDice:
		return &MediaInfo{Type: "dice"}
	default:
		return &MediaInfo{Type: "other"}
	}
}

// extractSubstring extracts a substring using UTF-16 code unit offsets.
// Telegram uses UTF-16 for entity positions: characters beyond the BMP
// count as two units, everything else as one.
func extractSubstring(s string, offset, length int) string {
	if offset < 0 || length <= 0 {
		return ""
	}

	runes := []rune(s)
	end := offset + length

	pos := 0
	start := -1
	stop := -1

	for i, r := range runes {
		if pos >= offset && start < 0 {
			start = i
		}
		if r > 0xFFFF {
			pos += 2
		} else {
			pos++
		}
		if pos >= end {
			stop = i + 1
			break
		}
	}

	if start < 0 || stop < 0 {
		return ""
	}

	return string(runes[start:stop])
}
