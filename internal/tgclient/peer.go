package tgclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gotd/td/tg"
)

// Channel IDs are presented to users with a -1000000000000 offset, the
// same convention the Bot API uses, so that every chat kind lives in a
// distinct range of a single int64 space.
const channelIDOffset = 1000000000000

// ResolvePeer resolves a user-facing chat ID to an InputPeerClass.
//
// ID ranges:
//   - positive: users
//   - negative above -1000000000000: basic groups (negated chat ID)
//   - below that: channels and supergroups (offset-shifted)
func ResolvePeer(ctx context.Context, client *tg.Client, chatID int64) (tg.InputPeerClass, error) {
	switch {
	case chatID > 0:
		users, err := client.UsersGetUsers(ctx, []tg.InputUserClass{
			&tg.InputUser{UserID: chatID},
		})
		if err == nil && len(users) > 0 {
			if user, ok := users[0].(*tg.User); ok && user.AccessHash != 0 {
				return &tg.InputPeerUser{
					UserID:     chatID,
					AccessHash: user.AccessHash,
				}, nil
			}
		}
		// Contacts and bots the account has talked to resolve without
		// an access hash.
		return &tg.InputPeerUser{UserID: chatID}, nil

	case chatID > -channelIDOffset:
		return &tg.InputPeerChat{ChatID: -chatID}, nil

	default:
		channelID := -chatID - channelIDOffset
		channels, err := client.ChannelsGetChannels(ctx, []tg.InputChannelClass{
			&tg.InputChannel{ChannelID: channelID},
		})
		if err == nil {
			if chats, ok := channels.(*tg.MessagesChats); ok && len(chats.Chats) > 0 {
				if channel, ok := chats.Chats[0].(*tg.Channel); ok {
					return &tg.InputPeerChannel{
						ChannelID:  channel.ID,
						AccessHash: channel.AccessHash,
					}, nil
				}
			}
		}
		return &tg.InputPeerChannel{ChannelID: channelID}, nil
	}
}

// ResolvePeerText resolves a chat identifier in any of the accepted
// textual forms: "me" for saved messages, a user-facing numeric ID, or a
// public @username.
func ResolvePeerText(ctx context.Context, client *tg.Client, ident string) (tg.InputPeerClass, error) {
	ident = strings.TrimSpace(ident)
	if ident == "" {
		return nil, fmt.Errorf("empty chat identifier")
	}
	if ident == "me" || ident == "self" {
		return &tg.InputPeerSelf{}, nil
	}
	if id, err := strconv.ParseInt(ident, 10, 64); err == nil {
		return ResolvePeer(ctx, client, id)
	}

	username := strings.TrimPrefix(ident, "@")
	resolved, err := client.ContactsResolveUsername(ctx, &tg.ContactsResolveUsernameRequest{
		Username: username,
	})
	if err != nil {
		return nil, fmt.Errorf("resolving username @%s: %w", username, err)
	}
	switch peer := resolved.Peer.(type) {
	case *tg.PeerUser:
		for _, u := range resolved.Users {
			if user, ok := u.(*tg.User); ok && user.ID == peer.UserID {
				return &tg.InputPeerUser{UserID: user.ID, AccessHash: user.AccessHash}, nil
			}
		}
	case *tg.PeerChannel:
		for _, c := range resolved.Chats {
			if channel, ok := c.(*tg.Channel); ok && channel.ID == peer.ChannelID {
				return &tg.InputPeerChannel{ChannelID: channel.ID, AccessHash: channel.AccessHash}, nil
			}
		}
	case *tg.PeerChat:
		return &tg.InputPeerChat{ChatID: peer.ChatID}, nil
	}
	return nil, fmt.Errorf("username @%s did not resolve to a usable peer", username)
}

// PeerID returns the user-facing chat ID of an input peer. Self peers
// have no standalone ID and map to zero.
func PeerID(peer tg.InputPeerClass) int64 {
	switch p := peer.(type) {
	case *tg.InputPeerUser:
		return p.UserID
	case *tg.InputPeerChat:
		return -p.ChatID
	case *tg.InputPeerChannel:
		return -channelIDOffset - p.ChannelID
	}
	return 0
}
