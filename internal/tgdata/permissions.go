package tgdata

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"

	"github.com/tolmachov/tgcompose/internal/permissions"
)

// GetChatPermissions reports what ordinary members of a group or
// supergroup are allowed to do. A chat with no default restrictions
// reports everything as allowed.
func GetChatPermissions(ctx context.Context, client *tg.Client, peer tg.InputPeerClass) (*permissions.ChatPermissions, error) {
	switch p := peer.(type) {
	case *tg.InputPeerChat:
		result, err := client.MessagesGetChats(ctx, []int64{p.ChatID})
		if err != nil {
			return nil, fmt.Errorf("getting chat: %w", err)
		}
		for _, c := range result.GetChats() {
			if chat, ok := c.(*tg.Chat); ok && chat.ID == p.ChatID {
				rights, _ := chat.GetDefaultBannedRights()
				perms := permissions.FromBannedRights(rights)
				return &perms, nil
			}
		}
		return nil, fmt.Errorf("chat %d not found", p.ChatID)

	case *tg.InputPeerChannel:
		result, err := client.ChannelsGetChannels(ctx, []tg.InputChannelClass{
			&tg.InputChannel{ChannelID: p.ChannelID, AccessHash: p.AccessHash},
		})
		if err != nil {
			return nil, fmt.Errorf("getting channel: %w", err)
		}
		for _, c := range result.GetChats() {
			if channel, ok := c.(*tg.Channel); ok && channel.ID == p.ChannelID {
				rights, _ := channel.GetDefaultBannedRights()
				perms := permissions.FromBannedRights(rights)
				return &perms, nil
			}
		}
		return nil, fmt.Errorf("channel %d not found", p.ChannelID)
	}

	return nil, fmt.Errorf("permissions apply to groups and channels only")
}
