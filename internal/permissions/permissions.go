// Package permissions translates the denial-oriented banned-rights record
// Telegram transmits into the allow-oriented permission set user code
// works with.
package permissions

import "github.com/gotd/td/tg"

// ChatPermissions describes what members of a chat are allowed to do.
type ChatPermissions struct {
	CanSendMessages       bool `json:"can_send_messages"`
	CanSendMediaMessages  bool `json:"can_send_media_messages"`
	CanSendOtherMessages  bool `json:"can_send_other_messages"`
	CanAddWebPagePreviews bool `json:"can_add_web_page_previews"`
	CanSendPolls          bool `json:"can_send_polls"`
	CanChangeInfo         bool `json:"can_change_info"`
	CanInviteUsers        bool `json:"can_invite_users"`
	CanPinMessages        bool `json:"can_pin_messages"`
}

// FromBannedRights inverts a banned-rights denial record into allow flags.
//
// "Other messages" (stickers, GIFs, games, inline bot results) is allowed
// as long as at least one of its four constituent rights is not denied:
// a single remaining sub-capability keeps the parent capability on. This
// follows the upstream protocol semantics, which treat the four denial
// bits independently.
func FromBannedRights(denied tg.ChatBannedRights) ChatPermissions {
	return ChatPermissions{
		CanSendMessages:      !denied.SendMessages,
		CanSendMediaMessages: !denied.SendMedia,
		CanSendOtherMessages: !denied.SendStickers || !denied.SendGifs ||
			!denied.SendGames || !denied.SendInline,
		CanAddWebPagePreviews: !denied.EmbedLinks,
		CanSendPolls:          !denied.SendPolls,
		CanChangeInfo:         !denied.ChangeInfo,
		CanInviteUsers:        !denied.InviteUsers,
		CanPinMessages:        !denied.PinMessages,
	}
}
