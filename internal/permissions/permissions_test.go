package permissions

import (
	"testing"

	"github.com/gotd/td/tg"
)

func TestFromBannedRights(t *testing.T) {
	tests := []struct {
		name   string
		denied tg.ChatBannedRights
		want   ChatPermissions
	}{
		{
			name:   "nothing denied allows everything",
			denied: tg.ChatBannedRights{},
			want: ChatPermissions{
				CanSendMessages:       true,
				CanSendMediaMessages:  true,
				CanSendOtherMessages:  true,
				CanAddWebPagePreviews: true,
				CanSendPolls:          true,
				CanChangeInfo:         true,
				CanInviteUsers:        true,
				CanPinMessages:        true,
			},
		},
		{
			name: "everything denied allows nothing",
			denied: tg.ChatBannedRights{
				SendMessages: true,
				SendMedia:    true,
				SendStickers: true,
				SendGifs:     true,
				SendGames:    true,
				SendInline:   true,
				EmbedLinks:   true,
				SendPolls:    true,
				ChangeInfo:   true,
				InviteUsers:  true,
				PinMessages:  true,
			},
			want: ChatPermissions{},
		},
		{
			name: "one remaining sub-right keeps other messages allowed",
			denied: tg.ChatBannedRights{
				SendStickers: true,
				SendGifs:     true,
				SendGames:    true,
				// SendInline not denied
			},
			want: ChatPermissions{
				CanSendMessages:       true,
				CanSendMediaMessages:  true,
				CanSendOtherMessages:  true,
				CanAddWebPagePreviews: true,
				CanSendPolls:          true,
				CanChangeInfo:         true,
				CanInviteUsers:        true,
				CanPinMessages:        true,
			},
		},
		{
			name: "all four sub-rights denied turns other messages off",
			denied: tg.ChatBannedRights{
				SendStickers: true,
				SendGifs:     true,
				SendGames:    true,
				SendInline:   true,
			},
			want: ChatPermissions{
				CanSendMessages:       true,
				CanSendMediaMessages:  true,
				CanSendOtherMessages:  false,
				CanAddWebPagePreviews: true,
				CanSendPolls:          true,
				CanChangeInfo:         true,
				CanInviteUsers:        true,
				CanPinMessages:        true,
			},
		},
		{
			name: "text and media denied independently",
			denied: tg.ChatBannedRights{
				SendMessages: true,
				SendMedia:    true,
				EmbedLinks:   true,
				SendPolls:    true,
			},
			want: ChatPermissions{
				CanSendMessages:       false,
				CanSendMediaMessages:  false,
				CanSendOtherMessages:  true,
				CanAddWebPagePreviews: false,
				CanSendPolls:          false,
				CanChangeInfo:         true,
				CanInviteUsers:        true,
				CanPinMessages:        true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromBannedRights(tt.denied)
			if got != tt.want {
				t.Errorf("FromBannedRights() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// The "other messages" flag must be an OR of negations: denying three of
// the four sub-rights in every combination still leaves it allowed.
func TestOtherMessagesBias(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		denied := tg.ChatBannedRights{
			SendStickers: mask&1 != 0,
			SendGifs:     mask&2 != 0,
			SendGames:    mask&4 != 0,
			SendInline:   mask&8 != 0,
		}
		want := mask != 15
		if got := FromBannedRights(denied).CanSendOtherMessages; got != want {
			t.Errorf("mask %04b: CanSendOtherMessages = %v, want %v", mask, got, want)
		}
	}
}
