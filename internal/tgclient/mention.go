package tgclient

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gotd/td/tg"
)

// MentionResolver looks up the users referenced by inline text mentions,
// either by numeric ID or by username.
type MentionResolver struct {
	client *tg.Client
}

func NewMentionResolver(client *tg.Client) *MentionResolver {
	return &MentionResolver{client: client}
}

// ResolveUser resolves a mention token to an input user with its access
// hash. Mention entities are rejected by the server without one.
func (r *MentionResolver) ResolveUser(ctx context.Context, token string) (tg.InputUserClass, error) {
	if id, err := strconv.ParseInt(token, 10, 64); err == nil {
		users, err := r.client.UsersGetUsers(ctx, []tg.InputUserClass{
			&tg.InputUser{UserID: id},
		})
		if err != nil {
			return nil, fmt.Errorf("looking up user %d: %w", id, err)
		}
		if len(users) > 0 {
			if user, ok := users[0].(*tg.User); ok {
				return &tg.InputUser{UserID: user.ID, AccessHash: user.AccessHash}, nil
			}
		}
		return nil, fmt.Errorf("user %d not found", id)
	}

	resolved, err := r.client.ContactsResolveUsername(ctx, &tg.ContactsResolveUsernameRequest{
		Username: token,
	})
	if err != nil {
		return nil, fmt.Errorf("resolving username @%s: %w", token, err)
	}
	peer, ok := resolved.Peer.(*tg.PeerUser)
	if !ok {
		return nil, fmt.Errorf("@%s is not a user", token)
	}
	for _, u := range resolved.Users {
		if user, ok := u.(*tg.User); ok && user.ID == peer.UserID {
			return &tg.InputUser{UserID: user.ID, AccessHash: user.AccessHash}, nil
		}
	}
	return nil, fmt.Errorf("user @%s not found", token)
}
