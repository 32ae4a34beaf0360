package tgdata

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
)

// GetCurrentUser returns the profile of the authorized account, including
// the bio from the full user record.
func GetCurrentUser(ctx context.Context, client *tg.Client) (*UserInfo, error) {
	full, err := client.UsersGetFullUser(ctx, &tg.InputUserSelf{})
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	info := UserInfo{Bio: full.FullUser.About}
	for _, u := range full.Users {
		self, ok := u.(*tg.User)
		if !ok || !self.Self {
			continue
		}
		info.ID = self.ID
		info.FirstName = self.FirstName
		info.LastName = self.LastName
		info.Username = self.Username
		info.Phone = self.Phone
		info.Premium = self.Premium
		break
	}

	return &info, nil
}
