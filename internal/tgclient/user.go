package tgclient

import (
	"fmt"
	"strings"

	"github.com/gotd/td/tg"
)

// UserDisplayName builds a display name from the user's first and last
// names, falling back to the username when both are empty.
func UserDisplayName(user *tg.User) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		return user.Username
	}
	return name
}

// UserName picks the most recognizable identifier for a user:
// @username when set, then the display name, then a numeric placeholder.
func UserName(user *tg.User) string {
	if user.Username != "" {
		return "@" + user.Username
	}
	if name := UserDisplayName(user); name != "" {
		return name
	}
	return fmt.Sprintf("User#%d", user.ID)
}
