package util

import (
	"fmt"

	"github.com/recnet/recnet-be/config"
)

// Avatar returns the default profile picture for a seed (username).
func Avatar(seed string) string {
	return fmt.Sprintf("https://avatars.dicebear.com/api/bottts/%v.svg?size=%v", seed, config.AvatarSize)
}
