package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL builds the deterministic avatar URL the gravatar service
// derives from an email address.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://s.gravatar.com/avatar/%x?s=100", sum)
}
