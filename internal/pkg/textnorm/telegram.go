package textnorm

import "strings"

// NormalizeTelegramLink accepts the usual ways people write a Telegram contact
// ("@user", "user", "t.me/user", full URLs) and returns a clickable link.
// Empty input stays empty.
func NormalizeTelegramLink(raw string) string {
	v := strings.TrimSpace(raw)
	switch {
	case v == "":
		return ""
	case strings.HasPrefix(v, "https://"), strings.HasPrefix(v, "http://"), strings.HasPrefix(v, "tg://"):
		return v
	case strings.HasPrefix(v, "@"):
		return "https://t.me/" + v[1:]
	case strings.HasPrefix(v, "t.me/"):
		return "https://" + v
	}
	return "https://t.me/" + v
}
