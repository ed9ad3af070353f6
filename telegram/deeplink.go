package telegram

import "strings"

// AppLink converts an invite URL into a Telegram-app deep link. Private
// invite links (joinchat/ or +) become tg://join, public t.me usernames
// become tg://resolve, anything else passes through unchanged. Malformed
// input has no error path: the raw string is returned as-is.
func AppLink(link string) string {
	if strings.Contains(link, "joinchat/") || strings.Contains(link, "+") {
		code := link
		if i := strings.Index(code, "joinchat/"); i >= 0 {
			code = code[i+len("joinchat/"):]
		} else if i := strings.Index(code, "+"); i >= 0 {
			code = code[i+1:]
		}
		return "tg://join?invite=" + code
	}

	if i := strings.Index(link, "t.me/"); i >= 0 {
		username := link[i+len("t.me/"):]
		username = strings.SplitN(username, "/", 2)[0]
		username = strings.SplitN(username, "?", 2)[0]
		return "tg://resolve?domain=" + username
	}

	return link
}
