package telegram

import "testing"

func TestAppLink(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"private joinchat", "https://t.me/joinchat/ABC123", "tg://join?invite=ABC123"},
		{"private plus", "https://t.me/+XyZ789", "tg://join?invite=XyZ789"},
		{"public username", "https://t.me/mychannel", "tg://resolve?domain=mychannel"},
		{"public with path", "https://t.me/mychannel/42", "tg://resolve?domain=mychannel"},
		{"public with query", "https://t.me/mychannel?start=x", "tg://resolve?domain=mychannel"},
		{"unknown passthrough", "https://example.com/x", "https://example.com/x"},
		{"empty passthrough", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppLink(tt.in); got != tt.want {
				t.Fatalf("AppLink(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
