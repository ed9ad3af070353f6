package utils

import (
	rndm "math/rand"
	"regexp"
	"strings"
)

var idRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

// GenerateID creates a random lowercase id of length n for documents.
func GenerateID(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = idRunes[rndm.Intn(len(idRunes))]
	}
	return string(b)
}

// --- Validation ---

var phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

func IsValidPhone(s string) bool {
	return phoneRe.MatchString(strings.TrimSpace(s))
}

var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}
