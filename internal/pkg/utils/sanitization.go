package utils

import (
	"strings"
)

func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
