package logger

import (
	"strings"
	"unicode/utf8"
)

// MaskEmail deja la primera letra del usuario y del dominio: "john@acme.io" => "j…@a….io".
func MaskEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	user, dom, ok := strings.Cut(s, "@")
	if !ok || user == "" {
		switch {
		case s == "":
			return ""
		case utf8.RuneCountInString(s) <= 3:
			return "***"
		default:
			_, n := utf8.DecodeLastRuneInString(s)
			return firstRune(s) + "…" + s[len(s)-n:]
		}
	}
	if utf8.RuneCountInString(user) > 1 {
		user = firstRune(user) + "…"
	}
	labels := strings.Split(dom, ".")
	if utf8.RuneCountInString(labels[0]) > 1 {
		labels[0] = firstRune(labels[0]) + "…"
	}
	return user + "@" + strings.Join(labels, ".")
}

func firstRune(s string) string {
	_, n := utf8.DecodeRuneInString(s)
	return s[:n]
}
