package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle flips light and dark. Anything else becomes dark, as if it were light.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

const RoleAdmin = "admin"

type User struct {
	ID           string
	Name         string
	Email        string
	Role         string
	PasswordHash string
	Theme        Theme
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Initials is the first letter of each space-separated part of the name,
// or "U" when there is no name.
func (u *User) Initials() string {
	if u == nil {
		return "U"
	}
	parts := strings.Fields(u.Name)
	if len(parts) == 0 {
		return "U"
	}
	var b strings.Builder
	for _, p := range parts {
		r, _ := utf8.DecodeRuneInString(p)
		b.WriteRune(r)
	}
	return b.String()
}
