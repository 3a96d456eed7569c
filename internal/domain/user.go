package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// User представляет участника мероприятия
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Initials  string  `json:"initials"`
	Email     *string `json:"email,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// UserSummary представляет проекцию пользователя в составе встречи
type UserSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Initials  string  `json:"initials"`
	Email     *string `json:"email,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// Summary возвращает проекцию пользователя для списков участников
func (u *User) Summary() *UserSummary {
	initials := u.Initials
	if initials == "" {
		initials = DeriveInitials(u.Name)
	}
	return &UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Initials:  initials,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
	}
}

// DeriveInitials строит инициалы из первых букв первых двух слов имени
func DeriveInitials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		initials = append(initials, unicode.ToUpper(r))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}
