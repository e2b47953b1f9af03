package filter

import (
	"regexp"
	"unicode/utf8"

	"github.com/abezemskiy/novalogin/internal/repositories/credentials"
)

var (
	usernameChar = regexp.MustCompile(`^[0-9A-Za-z]$`)
	passwordChar = regexp.MustCompile(`^[0-9A-Za-z!@#$%^&*]$`)
)

// IsAllowedCharacter - функция для проверки, допускается ли символ в поле.
// Backspace допускается в любом поле.
func IsAllowedCharacter(field credentials.Field, r rune) bool {
	if r == credentials.Backspace {
		return true
	}
	switch field {
	case credentials.Username:
		return usernameChar.MatchString(string(r))
	case credentials.Password:
		return passwordChar.MatchString(string(r))
	default:
		return false
	}
}

// Admit - функция для проверки нажатия клавиши в поле.
// text - значение поля вместе с добавляемым символом r.
// Символ не допускается, если поле уже содержит MaxLength символов.
func Admit(field credentials.Field, text string, r rune) bool {
	if !IsAllowedCharacter(field, r) {
		return false
	}
	if r == credentials.Backspace {
		return true
	}
	return utf8.RuneCountInString(text) <= credentials.MaxLength
}
