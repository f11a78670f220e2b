package auth

import "unicode/utf8"

// IsStrong проверяет пароль по политике: минимум 8 символов,
// хотя бы одна заглавная, одна строчная и один спецсимвол.
// Спецсимвол — всё, что не латинская буква и не цифра
// (подчёркивание тоже считается спецсимволом).
func IsStrong(password string) bool {
	// длина в символах, не в байтах
	if utf8.RuneCountInString(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			// цифры политикой не требуются
		default:
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasSpecial
}
