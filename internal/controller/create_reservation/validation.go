package create_reservation

import "strings"

// Пользовательские сообщения валидации
const (
	msgNameRequired  = "Your name is required"
	msgEmailRequired = "Your email is required"
	msgPhoneRequired = "Your phone number is required"
)

// validateFields проверяет обязательные поля формы.
// Возвращает сообщение для пользователя и false, если форма неполна.
func validateFields(f FormFields) (string, bool) {
	if strings.TrimSpace(f.UserName) == "" {
		return msgNameRequired, false
	}
	if strings.TrimSpace(f.UserEmail) == "" {
		return msgEmailRequired, false
	}
	if strings.TrimSpace(f.UserPhone) == "" {
		return msgPhoneRequired, false
	}
	return "", true
}
