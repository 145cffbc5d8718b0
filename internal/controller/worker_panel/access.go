package worker_panel

import "crypto/subtle"

// Access локальный шлюз доступа к панели работника: сравнение со
// статическим общим секретом на стороне клиента. Это сознательно
// грубый барьер, а не граница безопасности — backend обязан
// самостоятельно авторизовывать изменяющие endpoints, которые
// использует этот поток.
type Access struct {
	secret   string
	unlocked bool
}

// NewAccess создает шлюз с указанным секретом
func NewAccess(secret string) *Access {
	return &Access{secret: secret}
}

// Login проверяет пароль и при совпадении открывает доступ
func (a *Access) Login(password string) bool {
	ok := subtle.ConstantTimeCompare([]byte(password), []byte(a.secret)) == 1
	if ok {
		a.unlocked = true
	}
	return ok
}

// Unlocked возвращает true, если доступ открыт
func (a *Access) Unlocked() bool {
	return a.unlocked
}

// Logout закрывает доступ
func (a *Access) Logout() {
	a.unlocked = false
}
