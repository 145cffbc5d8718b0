package create_reservation

import "time"

// Phase фаза машины состояний формы создания бронирования.
// Допустимые переходы:
//
//	Editing -> Submitting -> Succeeded | Errored
//	Errored -> Editing (при следующем редактировании)
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseErrored    Phase = "errored"
)

// MessageKind вид пользовательского сообщения
type MessageKind string

const (
	MessageNone    MessageKind = ""
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// FormFields поля формы, заполняемые пользователем.
// Все три поля обязательны и проверяются до сетевого вызова.
type FormFields struct {
	UserName  string
	UserEmail string
	UserPhone string
}

// State снимок состояния формы
type State struct {
	Phase Phase

	// Контекст бронирования, зафиксированный до открытия формы.
	// RestaurantName используется только для отображения: реляционным
	// ключом при отправке служит RestaurantID.
	RestaurantID   int64
	RestaurantName string
	Date           time.Time // выбранная дата; время фиксируется в полдень при отправке

	Fields FormFields

	// Token токен, выданный сервером при успешном создании. Пользователь
	// обязан сохранить его сам: восстановление через аккаунт не существует.
	Token string

	Message     string
	MessageKind MessageKind
}
