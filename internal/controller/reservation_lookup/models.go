package reservation_lookup

import "github.com/m04kA/UAD-ReservationClient/internal/domain"

// Phase фаза жизненного цикла просмотра бронирования.
// Допустимые переходы:
//
//	Idle -> Loading -> Loaded | NotFound | Errored
//	Loaded -> ConfirmingCancel -> Cancelling -> Cancelled
//	ConfirmingCancel -> Loaded (отказ от отмены)
//	Cancelling -> Loaded (ошибка удаления)
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseLoading          Phase = "loading"
	PhaseLoaded           Phase = "loaded"
	PhaseNotFound         Phase = "not_found"
	PhaseErrored          Phase = "errored"
	PhaseConfirmingCancel Phase = "confirming_cancel"
	PhaseCancelling       Phase = "cancelling"
	PhaseCancelled        Phase = "cancelled"
)

// MessageKind вид пользовательского сообщения
type MessageKind string

const (
	MessageNone    MessageKind = ""
	MessageInfo    MessageKind = "info"
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// State снимок состояния контроллера. Недопустимые комбинации
// непредставимы: Reservation заполнен только в фазах Loaded,
// ConfirmingCancel и Cancelling.
type State struct {
	Phase       Phase
	Token       string              // токен, по которому выполнен lookup
	Reservation *domain.Reservation // загруженное бронирование
	Restaurant  *domain.Restaurant  // детали ресторана, nil = недоступны
	Message     string              // встроенное сообщение для пользователя
	MessageKind MessageKind
}

// CanCancel возвращает true, если в текущем состоянии доступна отмена
func (s State) CanCancel() bool {
	return s.Phase == PhaseLoaded && s.Reservation != nil && s.Reservation.CanBeCancelled()
}
