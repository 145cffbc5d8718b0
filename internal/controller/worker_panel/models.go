package worker_panel

import "github.com/m04kA/UAD-ReservationClient/internal/domain"

// SearchMode режим поиска панели работника. Режимы взаимоисключающие
// и выбираются явно, а не выводятся из введенных данных.
type SearchMode string

const (
	ModeToken             SearchMode = "token"
	ModeRestaurantAndDate SearchMode = "restaurant_date"
)

// Phase фаза машины состояний панели работника
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseSearching Phase = "searching"
	PhaseLoaded    Phase = "loaded"
	PhaseErrored   Phase = "errored"
)

// MessageKind вид пользовательского сообщения
type MessageKind string

const (
	MessageNone    MessageKind = ""
	MessageInfo    MessageKind = "info"
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// State снимок состояния панели работника. Reservations — текущий список
// результатов; результат поиска по токену оборачивается в список из
// одного элемента, чтобы переиспользовать общий контракт отображения.
type State struct {
	Phase        Phase
	Mode         SearchMode
	Restaurants  []domain.Restaurant // каталог для селектора ресторана
	Reservations []domain.Reservation
	Message      string
	MessageKind  MessageKind
}
