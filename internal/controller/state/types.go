package state

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Состояния для добавления занятости
	StateBusyDate  UserState = "busy_date"
	StateBusyTime  UserState = "busy_time"
	StateBusyTitle UserState = "busy_title"

	// Состояния для просмотра свободного времени
	StateFreeDates  UserState = "free_dates"
	StateFreeWindow UserState = "free_window"

	// Состояния для поиска общего слота
	StateFindParticipants UserState = "find_participants"
	StateFindDates        UserState = "find_dates"
	StateFindWindow       UserState = "find_window"
	StateFindDuration     UserState = "find_duration"
	StateFindConfirm      UserState = "find_confirm"
	StateFindTitle        UserState = "find_title"

	// Состояния для картинки с сеткой занятости
	StateGridDates UserState = "grid_dates"
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State UserState
	Data  map[string]interface{} // Временные данные для текущего диалога
}
