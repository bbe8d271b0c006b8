package domain

import (
	"time"

	"github.com/Jelenicat/abeauty/pkg/types"
)

// DayHours рабочее время салона на один день недели
type DayHours struct {
	Open  types.TimeString
	Close types.TimeString
}

// OpenMin возвращает время открытия в минутах от полуночи
func (h DayHours) OpenMin() int {
	return h.Open.Minutes()
}

// CloseMin возвращает время закрытия в минутах от полуночи
func (h DayHours) CloseMin() int {
	return h.Close.Minutes()
}

// DefaultSalonHours дефолтное рабочее время, используется,
// когда для дня недели нет настройки в БД
var DefaultSalonHours = map[time.Weekday]DayHours{
	time.Monday:    {Open: "08:00", Close: "22:00"},
	time.Tuesday:   {Open: "08:00", Close: "22:00"},
	time.Wednesday: {Open: "08:00", Close: "22:00"},
	time.Thursday:  {Open: "08:00", Close: "22:00"},
	time.Friday:    {Open: "08:00", Close: "22:00"},
	time.Saturday:  {Open: "08:00", Close: "20:00"},
	time.Sunday:    {Open: "09:00", Close: "17:00"},
}
